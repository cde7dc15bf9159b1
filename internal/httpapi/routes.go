package httpapi

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/fields", s.listFields)

	ab := s.engine.Group("/ab")
	{
		ab.GET("", s.dumpBook)
		ab.POST("", s.loadBook)
		ab.POST("/clear", s.clearBook)
		ab.GET("/export", s.exportBook)
		ab.POST("/import", s.importBook)
		ab.POST("/save", s.saveBook)
		ab.GET("/stat", s.bookStats)
		ab.GET("/search", s.search)
		ab.GET("/search/stat", s.searchStats)

		record := ab.Group("/record")
		{
			record.POST("", s.createRecord)
			record.GET("/:id", s.getRecord)
			record.PUT("/:id", s.replaceRecord)
			record.DELETE("/:id", s.deleteRecord)

			record.POST("/:id/field", s.addField)
			record.GET("/:id/field/:index", s.getField)
			record.PUT("/:id/field/:index", s.replaceField)
			record.DELETE("/:id/field/:index", s.deleteField)
			record.PATCH("/:id/field/:index", s.updateField)
		}
	}
}
