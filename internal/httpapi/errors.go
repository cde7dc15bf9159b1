package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devbook/devbook/devbook"
)

// error writes the failure as a JSON body with the status the error
// kind maps to. Unknown faults are surfaced unchanged as 500s.
func (s *Server) error(c *gin.Context, err error) {
	switch {
	case devbook.IsKind(err, devbook.ErrNotFound), devbook.IsKind(err, devbook.ErrIndexRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case devbook.IsKind(err, devbook.ErrInvalidInput), devbook.IsKind(err, devbook.ErrMalformedField):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		s.log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
