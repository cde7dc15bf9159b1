package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devbook/devbook/devbook"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listFields(c *gin.Context) {
	c.JSON(http.StatusOK, devbook.DefaultRegistry.Kinds())
}

func (s *Server) dumpBook(c *gin.Context) {
	dump, err := s.store.Dump()
	if err != nil {
		s.error(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", dump)
}

func (s *Server) loadBook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.error(c, err)
		return
	}
	if err := s.store.Load(body); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("bulk load", "records", s.store.Len())
	s.dumpBook(c)
}

func (s *Server) clearBook(c *gin.Context) {
	s.store.Clear()
	s.log.Info("cleared contact book")
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) exportBook(c *gin.Context) {
	dump, err := s.store.Dump()
	if err != nil {
		s.error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ab.json"`)
	c.Data(http.StatusOK, "application/json", dump)
}

func (s *Server) importBook(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.error(c, devbook.Wrap(devbook.ErrInvalidInput, "no file part in upload", err))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		s.error(c, err)
		return
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		s.error(c, err)
		return
	}
	if err := s.store.Load(body); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("imported snapshot upload", "filename", fileHeader.Filename, "records", s.store.Len())
	c.JSON(http.StatusOK, gin.H{"status": "OK", "records": s.store.Len()})
}

func (s *Server) saveBook(c *gin.Context) {
	if s.snap == nil {
		s.error(c, devbook.InvalidInputError("no snapshot backend configured"))
		return
	}
	dump, err := s.store.Dump()
	if err != nil {
		s.error(c, err)
		return
	}
	if err := s.snap.Save(c.Request.Context(), dump); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("saved snapshot", "backend", s.snap.Backend(), "ref", s.snap.Ref(), "records", s.store.Len())
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) bookStats(c *gin.Context) {
	c.JSON(http.StatusOK, devbook.SummarizeRates(s.store.Records()))
}

// searchResult evaluates the query string: "all" runs free-text search,
// anything else is a field-kind/probe conjunction. Parameters with empty
// values are dropped; no parameters at all match every record.
func (s *Server) searchResult(c *gin.Context) map[int]*devbook.Record {
	query := c.Request.URL.Query()
	if all, ok := query["all"]; ok && len(all) > 0 {
		return s.store.TextSearch(all[0])
	}
	criteria := make(map[devbook.FieldKind]string)
	for key, vals := range query {
		if len(vals) > 0 && vals[0] != "" {
			criteria[devbook.FieldKind(key)] = vals[0]
		}
	}
	return s.store.Search(criteria)
}

func (s *Server) search(c *gin.Context) {
	result := s.searchResult(c)
	out := make(map[string]*devbook.Record, len(result))
	for id, rec := range result {
		out[strconv.Itoa(id)] = rec
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) searchStats(c *gin.Context) {
	result := s.searchResult(c)
	records := make([]*devbook.Record, 0, len(result))
	for _, rec := range result {
		records = append(records, rec)
	}
	c.JSON(http.StatusOK, devbook.SummarizeRates(records))
}

// decodeRecordBody accepts an array of field dicts; an empty or null
// body is an empty record.
func decodeRecordBody(body []byte) (*devbook.Record, error) {
	rec := devbook.NewRecord()
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return rec, nil
	}
	if err := rec.UnmarshalJSON(trimmed); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Server) createRecord(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.error(c, err)
		return
	}
	rec, err := decodeRecordBody(body)
	if err != nil {
		s.error(c, err)
		return
	}
	id := s.store.Add(rec)
	s.log.Info("created record", "id", id, "fields", rec.Len())
	c.Header("Location", fmt.Sprintf("/ab/record/%d", id))
	c.JSON(http.StatusCreated, gin.H{"id": id, "record": rec})
}

func (s *Server) getRecord(c *gin.Context) {
	id, err := devbook.ParseID(c.Param("id"))
	if err != nil {
		s.error(c, err)
		return
	}
	rec, err := s.store.Get(id)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) replaceRecord(c *gin.Context) {
	id, err := devbook.ParseID(c.Param("id"))
	if err != nil {
		s.error(c, err)
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.error(c, err)
		return
	}
	rec, err := decodeRecordBody(body)
	if err != nil {
		s.error(c, err)
		return
	}
	if err := s.store.Replace(id, rec); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("replaced record", "id", id, "fields", rec.Len())
	c.JSON(http.StatusOK, rec)
}

func (s *Server) deleteRecord(c *gin.Context) {
	id, err := devbook.ParseID(c.Param("id"))
	if err != nil {
		s.error(c, err)
		return
	}
	if err := s.store.Delete(id); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("deleted record", "id", id)
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) addField(c *gin.Context) {
	id, err := devbook.ParseID(c.Param("id"))
	if err != nil {
		s.error(c, err)
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.error(c, err)
		return
	}
	field, err := devbook.DecodeField(body)
	if err != nil {
		s.error(c, err)
		return
	}
	var index int
	if err := s.store.Mutate(id, func(r *devbook.Record) error {
		index = r.Add(field)
		return nil
	}); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("added field", "id", id, "index", index, "kind", field.Kind())
	c.Header("Location", fmt.Sprintf("/ab/record/%d/field/%d", id, index))
	c.JSON(http.StatusCreated, gin.H{"index": index, "field": field})
}

// fieldAddr parses the :id/:index pair shared by the field handlers.
func (s *Server) fieldAddr(c *gin.Context) (int, int, bool) {
	id, err := devbook.ParseID(c.Param("id"))
	if err != nil {
		s.error(c, err)
		return 0, 0, false
	}
	index, err := devbook.ParseIndex(c.Param("index"))
	if err != nil {
		s.error(c, err)
		return 0, 0, false
	}
	return id, index, true
}

func (s *Server) getField(c *gin.Context) {
	id, index, ok := s.fieldAddr(c)
	if !ok {
		return
	}
	rec, err := s.store.Get(id)
	if err != nil {
		s.error(c, err)
		return
	}
	field, err := rec.Field(index)
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

func (s *Server) replaceField(c *gin.Context) {
	id, index, ok := s.fieldAddr(c)
	if !ok {
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.error(c, err)
		return
	}
	field, err := devbook.DecodeField(body)
	if err != nil {
		s.error(c, err)
		return
	}
	if err := s.store.Mutate(id, func(r *devbook.Record) error {
		return r.Replace(index, field)
	}); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("replaced field", "id", id, "index", index, "kind", field.Kind())
	c.JSON(http.StatusOK, field)
}

func (s *Server) deleteField(c *gin.Context) {
	id, index, ok := s.fieldAddr(c)
	if !ok {
		return
	}
	if err := s.store.Mutate(id, func(r *devbook.Record) error {
		return r.Delete(index)
	}); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("deleted field", "id", id, "index", index)
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) updateField(c *gin.Context) {
	id, index, ok := s.fieldAddr(c)
	if !ok {
		return
	}
	var body struct {
		Value *string `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		s.error(c, devbook.Wrap(devbook.ErrMalformedField, "invalid update body", err))
		return
	}
	if body.Value == nil {
		s.error(c, devbook.MalformedFieldError("wrong message format: 'value' required"))
		return
	}
	var updated devbook.Field
	if err := s.store.Mutate(id, func(r *devbook.Record) error {
		if err := r.Update(index, *body.Value); err != nil {
			return err
		}
		var err error
		updated, err = r.Field(index)
		return err
	}); err != nil {
		s.error(c, err)
		return
	}
	s.log.Info("updated field", "id", id, "index", index, "kind", updated.Kind())
	c.JSON(http.StatusOK, updated)
}
