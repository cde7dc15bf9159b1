package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Row is one record's slice of a snapshot: its id and the JSON array of
// field dicts, still encoded.
type Row struct {
	ID     int
	Fields json.RawMessage
}

// DecomposeDump splits a snapshot object into per-record rows in
// ascending id order.
func DecomposeDump(dump []byte) ([]Row, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(dump, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	rows := make([]Row, 0, len(raw))
	for key, body := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("snapshot key %q is not a record id: %w", key, err)
		}
		rows = append(rows, Row{ID: id, Fields: body})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// ComposeDump reassembles rows into the canonical snapshot object, keys
// in ascending numeric order.
func ComposeDump(rows []Row) []byte {
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, row := range rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", strconv.Itoa(row.ID))
		buf.Write(row.Fields)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}
