package devbook

import (
	"encoding/json"
	"strings"
)

// Record is one contact: an ordered, index-addressed collection of
// fields. Indices are positions, not identities — deleting a field
// shifts everything after it down by one.
type Record struct {
	fields []Field
}

func NewRecord() *Record {
	return &Record{}
}

func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the field sequence.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Field returns the field at index i.
func (r *Record) Field(i int) (Field, error) {
	if i < 0 || i >= len(r.fields) {
		return Field{}, IndexRangeError(i, len(r.fields))
	}
	return r.fields[i], nil
}

// Add appends a field and returns its position at the time of the call.
func (r *Record) Add(f Field) int {
	r.fields = append(r.fields, f)
	return len(r.fields) - 1
}

// Replace swaps the field at index i wholesale.
func (r *Record) Replace(i int, f Field) error {
	if i < 0 || i >= len(r.fields) {
		return IndexRangeError(i, len(r.fields))
	}
	r.fields[i] = f
	return nil
}

// Delete removes the field at index i; subsequent fields shift down.
func (r *Record) Delete(i int) error {
	if i < 0 || i >= len(r.fields) {
		return IndexRangeError(i, len(r.fields))
	}
	r.fields = append(r.fields[:i], r.fields[i+1:]...)
	return nil
}

// Update re-validates raw against the kind of the existing field at
// index i. The update is atomic: on validation failure the previous
// value is retained untouched.
func (r *Record) Update(i int, raw string) error {
	if i < 0 || i >= len(r.fields) {
		return IndexRangeError(i, len(r.fields))
	}
	f, err := NewField(r.fields[i].kind, raw)
	if err != nil {
		return err
	}
	r.fields[i] = f
	return nil
}

// FieldSearch reports whether any field of the given kind matches probe.
// A record with no field of that kind does not match.
func (r *Record) FieldSearch(kind FieldKind, probe string) bool {
	for _, f := range r.fields {
		if f.kind == kind && f.Contains(probe) {
			return true
		}
	}
	return false
}

// MatchesAll reports whether every criterion matches: a conjunctive
// query. Empty criteria match vacuously.
func (r *Record) MatchesAll(criteria map[FieldKind]string) bool {
	for kind, probe := range criteria {
		if !r.FieldSearch(kind, probe) {
			return false
		}
	}
	return true
}

// Contains reports whether any field, regardless of kind, matches probe.
func (r *Record) Contains(probe string) bool {
	for _, f := range r.fields {
		if f.Contains(probe) {
			return true
		}
	}
	return false
}

// DisplayName composes every Name and Surname field into one display
// string, or the "No name" sentinel when both are absent.
func (r *Record) DisplayName() string {
	var names, surnames []string
	for _, f := range r.fields {
		switch f.kind {
		case KindName:
			names = append(names, f.text)
		case KindSurname:
			surnames = append(surnames, f.text)
		}
	}
	result := strings.TrimSpace(strings.Join(names, " ") + " " + strings.Join(surnames, " "))
	if result == "" {
		return "No name"
	}
	return result
}

// Phones joins every phone field's composed value with "; ".
func (r *Record) Phones() string {
	return r.joinKind(KindPhone, "; ")
}

// Skills joins every skill field with "; ".
func (r *Record) Skills() string {
	return r.joinKind(KindSkill, "; ")
}

// City returns the first city field, or "" when there is none.
func (r *Record) City() string {
	for _, f := range r.fields {
		if f.kind == KindCity {
			return f.text
		}
	}
	return ""
}

// Rate returns the first rate field's value. ok is false only when the
// record has no rate field at all; a rate of exactly 0 is present.
func (r *Record) Rate() (float64, bool) {
	for _, f := range r.fields {
		if f.kind == KindRate {
			return f.rate, true
		}
	}
	return 0, false
}

func (r *Record) joinKind(kind FieldKind, sep string) string {
	var vals []string
	for _, f := range r.fields {
		if f.kind == kind {
			vals = append(vals, f.Text())
		}
	}
	return strings.Join(vals, sep)
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	return &Record{fields: r.Fields()}
}

// MarshalJSON serializes the record as an ordered array of field dicts.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.fields)
}

// UnmarshalJSON rebuilds the record from an array of field dicts, each
// decoded and re-validated through the default registry.
func (r *Record) UnmarshalJSON(data []byte) error {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return Wrap(ErrMalformedField, "record must be an array of fields", err)
	}
	fields := make([]Field, 0, len(list))
	for _, item := range list {
		f, err := DecodeField(item)
		if err != nil {
			return err
		}
		fields = append(fields, f)
	}
	r.fields = fields
	return nil
}
