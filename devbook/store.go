package devbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// Store owns all records, keyed by a monotonically allocated integer id.
// Ids start at 0 and are never reused while the store lives: next id is
// always greater than every id ever issued. A single RWMutex guards the
// whole store; records handed out are snapshot copies, and in-place
// mutation goes through Mutate so it happens under the lock.
type Store struct {
	mu      sync.RWMutex
	records map[int]*Record
	nextID  int
}

func NewStore() *Store {
	return &Store{records: make(map[int]*Record)}
}

// Add stores the record under a fresh id and returns it.
func (s *Store) Add(r *Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.records[id] = r
	s.nextID++
	return id
}

// Get returns a snapshot copy of the record.
func (s *Store) Get(id int) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, NotFoundError(id)
	}
	return r.Clone(), nil
}

// Replace swaps the record stored under an existing id.
func (s *Store) Replace(id int, r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return NotFoundError(id)
	}
	s.records[id] = r
	return nil
}

// Delete removes the record. The id is not reissued.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return NotFoundError(id)
	}
	delete(s.records, id)
	return nil
}

// Mutate runs fn on the live record under the store lock. Errors from
// fn are returned unchanged.
func (s *Store) Mutate(id int, fn func(*Record) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[id]
	if !ok {
		return NotFoundError(id)
	}
	return fn(r)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// IDs returns every live id in ascending order.
func (s *Store) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedIDs()
}

// Clear empties the store and resets id allocation to 0.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[int]*Record)
	s.nextID = 0
}

// Records returns snapshot copies of every record, in id order.
func (s *Store) Records() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Record, 0, len(s.records))
	for _, id := range s.sortedIDs() {
		out = append(out, s.records[id].Clone())
	}
	return out
}

// TextSearch returns the records where any field matches probe.
func (s *Store) TextSearch(probe string) map[int]*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[int]*Record)
	for id, r := range s.records {
		if r.Contains(probe) {
			result[id] = r.Clone()
		}
	}
	return result
}

// Search returns the records matching every criterion. Empty criteria
// match everything.
func (s *Store) Search(criteria map[FieldKind]string) map[int]*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[int]*Record)
	for id, r := range s.records {
		if r.MatchesAll(criteria) {
			result[id] = r.Clone()
		}
	}
	return result
}

// Dump serializes the whole store as one JSON object mapping decimal ids
// to field-dict arrays, keys in ascending numeric order. Dump → Load →
// Dump is byte-identical.
func (s *Store) Dump() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.sortedIDs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", strconv.Itoa(id))
		b, err := json.Marshal(s.records[id])
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Load replaces the store contents with the dump. Every field is
// re-validated through the default registry before any state changes:
// a malformed dump leaves the store untouched. Records are renumbered
// sequentially from 0 in ascending order of their persisted ids.
func (s *Store) Load(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Wrap(ErrMalformedField, "dump must be a JSON object keyed by record id", err)
	}

	type entry struct {
		id  int
		rec *Record
	}
	entries := make([]entry, 0, len(raw))
	for key, body := range raw {
		id, err := ParseID(key)
		if err != nil {
			return err
		}
		rec := NewRecord()
		if err := rec.UnmarshalJSON(body); err != nil {
			return err
		}
		entries = append(entries, entry{id: id, rec: rec})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[int]*Record, len(entries))
	s.nextID = 0
	for _, e := range entries {
		s.records[s.nextID] = e.rec
		s.nextID++
	}
	return nil
}

// sortedIDs must be called with at least the read lock held.
func (s *Store) sortedIDs() []int {
	ids := make([]int, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ParseID converts string record-id input. Non-numeric or negative
// input is an invalid_input error, not a lookup failure.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrInvalidInput, fmt.Sprintf("record id %q is not an integer", s), err)
	}
	if id < 0 {
		return 0, InvalidInputError(fmt.Sprintf("record id %d is negative", id))
	}
	return id, nil
}

// ParseIndex converts string field-index input.
func ParseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrInvalidInput, fmt.Sprintf("field index %q is not an integer", s), err)
	}
	return i, nil
}
