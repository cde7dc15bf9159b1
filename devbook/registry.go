package devbook

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValidateFunc builds a Field of one kind from raw input, or fails with
// an invalid_input error.
type ValidateFunc func(raw string) (Field, error)

// Registry maps kind names to their validate functions. It is the single
// source of truth for which field kinds exist; it is populated at start
// and read-only afterwards.
type Registry struct {
	validators map[FieldKind]ValidateFunc
	order      []FieldKind
}

func NewRegistry() *Registry {
	return &Registry{validators: make(map[FieldKind]ValidateFunc)}
}

// Register adds a kind. Registering the same kind twice replaces the
// validate function but keeps its position.
func (r *Registry) Register(kind FieldKind, fn ValidateFunc) {
	if _, ok := r.validators[kind]; !ok {
		r.order = append(r.order, kind)
	}
	r.validators[kind] = fn
}

// Kinds returns the registered kind names in registration order.
func (r *Registry) Kinds() []FieldKind {
	out := make([]FieldKind, len(r.order))
	copy(out, r.order)
	return out
}

// New constructs a validated field of the named kind.
func (r *Registry) New(kind FieldKind, raw string) (Field, error) {
	fn, ok := r.validators[kind]
	if !ok {
		return Field{}, MalformedFieldError(fmt.Sprintf("unknown field kind %q", kind))
	}
	return fn(raw)
}

// Decode reconstructs a field from its wire form. Both the field_name
// and value keys are required; an unknown kind name or a missing key is
// a malformed_field error, a value that fails the kind's validation
// rule surfaces that rule's invalid_input error.
func (r *Registry) Decode(data []byte) (Field, error) {
	var msg struct {
		FieldName *FieldKind `json:"field_name"`
		Value     *any       `json:"value"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return Field{}, Wrap(ErrMalformedField, "invalid field JSON", err)
	}
	if msg.FieldName == nil || msg.Value == nil {
		return Field{}, MalformedFieldError("wrong message format: 'field_name' and 'value' required")
	}
	raw, err := valueToRaw(*msg.Value)
	if err != nil {
		return Field{}, err
	}
	return r.New(*msg.FieldName, raw)
}

// valueToRaw renders a decoded JSON value back into the raw string the
// validate functions expect. Rate round-trips through its JSON number.
func valueToRaw(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", MalformedFieldError(fmt.Sprintf("field value must be a string or number, got %T", v))
	}
}

// DefaultRegistry holds every built-in field kind.
var DefaultRegistry = NewRegistry()

func init() {
	for _, kind := range []FieldKind{KindName, KindSurname, KindOrganization, KindCity, KindSkill} {
		DefaultRegistry.Register(kind, verbatimValidate(kind))
	}
	DefaultRegistry.Register(KindPhone, validatePhone)
	DefaultRegistry.Register(KindEmail, validateEmail)
	DefaultRegistry.Register(KindRate, validateRate)
}

// NewField constructs a field through the default registry.
func NewField(kind FieldKind, raw string) (Field, error) {
	return DefaultRegistry.New(kind, raw)
}

// DecodeField decodes a field through the default registry.
func DecodeField(data []byte) (Field, error) {
	return DefaultRegistry.Decode(data)
}
