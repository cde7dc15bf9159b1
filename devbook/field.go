package devbook

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// FieldKind discriminates a field's validation rule and search semantics.
type FieldKind string

const (
	KindName         FieldKind = "Name"
	KindSurname      FieldKind = "Surname"
	KindOrganization FieldKind = "Organization"
	KindCity         FieldKind = "City"
	KindSkill        FieldKind = "Skill"
	KindPhone        FieldKind = "Phone"
	KindEmail        FieldKind = "Email"
	KindRate         FieldKind = "Rate"
)

// PhoneParts is the decomposed form of a validated phone number.
type PhoneParts struct {
	CountryCode  string
	OperatorCode string
	Subscriber   string
}

// Field is a validated, typed value. The zero Field is invalid; every
// Field is produced by a kind's validate function and holds the
// normalized value that validation yielded.
type Field struct {
	kind  FieldKind
	raw   string
	text  string
	rate  float64
	phone PhoneParts
}

func (f Field) Kind() FieldKind { return f.kind }

// Raw returns the input the field was constructed from.
func (f Field) Raw() string { return f.raw }

// Text returns the normalized value in its string form. For Phone this
// is the composed +{country}{operator}{number} string; for Rate the
// shortest decimal rendering of the parsed number.
func (f Field) Text() string {
	if f.kind == KindRate {
		return strconv.FormatFloat(f.rate, 'f', -1, 64)
	}
	return f.text
}

// Rate returns the parsed rate value. ok is false for non-Rate fields.
func (f Field) Rate() (float64, bool) {
	if f.kind != KindRate {
		return 0, false
	}
	return f.rate, true
}

// Phone returns the decomposed phone number. ok is false for non-Phone
// fields.
func (f Field) Phone() (PhoneParts, bool) {
	if f.kind != KindPhone {
		return PhoneParts{}, false
	}
	return f.phone, true
}

// Contains reports whether probe matches this field. Text kinds use
// case-sensitive substring containment against the normalized value.
// Rate compares the probe numerically after parsing it; a probe that is
// not a number yields false, never an error.
func (f Field) Contains(probe string) bool {
	if f.kind == KindRate {
		v, err := strconv.ParseFloat(probe, 64)
		if err != nil {
			return false
		}
		return v == f.rate
	}
	return strings.Contains(f.text, probe)
}

func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.kind, f.Text())
}

// fieldJSON is the wire shape of a single field.
type fieldJSON struct {
	FieldName FieldKind `json:"field_name"`
	Value     any       `json:"value"`
}

// MarshalJSON serializes the field as {"field_name": kind, "value": v}.
// Phone serializes as the composed string, Rate as a JSON number; the
// value always reconstructs an identical field through Decode.
func (f Field) MarshalJSON() ([]byte, error) {
	out := fieldJSON{FieldName: f.kind}
	if f.kind == KindRate {
		out.Value = f.rate
	} else {
		out.Value = f.text
	}
	return json.Marshal(out)
}

var (
	// Optional 2-digit country code, mandatory 3-digit operator code
	// starting with 0 in optional parentheses, mandatory 7-digit
	// subscriber number. Applied after stripping all whitespace.
	phonePattern = regexp.MustCompile(`^\+?(\d{2})?\(?(0\d{2})\)?(\d{7})$`)

	// Permissive local@domain.tld shape. Start-anchored only, matching
	// the reference behavior.
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)
)

const defaultCountryCode = "38"

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// verbatimValidate builds the validate function for the generic text
// kinds: no transformation, any input (including empty) is accepted.
func verbatimValidate(kind FieldKind) ValidateFunc {
	return func(raw string) (Field, error) {
		return Field{kind: kind, raw: raw, text: raw}, nil
	}
}

func validatePhone(raw string) (Field, error) {
	stripped := stripSpace(raw)
	m := phonePattern.FindStringSubmatch(stripped)
	if m == nil {
		return Field{}, &Error{Kind: ErrInvalidInput, Field: string(KindPhone),
			Message: fmt.Sprintf("no phone number found in %q", raw)}
	}
	if m[2] == "" {
		return Field{}, &Error{Kind: ErrInvalidInput, Field: string(KindPhone),
			Message: fmt.Sprintf("operator code not found in %q", raw)}
	}
	country := m[1]
	if country == "" {
		country = defaultCountryCode
	}
	parts := PhoneParts{CountryCode: country, OperatorCode: m[2], Subscriber: m[3]}
	return Field{
		kind:  KindPhone,
		raw:   raw,
		text:  "+" + parts.CountryCode + parts.OperatorCode + parts.Subscriber,
		phone: parts,
	}, nil
}

func validateEmail(raw string) (Field, error) {
	if !emailPattern.MatchString(raw) {
		return Field{}, &Error{Kind: ErrInvalidInput, Field: string(KindEmail),
			Message: fmt.Sprintf("%q is not an email", raw)}
	}
	return Field{kind: KindEmail, raw: raw, text: raw}, nil
}

func validateRate(raw string) (Field, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Field{}, &Error{Kind: ErrInvalidInput, Field: string(KindRate),
			Message: fmt.Sprintf("value %q cannot be converted to a number", raw), Cause: err}
	}
	return Field{kind: KindRate, raw: raw, rate: v}, nil
}
