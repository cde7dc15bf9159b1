package devbook

import (
	"encoding/json"
	"testing"
)

func TestPhoneFullInternational(t *testing.T) {
	f, err := NewField(KindPhone, "+380501234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts, ok := f.Phone()
	if !ok {
		t.Fatal("expected phone parts")
	}
	if parts.CountryCode != "38" || parts.OperatorCode != "050" || parts.Subscriber != "1234567" {
		t.Errorf("unexpected parts: %+v", parts)
	}
	if f.Text() != "+380501234567" {
		t.Errorf("expected +380501234567, got %s", f.Text())
	}
}

func TestPhoneDefaultCountryCode(t *testing.T) {
	f, err := NewField(KindPhone, "0501234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Text() != "+380501234567" {
		t.Errorf("expected default country 38, got %s", f.Text())
	}
}

func TestPhoneParenthesesAndSpaces(t *testing.T) {
	f, err := NewField(KindPhone, "38 (050) 123 45 67")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Text() != "+380501234567" {
		t.Errorf("expected normalized composed string, got %s", f.Text())
	}
}

func TestPhoneNormalizationIdempotent(t *testing.T) {
	first, err := NewField(KindPhone, "050 123 45 67")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewField(KindPhone, first.Text())
	if err != nil {
		t.Fatalf("re-validating normalized value failed: %v", err)
	}
	if second.Text() != first.Text() {
		t.Errorf("normalization not idempotent: %s vs %s", first.Text(), second.Text())
	}
}

func TestPhoneInvalid(t *testing.T) {
	for _, raw := range []string{"123", "", "+381501234567", "050123456", "phone"} {
		_, err := NewField(KindPhone, raw)
		if !IsKind(err, ErrInvalidInput) {
			t.Errorf("phone %q: expected invalid_input, got %v", raw, err)
		}
	}
}

func TestEmailValidation(t *testing.T) {
	if _, err := NewField(KindEmail, "dev@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, raw := range []string{"no-at-sign", "a@b", "@example.com", ""} {
		_, err := NewField(KindEmail, raw)
		if !IsKind(err, ErrInvalidInput) {
			t.Errorf("email %q: expected invalid_input, got %v", raw, err)
		}
	}
}

func TestRateValidation(t *testing.T) {
	f, err := NewField(KindRate, "50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rate, ok := f.Rate()
	if !ok || rate != 50 {
		t.Errorf("expected rate 50, got %v (ok=%v)", rate, ok)
	}

	_, err = NewField(KindRate, "fifty")
	if !IsKind(err, ErrInvalidInput) {
		t.Errorf("expected invalid_input, got %v", err)
	}
}

func TestRateContainsIsNumericEquality(t *testing.T) {
	f, err := NewField(KindRate, "50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.Contains("50.0") {
		t.Error("50.0 should match rate 50 numerically")
	}
	if f.Contains("5") {
		t.Error("substring probe must not match a rate")
	}
	if f.Contains("not-a-number") {
		t.Error("non-numeric probe must be false, not an error")
	}
}

func TestGenericFieldVerbatim(t *testing.T) {
	f, err := NewField(KindName, "")
	if err != nil {
		t.Fatalf("empty generic value must be accepted: %v", err)
	}
	if f.Text() != "" {
		t.Errorf("expected verbatim empty value, got %q", f.Text())
	}

	f, _ = NewField(KindSkill, "Go")
	if !f.Contains("G") || f.Contains("g") {
		t.Error("substring containment must be case-sensitive")
	}
}

func TestFieldJSONShape(t *testing.T) {
	f, _ := NewField(KindPhone, "0501234567")
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"field_name":"Phone","value":"+380501234567"}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}

	f, _ = NewField(KindRate, "70")
	b, _ = json.Marshal(f)
	if string(b) != `{"field_name":"Rate","value":70}` {
		t.Errorf("rate must serialize as a number, got %s", b)
	}
}
