package storage

import "testing"

func TestDecomposeComposeRoundTrip(t *testing.T) {
	dump := `{"0":[{"field_name":"Name","value":"Ada"}],"1":[{"field_name":"Rate","value":50}]}`
	rows, err := DecomposeDump([]byte(dump))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != 0 || rows[1].ID != 1 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if got := string(ComposeDump(rows)); got != dump {
		t.Errorf("round trip changed the dump:\n%s\n%s", dump, got)
	}
}

func TestDecomposeSortsNumerically(t *testing.T) {
	rows, err := DecomposeDump([]byte(`{"10":[],"2":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].ID != 2 || rows[1].ID != 10 {
		t.Errorf("expected numeric order [2 10], got %+v", rows)
	}
}

func TestDecomposeRejectsBadKeys(t *testing.T) {
	if _, err := DecomposeDump([]byte(`{"abc":[]}`)); err == nil {
		t.Error("expected an error for a non-numeric key")
	}
	if _, err := DecomposeDump([]byte(`not json`)); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestComposeEmpty(t *testing.T) {
	if got := string(ComposeDump(nil)); got != "{}" {
		t.Errorf("expected {}, got %s", got)
	}
}
