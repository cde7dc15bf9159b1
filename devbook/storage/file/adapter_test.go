package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmptyDump(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "ab.json"))
	dump, err := a.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(dump) != "{}" {
		t.Errorf("expected empty dump, got %s", dump)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.json")
	a := New(path)
	ctx := context.Background()

	want := `{"0":[{"field_name":"Name","value":"Ada"}]}`
	if err := a.Save(ctx, []byte(want)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := a.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.json")
	a := New(path)
	ctx := context.Background()

	if err := a.Save(ctx, []byte(`{"0":[]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := a.Save(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := a.Load(ctx)
	if string(got) != "{}" {
		t.Errorf("expected replaced snapshot, got %s", got)
	}

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot file, got %d entries", len(entries))
	}
}
