package devbook

import (
	"encoding/json"
	"testing"
)

func TestSummarizeRates(t *testing.T) {
	records := []*Record{
		recordWith(t, [2]string{"Name", "Ada"}, [2]string{"Rate", "50"}),
		recordWith(t, [2]string{"Name", "Bob"}, [2]string{"Rate", "70"}),
	}

	stats := SummarizeRates(records)
	if stats.Count != 2 {
		t.Fatalf("expected count 2, got %d", stats.Count)
	}
	if stats.Mean == nil || *stats.Mean != 60 {
		t.Errorf("expected mean 60, got %v", stats.Mean)
	}
	if stats.Min == nil || *stats.Min != 50 {
		t.Errorf("expected min 50, got %v", stats.Min)
	}
	if stats.Max == nil || *stats.Max != 70 {
		t.Errorf("expected max 70, got %v", stats.Max)
	}
	if stats.Total != 120 {
		t.Errorf("expected total 120, got %v", stats.Total)
	}
}

func TestSummarizeRatesSkipsRecordsWithoutRate(t *testing.T) {
	records := []*Record{
		recordWith(t, [2]string{"Name", "Ada"}, [2]string{"Rate", "50"}),
		recordWith(t, [2]string{"Name", "NoRate"}),
	}
	stats := SummarizeRates(records)
	if stats.Count != 1 {
		t.Errorf("records without a rate are skipped, got count %d", stats.Count)
	}
}

func TestSummarizeRatesZeroRateIsPresent(t *testing.T) {
	// A rate of exactly 0 counts; the reference implementation's
	// truthiness check dropped it, which is treated as a bug here.
	records := []*Record{
		recordWith(t, [2]string{"Name", "Intern"}, [2]string{"Rate", "0"}),
		recordWith(t, [2]string{"Name", "Ada"}, [2]string{"Rate", "50"}),
	}
	stats := SummarizeRates(records)
	if stats.Count != 2 {
		t.Fatalf("zero rate must count, got %d", stats.Count)
	}
	if stats.Min == nil || *stats.Min != 0 {
		t.Errorf("expected min 0, got %v", stats.Min)
	}
	if stats.Mean == nil || *stats.Mean != 25 {
		t.Errorf("expected mean 25, got %v", stats.Mean)
	}
}

func TestSummarizeRatesEmpty(t *testing.T) {
	stats := SummarizeRates(nil)
	if stats.Count != 0 || stats.Total != 0 {
		t.Errorf("expected zero count and total, got %+v", stats)
	}
	if stats.Mean != nil || stats.Min != nil || stats.Max != nil {
		t.Errorf("absent aggregates must be nil, got %+v", stats)
	}

	b, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"mean":null,"min":null,"max":null,"item_number":0,"total":0}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}
