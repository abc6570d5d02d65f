package models

import (
	"errors"
	"math"
	"os"
	"testing"
)

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input    string
		expected SortMode
		wantErr  bool
	}{
		{"by_relevance", SortByRelevance, false},
		{"by_name", SortByName, false},
		{"relevance", SortByRelevance, false},
		{"NAME", SortByName, false},
		{"", SortByRelevance, false},
		{"alphabetical", "", true},
	}

	for _, tt := range tests {
		result, err := ParseSortMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseSortMode(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestParseSortModeConfigurationError(t *testing.T) {
	_, err := ParseSortMode("random")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %T", err)
	}
	if cfgErr.Option != "sort" || cfgErr.Value != "random" {
		t.Errorf("Unexpected error fields: %+v", cfgErr)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("Expected errors.Is(err, ErrConfiguration)")
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	err := NewIOError("read", "/nope/table.csv", os.ErrNotExist)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected IOError to unwrap to os.ErrNotExist")
	}
	if got := err.Error(); got != "read /nope/table.csv: file does not exist" {
		t.Errorf("Unexpected message: %q", got)
	}
}

func TestMalformedInputErrorMessage(t *testing.T) {
	err := NewMalformedInputError("Latency", "duplicate chart id")
	if got := err.Error(); got != `malformed metric group "Latency": duplicate chart id` {
		t.Errorf("Unexpected message: %q", got)
	}
}

func TestSeriesSum(t *testing.T) {
	s := Series{Name: "a", Values: []float64{1, math.NaN(), 2.5}}
	if got := s.Sum(); got != 3.5 {
		t.Errorf("Sum() = %g, expected 3.5", got)
	}
}

func TestXAxisLabel(t *testing.T) {
	if got := (MetricGroup{}).XAxisLabel(); got != DefaultXLabel {
		t.Errorf("XAxisLabel() = %q, expected %q", got, DefaultXLabel)
	}
	if got := (MetricGroup{XLabel: "sample"}).XAxisLabel(); got != "sample" {
		t.Errorf("XAxisLabel() = %q, expected %q", got, "sample")
	}
}

func TestChartKindValid(t *testing.T) {
	tests := []struct {
		kind     ChartKind
		expected bool
	}{
		{KindLine, true},
		{KindBar, true},
		{"", false},
		{"pie", false},
	}
	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.expected {
			t.Errorf("ChartKind(%q).Valid() = %v, expected %v", tt.kind, got, tt.expected)
		}
	}
}
