package input

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

const sampleYAML = `
title: perfstat.out
timezone: CET
groups:
  - title: CPU
    unit: "%"
    kind: line
    timestamps: ["10:00", "10:01"]
    series:
      - name: cpu0
        values: [4, 6]
      - name: cpu1
        values: [40, null]
  - title: Throughput
    unit: b/s
    kind: bar
    x_label: sample
    timestamps: ["1", "2"]
    series:
      - name: net
        values: [2000000, 4000000]
`

func TestParseDocument(t *testing.T) {
	ds, err := ParseDocument([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if ds.Title != "perfstat.out" || ds.Timezone != "CET" {
		t.Errorf("Unexpected title/timezone: %q %q", ds.Title, ds.Timezone)
	}
	if len(ds.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(ds.Groups))
	}

	cpu := ds.Groups[0]
	if cpu.Title != "CPU" || cpu.Unit != "%" || cpu.Kind != models.KindLine {
		t.Errorf("Unexpected CPU group: %+v", cpu)
	}
	if len(cpu.Series) != 2 || cpu.Series[1].Values[0] != 40 {
		t.Errorf("Unexpected CPU series: %+v", cpu.Series)
	}
	if !math.IsNaN(cpu.Series[1].Values[1]) {
		t.Errorf("Expected null to load as NaN, got %v", cpu.Series[1].Values[1])
	}

	net := ds.Groups[1]
	if net.Kind != models.KindBar || net.XLabel != "sample" || net.Unit != "b/s" {
		t.Errorf("Unexpected Throughput group: %+v", net)
	}
}

func TestParseDocumentJSON(t *testing.T) {
	data := []byte(`{"title": "t", "groups": [{"title": "Latency", "unit": "us", "timestamps": ["a"], "series": [{"name": "vol0", "values": [1.5]}]}]}`)
	ds, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(ds.Groups) != 1 || ds.Groups[0].Kind != models.KindLine {
		t.Fatalf("Unexpected groups: %+v", ds.Groups)
	}
	if ds.Groups[0].Series[0].Values[0] != 1.5 {
		t.Errorf("Expected 1.5, got %v", ds.Groups[0].Series[0].Values[0])
	}
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		malformed bool
	}{
		{"unknown kind", "groups: [{title: x, kind: pie}]", true},
		{"unknown field", "groups: [{title: x, colour: red}]", false},
		{"not a document", "- a\n- b\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if got := errors.Is(err, models.ErrMalformedInput); got != tt.malformed {
				t.Errorf("errors.Is(err, ErrMalformedInput) = %v, expected %v (err: %v)", got, tt.malformed, err)
			}
		})
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	ds, err := ParseDocument(nil)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	if len(ds.Groups) != 0 {
		t.Errorf("Expected no groups, got %d", len(ds.Groups))
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected models.ChartKind
		wantErr  bool
	}{
		{"", models.KindLine, false},
		{"line", models.KindLine, false},
		{"Bar", models.KindBar, false},
		{" bar ", models.KindBar, false},
		{"pie", "", true},
	}
	for _, tt := range tests {
		result, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseKind(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "dump.yaml")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	ds, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.Groups) != 2 {
		t.Errorf("Expected 2 groups, got %d", len(ds.Groups))
	}

	txtPath := filepath.Join(dir, "dump.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(txtPath); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	var ioErr *models.IOError
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.As(err, &ioErr) {
		t.Errorf("Expected IOError, got %v", err)
	}
}
