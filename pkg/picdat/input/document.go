// Package input loads already-extracted performance data into metric groups.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// Dataset is the result of loading one input file.
type Dataset struct {
	// Title is the report caption suggested by the input, if any.
	Title string
	// Timezone is the timezone annotation suggested by the input, if any.
	Timezone string
	// Groups holds the metric groups in discovery order.
	Groups []models.MetricGroup
}

// document is the YAML/JSON input layout.
type document struct {
	Title    string          `yaml:"title"`
	Timezone string          `yaml:"timezone"`
	Groups   []documentGroup `yaml:"groups"`
}

type documentGroup struct {
	Title      string           `yaml:"title"`
	Unit       string           `yaml:"unit"`
	Kind       string           `yaml:"kind"`
	XLabel     string           `yaml:"x_label"`
	Timestamps []string         `yaml:"timestamps"`
	Series     []documentSeries `yaml:"series"`
}

type documentSeries struct {
	Name string `yaml:"name"`
	// Values uses pointers so null marks a missing sample.
	Values []*float64 `yaml:"values"`
}

// LoadDocument reads a YAML or JSON document from path.
func LoadDocument(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewIOError("read", path, err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes a YAML or JSON document.
func ParseDocument(data []byte) (*Dataset, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	ds := &Dataset{
		Title:    doc.Title,
		Timezone: doc.Timezone,
		Groups:   make([]models.MetricGroup, 0, len(doc.Groups)),
	}
	for _, dg := range doc.Groups {
		kind, err := ParseKind(dg.Kind)
		if err != nil {
			return nil, models.NewMalformedInputError(dg.Title, err.Error())
		}

		g := models.MetricGroup{
			Title:      dg.Title,
			Unit:       dg.Unit,
			Kind:       kind,
			XLabel:     dg.XLabel,
			Timestamps: dg.Timestamps,
			Series:     make([]models.Series, 0, len(dg.Series)),
		}
		for _, s := range dg.Series {
			values := make([]float64, len(s.Values))
			for i, v := range s.Values {
				if v == nil {
					values[i] = math.NaN()
					continue
				}
				values[i] = *v
			}
			g.Series = append(g.Series, models.Series{Name: s.Name, Values: values})
		}
		ds.Groups = append(ds.Groups, g)
	}
	return ds, nil
}

// ParseKind converts a chart kind hint. Empty means line.
func ParseKind(s string) (models.ChartKind, error) {
	switch k := models.ChartKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return models.KindLine, nil
	case models.KindLine, models.KindBar:
		return k, nil
	default:
		return "", fmt.Errorf("unknown chart kind %q", s)
	}
}
