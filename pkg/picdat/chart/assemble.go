package chart

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// Assembler builds chart descriptors from metric groups, one at a time, in
// the order they are supplied. It remembers issued ids to reject duplicate
// titles; use a fresh Assembler per report.
type Assembler struct {
	mode models.SortMode
	seen map[string]string // id -> title
}

// NewAssembler creates an Assembler ranking legends with mode.
func NewAssembler(mode models.SortMode) (*Assembler, error) {
	if !mode.Valid() {
		return nil, models.NewConfigurationError("sort", string(mode))
	}
	return &Assembler{
		mode: mode,
		seen: make(map[string]string),
	}, nil
}

// Assemble validates g and derives its ChartDescriptor.
func (a *Assembler) Assemble(ctx context.Context, g models.MetricGroup) (models.ChartDescriptor, error) {
	if err := validateGroup(g); err != nil {
		return models.ChartDescriptor{}, err
	}

	id := ChartID(g.Title)
	if prev, ok := a.seen[id]; ok {
		return models.ChartDescriptor{}, models.NewMalformedInputError(g.Title,
			fmt.Sprintf("chart id %q already used by %q", id, prev))
	}

	yLabel, scale := NormalizeUnit(g.Unit)
	ordered, err := RankLegend(g.Series, a.mode)
	if err != nil {
		return models.ChartDescriptor{}, err
	}
	a.seen[id] = g.Title

	clog.FromContext(ctx).Debugf("assembled chart %s: unit %q -> %q (scale %g), legend %v",
		id, g.Unit, yLabel, scale, ordered)

	return models.ChartDescriptor{
		ID:            id,
		Title:         g.Title,
		XLabel:        g.XAxisLabel(),
		YLabel:        yLabel,
		IsBarChart:    g.Kind == models.KindBar,
		OrderedSeries: ordered,
		TableRef:      TableName(g.Title),
		Scale:         scale,
	}, nil
}

// AssembleAll assembles every group, failing on the first malformed one.
func AssembleAll(ctx context.Context, groups []models.MetricGroup, mode models.SortMode) ([]models.ChartDescriptor, error) {
	a, err := NewAssembler(mode)
	if err != nil {
		return nil, err
	}

	descriptors := make([]models.ChartDescriptor, 0, len(groups))
	for _, g := range groups {
		d, err := a.Assemble(ctx, g)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

// validateGroup checks that a group can back a table.
func validateGroup(g models.MetricGroup) error {
	if g.Title == "" {
		return models.NewMalformedInputError(g.Title, "empty title")
	}
	if g.Kind != "" && !g.Kind.Valid() {
		return models.NewMalformedInputError(g.Title, fmt.Sprintf("unknown chart kind %q", g.Kind))
	}

	names := make(map[string]bool, len(g.Series))
	for _, s := range g.Series {
		if s.Name == "" {
			return models.NewMalformedInputError(g.Title, "series without name")
		}
		if names[s.Name] {
			return models.NewMalformedInputError(g.Title, fmt.Sprintf("duplicate series %q", s.Name))
		}
		names[s.Name] = true

		if len(s.Values) != len(g.Timestamps) {
			return models.NewMalformedInputError(g.Title,
				fmt.Sprintf("series %q has %d values for %d timestamps", s.Name, len(s.Values), len(g.Timestamps)))
		}
	}
	return nil
}
