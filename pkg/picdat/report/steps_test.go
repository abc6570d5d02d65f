package report

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

func descriptor(title string) models.ChartDescriptor {
	return models.ChartDescriptor{
		ID:            title + "_graph",
		Title:         title,
		XLabel:        "time",
		YLabel:        "%",
		OrderedSeries: []string{"a", "b"},
		TableRef:      title + "_chart_values.csv",
		Scale:         1,
	}
}

func TestPlan(t *testing.T) {
	descriptors := []models.ChartDescriptor{descriptor("zeta"), descriptor("alpha"), descriptor("mu")}
	steps, err := Plan([]byte("<head>"), descriptors, "perfstat.out", "CET")
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	var kinds []StepKind
	var ids []string
	for _, s := range steps {
		kinds = append(kinds, s.Kind)
		if s.Kind == StepChart {
			ids = append(ids, s.Chart.ID)
		}
	}

	wantKinds := []StepKind{StepHead, StepCaption, StepChart, StepChart, StepChart, StepTrailer}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("Step kinds mismatch (-want +got):\n%s", diff)
	}
	wantIDs := []string{"zeta_graph", "alpha_graph", "mu_graph"}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Errorf("Chart order mismatch (-want +got):\n%s", diff)
	}
	if steps[1].Title != "perfstat.out" || steps[1].Timezone != "CET" {
		t.Errorf("Unexpected caption step: %+v", steps[1])
	}
}

func TestPlanNoCharts(t *testing.T) {
	steps, err := Plan(nil, nil, "t", "UTC")
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(steps) != 3 {
		t.Errorf("Expected 3 steps, got %d", len(steps))
	}
}

func TestPlanDuplicateID(t *testing.T) {
	_, err := Plan(nil, []models.ChartDescriptor{descriptor("Latency"), descriptor("Latency")}, "t", "UTC")
	if !errors.Is(err, models.ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
}

func TestStepKindString(t *testing.T) {
	tests := []struct {
		kind     StepKind
		expected string
	}{
		{StepHead, "head"},
		{StepCaption, "caption"},
		{StepChart, "chart"},
		{StepTrailer, "trailer"},
		{StepKind(9), "StepKind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("StepKind(%d).String() = %q, expected %q", int(tt.kind), got, tt.expected)
		}
	}
}
