// Package report emits the HTML document wiring chart descriptors to their
// backing tables and legend controls.
package report

import (
	"fmt"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// StepKind identifies one section of the emitted document.
type StepKind int

const (
	// StepHead is the static head template, copied verbatim.
	StepHead StepKind = iota
	// StepCaption is the report title and timezone annotation.
	StepCaption
	// StepChart is one chart instantiation followed by its select controls.
	StepChart
	// StepTrailer closes the document.
	StepTrailer
)

func (k StepKind) String() string {
	switch k {
	case StepHead:
		return "head"
	case StepCaption:
		return "caption"
	case StepChart:
		return "chart"
	case StepTrailer:
		return "trailer"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one typed emission step. Only the fields of its Kind are set.
type Step struct {
	Kind StepKind
	// Head is the template content (StepHead).
	Head []byte
	// Title and Timezone are the caption (StepCaption).
	Title    string
	Timezone string
	// Chart is the descriptor to instantiate (StepChart).
	Chart models.ChartDescriptor
}

// Plan lays out a document: head, caption, one chart step per descriptor in
// the given order, trailer. Duplicate chart ids are rejected.
func Plan(head []byte, descriptors []models.ChartDescriptor, title, timezone string) ([]Step, error) {
	steps := make([]Step, 0, len(descriptors)+3)
	steps = append(steps,
		Step{Kind: StepHead, Head: head},
		Step{Kind: StepCaption, Title: title, Timezone: timezone},
	)

	ids := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		if ids[d.ID] {
			return nil, models.NewMalformedInputError(d.Title, fmt.Sprintf("duplicate chart id %q", d.ID))
		}
		ids[d.ID] = true
		steps = append(steps, Step{Kind: StepChart, Chart: d})
	}

	return append(steps, Step{Kind: StepTrailer}), nil
}
