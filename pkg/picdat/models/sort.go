package models

import "strings"

// SortMode selects the legend ordering policy.
type SortMode string

const (
	// SortByRelevance orders series by descending aggregate magnitude.
	SortByRelevance SortMode = "by_relevance"
	// SortByName orders series lexically by name.
	SortByName SortMode = "by_name"
)

// ParseSortMode converts an option value to a SortMode.
// The short forms "relevance" and "name" are accepted as well.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SortByRelevance), "relevance":
		return SortByRelevance, nil
	case string(SortByName), "name":
		return SortByName, nil
	default:
		return "", NewConfigurationError("sort", s)
	}
}

// Valid reports whether m is one of the known sort modes.
func (m SortMode) Valid() bool {
	return m == SortByRelevance || m == SortByName
}
