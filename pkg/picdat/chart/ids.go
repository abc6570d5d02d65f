package chart

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// IDSuffix is appended to the encoded title to form a chart id.
	IDSuffix = "_graph"
	// LegendSuffix is appended to a chart id to form its legend container id.
	LegendSuffix = "_legend"
	// TableSuffix is appended to the encoded title to form the backing table name.
	TableSuffix = "_chart_values.csv"
)

// ChartID derives the chart identifier from its title.
// Distinct titles always yield distinct ids.
func ChartID(title string) string {
	return encodeTitle(title) + IDSuffix
}

// LegendID returns the id of the element holding the legend of chart id.
func LegendID(id string) string {
	return id + LegendSuffix
}

// TableName returns the backing table file name for a chart title.
func TableName(title string) string {
	return encodeTitle(title) + TableSuffix
}

// encodeTitle maps a title to [A-Za-z0-9_]+ without collisions.
// ASCII letters and digits are kept; any other rune, and a leading digit,
// is written as _<hex code point>_. Bytes that are not valid UTF-8 are
// written one by one as _x<hex byte>_. The output never starts with a digit.
func encodeTitle(title string) string {
	var sb strings.Builder
	for i := 0; i < len(title); {
		r, size := utf8.DecodeRuneInString(title[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteString("_x")
			sb.WriteString(strconv.FormatUint(uint64(title[i]), 16))
			sb.WriteByte('_')
		case isLetter(r) || (isDigit(r) && i > 0):
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
			sb.WriteString(strconv.FormatInt(int64(r), 16))
			sb.WriteByte('_')
		}
		i += size
	}
	return sb.String()
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
