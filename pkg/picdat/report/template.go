package report

import (
	_ "embed"
	"os"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// Client assets referenced by the head template. They are expected next to
// the report document and are never inlined or rewritten.
const (
	DygraphsJS  = "dygraph.js"
	DygraphsCSS = "dygraph.css"
)

//go:embed templates/html_template.txt
var defaultHead []byte

// DefaultHead returns a copy of the built-in head template.
func DefaultHead() []byte {
	head := make([]byte, len(defaultHead))
	copy(head, defaultHead)
	return head
}

// LoadHead reads the head template at path, or returns the built-in one
// when path is empty.
func LoadHead(path string) ([]byte, error) {
	if path == "" {
		return DefaultHead(), nil
	}
	head, err := os.ReadFile(path)
	if err != nil {
		return nil, models.NewIOError("read", path, err)
	}
	return head, nil
}
