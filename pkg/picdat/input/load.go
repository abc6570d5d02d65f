package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"
)

// ErrUnsupportedFormat indicates an input file extension no loader handles.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Load reads the input at path, choosing the loader by file extension.
func Load(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, models.NewIOError("stat", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return LoadDocument(path)
	case ".xlsx", ".xlsm":
		return LoadWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
