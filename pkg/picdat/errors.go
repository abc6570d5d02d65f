package picdat

import "github.com/TrellixVulnTeam/picdat-KKDF/pkg/picdat/models"

// ErrMalformedInput indicates an invalid or ambiguous metric group.
var ErrMalformedInput = models.ErrMalformedInput

// ErrConfiguration indicates an invalid build option.
var ErrConfiguration = models.ErrConfiguration

// MalformedInputError represents a metric group that cannot be assembled.
type MalformedInputError = models.MalformedInputError

// IOError represents a failure reading or writing a report file.
type IOError = models.IOError

// ConfigurationError represents an unrecognized option value.
type ConfigurationError = models.ConfigurationError
