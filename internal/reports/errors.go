package reports

import "errors"

// ErrReportUnavailable reports that a report document could not be read
// back after generation.
var ErrReportUnavailable = errors.New("problem reading the report files")

const (
	// Error messages for report operations
	ErrWriteReport = "failed to write report"
)
