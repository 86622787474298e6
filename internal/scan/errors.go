package scan

import (
	"errors"
	"fmt"
)

// ScriptErrorStatus is the process exit status for a log whose layout does not
// match what the scanner expects.
const ScriptErrorStatus = 2

// ScriptError reports that the log did not have the expected shape.
type ScriptError struct {
	Code int
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("Internal script error #%d", e.Code)
}

var (
	// ErrSummaryNotFound means no summary line followed the banner.
	ErrSummaryNotFound = &ScriptError{Code: 1}
	// ErrMarkerNotFound means the power-off marker never appeared.
	ErrMarkerNotFound = &ScriptError{Code: 2}
)

// ExitStatus maps a run error onto a process exit status.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var scriptErr *ScriptError
	if errors.As(err, &scriptErr) {
		return ScriptErrorStatus
	}
	return 1
}
