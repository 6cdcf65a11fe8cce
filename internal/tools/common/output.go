package common

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// CIResult is the machine-readable summary printed by tools run with --ci.
type CIResult struct {
	OK         bool     `json:"ok"`
	Title      string   `json:"title"`
	Details    []string `json:"details,omitempty"`
	Error      string   `json:"error,omitempty"`
	DurationMS int64    `json:"duration_ms"`
}

func PrintCIResult(ok bool, title string, details []string, elapsed time.Duration, err error) {
	WriteCIResult(os.Stdout, ok, title, details, elapsed, err)
}

func WriteCIResult(w io.Writer, ok bool, title string, details []string, elapsed time.Duration, err error) {
	result := CIResult{OK: ok, Title: title, Details: details, DurationMS: elapsed.Milliseconds()}
	if err != nil {
		result.Error = err.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
}

// Outcome maps a command error to the label used by tool metrics.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
