package scan

import (
	"strings"
)

// BannerRun is the run of exclamation marks VirtualBox writes around a guru
// meditation.
var BannerRun = strings.Repeat("!", 40)

const (
	// PowerOffMarker introduces the register dump.
	PowerOffMarker = "Guest state at power off"

	// summaryWindow is how many lines past the banner may hold the summary.
	summaryWindow = 10
)

// Report is the outcome of scanning one log.
type Report struct {
	Clean   bool // no banner was found
	Banner  int
	Summary string
	Marker  int
	Fields  []Field
}

// Scan runs the log through banner search, summary extraction, marker
// location and field extraction, in that order. A log without a banner yields
// a clean report and no error.
func Scan(lines []string) (Report, error) {
	banner, ok := FindBanner(lines)
	if !ok {
		return Report{Clean: true}, nil
	}
	report := Report{Banner: banner}

	summary, cursor, err := Summary(lines, banner)
	if err != nil {
		return report, err
	}
	report.Summary = summary

	marker, err := FindMarker(lines, cursor)
	if err != nil {
		return report, err
	}
	report.Marker = marker
	report.Fields = Fields(lines, marker)
	return report, nil
}

// FindBanner returns the index of the first line containing BannerRun.
func FindBanner(lines []string) (int, bool) {
	for i, line := range lines {
		if strings.Contains(line, BannerRun) {
			return i, true
		}
	}
	return 0, false
}

// Summary returns the first non-empty summary at or after start together with
// the index of the line it came from. The banner line and the ten lines after
// it are considered.
func Summary(lines []string, start int) (string, int, error) {
	for idx := start; idx <= start+summaryWindow; idx++ {
		if idx >= len(lines) {
			break
		}
		if text := summarize(lines[idx]); text != "" {
			return text, idx, nil
		}
	}
	return "", start, ErrSummaryNotFound
}

// FindMarker returns the index of the first line at or after start that
// contains PowerOffMarker.
func FindMarker(lines []string, start int) (int, error) {
	for idx := start; idx < len(lines); idx++ {
		if strings.Contains(lines[idx], PowerOffMarker) {
			return idx, nil
		}
	}
	return 0, ErrMarkerNotFound
}

// summarize drops the timestamp and any banner fragments from a line.
func summarize(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return ""
	}
	kept := make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		if strings.Contains(tok, "!!") {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}
