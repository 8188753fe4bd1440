// Package diff computes the positional line comparison used by version
// compare views. Lines are paired strictly by index, so an insertion in the
// middle of a file shows up as a replacement of every following line. That
// keeps the comparison trivially predictable for the two flows the workspace
// actually renders: identical snapshots and appended or truncated suffixes.
package diff

import "strings"

type LineType string

const (
	LineAdded     LineType = "added"
	LineRemoved   LineType = "removed"
	LineUnchanged LineType = "unchanged"
	LineEmpty     LineType = "empty"
)

// Line is one rendered row on either side of the comparison.
type Line struct {
	Content    string   `json:"content"`
	Type       LineType `json:"type"`
	LineNumber int      `json:"line_number"`
}

// Result holds both sides of the comparison. OldLines and NewLines always
// have equal length.
type Result struct {
	OldLines     []Line `json:"old_lines"`
	NewLines     []Line `json:"new_lines"`
	AddedCount   int    `json:"added_count"`
	RemovedCount int    `json:"removed_count"`
}

// Compute pairs the lines of two code snapshots by position.
func Compute(oldCode, newCode string) Result {
	oldLines := strings.Split(oldCode, "\n")
	newLines := strings.Split(newCode, "\n")

	maxLen := len(oldLines)
	if len(newLines) > maxLen {
		maxLen = len(newLines)
	}

	result := Result{
		OldLines: make([]Line, 0, maxLen),
		NewLines: make([]Line, 0, maxLen),
	}

	for i := 0; i < maxLen; i++ {
		num := i + 1
		switch {
		case i >= len(oldLines):
			result.OldLines = append(result.OldLines, Line{Type: LineEmpty, LineNumber: num})
			result.NewLines = append(result.NewLines, Line{Content: newLines[i], Type: LineAdded, LineNumber: num})
			result.AddedCount++
		case i >= len(newLines):
			result.OldLines = append(result.OldLines, Line{Content: oldLines[i], Type: LineRemoved, LineNumber: num})
			result.NewLines = append(result.NewLines, Line{Type: LineEmpty, LineNumber: num})
			result.RemovedCount++
		case oldLines[i] != newLines[i]:
			result.OldLines = append(result.OldLines, Line{Content: oldLines[i], Type: LineRemoved, LineNumber: num})
			result.NewLines = append(result.NewLines, Line{Content: newLines[i], Type: LineAdded, LineNumber: num})
			result.AddedCount++
			result.RemovedCount++
		default:
			result.OldLines = append(result.OldLines, Line{Content: oldLines[i], Type: LineUnchanged, LineNumber: num})
			result.NewLines = append(result.NewLines, Line{Content: newLines[i], Type: LineUnchanged, LineNumber: num})
		}
	}

	return result
}
