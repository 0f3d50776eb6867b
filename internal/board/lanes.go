package board

import "strings"

// LanePrefix starts a lane heading line.
const LanePrefix = "## "

// LaneLabel returns the lane name of a heading line.
// ok is false when line is not a lane heading.
func LaneLabel(line string) (name string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, LanePrefix) {
		return "", false
	}
	name = strings.TrimSpace(trimmed[len(LanePrefix):])
	if name == "" {
		return "", false
	}
	return name, true
}

// ParseLanes returns the lane names of a document in document order.
// Duplicate names are kept.
func ParseLanes(text string) []string {
	var lanes []string
	for _, line := range strings.Split(text, "\n") {
		if name, ok := LaneLabel(line); ok {
			lanes = append(lanes, name)
		}
	}
	return lanes
}
