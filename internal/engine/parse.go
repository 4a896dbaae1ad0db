package engine

import (
	"regexp"
	"strings"
)

// markerPattern matches a section marker line. The captured group is the
// target path; surrounding whitespace inside the marker is trimmed.
var markerPattern = regexp.MustCompile(`(?m)^===== FILE:\s*(.*?)\s*=====$`)

// ParseSections scans content for "===== FILE: <path> =====" marker lines
// and returns one Section per marker, in order of appearance. A section's
// content runs from just after its marker line to the start of the next
// marker (or end of input); a single leading newline is dropped, trailing
// bytes are preserved. Returns nil when no markers are found.
func ParseSections(content string) []Section {
	matches := markerPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		path := strings.TrimSpace(content[m[2]:m[3]])

		start := m[1]
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		body := content[start:end]
		if strings.HasPrefix(body, "\n") {
			body = body[1:]
		}

		sections = append(sections, Section{Path: path, Content: body})
	}

	return sections
}
