package filesystem

import "strings"

// Lines splits file content into lines of any length. Both "\n" and "\r\n"
// terminate a line, a final terminator does not start an empty line, and
// empty content has no lines.
func Lines(data string) []string {
	if data == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(data, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
