package snowflake

import (
	"fmt"
	"regexp"
	"strings"
)

// Order matters, the host-qualified form must win over a bare status/ segment
var statusPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:twitter\.com|x\.com)/\w+/status/(\d+)`),
	regexp.MustCompile(`(?i)status/(\d+)`),
}

// Extract pulls a tweet id out of a raw id or a status URL.
func Extract(input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	if IsNumericInput(trimmed) {
		return trimmed, nil
	}

	for _, pattern := range statusPatterns {
		match := pattern.FindStringSubmatch(trimmed)
		if len(match) > 1 && match[1] != "" {
			return match[1], nil
		}
	}

	return "", fmt.Errorf("%w: no tweet id found", ErrInvalidInput)
}
