package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadWordFile reads words from a file, one per line. Blank lines and
// lines starting with '#' are skipped, surrounding whitespace is
// trimmed.
func ReadWordFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	return words, nil
}
