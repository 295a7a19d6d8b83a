package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	commentChar = "#"
	scissors    = "# ------------------------ >8 ------------------------"
)

// ReadMessage reads a commit message the way git stores it after the default cleanup:
// comment lines are dropped, everything below the scissors line is ignored
// and trailing blank lines are removed.
func ReadMessage(r io.Reader) (string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == scissors {
			break
		}
		if strings.HasPrefix(line, commentChar) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}
