package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wandb/simplejsonext"
)

const maxLineSize = 1 << 20

// readJSONL reads one JSON object per line. Blank lines are ignored.
func readJSONL(r io.Reader) ([]row, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var rows []row
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		obj, err := simplejsonext.UnmarshalObjectString(text)
		if err != nil {
			return nil, fmt.Errorf("jsonl line %d: %w", line, err)
		}
		rows = append(rows, row(obj))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("jsonl: %w", err)
	}
	return rows, nil
}
