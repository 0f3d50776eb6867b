package vault

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedFrontMatter indicates an unterminated or unparsable front
// matter block.
var ErrMalformedFrontMatter = errors.New("malformed front matter")

const maxFrontMatterLine = 1 << 20

// ReadFrontMatter reads the leading "---" YAML block of a document and
// stops there; the body is never read. A document that does not start with
// "---" has no front matter and yields an empty map.
func ReadFrontMatter(r io.Reader) (map[string]any, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxFrontMatterLine)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read front matter: %w", err)
		}
		return map[string]any{}, nil
	}
	first := strings.TrimPrefix(strings.TrimRight(scanner.Text(), " \t\r"), "\ufeff")
	if first != "---" {
		return map[string]any{}, nil
	}

	var b strings.Builder
	closed := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if trimmed := strings.TrimRight(line, " \t"); trimmed == "---" || trimmed == "..." {
			closed = true
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read front matter: %w", err)
	}
	if !closed {
		return nil, ErrMalformedFrontMatter
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(b.String()), &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrontMatter, err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, nil
}
