package preset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a flat document of context switches, e.g.:
//
//	verbose: true
//	trace: false
//
// Nested documents and non-boolean values are errors.
func Parse(p []byte, format string) (map[string]bool, error) {
	var raw map[string]any

	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(p, &raw); err != nil {
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(p, &raw); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}

	m := make(map[string]bool, len(raw))

	for k, v := range raw {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("switch %q: got %T, want bool", k, v)
		}

		m[k] = b
	}

	return m, nil
}

// File reads and parses the switch file at path. The path "-" reads
// standard input.
func File(path, format string) (map[string]bool, error) {
	p, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	return Parse(p, format)
}

func read(path string) ([]byte, error) {
	switch path {
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(path)
	}
}
