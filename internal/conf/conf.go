// Package conf reads ordered declaration sequences for the netdef engine.
//
// Two formats are supported: flat "key = value" text files (the native
// configuration format) and YAML documents. Declaration order is significant
// to the engine, so both readers preserve it exactly.
package conf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/netforge-ml/netforge/internal/netdef"
)

// Parse reads flat text declarations from r: one "key = value" pair per
// line, '#' starting a comment, blank lines ignored. Keys and values are
// trimmed of surrounding whitespace; duplicate keys are preserved in order.
func Parse(r io.Reader) ([]netdef.Setting, error) {
	var settings []netdef.Setting
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, val, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected \"key = value\", got %q", lineno, line)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineno)
		}
		settings = append(settings, netdef.Setting{Name: key, Value: val})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return settings, nil
}

// ParseFile reads declarations from path, choosing the format by extension:
// .yaml and .yml files are parsed as YAML, everything else as flat text.
func ParseFile(path string) ([]netdef.Setting, error) {
	//nolint:gosec // G304: the path comes from the caller by design.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return ParseYAML(data)
	default:
		return Parse(f)
	}
}
