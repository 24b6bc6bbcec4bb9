package rules

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/check-commits/pkg/errors"
	"github.com/arthur-debert/check-commits/pkg/filesystem"
	"github.com/arthur-debert/check-commits/pkg/logging"
)

// ParseRules reads rule lines from r.
//
// Comment lines (leading `#`) and blank lines are dropped, duplicates are
// removed and the result is sorted. Lines are kept untrimmed; trimming is
// part of compilation.
func ParseRules(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}

	seen := make(map[string]struct{})
	for _, line := range filesystem.Lines(string(data)) {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		seen[line] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// LoadRules reads and parses the rules file at path
func LoadRules(fsys filesystem.FS, path string) ([]string, error) {
	logger := logging.GetLogger("rules.loader")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesRead,
			"failed to read rules from %s", path).WithDetail("path", path)
	}

	rules, err := ParseRules(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesRead,
			"failed to parse rules from %s", path).WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", len(rules)).
		Msg("Loaded rules")

	return rules, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
