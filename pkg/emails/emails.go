// Package emails loads the commit author addresses to be checked.
package emails

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/check-commits/pkg/errors"
	"github.com/arthur-debert/check-commits/pkg/filesystem"
	"github.com/arthur-debert/check-commits/pkg/logging"
)

// ParseEmails reads one address per line from r.
//
// No filtering or normalization is applied: a blank line becomes the empty
// address. Duplicates are removed and the result is sorted.
func ParseEmails(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read emails: %w", err)
	}

	seen := make(map[string]struct{})
	for _, line := range filesystem.Lines(string(data)) {
		seen[line] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for email := range seen {
		out = append(out, email)
	}
	sort.Strings(out)
	return out, nil
}

// LoadEmails reads and parses the emails file at path
func LoadEmails(fsys filesystem.FS, path string) ([]string, error) {
	logger := logging.GetLogger("emails.loader")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEmailsRead,
			"failed to read emails from %s", path).WithDetail("path", path)
	}

	emails, err := ParseEmails(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEmailsRead,
			"failed to parse emails from %s", path).WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("emailCount", len(emails)).
		Msg("Loaded emails")

	return emails, nil
}
