package vault

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/beediary/internal/service/journal"
)

// Vault owns the target directory tree: one markdown file per day,
// grouped into month directories. Files are written once, atomically,
// and never overwritten.
type Vault struct {
	root string
}

func New(root string) *Vault {
	return &Vault{root: root}
}

func (v *Vault) Root() string {
	return v.root
}

// DayPath is the canonical path for a date:
// <root>/<MM>-<MonthName>/<YYYY-MM-DD>.md
func (v *Vault) DayPath(d journal.DateKey) string {
	month := fmt.Sprintf("%02d-%s", int(d.Month), d.Month.String())
	return filepath.Join(v.root, month, d.String()+".md")
}

// Exists probes the filesystem directly on every call. The tree may be
// modified by other processes between runs.
func (v *Vault) Exists(d journal.DateKey) bool {
	_, err := os.Stat(v.DayPath(d))
	return err == nil
}

// Commit writes the document for d unless a file is already present.
// The text goes through a temp file in the month directory and a rename,
// so a failed write leaves no partial file behind.
func (v *Vault) Commit(d journal.DateKey, text string) (journal.CommitResult, error) {
	path := v.DayPath(d)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return journal.CommitSkipped, fmt.Errorf("create month directory: %w", err)
	}

	if v.Exists(d) {
		return journal.CommitSkipped, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+d.String()+"-*.tmp")
	if err != nil {
		return journal.CommitSkipped, fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return journal.CommitSkipped, fmt.Errorf("write journal file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return journal.CommitSkipped, fmt.Errorf("close journal file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return journal.CommitSkipped, fmt.Errorf("chmod journal file: %w", err)
	}

	// Another process may have produced the file since the first check.
	// Benign race: keep theirs, drop ours.
	if v.Exists(d) {
		os.Remove(tmp.Name())
		return journal.CommitSkipped, nil
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return journal.CommitSkipped, fmt.Errorf("rename journal file: %w", err)
	}
	return journal.CommitWritten, nil
}
