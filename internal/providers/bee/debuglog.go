package bee

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// DebugLog appends raw API response bodies to a single local file so a
// run can be inspected after the fact. It is a side channel only; write
// failures never affect the run.
type DebugLog struct {
	mu   sync.Mutex
	path string
}

func NewDebugLog(path string) *DebugLog {
	return &DebugLog{path: path}
}

// Reset truncates the artifact. Called once at process start so the file
// holds exactly one run.
func (d *DebugLog) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return os.WriteFile(d.path, nil, 0644)
}

func (d *DebugLog) Append(label string, raw []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.OpenFile(d.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer f.Close()

	header := fmt.Sprintf("\n\n--- %s Response at %s ---\n", label, time.Now().Format(time.DateTime))
	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("write debug log: %w", err)
	}
	if _, err := f.Write(raw); err != nil {
		return fmt.Errorf("write debug log: %w", err)
	}
	_, err = f.WriteString("\n")
	return err
}
