package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sandevgo/beediary/internal/service/journal"
)

// Runs is the run ledger: one row per invocation, so watch-mode history
// stays inspectable after the fact.
type Runs struct {
	db *sql.DB
}

func NewRuns(db *sql.DB) *Runs {
	return &Runs{db: db}
}

type RunRow struct {
	ID         int64
	StartedAt  time.Time
	FinishedAt time.Time
	Written    int
	Skipped    int
	Failed     int
	Dropped    int
	Pages      int
	Details    string
	Error      string
}

// runDetails is the JSON blob stored per run: exact dates written and
// the per-date failure reasons, so a later run can be checked against
// this one.
type runDetails struct {
	Written []string          `json:"written,omitempty"`
	Failed  map[string]string `json:"failed,omitempty"`
}

func (r *Runs) Record(ctx context.Context, summary *journal.Summary, runErr error) error {
	details, err := json.Marshal(runDetails{
		Written: summary.Written,
		Failed:  summary.Failed,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal run details: %w", err)
	}

	errText := ""
	if runErr != nil {
		errText = runErr.Error()
	}

	query := `INSERT INTO runs (started_at, finished_at, written, skipped, failed, dropped, pages, details, error)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		summary.StartedAt,
		summary.FinishedAt,
		len(summary.Written),
		len(summary.Skipped),
		len(summary.Failed),
		summary.DroppedRecords,
		summary.ConversationPages+summary.FactPages,
		string(details),
		errText,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

func (r *Runs) Recent(ctx context.Context, limit int) ([]RunRow, error) {
	query := `SELECT id, started_at, finished_at, written, skipped, failed, dropped, pages, details, error
	          FROM runs ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var row RunRow
		if err := rows.Scan(&row.ID, &row.StartedAt, &row.FinishedAt, &row.Written, &row.Skipped,
			&row.Failed, &row.Dropped, &row.Pages, &row.Details, &row.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
