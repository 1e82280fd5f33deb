package journal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sandevgo/beediary/internal/core"
	"github.com/sandevgo/beediary/internal/providers/bee"
	"github.com/sandevgo/beediary/pkg/log"
	"github.com/sandevgo/beediary/pkg/retry"
)

// Source is the remote record source a run consumes.
type Source interface {
	Conversations(ctx context.Context, page int) (*bee.ConversationsPage, error)
	ConversationDetail(ctx context.Context, id int64) ([]core.Utterance, error)
	Facts(ctx context.Context, page int) (*bee.FactsPage, error)
}

// CommitResult reports what the materializer did with a date.
type CommitResult int

const (
	CommitWritten CommitResult = iota
	CommitSkipped
)

// Materializer owns the on-disk journal tree. Exists is a live probe;
// Commit writes a date's document at most once and never overwrites.
type Materializer interface {
	Exists(d DateKey) bool
	Commit(d DateKey, text string) (CommitResult, error)
}

// RenderFunc turns a finalized day bucket into document text. Must be
// deterministic over the bucket contents.
type RenderFunc func(*DayBucket) string

// Summary is the user-visible outcome of one run.
type Summary struct {
	StartedAt  time.Time
	FinishedAt time.Time

	Written           []string
	Skipped           []string
	Failed            map[string]string
	DroppedRecords    int
	ConversationPages int
	FactPages         int
}

type Options struct {
	Location        *time.Location
	MonotonicPaging bool
	Retrier         *retry.Retrier
	Now             func() time.Time
}

// Runner holds the collaborators of a run. All per-run state (work set,
// buckets) lives inside RunOnce and dies with it.
type Runner struct {
	source    Source
	vault     Materializer
	render    RenderFunc
	retrier   *retry.Retrier
	loc       *time.Location
	monotonic bool
	now       func() time.Time
}

func NewRunner(source Source, vault Materializer, render RenderFunc, opts Options) *Runner {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Retrier == nil {
		opts.Retrier = retry.NewDefaultRetrier()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{
		source:    source,
		vault:     vault,
		render:    render,
		retrier:   opts.Retrier,
		loc:       opts.Location,
		monotonic: opts.MonotonicPaging,
		now:       opts.Now,
	}
}

// RunOnce fetches anything the journal is missing and materializes it.
// Record-level problems are absorbed, page-level errors abort the run
// after retries, date-level write failures land in the summary without
// blocking other dates.
func (r *Runner) RunOnce(ctx context.Context) (*Summary, error) {
	logger := log.FromCtx(ctx)
	summary := &Summary{
		StartedAt: r.now(),
		Failed:    make(map[string]string),
	}

	today := NewDateKey(r.now(), r.loc)
	oracle := NewOracle(today, r.vault.Exists, r.monotonic)
	agg := NewAggregator(oracle, r.loc, r.source.ConversationDetail)

	if err := r.fetchConversations(ctx, oracle, agg, summary); err != nil {
		summary.FinishedAt = r.now()
		return summary, err
	}

	if err := r.fetchFacts(ctx, oracle, agg, summary); err != nil {
		summary.FinishedAt = r.now()
		return summary, err
	}

	for _, b := range agg.Buckets() {
		res, err := r.vault.Commit(b.Date, r.render(b))
		date := b.Date.String()
		switch {
		case err != nil:
			logger.Error().Err(err).Str("date", date).Msg("failed to write journal file")
			summary.Failed[date] = err.Error()
		case res == CommitSkipped:
			summary.Skipped = append(summary.Skipped, date)
		default:
			logger.Info().Str("date", date).Msg("journal file written")
			summary.Written = append(summary.Written, date)
		}
	}

	// Dates whose files already existed at ingest time never reach the
	// commit loop; they still count as skipped in the summary.
	for _, d := range agg.AlreadyMaterialized() {
		summary.Skipped = append(summary.Skipped, d.String())
	}
	sort.Strings(summary.Skipped)

	summary.DroppedRecords = agg.Dropped()
	summary.FinishedAt = r.now()

	logger.Info().
		Int("written", len(summary.Written)).
		Int("skipped", len(summary.Skipped)).
		Int("failed", len(summary.Failed)).
		Int("dropped", summary.DroppedRecords).
		Msg("run complete")

	return summary, nil
}

func (r *Runner) fetchConversations(ctx context.Context, oracle *Oracle, agg *Aggregator, summary *Summary) error {
	logger := log.FromCtx(ctx)

	seen := 0
	for page := 1; ; page++ {
		var cp *bee.ConversationsPage
		err := r.retrier.Do(ctx, func() error {
			p, err := r.source.Conversations(ctx, page)
			if err != nil {
				if errors.Is(err, bee.ErrAuth) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			cp = p
			return nil
		})
		if err != nil {
			return fmt.Errorf("conversations page %d: %w", page, err)
		}
		summary.ConversationPages++

		if len(cp.Conversations) == 0 {
			break
		}

		keys := agg.IngestPage(ctx, cp.Conversations)
		if oracle.PageSatisfied(keys) {
			logger.Debug().Int("page", page).Msg("conversation history satisfied, stopping pagination")
			break
		}
		if cp.TotalPages > 0 && page >= cp.TotalPages {
			break
		}

		// The count hint bounds the loop when the server keeps serving
		// the last page instead of an empty one.
		seen += len(cp.Conversations)
		if cp.TotalCount > 0 && seen >= cp.TotalCount {
			break
		}
	}
	return nil
}

func (r *Runner) fetchFacts(ctx context.Context, oracle *Oracle, agg *Aggregator, summary *Summary) error {
	logger := log.FromCtx(ctx)

	seen := 0
	for page := 1; ; page++ {
		var fp *bee.FactsPage
		err := r.retrier.Do(ctx, func() error {
			p, err := r.source.Facts(ctx, page)
			if err != nil {
				if errors.Is(err, bee.ErrAuth) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			fp = p
			return nil
		})
		if err != nil {
			return fmt.Errorf("facts page %d: %w", page, err)
		}
		summary.FactPages++

		if len(fp.Facts) == 0 {
			break
		}

		keys := agg.IngestFacts(ctx, fp.Facts)
		if oracle.PageSatisfied(keys) {
			logger.Debug().Int("page", page).Msg("fact history satisfied, stopping pagination")
			break
		}
		if fp.TotalPages > 0 && page >= fp.TotalPages {
			break
		}

		seen += len(fp.Facts)
		if fp.TotalCount > 0 && seen >= fp.TotalCount {
			break
		}
	}
	return nil
}
