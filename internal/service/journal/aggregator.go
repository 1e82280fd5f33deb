package journal

import (
	"context"
	"sort"
	"time"

	"github.com/sandevgo/beediary/internal/core"
	"github.com/sandevgo/beediary/pkg/log"
)

// ConversationEntry pairs a listing row with its fetched transcript.
type ConversationEntry struct {
	Conversation core.Conversation
	StartedAt    time.Time
	Utterances   []core.Utterance
}

// DayBucket accumulates every record assigned to one calendar day during
// a run. Owned by the Aggregator; discarded when the run ends.
type DayBucket struct {
	Date          DateKey
	Conversations []ConversationEntry
	Facts         []core.Fact
}

// DetailFunc fetches the transcript of one conversation.
type DetailFunc func(ctx context.Context, id int64) ([]core.Utterance, error)

type Aggregator struct {
	oracle   *Oracle
	loc      *time.Location
	detail   DetailFunc
	buckets  map[DateKey]*DayBucket
	existing map[DateKey]struct{}
	dropped  int
}

func NewAggregator(oracle *Oracle, loc *time.Location, detail DetailFunc) *Aggregator {
	return &Aggregator{
		oracle:   oracle,
		loc:      loc,
		detail:   detail,
		buckets:  make(map[DateKey]*DayBucket),
		existing: make(map[DateKey]struct{}),
	}
}

// IngestPage buckets one page of conversations, keeping only records of
// dates that still need a file. Returns the DateKey of every parseable
// record on the page so the caller can consult the oracle about early
// termination.
func (a *Aggregator) IngestPage(ctx context.Context, conversations []core.Conversation) []DateKey {
	logger := log.FromCtx(ctx)
	keys := make([]DateKey, 0, len(conversations))

	for _, conv := range conversations {
		startedAt, err := ParseStamp(conv.StartTime)
		if err != nil {
			logger.Warn().Err(err).Int64("conversation", conv.ID).Msg("dropping record")
			a.dropped++
			continue
		}

		key := NewDateKey(startedAt, a.loc)
		keys = append(keys, key)

		if !a.oracle.Needs(key) {
			if a.oracle.Elapsed(key) {
				a.existing[key] = struct{}{}
			}
			continue
		}

		// Transcripts come from the detail endpoint; a failed detail
		// fetch keeps the conversation, just without its transcript.
		utterances, err := a.detail(ctx, conv.ID)
		if err != nil {
			logger.Warn().Err(err).Int64("conversation", conv.ID).Msg("transcript unavailable")
			utterances = nil
		}

		b := a.bucket(key)
		b.Conversations = append(b.Conversations, ConversationEntry{
			Conversation: conv,
			StartedAt:    startedAt,
			Utterances:   utterances,
		})
		logger.Debug().Int64("conversation", conv.ID).Str("date", key.String()).Msg("added conversation")
	}

	return keys
}

// IngestFacts routes one page of facts to their day buckets. A fact for
// a date whose file already exists is discarded: journal files are
// immutable once written. A fact for a pending date without any
// conversations still creates a bucket, so fact-only days get a file.
func (a *Aggregator) IngestFacts(ctx context.Context, facts []core.Fact) []DateKey {
	logger := log.FromCtx(ctx)
	keys := make([]DateKey, 0, len(facts))

	for _, fact := range facts {
		key, err := BucketStamp(fact.CreatedAt, a.loc)
		if err != nil {
			logger.Warn().Err(err).Int64("fact", fact.ID).Msg("dropping record")
			a.dropped++
			continue
		}
		keys = append(keys, key)

		if !a.oracle.Needs(key) {
			if a.oracle.Elapsed(key) {
				a.existing[key] = struct{}{}
			}
			continue
		}

		b := a.bucket(key)
		b.Facts = append(b.Facts, fact)
		logger.Debug().Int64("fact", fact.ID).Str("date", key.String()).Msg("added fact")
	}

	return keys
}

func (a *Aggregator) bucket(key DateKey) *DayBucket {
	b, ok := a.buckets[key]
	if !ok {
		b = &DayBucket{Date: key}
		a.buckets[key] = b
	}
	return b
}

// Buckets returns the accumulated days, oldest first, with each day's
// conversations in chronological order.
func (a *Aggregator) Buckets() []*DayBucket {
	out := make([]*DayBucket, 0, len(a.buckets))
	for _, b := range a.buckets {
		sort.Slice(b.Conversations, func(i, j int) bool {
			return b.Conversations[i].StartedAt.Before(b.Conversations[j].StartedAt)
		})
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// AlreadyMaterialized returns the elapsed dates seen during ingest
// whose files were already on disk, oldest first. A re-run reports
// these as skipped.
func (a *Aggregator) AlreadyMaterialized() []DateKey {
	out := make([]DateKey, 0, len(a.existing))
	for d := range a.existing {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}

// Dropped reports how many records were discarded for malformed
// timestamps.
func (a *Aggregator) Dropped() int {
	return a.dropped
}
