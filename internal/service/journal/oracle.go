package journal

// ExistsFunc probes whether a date already has a materialized file.
// Always a live disk check; existence is never cached across the
// check-write cycle.
type ExistsFunc func(DateKey) bool

// Oracle decides which dates still need a journal file and when
// pagination may stop early.
type Oracle struct {
	today     DateKey
	exists    ExistsFunc
	monotonic bool
}

func NewOracle(today DateKey, exists ExistsFunc, monotonic bool) *Oracle {
	return &Oracle{today: today, exists: exists, monotonic: monotonic}
}

// Elapsed reports whether the day is fully in the past. Today never is;
// a partial-day journal would be overwritten-by-omission forever after.
func (o *Oracle) Elapsed(d DateKey) bool {
	return d.Before(o.today)
}

// Needs reports whether d still requires a journal file.
func (o *Oracle) Needs(d DateKey) bool {
	return o.Elapsed(d) && !o.exists(d)
}

// PageSatisfied reports whether pagination may stop after a page that
// bucketed to the given dates. Sound only under newest-first page order:
// once an entire page is already materialized, everything older is too.
// With monotonic paging disabled it always reports false and the caller
// pages to exhaustion.
func (o *Oracle) PageSatisfied(keys []DateKey) bool {
	if !o.monotonic || len(keys) == 0 {
		return false
	}
	for _, d := range keys {
		if !o.Elapsed(d) || !o.exists(d) {
			return false
		}
	}
	return true
}
