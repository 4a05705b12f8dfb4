package search

import (
	"fmt"
	"math"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"

	"github.com/mholgate/shelfsearch/internal/collation"
	"github.com/mholgate/shelfsearch/pkg/types"
)

const (
	// DefaultThreshold admits matches whose best field distance is at most
	// this value. Lower values are stricter.
	DefaultThreshold = 0.4

	// DefaultPageSize caps every result page.
	DefaultPageSize = 50

	// minTokenLen drops query tokens too short to mean anything; a query
	// reduced to zero tokens behaves as an empty query.
	minTokenLen = 2

	queryCacheSize = 256
)

// Relative field weights: title dominates, author next, abbreviation and
// id trail so an identifier hit never outranks a decent title hit.
var fieldWeights = []struct {
	value  func(types.ResourceRecord) string
	weight float64
}{
	{func(r types.ResourceRecord) string { return r.Title }, 1.0},
	{func(r types.ResourceRecord) string { return r.Author }, 0.6},
	{func(r types.ResourceRecord) string { return r.Abbrev }, 0.3},
	{func(r types.ResourceRecord) string { return r.ID }, 0.2},
}

// Options configures an Index.
type Options struct {
	// Threshold is used as given; zero means only perfect field matches.
	Threshold float64
	// PageSize defaults to DefaultPageSize when not positive.
	PageSize int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, PageSize: DefaultPageSize}
}

// Index is an immutable search index over one extraction. Rebuild it when
// the records change; the query cache dies with the old index.
type Index struct {
	records   []types.ResourceRecord
	threshold float64
	pageSize  int
	queries   *lru.Cache[string, []types.ResourceRecord]
}

// NewIndex builds an index over records, which must already be in the
// default title order produced by the catalog reader.
func NewIndex(records []types.ResourceRecord, opts Options) *Index {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	queries, err := lru.New[string, []types.ResourceRecord](queryCacheSize)
	if err != nil {
		// Only possible with a non-positive size constant.
		panic(fmt.Sprintf("failed to create query cache: %v", err))
	}

	return &Index{
		records:   append([]types.ResourceRecord(nil), records...),
		threshold: opts.Threshold,
		pageSize:  opts.PageSize,
		queries:   queries,
	}
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Search returns up to limit records for the query, best match first. An
// empty or whitespace-only query yields the head of the default
// title-sorted order. A query matching nothing yields an empty result,
// never an error.
func (ix *Index) Search(query string, limit int) []types.ResourceRecord {
	if limit <= 0 || limit > ix.pageSize {
		limit = ix.pageSize
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return ix.head(limit)
	}
	if len(ix.records) == 0 {
		return nil
	}

	key := fmt.Sprintf("%d|%s", limit, strings.Join(tokens, " "))
	if cached, ok := ix.queries.Get(key); ok {
		return append([]types.ResourceRecord(nil), cached...)
	}

	selfScores := make([]float64, len(tokens))
	for i, tok := range tokens {
		selfScores[i] = selfScore(tok)
	}

	type scored struct {
		rec  types.ResourceRecord
		rank float64
	}
	var hits []scored
	for _, rec := range ix.records {
		rank, ok := ix.scoreRecord(rec, tokens, selfScores)
		if ok {
			hits = append(hits, scored{rec: rec, rank: rank})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		if c := collation.Compare(hits[i].rec.Title, hits[j].rec.Title); c != 0 {
			return c < 0
		}
		return hits[i].rec.ID < hits[j].rec.ID
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]types.ResourceRecord, len(hits))
	for i, h := range hits {
		out[i] = h.rec
	}

	ix.queries.Add(key, out)
	return append([]types.ResourceRecord(nil), out...)
}

// scoreRecord computes the record's ranking key (lower = better) across
// all tokens. Every token must clear the admission threshold on at least
// one field; the ranking key discounts each field's contribution by its
// weight.
func (ix *Index) scoreRecord(rec types.ResourceRecord, tokens []string, selfScores []float64) (float64, bool) {
	var total float64

	for i, tok := range tokens {
		bestDist := math.Inf(1)
		bestRank := math.Inf(1)

		for _, field := range fieldWeights {
			value := field.value(rec)
			if value == "" {
				continue
			}
			matches := fuzzy.Find(tok, []string{value})
			if len(matches) == 0 {
				continue
			}

			// fuzzy.Find deducts one point per unmatched candidate rune,
			// which would make a perfect substring match inside a long
			// field read as distant. Add the deduction back so distance
			// reflects match quality, not field length.
			unmatched := len([]rune(value)) - len(matches[0].MatchedIndexes)
			norm := (float64(matches[0].Score) + float64(unmatched)) / selfScores[i]
			if norm < 0 {
				norm = 0
			} else if norm > 1 {
				norm = 1
			}

			if dist := 1 - norm; dist < bestDist {
				bestDist = dist
			}
			if rank := 1 - field.weight*norm; rank < bestRank {
				bestRank = rank
			}
		}

		if bestDist > ix.threshold {
			return 0, false
		}
		total += bestRank
	}

	return total / float64(len(tokens)), true
}

// head returns the first n records in default order.
func (ix *Index) head(n int) []types.ResourceRecord {
	if n > len(ix.records) {
		n = len(ix.records)
	}
	return append([]types.ResourceRecord(nil), ix.records[:n]...)
}

// tokenize lowercases and splits the query, dropping tokens shorter than
// minTokenLen runes.
func tokenize(query string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len([]rune(tok)) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// selfScore is the score of a token matched against itself, the
// normalization ceiling for that token.
func selfScore(token string) float64 {
	matches := fuzzy.Find(token, []string{token})
	if len(matches) == 0 || matches[0].Score <= 0 {
		return 1
	}
	return float64(matches[0].Score)
}
