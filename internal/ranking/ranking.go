// Package ranking scores catalog entries against a query and orders them.
package ranking

import (
	"sort"
	"strings"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
	"github.com/JakeRoggenbuck/hyperfind/internal/usage"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

const (
	// MatchBonus is the base score for a substring match
	MatchBonus = 1000
	// SimilarityThreshold is the minimum Jaro-Winkler similarity to keep a
	// non-substring match
	SimilarityThreshold = 0.75
	// UsageWeight nudges ties toward recently used apps in query mode
	UsageWeight = 10
	// FrequencyWeight dominates the idle-mode frequency score
	FrequencyWeight = 1000
)

var jaroWinkler = metrics.NewJaroWinkler()

// Result pairs an entry with its computed score.
type Result struct {
	Score int64
	Entry *models.AppEntry
}

// MatchScore scores a display name against a non-empty query. The second
// return is false when the entry should be excluded entirely.
//
// A case-insensitive substring hit earns MatchBonus minus a penalty for the
// extra length of the name, so short names containing the query outrank long
// ones. Anything else falls back to Jaro-Winkler similarity, gated at
// SimilarityThreshold and scaled to the same range.
func MatchScore(name, query string) (int64, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, true
	}

	nameL := strings.ToLower(name)
	queryL := strings.ToLower(query)

	if strings.Contains(nameL, queryL) {
		penalty := int64(len(nameL) - len(queryL))
		if penalty < 0 {
			penalty = 0
		}
		return MatchBonus - penalty, true
	}

	sim := strutil.Similarity(nameL, queryL, jaroWinkler)
	if sim < SimilarityThreshold {
		return 0, false
	}
	return int64(sim * MatchBonus), true
}

// Rank scores every catalog entry against the query and returns the matches
// in descending score order. Entries that neither contain the query nor
// clear the similarity threshold are dropped. The result is not truncated;
// capping what is shown is the view's job.
//
// With an empty (or whitespace-only) query it returns the idle-mode
// frequency ranking instead, same as Frequent.
func Rank(catalog []*models.AppEntry, query string, u usage.Map) []Result {
	if strings.TrimSpace(query) == "" {
		return Frequent(catalog, u)
	}

	results := make([]Result, 0, len(catalog))
	for _, e := range catalog {
		score, ok := MatchScore(e.Name, query)
		if !ok {
			continue
		}
		if rec, ok := u[e.ID]; ok {
			score += int64(rec.Count) * UsageWeight
		}
		results = append(results, Result{Score: score, Entry: e})
	}

	sortResults(results)
	return results
}

// Frequent ranks entries that have a usage record by count and recency.
// Entries with no history are excluded; they still show up in the catalog
// listing the view appends below the frequent section.
func Frequent(catalog []*models.AppEntry, u usage.Map) []Result {
	results := make([]Result, 0, len(u))
	for _, e := range catalog {
		rec, ok := u[e.ID]
		if !ok {
			continue
		}
		score := int64(rec.Count)*FrequencyWeight + int64(rec.LastUsed)
		results = append(results, Result{Score: score, Entry: e})
	}

	sortResults(results)
	return results
}

// sortResults orders by descending score with a total tiebreak chain, so
// identical inputs always produce identical orderings.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		al, bl := a.Entry.LowerName(), b.Entry.LowerName()
		if al != bl {
			return al < bl
		}
		if a.Entry.Name != b.Entry.Name {
			return a.Entry.Name < b.Entry.Name
		}
		return a.Entry.ID < b.Entry.ID
	})
}
