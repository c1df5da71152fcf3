package ranking

import (
	"testing"

	"github.com/JakeRoggenbuck/hyperfind/internal/models"
	"github.com/JakeRoggenbuck/hyperfind/internal/usage"
)

func entry(id, name string) *models.AppEntry {
	return &models.AppEntry{ID: id, Name: name, Exec: "true"}
}

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Entry.Name
	}
	return out
}

func TestMatchScore_Substring(t *testing.T) {
	score, ok := MatchScore("Firefox", "fire")
	if !ok {
		t.Fatal("Substring match should not be excluded")
	}
	// 1000 minus the three extra characters of "firefox"
	if score != 997 {
		t.Errorf("Expected 997, got %d", score)
	}
}

func TestMatchScore_CaseInsensitive(t *testing.T) {
	score, ok := MatchScore("GIMP", "gimp")
	if !ok {
		t.Fatal("Case-insensitive exact match should not be excluded")
	}
	if score != MatchBonus {
		t.Errorf("Exact-length match should score %d, got %d", MatchBonus, score)
	}
}

func TestMatchScore_ShorterNameWins(t *testing.T) {
	short, _ := MatchScore("Files", "file")
	long, _ := MatchScore("File Manager", "file")
	if short <= long {
		t.Errorf("Shorter containing name should outrank longer: %d vs %d", short, long)
	}
}

func TestMatchScore_BelowThresholdExcluded(t *testing.T) {
	if _, ok := MatchScore("GIMP", "fire"); ok {
		t.Error("Dissimilar name should be excluded")
	}
}

func TestMatchScore_SimilarityRange(t *testing.T) {
	score, ok := MatchScore("Files", "fire")
	if !ok {
		t.Fatal("'Files' is similar enough to 'fire' to be kept")
	}
	if score < int64(SimilarityThreshold*MatchBonus) || score >= MatchBonus {
		t.Errorf("Similarity score should sit in [750, 1000), got %d", score)
	}
}

func TestMatchScore_QueryWhitespaceTrimmed(t *testing.T) {
	trimmed, _ := MatchScore("Firefox", "fire")
	padded, _ := MatchScore("Firefox", "  fire  ")
	if trimmed != padded {
		t.Errorf("Padding around the query should not change the score: %d vs %d", trimmed, padded)
	}
}

func TestRank_FireQuery(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("files", "Files"),
		entry("firefox", "Firefox"),
		entry("gimp", "GIMP"),
	}

	results := Rank(catalog, "fire", usage.Map{})

	if len(results) == 0 || results[0].Entry.Name != "Firefox" {
		t.Fatalf("Firefox should rank first, got %v", names(results))
	}
	for _, r := range results {
		if r.Entry.Name == "GIMP" {
			t.Error("GIMP should be excluded for query 'fire'")
		}
	}
}

func TestRank_UsageNudgesTies(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("alpha", "Alpha"),
		entry("aleph", "Aleph"),
	}
	u := usage.Map{"aleph": {Count: 3, LastUsed: 100}}

	results := Rank(catalog, "al", u)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	// Both names contain "al" and have equal length, so the usage bonus
	// decides the order.
	if results[0].Entry.ID != "aleph" {
		t.Errorf("Used app should rank first on a score tie, got %v", names(results))
	}
	if results[0].Score != results[1].Score+3*UsageWeight {
		t.Errorf("Usage bonus should be count*%d, got scores %d and %d",
			UsageWeight, results[0].Score, results[1].Score)
	}
}

func TestRank_UsageDoesNotBeatMatchQuality(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("firefox", "Firefox"),
		entry("firefox-dev", "Firefox Developer Edition"),
	}
	u := usage.Map{"firefox-dev": {Count: 1, LastUsed: 100}}

	results := Rank(catalog, "firefox", u)

	if results[0].Entry.ID != "firefox" {
		t.Errorf("A modest usage count should not overcome the length penalty gap, got %v", names(results))
	}
}

func TestRank_TiesBrokenByName(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("zed", "zedit"),
		entry("bed", "bedit"),
	}

	results := Rank(catalog, "edit", usage.Map{})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Entry.Name != "bedit" {
		t.Errorf("Equal scores should order by name ascending, got %v", names(results))
	}
}

func TestRank_Deterministic(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("a", "Editor One"), entry("b", "Editor Two"),
		entry("c", "Editor Three"), entry("d", "Editor Four"),
	}
	u := usage.Map{"b": {Count: 1, LastUsed: 50}, "c": {Count: 1, LastUsed: 50}}

	first := names(Rank(catalog, "editor", u))
	for i := 0; i < 10; i++ {
		if got := names(Rank(catalog, "editor", u)); len(got) != len(first) {
			t.Fatal("Result count changed between runs")
		} else {
			for j := range got {
				if got[j] != first[j] {
					t.Fatalf("Ordering changed between runs: %v vs %v", first, got)
				}
			}
		}
	}
}

func TestRank_EmptyQueryFallsBackToFrequent(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("a", "Alpha"),
		entry("b", "Beta"),
	}
	u := usage.Map{"b": {Count: 1, LastUsed: 10}}

	results := Rank(catalog, "   ", u)

	if len(results) != 1 || results[0].Entry.ID != "b" {
		t.Errorf("Blank query should rank by frequency, got %v", names(results))
	}
}

func TestFrequent_OrderAndExclusion(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("a", "Alpha"),
		entry("b", "Beta"),
		entry("c", "Gamma"),
		entry("d", "Delta"),
	}
	u := usage.Map{
		"a": {Count: 1, LastUsed: 500},
		"b": {Count: 3, LastUsed: 100},
		"c": {Count: 1, LastUsed: 900},
	}

	results := Frequent(catalog, u)

	want := []string{"Beta", "Gamma", "Alpha"}
	got := names(results)
	if len(got) != len(want) {
		t.Fatalf("Expected %d results, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
	if results[0].Score != 3*FrequencyWeight+100 {
		t.Errorf("Frequency score should be count*%d+last_used, got %d", FrequencyWeight, results[0].Score)
	}
}

func TestFrequent_TiesBrokenByNameCaseInsensitive(t *testing.T) {
	catalog := []*models.AppEntry{
		entry("z", "zsh config"),
		entry("b", "Bash config"),
	}
	u := usage.Map{
		"z": {Count: 1, LastUsed: 42},
		"b": {Count: 1, LastUsed: 42},
	}

	results := Frequent(catalog, u)

	if results[0].Entry.ID != "b" {
		t.Errorf("Tie should order case-insensitively by name, got %v", names(results))
	}
}
