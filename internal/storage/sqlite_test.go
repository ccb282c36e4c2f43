package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("graveyard", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("crypt", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("graveyard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].LevelID != "graveyard" {
		t.Errorf("Expected level graveyard, got %q", scores[0].LevelID)
	}

	crypt, err := store.TopScores("crypt", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(crypt) != 1 {
		t.Errorf("Expected 1 crypt score, got %d", len(crypt))
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("Expected 4 scores led by 500 across levels, got %v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("graveyard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an unplayed level, got %d", high)
	}

	store.SaveScore("graveyard", 100)
	store.SaveScore("graveyard", 300)
	store.SaveScore("graveyard", 200)

	high, err = store.HighScore("graveyard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("graveyard", 100)
	store.SaveRun(Run{LevelID: "graveyard", Score: 200, Outcome: OutcomeGameOver})
	store.SaveScore("crypt", 300)

	if err := store.ClearScores("graveyard"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("graveyard", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 graveyard scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("graveyard", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 graveyard runs after clear, got %d", len(runs))
	}
	crypt, _ := store.TopScores("crypt", 10)
	if len(crypt) != 1 {
		t.Errorf("Crypt scores should not be affected by clearing graveyard")
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		LevelID:   "crypt",
		Score:     2900,
		Outcome:   OutcomeWon,
		Ticks:     1800,
		LivesLeft: 2,
		Seed:      42,
		Player:    "arthur",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == 0 {
		t.Error("Expected a non-zero run ID")
	}
	// A scoreless run is kept in the history but not on the scoreboard.
	if _, err := store.SaveRun(Run{LevelID: "crypt", Outcome: OutcomeQuit, Ticks: 12}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("crypt", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Outcome != OutcomeQuit {
		t.Errorf("Expected newest run first, got %v", runs[0].Outcome)
	}
	won := runs[1]
	if won.Score != 2900 || won.Ticks != 1800 || won.LivesLeft != 2 || won.Seed != 42 || won.Player != "arthur" {
		t.Errorf("Run not stored faithfully: %+v", won)
	}
	if won.CreatedAt.IsZero() {
		t.Error("Expected a creation time")
	}

	scores, _ := store.TopScores("crypt", 10)
	if len(scores) != 1 || scores[0].Score != 2900 {
		t.Errorf("Expected the winning run on the scoreboard, got %v", scores)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("graveyard")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{LevelID: "graveyard", Score: 1000, Outcome: OutcomeWon})
	store.SaveRun(Run{LevelID: "graveyard", Score: 200, Outcome: OutcomeGameOver})
	store.SaveRun(Run{LevelID: "crypt", Score: 50, Outcome: OutcomeGameOver})

	stats, err := store.Stats("graveyard")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Wins != 1 || stats.HighScore != 1000 || stats.AvgScore != 600 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["crypt"].Runs != 1 || all["crypt"].Wins != 0 {
		t.Errorf("Unexpected crypt stats: %+v", all["crypt"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
