package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score, level int, won bool) {
	t.Helper()
	_, err := store.SaveResult(Result{
		GameID: gameID,
		RunID:  uuid.NewString(),
		Player: "tester",
		Score:  score,
		Level:  level,
		Won:    won,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "dotmaze", 1350, 2, false)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("dotmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1350 {
		t.Errorf("Expected 1350 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	runID := uuid.NewString()
	id, err := store.SaveResult(Result{GameID: "dotmaze", RunID: runID, Player: "ana", Score: 7560, Level: 5, Won: true})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}
	save(t, store, "dotmaze", 100, 1, false)
	save(t, store, "other", 500, 1, false)

	scores, err := store.TopScores("dotmaze", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}

	top := scores[0]
	if top.Score != 7560 || top.Level != 5 || !top.Won {
		t.Errorf("Unexpected top entry: %+v", top)
	}
	if top.RunID != runID || top.Player != "ana" {
		t.Errorf("Expected run %s by ana, got %s by %s", runID, top.RunID, top.Player)
	}
	if top.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
	if scores[1].Won {
		t.Error("Second entry should not be a win")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100, 1, false)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	store := openTemp(t)

	first := uuid.NewString()
	store.SaveResult(Result{GameID: "dotmaze", RunID: first, Score: 300, Level: 1})
	store.SaveResult(Result{GameID: "dotmaze", RunID: uuid.NewString(), Score: 300, Level: 1})

	scores, err := store.TopScores("dotmaze", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].RunID != first {
		t.Errorf("Expected earlier run first on a tie")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	// No scores yet
	high, err := store.HighScore("dotmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "dotmaze", 100, 1, false)
	save(t, store, "dotmaze", 300, 1, false)
	save(t, store, "dotmaze", 200, 1, false)

	high, err = store.HighScore("dotmaze")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	save(t, store, "dotmaze", 100, 1, false)
	save(t, store, "dotmaze", 200, 1, false)
	save(t, store, "other", 300, 1, false)

	if err := store.ClearScores("dotmaze"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("dotmaze", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	others, _ := store.TopScores("other", 10)
	if len(others) != 1 {
		t.Errorf("Other game should not be affected by clearing dotmaze")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.GetGameStats("dotmaze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	save(t, store, "dotmaze", 1000, 2, false)
	save(t, store, "dotmaze", 3000, 5, true)
	save(t, store, "dotmaze", 2000, 3, false)

	stats, err := store.GetGameStats("dotmaze")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.Wins != 1 {
		t.Errorf("Expected 1 win, got %d", stats.Wins)
	}
	if stats.HighScore != 3000 {
		t.Errorf("Expected high score 3000, got %d", stats.HighScore)
	}
	if stats.AvgScore != 2000 {
		t.Errorf("Expected average 2000, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 6000 {
		t.Errorf("Expected total 6000, got %d", stats.TotalScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("Expected best level 5, got %d", stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestRebind(t *testing.T) {
	query := "SELECT a FROM t WHERE x = ? AND y = ? LIMIT ?"

	sqlite := &Store{dialect: dialectSQLite}
	if got := sqlite.rebind(query); got != query {
		t.Errorf("SQLite query should be unchanged, got %q", got)
	}

	pg := &Store{dialect: dialectPostgres}
	want := "SELECT a FROM t WHERE x = $1 AND y = $2 LIMIT $3"
	if got := pg.rebind(query); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn      string
		expected bool
	}{
		{"postgres://u:p@localhost/dotmaze", true},
		{"postgresql://localhost/dotmaze?sslmode=disable", true},
		{"~/.dotmaze/scores.db", false},
		{"postgres.db", false},
	}
	for _, tc := range tests {
		if got := IsPostgresDSN(tc.dsn); got != tc.expected {
			t.Errorf("IsPostgresDSN(%q) = %v, expected %v", tc.dsn, got, tc.expected)
		}
	}
}

// TestPostgresStore runs against a live server named by DOTMAZE_TEST_POSTGRES.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("DOTMAZE_TEST_POSTGRES")
	if dsn == "" {
		t.Skip("DOTMAZE_TEST_POSTGRES not set")
	}

	store, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	gameID := "dotmaze-test-" + uuid.NewString()
	defer store.ClearScores(gameID)

	save(t, store, gameID, 1200, 3, false)
	save(t, store, gameID, 7560, 5, true)

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 7560 || !scores[0].Won {
		t.Errorf("Unexpected scores: %+v", scores)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Wins != 1 || stats.BestLevel != 5 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}
