package accounts

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "accounts.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndVerify(t *testing.T) {
	store := openTestStore(t)

	created, err := store.Create("alice", "secret123")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !created {
		t.Fatal("expected account to be created")
	}

	ok, err := store.Verify("alice", "secret123")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("expected correct password to verify")
	}

	ok, err = store.Verify("alice", "wrongpass")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("expected wrong password to fail")
	}

	ok, err = store.Verify("nobody", "secret123")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Error("expected unknown user to fail")
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	store := openTestStore(t)

	created, err := store.Create("bob", "first")
	if err != nil || !created {
		t.Fatalf("first Create failed: created=%v err=%v", created, err)
	}

	created, err = store.Create("bob", "second")
	if err != nil {
		t.Fatalf("duplicate Create errored: %v", err)
	}
	if created {
		t.Error("expected duplicate username to be rejected")
	}

	// The original password must still work.
	ok, err := store.Verify("bob", "first")
	if err != nil || !ok {
		t.Errorf("original password no longer verifies: ok=%v err=%v", ok, err)
	}
}

func TestCreateRejectsEmptyFields(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Create("", "pass"); err == nil {
		t.Error("expected empty username to be rejected")
	}
	if _, err := store.Create("user", ""); err == nil {
		t.Error("expected empty password to be rejected")
	}
}

func TestHighScoreLifecycle(t *testing.T) {
	store := openTestStore(t)

	// Unknown user reads as zero.
	score, err := store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("unknown user high score = %d, want 0", score)
	}

	if _, err := store.Create("alice", "secret123"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Fresh account reads as zero.
	score, err = store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("fresh account high score = %d, want 0", score)
	}

	// A run ending at 150 persists.
	if err := store.SetHighScore("alice", 150); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	score, err = store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 150 {
		t.Errorf("high score = %d, want 150", score)
	}

	// A later run ending at 90 leaves 150 untouched.
	if err := store.SetHighScore("alice", 90); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	score, err = store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 150 {
		t.Errorf("high score after lower run = %d, want 150", score)
	}

	// A better run replaces it.
	if err := store.SetHighScore("alice", 200); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	score, err = store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 200 {
		t.Errorf("high score after better run = %d, want 200", score)
	}
}

func TestSetHighScoreUnknownUserIsNoop(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("ghost", 500); err != nil {
		t.Fatalf("SetHighScore for unknown user errored: %v", err)
	}
	score, err := store.HighScore("ghost")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("unknown user high score = %d, want 0", score)
	}
}

func TestHighScoreMalformedValue(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Create("carol", "pw"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.db.Exec("UPDATE accounts SET high_score = -7 WHERE username = ?", "carol"); err != nil {
		t.Fatalf("corrupting score failed: %v", err)
	}

	score, err := store.HighScore("carol")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("malformed stored score read as %d, want 0", score)
	}
}

func TestLeaderboard(t *testing.T) {
	store := openTestStore(t)

	users := []struct {
		name  string
		score int
	}{
		{"alice", 300},
		{"bob", 150},
		{"carol", 450},
		{"dave", 0},
	}
	for _, u := range users {
		if _, err := store.Create(u.name, "pw"); err != nil {
			t.Fatalf("Create %s failed: %v", u.name, err)
		}
		if u.score > 0 {
			if err := store.SetHighScore(u.name, u.score); err != nil {
				t.Fatalf("SetHighScore %s failed: %v", u.name, err)
			}
		}
	}

	entries, err := store.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Leaderboard returned %d entries, want 3 (zero scores excluded)", len(entries))
	}

	wantOrder := []string{"carol", "alice", "bob"}
	for i, want := range wantOrder {
		if entries[i].Username != want {
			t.Errorf("entry %d = %s, want %s", i, entries[i].Username, want)
		}
	}

	// Limit applies.
	entries, err = store.Leaderboard(2)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Leaderboard(2) returned %d entries, want 2", len(entries))
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deep", "accounts.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open with nested path failed: %v", err)
	}
	store.Close()
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "accounts.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := store.Create("alice", "secret123"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.SetHighScore("alice", 42); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	score, err := store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 42 {
		t.Errorf("high score after reopen = %d, want 42", score)
	}
}
