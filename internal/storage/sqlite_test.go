package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []struct {
		player string
		score  int
		level  int
	}{
		{"ann", 100, 1},
		{"bob", 50, 1},
		{"ann", 200, 2},
		{"cid", 200, 3},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r.player, r.score, r.level); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(top))
	}

	// Sorted by score descending, earlier game first on ties
	want := []struct {
		player string
		score  int
	}{
		{"ann", 200},
		{"cid", 200},
		{"ann", 100},
		{"bob", 50},
	}
	for i, w := range want {
		if top[i].Player != w.player || top[i].Score != w.score {
			t.Errorf("top[%d] = %s/%d, want %s/%d", i, top[i].Player, top[i].Score, w.player, w.score)
		}
	}
	if top[1].Level != 3 {
		t.Errorf("Expected level 3, got %d", top[1].Level)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveResult("ann", i*10, 1); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 results, got %d", len(top))
	}
	if top[0].Score != 140 {
		t.Errorf("Expected best score 140, got %d", top[0].Score)
	}

	// Non-positive limit falls back to 10
	top, err = store.TopResults(0)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected 10 results, got %d", len(top))
	}
}

func TestStoreBestFor(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestFor("nobody")
	if err != nil {
		t.Fatalf("BestFor() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unknown player, got %d", best)
	}

	store.SaveResult("ann", 30, 1)
	store.SaveResult("ann", 90, 2)
	store.SaveResult("bob", 500, 4)

	best, err = store.BestFor("ann")
	if err != nil {
		t.Fatalf("BestFor() failed: %v", err)
	}
	if best != 90 {
		t.Errorf("Expected 90, got %d", best)
	}
}

func TestStoreRejectsInvalidResults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult("   ", 10, 1); err == nil {
		t.Error("Expected error for blank player")
	}
	if _, err := store.SaveResult("ann", -1, 1); err == nil {
		t.Error("Expected error for negative score")
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no results, got %d", n)
	}
}

func TestStoreIsolation(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveResult("ann", 10, 1)
	a.SaveResult("bob", 20, 1)

	// Separate stores never share results
	n, err := b.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected empty second store, got %d", n)
	}
	n, _ = a.Count()
	if n != 2 {
		t.Errorf("Expected 2 results in first store, got %d", n)
	}
}

func TestStoreCreatedAt(t *testing.T) {
	store := openTestStore(t)
	store.SaveResult("ann", 10, 1)

	top, err := store.TopResults(1)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}
