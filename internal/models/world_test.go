package models

import "testing"

func TestWorldKeepsJoinOrder(t *testing.T) {
	w := NewWorld()
	for _, id := range []string{"c", "a", "b"} {
		w.AddPlayer(&Player{ID: id})
	}
	if !w.RemovePlayer("a") {
		t.Fatalf("expected a to be removed")
	}
	if w.RemovePlayer("a") {
		t.Fatalf("second removal should report false")
	}
	w.AddPlayer(&Player{ID: "a"})

	got := w.Players()
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("players = %d, want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.ID != want[i] {
			t.Fatalf("players[%d] = %q, want %q", i, p.ID, want[i])
		}
	}
}

func TestWorldReplaceKeepsPosition(t *testing.T) {
	w := NewWorld()
	w.AddPlayer(&Player{ID: "a", Size: 1})
	w.AddPlayer(&Player{ID: "b", Size: 1})
	w.AddPlayer(&Player{ID: "a", Size: 5})

	if w.PlayerCount() != 2 {
		t.Fatalf("count = %d, want 2", w.PlayerCount())
	}
	if p, _ := w.Player("a"); p.Size != 5 {
		t.Fatalf("replacement not stored")
	}
	if w.Players()[0].ID != "a" {
		t.Fatalf("replaced player should keep its slot")
	}
}

func TestWorldFoodIDsIncrease(t *testing.T) {
	w := NewWorld()
	prev := w.NextFoodID()
	for i := 0; i < 10; i++ {
		id := w.NextFoodID()
		if id <= prev {
			t.Fatalf("food id %d not greater than %d", id, prev)
		}
		prev = id
	}
}
