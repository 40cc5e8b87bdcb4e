package xiter

import (
	"slices"
	"testing"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]string{"role": "menu", "id": "m1", "aria-labelledby": "b1"}
	got := slices.Collect(SortedKeys(m))
	want := []string{"aria-labelledby", "id", "role"}
	if !slices.Equal(got, want) {
		t.Fatalf("SortedKeys() = %v, want %v", got, want)
	}
	if got := slices.Collect(SortedKeys[string, int](nil)); len(got) != 0 {
		t.Fatalf("SortedKeys(nil) = %v, want empty", got)
	}
}

func TestFind(t *testing.T) {
	got, ok := Find([]int{1, 4, 6}, func(v int) bool { return v%2 == 0 })
	if !ok || got != 4 {
		t.Fatalf("Find() = %d, %v, want 4, true", got, ok)
	}
	if _, ok := Find([]int{1, 3}, func(v int) bool { return v%2 == 0 }); ok {
		t.Fatal("Find() ok = true, want false")
	}
}
