package playlist

import (
	"fmt"
	"slices"
	"testing"
)

func TestShufflePreservesElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int
	}{
		{"empty", []int{}},
		{"single", []int{7}},
		{"two", []int{1, 2}},
		{"ten", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"duplicates", []int{1, 1, 2, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := slices.Clone(tt.input)
			got := Shuffle(tt.input)

			if len(got) != len(tt.input) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.input))
			}
			if !slices.Equal(tt.input, original) {
				t.Errorf("input was mutated: %v, want %v", tt.input, original)
			}

			sortedGot := slices.Clone(got)
			slices.Sort(sortedGot)
			sortedWant := slices.Clone(original)
			slices.Sort(sortedWant)
			if !slices.Equal(sortedGot, sortedWant) {
				t.Errorf("Shuffle(%v) = %v, not a permutation", original, got)
			}
		})
	}
}

func TestShuffleReturnsCopyForTrivialInput(t *testing.T) {
	t.Parallel()

	in := []string{"only"}
	out := Shuffle(in)
	out[0] = "changed"
	if in[0] != "only" {
		t.Error("Shuffle of a single element shares storage with its input")
	}
}

func TestShuffleProducesDifferentOrders(t *testing.T) {
	t.Parallel()

	input := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	seen := make(map[string]struct{})
	for range 100 {
		seen[fmt.Sprint(Shuffle(input))] = struct{}{}
	}
	if len(seen) < 2 {
		t.Errorf("expected more than one distinct order over 100 shuffles, got %d", len(seen))
	}
}

func TestShuffleWithIsFisherYates(t *testing.T) {
	t.Parallel()

	// Always picking j = 0 rotates the walk: each step swaps i with 0.
	var draws []int
	got := ShuffleWith(func(n int) int {
		draws = append(draws, n)
		return 0
	}, []string{"a", "b", "c", "d"})

	if want := []int{4, 3, 2}; !slices.Equal(draws, want) {
		t.Errorf("draw bounds = %v, want %v", draws, want)
	}
	if want := []string{"b", "c", "d", "a"}; !slices.Equal(got, want) {
		t.Errorf("ShuffleWith = %v, want %v", got, want)
	}
}
