package draw

import "testing"

func TestComputeSizing(t *testing.T) {
	cases := []struct {
		n                     int
		wantSize, wantRounds, wantByes int
	}{
		{1, 1, 0, 0},
		{2, 2, 1, 0},
		{3, 4, 2, 1},
		{4, 4, 2, 0},
		{5, 8, 3, 3},
		{16, 16, 4, 0},
		{17, 32, 5, 15},
		{128, 128, 7, 0},
	}
	for _, c := range cases {
		size, rounds, byes := computeSizing(c.n)
		if size != c.wantSize || rounds != c.wantRounds || byes != c.wantByes {
			t.Errorf("computeSizing(%d) = (%d,%d,%d), want (%d,%d,%d)",
				c.n, size, rounds, byes, c.wantSize, c.wantRounds, c.wantByes)
		}
	}
}

func TestCanonicalSeedPositions(t *testing.T) {
	cases := []struct {
		size int
		want []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{4, []int{0, 3, 1, 2}},
		{8, []int{0, 7, 3, 4, 1, 6, 2, 5}},
	}
	for _, c := range cases {
		got := canonicalSeedPositions(c.size)
		if len(got) != len(c.want) {
			t.Fatalf("canonicalSeedPositions(%d) length = %d, want %d", c.size, len(got), len(c.want))
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("canonicalSeedPositions(%d)[%d] = %d, want %d", c.size, i, got[i], c.want[i])
			}
		}
	}
}
