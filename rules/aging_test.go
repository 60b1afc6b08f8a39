package rules

import "testing"

func TestAge(t *testing.T) {
	for counter := FreshAge; counter < MaxAge; counter++ {
		next, ok := Age(counter)
		if !ok || next != counter+1 {
			t.Fatalf("Age(%d) = %d, %v; expected %d, true", counter, next, ok, counter+1)
		}
	}
	for _, counter := range []uint8{MaxAge, MaxAge + 1, 255} {
		if _, ok := Age(counter); ok {
			t.Fatalf("Age(%d) should drop the cell", counter)
		}
	}
}

func TestCanInfluence(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := n == 2 || n == 3
		if CanInfluence(n) != want {
			t.Fatalf("CanInfluence(%d) = %v, expected %v", n, !want, want)
		}
	}
}

func TestDecide(t *testing.T) {
	cases := []struct {
		neighbors int
		prev      uint8
		present   bool
		want      bool
	}{
		{3, 0, false, true},
		{3, 1, true, true},
		{3, 77, true, true},
		{2, 1, true, true},
		{2, 2, true, false},
		{2, 0, false, false},
		{1, 1, true, false},
		{4, 1, true, false},
	}
	for _, tc := range cases {
		if got := Decide(tc.neighbors, tc.prev, tc.present); got != tc.want {
			t.Fatalf("Decide(%d, %d, %v) = %v, expected %v", tc.neighbors, tc.prev, tc.present, got, tc.want)
		}
	}
}
