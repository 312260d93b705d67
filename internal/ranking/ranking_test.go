package ranking

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestHaversine_SamePoint(t *testing.T) {
	if d := Haversine(48.8566, 2.3522, 48.8566, 2.3522); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Paris → London is roughly 344 km.
	d := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	if d < 330 || d > 350 {
		t.Fatalf("expected ~344 km, got %f", d)
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := Haversine(-33.4489, -70.6693, -34.6037, -58.3816)
	b := Haversine(-34.6037, -58.3816, -33.4489, -70.6693)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("expected symmetric distances, got %f and %f", a, b)
	}
}

func TestDistance_MissingCoordinates(t *testing.T) {
	if d := Distance(nil, fp(2.35), fp(48.85), fp(2.35)); d != nil {
		t.Fatalf("expected nil when requester lat missing, got %f", *d)
	}
	if d := Distance(fp(48.85), fp(2.35), nil, nil); d != nil {
		t.Fatalf("expected nil when entity coordinates missing, got %f", *d)
	}
}

func TestAverage_RoundsToOneDecimal(t *testing.T) {
	cases := []struct {
		scores []int
		want   float64
	}{
		{[]int{5, 5, 4}, 4.7},
		{[]int{1}, 1.0},
		{[]int{1, 2}, 1.5},
		{[]int{3, 3, 3, 4}, 3.3},
	}
	for _, tc := range cases {
		got := Average(tc.scores)
		if got == nil || *got != tc.want {
			t.Fatalf("Average(%v): expected %v, got %v", tc.scores, tc.want, got)
		}
	}
}

func TestAverage_Empty(t *testing.T) {
	if got := Average(nil); got != nil {
		t.Fatalf("expected nil for no scores, got %f", *got)
	}
}

func TestWithinRange(t *testing.T) {
	if !WithinRange(fp(10), fp(25)) {
		t.Fatal("distance within radius should pass")
	}
	if WithinRange(fp(30), fp(25)) {
		t.Fatal("distance beyond radius should be excluded")
	}
	if !WithinRange(nil, fp(25)) {
		t.Fatal("unknown distance must pass the radius filter")
	}
	if !WithinRange(fp(1000), nil) {
		t.Fatal("no radius filter means everything passes")
	}
}

func TestMeetsMinRating(t *testing.T) {
	if !MeetsMinRating(fp(4.7), fp(4)) {
		t.Fatal("rating above minimum should pass")
	}
	if MeetsMinRating(fp(3.9), fp(4)) {
		t.Fatal("rating below minimum should be excluded")
	}
	if MeetsMinRating(nil, fp(1)) {
		t.Fatal("unrated entries count as 0 and should be excluded")
	}
	if !MeetsMinRating(nil, nil) {
		t.Fatal("no minimum means everything passes")
	}
}
