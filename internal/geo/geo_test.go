package geo

import (
	"math"
	"testing"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	points := []Point{
		{51.6419, -2.6773},
		{0, 0},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}

	for _, p := range points {
		if d := Distance(p.Lat, p.Lng, p.Lat, p.Lng); d > 1e-9 {
			t.Errorf("Distance(%v, %v, same) = %v, want ~0", p.Lat, p.Lng, d)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{51.6419, -2.6773, 51.4545, -2.5879},
		{40.7128, -74.0060, 34.0522, -118.2437},
		{-22.9068, -43.1729, 35.6762, 139.6503},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceChepstowToBristol(t *testing.T) {
	// Regression fixture: Chepstow to Bristol center is about 13.2 miles.
	d := Distance(51.6419, -2.6773, 51.4545, -2.5879)
	if math.Abs(d-13.2) > 0.5 {
		t.Errorf("Chepstow to Bristol = %v miles, want 13.2 +/- 0.5", d)
	}
}

func TestPointDistanceFrom(t *testing.T) {
	home := Point{Lat: 51.6419, Lng: -2.6773}
	want := Distance(51.6419, -2.6773, 51.4545, -2.5879)
	if got := home.DistanceFrom(51.4545, -2.5879); got != want {
		t.Errorf("DistanceFrom = %v, want %v", got, want)
	}
}

func TestDistanceNaNPropagates(t *testing.T) {
	if d := Distance(math.NaN(), 0, 51.0, -2.0); !math.IsNaN(d) {
		t.Errorf("Distance with NaN input = %v, want NaN", d)
	}
}
