package domain

import (
	"math"
	"testing"
)

func TestHaversineKmIdentity(t *testing.T) {
	points := []Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 28.61, Lon: 77.23},
		{Lat: -90, Lon: 180},
		{Lat: 45.123456, Lon: -122.654321},
	}

	for _, p := range points {
		if d := HaversineKm(p, p); d != 0 {
			t.Errorf("HaversineKm(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	a := Coordinates{Lat: 28.61, Lon: 77.23}
	b := Coordinates{Lat: 19.07, Lon: 72.87}

	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)
	if ab != ba {
		t.Errorf("HaversineKm not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("expected positive distance, got %v", ab)
	}
}

func TestHaversineKmDelhiReference(t *testing.T) {
	// 0.01 degrees of latitude is roughly 1.1 km anywhere on the sphere.
	a := Coordinates{Lat: 28.61, Lon: 77.23}
	b := Coordinates{Lat: 28.62, Lon: 77.23}

	d := HaversineKm(a, b)
	if math.Abs(d-1.1) > 0.05 {
		t.Errorf("HaversineKm(Delhi, +0.01 lat) = %v, want 1.1 +/- 0.05", d)
	}
}

func TestHaversineKmAntipodal(t *testing.T) {
	a := Coordinates{Lat: 0, Lon: 0}
	b := Coordinates{Lat: 0, Lon: 180}

	d := HaversineKm(a, b)
	if math.IsNaN(d) {
		t.Fatal("HaversineKm returned NaN for antipodal points")
	}

	// Half the Earth's circumference at the mean radius.
	want := math.Pi * 6371.0
	if math.Abs(d-want) > 1.0 {
		t.Errorf("HaversineKm antipodal = %v, want ~%v", d, want)
	}
}

func TestCoordinatesValidate(t *testing.T) {
	valid := []Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
	}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Errorf("Validate(%v) = %v, want nil", c, err)
		}
	}

	invalid := []Coordinates{
		{Lat: 90.0001, Lon: 0},
		{Lat: -91, Lon: 0},
		{Lat: 0, Lon: 180.5},
		{Lat: 0, Lon: -181},
	}
	for _, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate(%v) = nil, want error", c)
		}
	}
}
