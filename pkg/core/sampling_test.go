package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleOnUnitSphere_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Sample %d not on unit sphere: %v (length %f)", i, v, v.Length())
		}
	}
}

func TestSamplePointInUnitSphere_Inside(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitSphere(sampler.Get3D())
		if p.Length() > 1+1e-12 {
			t.Fatalf("Sample %d outside unit sphere: %v", i, p)
		}
	}
}

func TestSamplePointInUnitDisk_Inside(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Disk sample %d left the plane: %v", i, p)
		}
		if p.Length() > 1+1e-12 {
			t.Fatalf("Disk sample %d outside unit disk: %v", i, p)
		}
	}

	if center := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); !center.Equals(Vec3{}) {
		t.Errorf("Expected centre sample to map to origin, got %v", center)
	}
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D out of [0,1): %f", v)
		}
	}
}
