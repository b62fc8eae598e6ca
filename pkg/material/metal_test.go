package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestNewMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		name         string
		inputFuzz    float64
		expectedFuzz float64
	}{
		{"Valid fuzz 0.0", 0.0, 0.0},
		{"Valid fuzz 0.5", 0.5, 0.5},
		{"Valid fuzz 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzz)
			if metal.Fuzz != tt.expectedFuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.expectedFuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name     string
		incoming core.Vec3
		expected core.Vec3
	}{
		{"Perpendicular", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)},
		{"45 degrees", core.NewVec3(0, -1, -1).Normalize(), core.NewVec3(0, -1, 1).Normalize()},
		{"Unnormalized input", core.NewVec3(3, 0, -4), core.NewVec3(0.6, 0, 0.8)},
	}

	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayIn := core.NewRay(tt.incoming.Negate(), tt.incoming)
			scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
			if !didScatter {
				t.Fatal("Metal should scatter")
			}

			if !vecClose(scatter.Scattered.Direction, tt.expected, 1e-10) {
				t.Errorf("Perfect reflection failed: expected %v, got %v", tt.expected, scatter.Scattered.Direction)
			}

			// Mirror symmetry about the normal
			in := tt.incoming.Normalize().Dot(hit.Normal)
			out := scatter.Scattered.Direction.Dot(hit.Normal)
			if !vecClose(core.NewVec3(in, 0, 0), core.NewVec3(-out, 0, 0), 1e-10) {
				t.Errorf("Expected normal component to flip sign: in %f, out %f", in, out)
			}

			if !scatter.Attenuation.Equals(albedo) {
				t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
			}
		})
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	directions := make([]core.Vec3, 10)
	for i := range directions {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction

		// Perturbation stays inside a sphere of radius fuzz around the mirror direction
		if directions[i].Subtract(core.NewVec3(0, 0, 1)).Length() > 0.5+1e-12 {
			t.Errorf("Direction %v strays further than fuzz from the mirror direction", directions[i])
		}
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if !vecClose(directions[i], directions[0], 1e-10) {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Fuzzy metal should produce varying reflection directions")
	}
}

func TestMetal_ScatterAbsorption(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(123)))

	// Grazing angle ray that may scatter below surface with high fuzz
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	absorptionCount := 0
	scatterCount := 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if didScatter {
			scatterCount++
			if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Fatalf("Scattered ray below surface: %v", scatter.Scattered.Direction)
			}
		} else {
			absorptionCount++
		}
	}

	if absorptionCount == 0 {
		t.Error("Expected some rays to be absorbed with high fuzz at grazing angle")
	}
	if scatterCount == 0 {
		t.Error("Expected some rays to be scattered")
	}
}
