package core

import (
	"math"
	"testing"
)

func TestNewAABBFromPoints_OrderIndependent(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(-1, 2, 0)

	for _, box := range []AABB{NewAABBFromPoints(a, b), NewAABBFromPoints(b, a)} {
		if box.X != (Interval{Min: -1, Max: 1}) {
			t.Errorf("Expected x=[-1,1], got %v", box.X)
		}
		if box.Y != (Interval{Min: -2, Max: 2}) {
			t.Errorf("Expected y=[-2,2], got %v", box.Y)
		}
		if box.Z != (Interval{Min: 0, Max: 3}) {
			t.Errorf("Expected z=[0,3], got %v", box.Z)
		}
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		rayT     Interval
		expected bool
		tMin     float64
		tMax     float64
	}{
		{
			name:     "Straight through",
			ray:      NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)),
			rayT:     NewInterval(0, math.Inf(1)),
			expected: true,
			tMin:     4,
			tMax:     6,
		},
		{
			name:     "Negative direction on every axis",
			ray:      NewRay(NewVec3(3, 3, 3), NewVec3(-1, -1, -1)),
			rayT:     NewInterval(0, math.Inf(1)),
			expected: true,
			tMin:     2,
			tMax:     4,
		},
		{
			name:     "Parallel outside slab",
			ray:      NewRay(NewVec3(0, 2, 5), NewVec3(0, 0, -1)),
			rayT:     NewInterval(0, math.Inf(1)),
			expected: false,
		},
		{
			name:     "Pointing away",
			ray:      NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)),
			rayT:     NewInterval(0, math.Inf(1)),
			expected: false,
		},
		{
			name:     "Box beyond tMax",
			ray:      NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)),
			rayT:     NewInterval(0, 3),
			expected: false,
		},
		{
			name:     "Origin inside",
			ray:      NewRay(NewVec3(0.5, 0, 0), NewVec3(1, 0, 0)),
			rayT:     NewInterval(0.001, math.Inf(1)),
			expected: true,
			tMin:     0.001,
			tMax:     0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayT := tt.rayT
			hit := box.Hit(tt.ray, &rayT)
			if hit != tt.expected {
				t.Fatalf("Expected hit=%t, got %t", tt.expected, hit)
			}
			if !hit {
				return
			}

			const tolerance = 1e-9
			if math.Abs(rayT.Min-tt.tMin) > tolerance || math.Abs(rayT.Max-tt.tMax) > tolerance {
				t.Errorf("Expected narrowed interval [%f,%f], got [%f,%f]", tt.tMin, tt.tMax, rayT.Min, rayT.Max)
			}
		})
	}
}

func TestAABB_UnionAndCenter(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(2, -1, 0), NewVec3(6, 0, 1))

	union := a.Union(b)
	expected := NewAABBFromPoints(NewVec3(0, -1, 0), NewVec3(6, 1, 1))
	if union != expected {
		t.Errorf("Expected %v, got %v", expected, union)
	}
	if got := EmptyAABB.Union(a); got != a {
		t.Errorf("EmptyAABB should be the union identity, got %v", got)
	}
	if union.LongestAxis() != 0 {
		t.Errorf("Expected longest axis 0, got %d", union.LongestAxis())
	}
	if c := union.Center(); !c.Equals(NewVec3(3, 0, 0.5)) {
		t.Errorf("Expected center (3,0,0.5), got %v", c)
	}
}
