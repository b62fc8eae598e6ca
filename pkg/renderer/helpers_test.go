package renderer

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// centerSampler returns 0.5 everywhere, which puts every camera ray through the pixel center
type centerSampler struct{}

func (centerSampler) Get1D() float64 { return 0.5 }

func (centerSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }

func (centerSampler) Get3D() core.Vec3 { return core.NewVec3(0.5, 0.5, 0.5) }

// absorber swallows every ray
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// tintMirror reflects perfectly and tints by a fixed color
type tintMirror struct {
	tint core.Vec3
}

func (m tintMirror) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Incoming:    rayIn,
		Scattered:   core.NewRayAtTime(hit.Point, material.Reflect(rayIn.Direction.Normalize(), hit.Normal), rayIn.Time),
		Attenuation: m.tint,
	}, true
}

type testScene struct {
	world    *geometry.HittableList
	camera   CameraConfig
	sampling SamplingConfig
}

func (s *testScene) GetWorld() geometry.Hittable       { return s.world }
func (s *testScene) GetCameraConfig() CameraConfig     { return s.camera }
func (s *testScene) GetSamplingConfig() SamplingConfig { return s.sampling }

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
