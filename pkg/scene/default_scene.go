package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewDefaultScene creates a ground sphere with diffuse, glass and metal spheres on it
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.LookFrom = core.NewVec3(-2, 2, 1) // Above and to the left
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, -1)   // Centre sphere
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.DefocusAngle = 10
	defaultCameraConfig.FocusDistance = 3.4

	s := newScene(defaultCameraConfig, renderer.DefaultSamplingConfig(), cameraOverrides...)

	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianCenter := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glassLeft := material.NewDielectric(1.5)
	bubbleLeft := material.NewDielectric(1.0 / 1.5)
	metalRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround)
	s.AddSphere(core.NewVec3(0, 0, -1.2), 0.5, lambertianCenter)

	// Glass shell with an air bubble inside
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glassLeft)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.4, bubbleLeft)

	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalRight)

	return s
}
