package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewSimpleScene creates a single grey diffuse sphere in front of the default camera
func NewSimpleScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene(renderer.DefaultCameraConfig(), renderer.DefaultSamplingConfig(), cameraOverrides...)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	return s
}
