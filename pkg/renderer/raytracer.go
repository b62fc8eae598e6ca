package renderer

import (
	"math/rand"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Hittable
	GetCameraConfig() CameraConfig
	GetSamplingConfig() SamplingConfig
}

// Framebuffer holds linear, unclamped, pre-gamma colors in row-major order, top row first
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, color core.Vec3) {
	fb.Pixels[j*fb.Width+i] = color
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	camera *Camera
	config SamplingConfig
	logger core.Logger
	seed   int64
}

// NewRaytracer creates a new raytracer. A nil logger discards progress output.
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		camera: NewCamera(scene.GetCameraConfig()),
		config: scene.GetSamplingConfig(),
		logger: logger,
		seed:   42, // Deterministic unless told otherwise
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetSeed sets the seed of the random source used by the next Render
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// Camera returns the camera derived from the scene
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render renders every pixel, top row first, and returns the averaged linear colors
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	return rt.RenderWithSampler(core.NewRandomSampler(rand.New(rand.NewSource(rt.seed))))
}

// RenderWithSampler renders using the given sampler for every random decision
func (rt *Raytracer) RenderWithSampler(sampler core.Sampler) (*Framebuffer, RenderStats) {
	width, height := rt.camera.Width(), rt.camera.Height()
	fb := NewFramebuffer(width, height)
	world := rt.scene.GetWorld()
	pixelStats := make([]PixelStats, width*height)

	for j := 0; j < height; j++ {
		rt.logger.Printf("Scanlines remaining: %d", height-j)
		for i := 0; i < width; i++ {
			ps := &pixelStats[j*width+i]
			rt.camera.SamplePixel(i, j, world, rt.config, sampler, ps)
			fb.Set(i, j, ps.GetColor())
		}
	}

	stats := newRenderStats(pixelStats, rt.config.SamplesPerPixel)
	rt.logger.Printf("Done: %d pixels, %d samples", stats.TotalPixels, stats.TotalSamples)
	return fb, stats
}
