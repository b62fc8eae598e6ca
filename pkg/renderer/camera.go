package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// HitEpsilon is the smallest ray parameter accepted, so scattered rays do not re-hit their origin
const HitEpsilon = 0.001

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Camera-relative up direction
	FocusDistance float64   // Distance to the plane of perfect focus (0 = |LookFrom - LookAt|)
	DefocusAngle  float64   // Variation angle of rays through each pixel in degrees (0 = pinhole)

	BackgroundTop    core.Vec3 // Sky color straight up
	BackgroundBottom core.Vec3 // Sky color straight down
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:            400,
		AspectRatio:      16.0 / 9.0,
		VFov:             90,
		LookFrom:         core.NewVec3(0, 0, 0),
		LookAt:           core.NewVec3(0, 0, -1),
		Up:               core.NewVec3(0, 1, 0),
		FocusDistance:    1,
		DefocusAngle:     0,
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	zero := core.Vec3{}

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != zero {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != zero {
		result.LookAt = override.LookAt
	}
	if override.Up != zero {
		result.Up = override.Up
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.BackgroundTop != zero {
		result.BackgroundTop = override.BackgroundTop
	}
	if override.BackgroundBottom != zero {
		result.BackgroundBottom = override.BackgroundBottom
	}

	return result
}

// Camera generates rays for rendering and estimates the color they carry.
// All fields are derived at construction and never change afterwards.
type Camera struct {
	config CameraConfig

	width  int
	height int

	center      core.Vec3 // Camera center
	pixel00Loc  core.Vec3 // Location of pixel 0, 0
	pixelDeltaU core.Vec3 // Offset to pixel to the right
	pixelDeltaV core.Vec3 // Offset to pixel below

	u, v, w core.Vec3 // Camera frame basis vectors

	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera with the specified configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(config.Width, 1)
	height := max(int(math.Floor(float64(width)/config.AspectRatio)), 1)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	// Determine viewport dimensions
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * config.AspectRatio

	// Calculate the u,v,w unit basis vectors for the camera coordinate frame
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	viewportUpperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		center:       config.LookFrom,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// GetRay generates a ray through a random point inside pixel (i, j).
// i runs left to right, j top to bottom.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	// Box filter: jitter uniformly over [-0.5, 0.5]² pixel deltas
	offset := sampler.Get2D()
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(rayOrigin, pixelSample.Subtract(rayOrigin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

// RayColor estimates the radiance carried back along ray, following at most depth scatter events.
// The recursion attenuation * RayColor(scattered, depth-1) is unrolled into a running product.
func (c *Camera) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)
	rayT := core.Interval{Min: HitEpsilon, Max: math.Inf(1)}

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, rayT)
		if !isHit {
			return throughput.MultiplyVec(c.backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached, no more light is gathered
	return core.Vec3{}
}

// backgroundGradient returns a gradient color based on ray direction
func (c *Camera) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return c.config.BackgroundBottom.Multiply(1.0 - a).Add(c.config.BackgroundTop.Multiply(a))
}

// SamplePixel averages samples independent estimates for pixel (i, j) into ps
func (c *Camera) SamplePixel(i, j int, world geometry.Hittable, config SamplingConfig, sampler core.Sampler, ps *PixelStats) {
	for s := 0; s < config.SamplesPerPixel; s++ {
		ray := c.GetRay(i, j, sampler)
		ps.AddSample(c.RayColor(ray, world, config.MaxDepth, sampler))
	}
}
