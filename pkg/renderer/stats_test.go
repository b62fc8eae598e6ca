package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestPixelStats_AddSample(t *testing.T) {
	var ps PixelStats

	if !ps.GetColor().Equals(core.Vec3{}) {
		t.Errorf("Expected black for an unsampled pixel, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1, 1, 1))
	ps.AddSample(core.NewVec3(0, 0, 0))

	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if !vecClose(ps.GetColor(), core.NewVec3(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Expected average (0.5,0.5,0.5), got %v", ps.GetColor())
	}
	// Luminance samples 1 and 0 have variance 0.25
	if math.Abs(ps.Variance()-0.25) > 1e-9 {
		t.Errorf("Expected variance 0.25, got %f", ps.Variance())
	}
}

func TestNewRenderStats(t *testing.T) {
	pixels := make([]PixelStats, 4)
	pixels[0].AddSample(core.NewVec3(1, 1, 1))
	pixels[1].AddSample(core.NewVec3(1, 1, 1))
	pixels[2].AddSample(core.NewVec3(0, 0, 0))
	pixels[3].AddSample(core.NewVec3(0, 0, 0))

	stats := newRenderStats(pixels, 1)

	if stats.TotalPixels != 4 || stats.TotalSamples != 4 {
		t.Errorf("Expected 4 pixels and samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
	if math.Abs(stats.MeanLuminance-0.5) > 1e-9 {
		t.Errorf("Expected mean luminance 0.5, got %f", stats.MeanLuminance)
	}
	if math.Abs(stats.LuminanceStdDev-0.5) > 1e-9 {
		t.Errorf("Expected luminance std dev 0.5, got %f", stats.LuminanceStdDev)
	}
	if stats.MeanPixelStdDev != 0 {
		t.Errorf("Expected no per-pixel noise with single samples, got %f", stats.MeanPixelStdDev)
	}
}

func TestNewRenderStats_Empty(t *testing.T) {
	stats := newRenderStats(nil, 10)
	if stats.TotalPixels != 0 || stats.MaxSamples != 10 {
		t.Errorf("Unexpected stats for empty render: %+v", stats)
	}
}
