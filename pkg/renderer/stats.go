package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int     // Total number of pixels rendered
	TotalSamples    int     // Total number of samples taken
	AverageSamples  float64 // Average samples per pixel
	MaxSamples      int     // Samples requested per pixel
	MeanLuminance   float64 // Mean linear luminance over all pixels
	LuminanceStdDev float64 // Standard deviation of pixel luminance
	MeanPixelStdDev float64 // Mean per-pixel sample standard deviation (noise estimate)
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the population variance of the sample luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return max(0, ps.LuminanceSqAccum/n-mean*mean)
}

// newRenderStats summarizes per-pixel statistics
func newRenderStats(pixels []PixelStats, samplesPerPixel int) RenderStats {
	stats := RenderStats{
		TotalPixels: len(pixels),
		MaxSamples:  samplesPerPixel,
	}
	if len(pixels) == 0 {
		return stats
	}

	luminance := make([]float64, len(pixels))
	noise := make([]float64, len(pixels))
	for i := range pixels {
		stats.TotalSamples += pixels[i].SampleCount
		luminance[i] = pixels[i].GetColor().Luminance()
		noise[i] = math.Sqrt(pixels[i].Variance())
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.MeanLuminance, stats.LuminanceStdDev = stat.PopMeanStdDev(luminance, nil)
	stats.MeanPixelStdDev = stat.Mean(noise, nil)
	return stats
}
