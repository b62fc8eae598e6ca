package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/config"
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "raytracer"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Recursive ray tracer for sphere scenes",
		Long: `Renders scenes of spheres with diffuse, metal and glass materials
using a recursive Monte Carlo estimator. Images are written as PNG or
plain-text PPM.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRenderCmd(), newScenesCmd(), newInitConfigCmd())
	return rootCmd
}

func newRenderCmd() *cobra.Command {
	v := viper.New()
	var configFile string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			var logger core.Logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			if quiet {
				logger = log.New(io.Discard, "", 0)
			}

			return runRender(cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file (yaml)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, info := range scene.ListScenes() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", info.ID, info.Description)
			}
		},
	}
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "raytracer.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
}

// createScene builds the configured scene with image overrides applied
func createScene(cfg *config.Config) (*scene.Scene, error) {
	overrides := renderer.CameraConfig{
		Width:       cfg.Image.Width,
		AspectRatio: cfg.Image.AspectRatio,
	}

	s, err := scene.NewScene(cfg.Scene, cfg.Seed, overrides)
	if err != nil {
		return nil, err
	}

	if cfg.Sampling.SamplesPerPixel > 0 {
		s.SamplingConfig.SamplesPerPixel = cfg.Sampling.SamplesPerPixel
	}
	if cfg.Sampling.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = cfg.Sampling.MaxDepth
	}
	return s, nil
}

// runRender renders the configured scene and writes the image
func runRender(cfg *config.Config, logger core.Logger) error {
	s, err := createScene(cfg)
	if err != nil {
		return err
	}

	logger.Printf("Rendering scene %q (%d objects, %d spp, depth %d)",
		cfg.Scene, s.GetPrimitiveCount(), s.SamplingConfig.SamplesPerPixel, s.SamplingConfig.MaxDepth)

	raytracer := renderer.NewRaytracer(s, logger)
	raytracer.SetSeed(cfg.Seed)

	startTime := time.Now()
	fb, stats := raytracer.Render()
	logger.Printf("Render completed in %v (mean luminance %.4f, noise %.4f)",
		time.Since(startTime), stats.MeanLuminance, stats.MeanPixelStdDev)

	if dir := filepath.Dir(cfg.Output.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	if err := writeImage(cfg.Output.Path, cfg.Output.Format, fb); err != nil {
		return err
	}

	logger.Printf("Render saved as %s", cfg.Output.Path)
	return nil
}

func writeImage(path, format string, fb *renderer.Framebuffer) error {
	switch format {
	case "ppm":
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		defer file.Close()
		return output.WritePPM(file, fb)
	case "png":
		return output.SavePNG(path, fb)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
