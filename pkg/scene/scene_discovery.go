package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `yaml:"id"`          // Name accepted by NewScene
	DisplayName string `yaml:"displayName"` // Human-readable name
	Description string `yaml:"description"` // Short description
}

type builtinScene struct {
	description string
	create      func(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]builtinScene{
	"simple": {
		description: "Single diffuse sphere under a sky gradient",
		create: func(_ int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewSimpleScene(cameraOverrides...)
		},
	},
	"default": {
		description: "Ground with diffuse, glass bubble and fuzzy metal spheres",
		create: func(_ int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewDefaultScene(cameraOverrides...)
		},
	},
	"bouncing": {
		description: "Random field of small spheres with motion blur",
		create:      NewBouncingScene,
	},
}

// NewScene creates the named built-in scene. The seed only affects randomly generated scenes.
func NewScene(name string, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return builtin.create(seed, cameraOverrides...), nil
}

// Names returns the names of the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns metadata for every built-in scene, sorted by ID
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtinScenes[name].description,
		})
	}
	return scenes
}

// titleCase converts a filename-style string to title case
// e.g., "bouncing-spheres" -> "Bouncing Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
