// internal/scene/loader.go
package scene

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxDimension bounds the canvas size a scene may request.
const MaxDimension = 8192

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in scene.
func Default() *Scene {
	s, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default scene: %v", err))
	}
	return s
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML into a validated scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the canvas size. Non-positive radii are accepted and
// simply draw nothing.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", s.Width, s.Height)
	}
	if s.Width > MaxDimension || s.Height > MaxDimension {
		return fmt.Errorf("canvas %dx%d exceeds %d", s.Width, s.Height, MaxDimension)
	}
	return nil
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scene: %w", err)
	}
	return data, nil
}
