package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// AnimationMeta describes one composed atlas row:
// where it sits, how many frames it holds and which
// source animation it came from.
type AnimationMeta struct {
	Row    int    `yaml:"row"`
	Frames int    `yaml:"frames"`
	Source string `yaml:"source"`
}

// DirectionMeta points at the sheet composed for one
// direction and lists the rows that actually hold frames.
type DirectionMeta struct {
	Sheet      string                   `yaml:"sheet"`
	Animations map[string]AnimationMeta `yaml:"animations"`
}

// EntityMeta is the full atlas description of one entity.
// MaxFrames and FrameSize are shared by all four of its
// directional sheets.
type EntityMeta struct {
	Kind       string                   `yaml:"kind"`
	FrameSize  int                      `yaml:"frameSize"`
	MaxFrames  int                      `yaml:"maxFrames"`
	Directions map[string]DirectionMeta `yaml:"directions"`
}

const (
	kindCharacter = "character"
	kindEnemy     = "enemy"
)

// WriteMetadata serializes the aggregate atlas document
// for every processed entity. The YAML encoder sorts map
// keys, so re-running on the same inputs reproduces the
// document byte for byte.
func WriteMetadata(path string, atlases map[string]EntityMeta) error {
	data, err := yaml.Marshal(atlases)

	if err != nil {
		return fmt.Errorf(
			"failed to serialize the atlas metadata: %w", err)
	}

	err = os.WriteFile(path, data, 0666)

	if err != nil {
		return fmt.Errorf(
			"failed to write the atlas metadata: %w", err)
	}

	return nil
}
