package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Directions is the fixed iteration order for atlas
// composition. Every entity gets one sheet per direction.
var Directions = []string{"south", "west", "east", "north"}

const (
	framePrefix = "frame_"
	frameExt    = ".png"
)

// frameFiles lists the frame images for one animation
// direction, sorted by filename. Frame indices are
// zero-padded, so the lexicographic order is the frame
// order. A missing direction directory yields no frames;
// that is a normal condition, not an error.
func frameFiles(animDir, direction string) []string {
	dirPath := filepath.Join(animDir, direction)
	entries, err := os.ReadDir(dirPath)

	if err != nil {
		return nil
	}

	var frames []string

	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() || !strings.HasPrefix(name, framePrefix) ||
			!strings.HasSuffix(name, frameExt) {
			continue
		}

		frames = append(frames, filepath.Join(dirPath, name))
	}

	sort.Strings(frames)

	return frames
}
