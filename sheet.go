package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// maxFrameCount returns the widest frame count found
// across the plan's rows. Each row is sampled from the
// first direction that has any frames for it; later
// directions are not checked even if they hold more
// frames. Returns 0 when no row has frames in any
// direction, in which case there is nothing to compose.
func maxFrameCount(animsDir string, plan RowPlan) int {
	maxFrames := 0

	for _, row := range plan {
		if row.Source == "" {
			continue
		}

		animDir := filepath.Join(animsDir, row.Source)

		if _, err := os.Stat(animDir); err != nil {
			continue
		}

		for _, direction := range Directions {
			frames := frameFiles(animDir, direction)

			if len(frames) > 0 {
				if len(frames) > maxFrames {
					maxFrames = len(frames)
				}

				break
			}
		}
	}

	return maxFrames
}

// composeSheet assembles the atlas sheet for one entity
// and direction. The canvas is maxFrames cells wide and
// one cell per plan row tall, fully transparent where no
// frame lands. Frames keep their own alpha and are pasted
// top-left-anchored into their cells. Rows without frames
// in this direction get a warning and no metadata entry;
// their row index stays reserved so (row, column) means
// the same thing on every direction's sheet.
func composeSheet(
	animsDir, entity, direction string,
	plan RowPlan, maxFrames, cellSize int,
) (*image.RGBA, map[string]AnimationMeta, error) {
	sheet := image.NewRGBA(image.Rect(
		0, 0, maxFrames*cellSize, len(plan)*cellSize))
	animations := map[string]AnimationMeta{}

	for row, planRow := range plan {
		if planRow.Source == "" {
			continue
		}

		animDir := filepath.Join(animsDir, planRow.Source)
		frames := frameFiles(animDir, direction)

		if len(frames) == 0 {
			fmt.Printf("  Warning: No frames for %s/%s/%s\n",
				entity, planRow.Source, direction)
			continue
		}

		for col, framePath := range frames {
			frame, err := loadFrame(framePath)

			if err != nil {
				return nil, nil, err
			}

			cell := image.Rect(
				col*cellSize, row*cellSize,
				(col+1)*cellSize, (row+1)*cellSize)
			draw.Draw(sheet, cell, frame,
				frame.Bounds().Min, draw.Src)
		}

		animations[planRow.State] = AnimationMeta{
			Row:    row,
			Frames: len(frames),
			Source: planRow.Source,
		}
	}

	return sheet, animations, nil
}

func loadFrame(path string) (image.Image, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf(
			"failed to open the frame '%s': %w", path, err)
	}
	defer file.Close()

	frame, _, err := image.Decode(file)

	if err != nil {
		return nil, fmt.Errorf(
			"failed to decode the frame '%s': %w", path, err)
	}

	return frame, nil
}
