package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

var (
	assetsPath       string
	sheetsPath       string
	metadataFileName string
	resourceFilePath string
	rosterPath       string
	cellSize         int
)

// referenceHero is the entity whose east-facing metadata
// is printed as a renderer config example after a run.
const referenceHero = "bolt"

// skipDirs are top-level asset directories that hold no
// hero animation trees.
var skipDirs = map[string]bool{
	"sheets":   true,
	"enemies":  true,
	"objects":  true,
	"tilesets": true,
}

func parseFlags() {
	flag.StringVar(&assetsPath, "assets",
		filepath.Join("assets", "sprites", "pixellab"),
		"Path to the directory where entity animation frames are stored.")
	flag.StringVar(&sheetsPath, "out", "",
		"Path to the directory to write atlas sheets to (defaults to 'sheets' under the assets directory).")
	flag.StringVar(&metadataFileName, "meta", "atlas-meta.yml",
		"Name of the aggregate atlas metadata file, written to the output directory.")
	flag.StringVar(&resourceFilePath, "res", "./atlases.res",
		"Resource file to store atlas sheets and descriptions (empty to skip packing).")
	flag.StringVar(&rosterPath, "roster", "",
		"Path to a YAML roster overriding the built-in animation tables.")
	flag.IntVar(&cellSize, "cell-size", 64,
		"Width and height of one atlas cell in pixels.")

	flag.Parse()
}

func main() {
	parseFlags()

	err := run(assetsPath, sheetsPath, metadataFileName,
		resourceFilePath, rosterPath, cellSize)
	handleError(err)
}

// run composes every hero and enemy atlas found under the
// assets directory, writes the aggregate metadata document
// and optionally packs everything into a resource file.
// A missing assets directory aborts the whole run before
// anything is written.
func run(
	assetsPath, sheetsPath, metadataFileName,
	resourceFilePath, rosterPath string, cellSize int,
) error {
	roster := defaultRoster()

	if rosterPath != "" {
		contents, err := os.ReadFile(rosterPath)

		if err != nil {
			return fmt.Errorf(
				"failed to read the roster file: %w", err)
		}

		roster, err = ReadRoster(contents)

		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(assetsPath); err != nil {
		return fmt.Errorf(
			"the assets directory '%s' is not accessible: %w",
			assetsPath, err)
	}

	if sheetsPath == "" {
		sheetsPath = filepath.Join(assetsPath, "sheets")
	}

	err := os.MkdirAll(sheetsPath, 0755)

	if err != nil {
		return fmt.Errorf(
			"failed to create the output directory: %w", err)
	}

	atlases := map[string]EntityMeta{}
	sheets := map[string][]byte{}

	// Heroes live in top-level directories of the asset
	// tree; anything without an animations subtree is not
	// an entity and is left alone.
	entries, err := os.ReadDir(assetsPath)

	if err != nil {
		return fmt.Errorf(
			"failed to list the assets directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()

		if !entry.IsDir() || skipDirs[name] {
			continue
		}

		animsDir := filepath.Join(assetsPath, name, "animations")

		if _, err := os.Stat(animsDir); err != nil {
			continue
		}

		fmt.Printf("Processing %s...\n", name)
		meta, err := composeEntity(animsDir, name, kindCharacter,
			roster.HeroPlan(name), sheetsPath, cellSize, sheets)

		if err != nil {
			return err
		}

		if meta.MaxFrames > 0 {
			atlases[name] = meta
		}
	}

	// Enemies have their own subtree and only the kinds
	// the roster knows about get composed.
	enemiesPath := filepath.Join(assetsPath, "enemies")
	enemyEntries, err := os.ReadDir(enemiesPath)

	if err == nil {
		fmt.Printf("\n--- Processing Enemies ---\n")
	}

	for _, entry := range enemyEntries {
		kind := entry.Name()

		if !entry.IsDir() {
			continue
		}

		plan, ok := roster.EnemyPlan(kind)

		if !ok {
			continue
		}

		animsDir := filepath.Join(enemiesPath, kind, "animations")
		fmt.Printf("Processing enemy: %s...\n", kind)
		meta, err := composeEntity(animsDir, kind, kindEnemy,
			plan, sheetsPath, cellSize, sheets)

		if err != nil {
			return err
		}

		if meta.MaxFrames > 0 {
			atlases[kind] = meta
		}
	}

	metadataPath := filepath.Join(sheetsPath, metadataFileName)
	err = WriteMetadata(metadataPath, atlases)

	if err != nil {
		return err
	}

	fmt.Printf("\nMetadata saved to: %s\n", metadataPath)

	if resourceFilePath != "" {
		resourceFile, err := bolt.Open(resourceFilePath, 0666, nil)

		if err != nil {
			return fmt.Errorf(
				"failed to open the resource file: %w", err)
		}
		defer resourceFile.Close()

		err = packResources(resourceFile, sheets, atlases)

		if err != nil {
			return err
		}

		fmt.Printf("Resources packed to: %s\n", resourceFilePath)
	}

	printReferenceConfig(atlases)

	return nil
}

// composeEntity builds all four directional sheets of one
// entity with a shared max frame count, so a (row, column)
// cell means the same thing on every direction's sheet.
// An entity with no authored frames at all composes nothing.
func composeEntity(
	animsDir, entity, kind string, plan RowPlan,
	sheetsPath string, cellSize int, sheets map[string][]byte,
) (EntityMeta, error) {
	maxFrames := maxFrameCount(animsDir, plan)
	fmt.Printf("  Max frames per row: %d\n", maxFrames)

	meta := EntityMeta{
		Kind:       kind,
		FrameSize:  cellSize,
		MaxFrames:  maxFrames,
		Directions: map[string]DirectionMeta{},
	}

	if maxFrames == 0 {
		fmt.Printf("  Nothing to compose for %s\n", entity)
		return meta, nil
	}

	for _, direction := range Directions {
		fmt.Printf("  Creating %s sheet...\n", direction)
		sheet, animations, err := composeSheet(
			animsDir, entity, direction, plan, maxFrames, cellSize)

		if err != nil {
			return EntityMeta{}, err
		}

		var buffer bytes.Buffer
		err = png.Encode(&buffer, sheet)

		if err != nil {
			return EntityMeta{}, fmt.Errorf(
				"failed to encode the sheet for '%s' (%s): %w",
				entity, direction, err)
		}

		sheetID := fmt.Sprintf("%s_%s", entity, direction)
		sheetPath := filepath.Join(sheetsPath, sheetID+".png")
		err = os.WriteFile(sheetPath, buffer.Bytes(), 0666)

		if err != nil {
			return EntityMeta{}, fmt.Errorf(
				"failed to write the sheet for '%s' (%s): %w",
				entity, direction, err)
		}

		fmt.Printf("    Saved: %s\n", sheetPath)
		sheets[sheetID] = buffer.Bytes()
		meta.Directions[direction] = DirectionMeta{
			Sheet:      sheetDocPath(sheetsPath, sheetPath),
			Animations: animations,
		}
	}

	return meta, nil
}

// sheetDocPath is the sheet path recorded in the metadata
// document: relative to the grandparent of the output
// directory, which resolves to the game's asset root under
// the conventional layout.
func sheetDocPath(sheetsPath, sheetPath string) string {
	base := filepath.Dir(filepath.Dir(sheetsPath))
	rel, err := filepath.Rel(base, sheetPath)

	if err != nil {
		return filepath.ToSlash(sheetPath)
	}

	return filepath.ToSlash(rel)
}

// printReferenceConfig prints an example renderer config
// fragment for the reference hero. It is guidance for
// hand-authoring render configs, nothing consumes it.
func printReferenceConfig(atlases map[string]EntityMeta) {
	meta, ok := atlases[referenceHero]

	if !ok {
		return
	}

	east, ok := meta.Directions["east"]

	if !ok {
		return
	}

	row := func(state string, fallback int) int {
		if anim, ok := east.Animations[state]; ok {
			return anim.Row
		}

		return fallback
	}
	frames := func(state string) int {
		if anim, ok := east.Animations[state]; ok {
			return anim.Frames
		}

		return 1
	}

	divider := "============================================================"
	fmt.Printf("\n%s\n", divider)
	fmt.Printf("Example render config for %s:\n", referenceHero)
	fmt.Printf("%s\n", divider)
	fmt.Printf(`
[render]
sheet = %q
frame_w = %d
frame_h = %d
scale = 2.0

[render.anims.idle]
row = %d
frames = %d
fps = 8.0

[render.anims.run]
row = %d
frames = %d
fps = 12.0

[render.anims.jump]
row = %d
frames = %d
fps = 12.0

[render.anims.spin]
row = %d
frames = %d
fps = 16.0

[render.anims.attack_melee]
row = %d
frames = %d
fps = 12.0
`,
		east.Sheet, meta.FrameSize, meta.FrameSize,
		row("idle", 0), frames("idle"),
		row("run", 1), frames("run"),
		row("jump", 2), frames("jump"),
		row("special", 3), frames("special"),
		row("attack", 4), frames("attack"))
}

func handleError(err error) {
	if err != nil {
		panic(err)
	}
}
