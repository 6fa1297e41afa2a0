package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names.
const (
	SolidLayer     = "solids"
	SolidGroup     = "Solids"
	PlatformGroup  = "Platforms"
	SpawnGroup     = "PlayerSpawn"
	defaultTravelS = 2.0
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		slidable := layer.Properties.GetString("slidable") != "false"
		level.Solids = append(level.Solids, tileRuns(levelMap, layer, slidable)...)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SolidGroup:
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidRect{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Slidable: o.Properties.GetString("slidable") != "false",
				})
			}
		case PlatformGroup:
			for _, o := range og.Objects {
				duration := float64(o.Properties.GetInt("duration_ms")) / 1000
				if duration <= 0 {
					duration = defaultTravelS
				}
				level.Platforms = append(level.Platforms, PlatformPath{
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					DX:       float64(o.Properties.GetInt("dx")),
					DY:       float64(o.Properties.GetInt("dy")),
					Duration: duration,
				})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %s: no objects in %s", tmxPath, SpawnGroup)
	}

	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

// tileRuns merges each row of the solid layer into horizontal runs so a
// floor is one collider instead of a seam every tile.
func tileRuns(levelMap *tiled.Map, layer *tiled.Layer, slidable bool) []SolidRect {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	var rects []SolidRect
	for y := 0; y < levelMap.Height; y++ {
		start := -1
		for x := 0; x <= levelMap.Width; x++ {
			filled := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
			switch {
			case filled && start < 0:
				start = x
			case !filled && start >= 0:
				rects = append(rects, SolidRect{
					X:        float64(start) * tileW,
					Y:        float64(y) * tileH,
					W:        float64(x-start) * tileW,
					H:        tileH,
					Slidable: slidable,
				})
				start = -1
			}
		}
	}
	return rects
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each,
// and returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
