package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX maps.
const (
	CollisionLayer = "collision"
	SpawnGroup     = "PlayerSpawn"
	PlatformGroup  = "Platforms"
)

// Ext is the file extension of level maps. A level's Name is its file name
// without it.
const Ext = ".tmx"

var ErrNoLevels = errors.New("no levels found")

// Load parses a TMX file from fsys. Collision tiles are merged into as few
// Rects as possible so bodies sliding along a floor or wall never catch on
// the seam between two tiles.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), Ext),
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		level.Solids = mergeColumns(mergeRows(layer.Tiles, levelMap.Width, levelMap.Height))
		break
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toWorld := func(o *tiled.Object) Rect {
		w, h := o.Width/tileW, o.Height/tileH
		return Rect{
			X: o.X / tileW,
			Y: level.Height - o.Y/tileH - h,
			W: w,
			H: h,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			for _, o := range og.Objects {
				r := toWorld(o)
				level.Spawns = append(level.Spawns, Point{
					X:     r.X,
					Y:     r.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case PlatformGroup:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, Platform{
					Rect:   toWorld(o),
					Travel: o.Properties.GetFloat("travel"),
					Period: o.Properties.GetFloat("period"),
				})
			}
		}
	}

	sort.SliceStable(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].X < level.Spawns[j].X
	})

	return level, nil
}

// mergeRows walks tile rows bottom to top and emits one Rect per run of
// consecutive solid tiles. Tiled stores row 0 at the top of the map.
func mergeRows(tiles []*tiled.LayerTile, width, height int) []Rect {
	var rects []Rect
	for row := height - 1; row >= 0; row-- {
		y := float64(height - 1 - row)
		start := -1
		for x := 0; x <= width; x++ {
			solid := false
			if x < width {
				idx := row*width + x
				solid = idx < len(tiles) && tiles[idx] != nil && !tiles[idx].IsNil()
			}
			switch {
			case solid && start < 0:
				start = x
			case !solid && start >= 0:
				rects = append(rects, Rect{X: float64(start), Y: y, W: float64(x - start), H: 1})
				start = -1
			}
		}
	}
	return rects
}

// mergeColumns joins runs of equal extent stacked directly on top of each
// other. rects must be ordered bottom to top.
func mergeColumns(rects []Rect) []Rect {
	type span struct{ x, w float64 }
	open := make(map[span]int)
	merged := rects[:0:0]
	for _, r := range rects {
		key := span{r.X, r.W}
		if i, ok := open[key]; ok && merged[i].Y+merged[i].H == r.Y {
			merged[i].H += r.H
			continue
		}
		open[key] = len(merged)
		merged = append(merged, r)
	}
	return merged
}

// LoadAll loads every .tmx file in dir and returns them keyed by file stem
// along with the sorted list of stems.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*" + Ext
	if dir == "" || dir == "." {
		pattern = "*" + Ext
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrNoLevels)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
