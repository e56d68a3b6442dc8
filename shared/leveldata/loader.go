package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS, os.DirFS or an fstest.MapFS.
func LoadLevel(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Identifier:  strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Path:        tmxPath,
		PixelWidth:  levelMap.Width * levelMap.TileWidth,
		PixelHeight: levelMap.Height * levelMap.TileHeight,
	}

	if levelMap.Properties != nil {
		level.InflationRate = levelMap.Properties.GetFloat("inflationRate")
	}

	cells := make([]uint32, levelMap.Width*levelMap.Height)
	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != opts.CollisionLayer {
			continue
		}
		for i, tile := range layer.Tiles {
			if i >= len(cells) {
				break
			}
			if tile == nil || tile.IsNil() {
				continue
			}
			cells[i] = tile.ID + 1
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q tile layer", tmxPath, opts.CollisionLayer)
	}
	level.Grid = NewTileGrid(levelMap.Width, levelMap.Height, float64(levelMap.TileWidth), cells)

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != opts.EntityGroup {
			continue
		}
		for _, o := range og.Objects {
			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // older TMX files use type=
			}
			spawn := EntitySpawn{Class: class, X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			if class == "Player" {
				if !hasPlayer {
					level.Player = spawn
					hasPlayer = true
				}
				continue
			}
			level.Entities = append(level.Entities, spawn)
		}
	}
	if !hasPlayer {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Stable spawn order keeps entity creation deterministic across runs.
	sort.SliceStable(level.Entities, func(i, j int) bool {
		a, b := level.Entities[i], level.Entities[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return level, nil
}

// Project is the set of levels found in one directory.
type Project struct {
	fsys   fs.FS
	dir    string
	opts   Options
	levels map[string]*Level
	names  []string
}

// LoadProject discovers all .tmx files in dir within fsys and parses each of them.
func LoadProject(fsys fs.FS, dir string, opts Options) (*Project, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	p := &Project{
		fsys:   fsys,
		dir:    dir,
		opts:   opts,
		levels: make(map[string]*Level, len(matches)),
		names:  make([]string, 0, len(matches)),
	}
	for _, match := range matches {
		level, err := LoadLevel(fsys, match, opts)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", match, err)
		}
		p.levels[level.Identifier] = level
		p.names = append(p.names, level.Identifier)
	}
	sort.Strings(p.names)
	return p, nil
}

// FS returns the filesystem the project was loaded from.
func (p *Project) FS() fs.FS { return p.fsys }

// Names returns the sorted level identifiers.
func (p *Project) Names() []string { return p.names }

// Level returns the parsed level with the given identifier.
func (p *Project) Level(identifier string) (*Level, error) {
	level, ok := p.levels[identifier]
	if !ok {
		return nil, fmt.Errorf("%s: %w", identifier, ErrLevelNotFound)
	}
	return level, nil
}

// Reload re-parses one level from disk. The previous copy is kept if parsing fails.
func (p *Project) Reload(identifier string) error {
	level, err := LoadLevel(p.fsys, path.Join(p.dir, identifier+".tmx"), p.opts)
	if err != nil {
		return err
	}
	if _, ok := p.levels[identifier]; !ok {
		p.names = append(p.names, identifier)
		sort.Strings(p.names)
	}
	p.levels[identifier] = level
	return nil
}
