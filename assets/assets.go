package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/balloon/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// LevelArt returns a renderer for the tile art of levels stored in fsys.
// Tile layers with a true "render" property are drawn; when no layer sets it the
// collision layer is drawn instead. A level without tilesets has no art.
func LevelArt(fsys fs.FS, opts leveldata.Options) func(level *leveldata.Level) (*ebiten.Image, error) {
	return func(level *leveldata.Level) (*ebiten.Image, error) {
		levelMap, err := tiled.LoadFile(level.Path, tiled.WithFileSystem(fsys))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", level.Path, err)
		}
		if len(levelMap.Tilesets) == 0 {
			return nil, nil
		}

		layers := renderedLayers(levelMap, opts.CollisionLayer)
		if len(layers) == 0 && len(levelMap.ImageLayers) == 0 {
			return nil, nil
		}

		art := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
		drawImageLayers(art, levelMap, fsys, path.Dir(level.Path))

		renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
		if err != nil {
			art.Deallocate()
			return nil, fmt.Errorf("create renderer for %s: %w", level.Path, err)
		}
		for _, i := range layers {
			if err := renderer.RenderLayer(i); err != nil {
				log.Printf("Warning: Failed to render layer %d of %s: %v", i, level.Identifier, err)
				continue
			}
			layerImage := ebiten.NewImageFromImage(renderer.Result)
			op := &ebiten.DrawImageOptions{}
			// go-tiled defaults opacity to 1.0 when unset
			op.ColorScale.ScaleAlpha(float32(levelMap.Layers[i].Opacity))
			art.DrawImage(layerImage, op)
			layerImage.Deallocate()
			renderer.Clear()
		}
		return art, nil
	}
}

func renderedLayers(levelMap *tiled.Map, collision string) []int {
	var marked []int
	fallback := -1
	for i, layer := range levelMap.Layers {
		if layer.Opacity <= 0 {
			continue
		}
		if layer.Properties.GetBool("render") {
			marked = append(marked, i)
		}
		if layer.Name == collision {
			fallback = i
		}
	}
	if len(marked) == 0 && fallback >= 0 {
		return []int{fallback}
	}
	return marked
}

// drawImageLayers draws the map's image layers that set "render", at their offsets.
func drawImageLayers(dst *ebiten.Image, levelMap *tiled.Map, fsys fs.FS, dir string) {
	for _, imgLayer := range levelMap.ImageLayers {
		if !imgLayer.Properties.GetBool("render") || imgLayer.Image == nil || imgLayer.Opacity <= 0 {
			continue
		}
		imgPath := path.Join(dir, imgLayer.Image.Source)
		imgBytes, err := fs.ReadFile(fsys, imgPath)
		if err != nil {
			log.Printf("Warning: Failed to load image layer %s: %v", imgLayer.Name, err)
			continue
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			log.Printf("Warning: Failed to decode image layer %s: %v", imgLayer.Name, err)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(imgLayer.OffsetX), float64(imgLayer.OffsetY))
		op.ColorScale.ScaleAlpha(float32(imgLayer.Opacity))
		dst.DrawImage(img, op)
		img.Deallocate()
	}
}
