package systems

import (
	"image"
	"image/color"

	"github.com/automoto/balloon/components"
	cfg "github.com/automoto/balloon/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cullPadding keeps shapes from popping at the screen edge.
const cullPadding = 64.0

// DrawLevel draws the level art, or its solid cells when the level has no art.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Palette.Background)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Level == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := CameraOffset(ecs, float64(width), float64(height))

	if levelData.Art != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(offX, offY)
		screen.DrawImage(levelData.Art, drawOp)
		return
	}

	grid := levelData.Level.Grid
	if grid == nil {
		return
	}
	cs := grid.CellSize()
	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); cx++ {
			if !grid.Solid(cx, cy) {
				continue
			}
			x, y := float64(cx)*cs+offX, float64(cy)*cs+offY
			if x+cs < 0 || y+cs < 0 || x > float64(width) || y > float64(height) {
				continue
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(cs), float32(cs), cfg.Palette.Solid, false)
		}
	}
}

// DrawEntities draws every sprite-carrying entity as a flat shape.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := CameraOffset(ecs, float64(width), float64(height))

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)
		x, y := o.X+offX, o.Y+offY

		// Viewport Culling
		if x+o.W < -cullPadding || y+o.H < -cullPadding ||
			x > float64(width)+cullPadding || y > float64(height)+cullPadding {
			return
		}

		sprite := components.Sprite.Get(e)
		c := sprite.Color
		if e.HasComponent(components.Death) {
			c = cfg.HUD.DeathColor
		}
		drawShape(screen, sprite.Shape, float32(x), float32(y), float32(o.W), float32(o.H), c)
	})
}

func drawShape(screen *ebiten.Image, shape components.SpriteShape, x, y, w, h float32, c color.RGBA) {
	switch shape {
	case components.ShapeCircle:
		r := min(w, h) / 2
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, r, c, true)
	case components.ShapeSpikes:
		// a row of triangles pointing up
		teeth := max(int(w/h), 1)
		tw := w / float32(teeth)
		var path vector.Path
		for i := 0; i < teeth; i++ {
			left := x + float32(i)*tw
			path.MoveTo(left, y+h)
			path.LineTo(left+tw/2, y)
			path.LineTo(left+tw, y+h)
			path.Close()
		}
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR = float32(c.R) / 0xff
			vs[i].ColorG = float32(c.G) / 0xff
			vs[i].ColorB = float32(c.B) / 0xff
			vs[i].ColorA = float32(c.A) / 0xff
		}
		screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{})
	default:
		vector.DrawFilledRect(screen, x, y, w, h, c, false)
	}
}

var whiteImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}
