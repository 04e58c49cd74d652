package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/physics"
)

// Visual characters for rendering
const (
	WallChar   = '│'
	FloorChar  = '─'
	WindowChar = '▪'
	CloudChar  = '░'
	BirdBody   = 'v'
	HeroHead   = 'o'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w := g.world
	h := dst.Height()

	drawBuilding(dst, w.background, h)
	for _, e := range w.Entities(physics.CategoryDecoration) {
		fillBox(dst, e, h, CloudChar, core.ColorBrightWhite)
	}
	for _, e := range w.Entities(physics.CategoryObstacle) {
		drawBird(dst, e, h)
	}
	for _, e := range w.Entities(physics.CategoryProjectile) {
		drawWeb(dst, e, h)
	}
	if e, ok := w.player.Entity(); ok {
		drawHero(dst, *e, h, w.player.Phase())
	}

	g.drawHUD(dst)
}

// row converts a world y coordinate to a screen row.
func row(y float64, screenH int) int {
	return screenH - 1 - int(math.Floor(y))
}

func col(x float64) int {
	return int(math.Floor(x))
}

func drawBuilding(dst *core.Screen, s *Scroller, screenH int) {
	bx, bw := s.Bounds()
	left, right := col(bx), col(bx+bw)-1

	for _, seg := range s.Segments() {
		top := row(seg.Top()-1, screenH)
		bottom := row(seg.Y, screenH)
		for y := top; y <= bottom; y++ {
			dst.SetColored(left, y, WallChar, core.ColorGray)
			dst.SetColored(right, y, WallChar, core.ColorGray)
			for x := left + 1; x < right; x++ {
				switch {
				case y == top:
					dst.SetColored(x, y, FloorChar, core.ColorDarkGray)
				case y == top+2 && (x-left)%4 == 2:
					dst.SetColored(x, y, WindowChar, core.ColorYellow)
				}
			}
		}
	}
}

func fillBox(dst *core.Screen, e Entity, screenH int, r rune, c core.Color) {
	top := row(e.Pos.Y+e.Size.Y-1, screenH)
	bottom := row(e.Pos.Y, screenH)
	for y := top; y <= bottom; y++ {
		for x := col(e.Pos.X); x < col(e.Pos.X+e.Size.X); x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

func drawBird(dst *core.Screen, e Entity, screenH int) {
	y := row(e.Pos.Y, screenH)
	x := col(e.Pos.X)
	if e.Falling {
		dst.DrawTextColored(x, y, "x"+string(BirdBody)+"x", core.ColorGray)
		return
	}
	// Wings point backwards relative to the flight direction
	wings := "<" + string(BirdBody) + "<"
	if math.Abs(e.Rotation) > math.Pi/2 {
		wings = ">" + string(BirdBody) + ">"
	}
	dst.DrawTextColored(x, y, wings, core.ColorBrightRed)
}

// webGlyph picks the line character closest to the web's heading.
func webGlyph(rotation float64) rune {
	deg := math.Mod(rotation*180/math.Pi+360, 180)
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '─'
	case deg < 67.5:
		return '╱'
	case deg < 112.5:
		return '│'
	default:
		return '╲'
	}
}

func drawWeb(dst *core.Screen, e Entity, screenH int) {
	glyph := webGlyph(e.Rotation)
	dir := core.V(math.Cos(e.Rotation), math.Sin(e.Rotation))
	length := int(math.Max(1, e.Size.X))
	for i := 0; i < length; i++ {
		p := e.Pos.Sub(dir.Scale(float64(i)))
		dst.SetColored(col(p.X), row(p.Y, screenH), glyph, core.ColorWhite)
	}
}

func drawHero(dst *core.Screen, e Entity, screenH int, phase PlayerPhase) {
	x := col(e.Pos.X)
	top := row(e.Pos.Y+e.Size.Y-1, screenH)
	bottom := row(e.Pos.Y, screenH)

	head := `\` + string(HeroHead) + `/`
	legs := `/█\`
	if phase == PhaseDying {
		head = `\x/`
		legs = `\█/`
	}
	dst.DrawTextColored(x, top, head, core.ColorRed)
	if bottom != top {
		dst.DrawTextColored(x, bottom, legs, core.ColorBlue)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	hud := fmt.Sprintf(" SKYFALL  birds:%d  webs:%d ",
		w.Count(physics.CategoryObstacle),
		w.Count(physics.CategoryProjectile),
	)
	dst.DrawTextColored(1, 0, hud, core.ColorCyan)

	if w.player.Phase() == PhaseDying {
		dst.DrawTextCentered(dst.Height()/2, " OUCH! ")
	}
	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
