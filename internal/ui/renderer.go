package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Elean1402/go-roguelike/internal/entity"
	"github.com/Elean1402/go-roguelike/internal/theme"
	"github.com/Elean1402/go-roguelike/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen

	wallStyle   tcell.Style
	groundStyle tcell.Style
	statusStyle tcell.Style
}

// NewRenderer creates a renderer for the given screen using the palette.
func NewRenderer(screen *Screen, palette theme.Palette) *Renderer {
	return &Renderer{
		screen:      screen,
		wallStyle:   tcell.StyleDefault.Background(theme.MustParseHexColor(palette.DarkWall)),
		groundStyle: tcell.StyleDefault.Background(theme.MustParseHexColor(palette.DarkGround)),
		statusStyle: tcell.StyleDefault.Foreground(theme.MustParseHexColor(palette.StatusText)),
	}
}

// Render draws the dungeon, every object, and the status line.
// Tiles are drawn as colored background cells: opaque tiles get the wall
// color, everything else the ground color.
func (r *Renderer) Render(d *world.Dungeon, roster *entity.Roster, turn int) {
	r.screen.Clear()

	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			r.screen.SetContent(x, y, ' ', r.tileStyle(d, x, y))
		}
	}

	// NPCs first, player last, so the player is drawn on top.
	for _, o := range roster.All() {
		style := r.tileStyle(d, o.X, o.Y).Foreground(o.Color).Bold(o == roster.Player)
		r.screen.SetContent(o.X, o.Y, o.Symbol, style)
	}

	px, py := roster.Player.Position()
	r.StatusLine(fmt.Sprintf("turn %d  pos (%d,%d)", turn, px, py), d.Height)

	r.screen.Show()
}

func (r *Renderer) tileStyle(d *world.Dungeon, x, y int) tcell.Style {
	if d.At(x, y).BlocksSight {
		return r.wallStyle
	}
	return r.groundStyle
}

// StatusLine draws msg starting at column 0 of row y, advancing by each
// rune's display width so wide runes do not overlap the next cell.
func (r *Renderer) StatusLine(msg string, y int) {
	col := 0
	for _, ch := range msg {
		r.screen.SetContent(col, y, ch, r.statusStyle)
		col += runewidth.RuneWidth(ch)
	}
}
