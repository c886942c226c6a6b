package tty

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"bossfight/internal/particle"
	"bossfight/internal/session"
)

// Styles
var (
	styleBase     = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleLabel    = styleBase.Foreground(tcell.ColorGold).Bold(true)
	styleNo       = tcell.StyleDefault.Background(tcell.ColorDimGray).Foreground(tcell.ColorWhite)
	styleYes      = tcell.StyleDefault.Background(tcell.ColorCrimson).Foreground(tcell.ColorWhite).Bold(true)
	styleHeart    = styleBase.Foreground(tcell.NewRGBColor(0xff, 0x4d, 0x6d))
	styleLost     = styleBase.Foreground(tcell.ColorGray)
	styleHit      = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite).Bold(true)
	styleVictory  = tcell.StyleDefault.Background(tcell.ColorPurple).Foreground(tcell.ColorGold).Bold(true)
	styleHint     = styleBase.Foreground(tcell.ColorGray)
	styleAudioOn  = styleBase.Foreground(tcell.ColorLime)
	styleAudioOff = styleBase.Foreground(tcell.ColorGray)
)

// Widget labels
const (
	LabelNo       = "[ NO ]"
	LabelYes      = "[ YES ]"
	LabelYesBig   = "[[  YES  ]]"
	LabelAudioOff = "AUDIO OFF"
	LabelAudioOn  = "AUDIO ACTIVE"
	TextHit       = "  CRITICAL HIT!  "
	TextVictory   = "  VICTORY  "
	TextHint      = "click NO to hit it, YES to win  [m] audio  [r] reset  [q] quit"
)

// Glyphs
const (
	glyphConfetti = '■'
	glyphHeart    = '♥'
	glyphFull     = '❤'
	glyphLost     = '🖤'

	variationEmoji = '\uFE0F'
)

// widget is a one-row clickable label
type widget struct {
	label    string
	col, row int
	style    tcell.Style
}

func (w widget) contains(col, row int) bool {
	return row == w.row && col >= w.col && col < w.col+len(w.label)
}

// layout places the widgets for a view on a cols x rows grid
type layout struct {
	grid           grid
	no, yes, audio widget
	noVisible      bool
}

// grid converts between pixels and cells
type grid struct {
	cw, ch int
}

func (g grid) cell(x, y float64) (int, int) {
	return int(x) / g.cw, int(y) / g.ch
}

func (g grid) center(col, row int) (float64, float64) {
	return float64(col*g.cw + g.cw/2), float64(row*g.ch + g.ch/2)
}

func centered(label string, col, row int, style tcell.Style) widget {
	return widget{label: label, col: col - len(label)/2, row: row, style: style}
}

func placeWidgets(v session.View, g grid, cols int, shake int, audioOn bool) layout {
	l := layout{grid: g}

	bc, br := g.cell(v.Boss.X, v.Boss.Y)
	l.no = centered(LabelNo, bc+shake, br, styleNo)
	l.noVisible = v.BossVisible

	tc, tr := g.cell(v.Trigger.X, v.Trigger.Y)
	yes := LabelYes
	if v.TriggerEnlarged {
		yes = LabelYesBig
	}
	l.yes = centered(yes, tc, tr, styleYes)

	audio, style := LabelAudioOff, styleAudioOff
	if audioOn {
		audio, style = LabelAudioOn, styleAudioOn
	}
	l.audio = widget{label: audio, col: cols - len(audio) - 1, row: 0, style: style}
	return l
}

// draw renders one frame onto the screen
func draw(screen tcell.Screen, v session.View, l layout) {
	cols, rows := screen.Size()
	screen.SetStyle(styleBase)
	screen.Clear()

	// Header
	putText(screen, (cols-len(v.Label))/2, 1, v.Label, styleLabel)
	drawHealth(screen, cols/2-v.MaxHP, 2, v)
	putWidget(screen, l.audio)

	// Controls
	putWidget(screen, l.yes)
	if l.noVisible {
		putWidget(screen, l.no)
	}

	// Particles
	for i := range v.Particles {
		drawParticle(screen, &v.Particles[i], l, cols, rows)
	}

	// Overlays
	if v.HitOverlay {
		putBanner(screen, cols, rows/2, TextHit, styleHit)
	}
	if v.VictoryOverlay {
		putBanner(screen, cols, rows/2-2, TextVictory, styleVictory)
	}

	putText(screen, 1, rows-1, TextHint, styleHint)
}

// drawHealth writes the readout string, two cells per symbol. Variation
// selectors ride along as combining runes of the symbol before them.
func drawHealth(screen tcell.Screen, col, row int, v session.View) {
	runes := []rune(v.Health)
	for i := 0; i < len(runes); i++ {
		var comb []rune
		if i+1 < len(runes) && runes[i+1] == variationEmoji {
			comb = []rune{variationEmoji}
		}
		style := styleLost
		if runes[i] == glyphFull {
			style = styleHeart
		}
		screen.SetContent(col, row, runes[i], comb, style)
		col += 2
		i += len(comb)
	}
}

func drawParticle(screen tcell.Screen, p *particle.Particle, l layout, cols, rows int) {
	glyph := glyphConfetti
	if p.Kind == particle.Heart {
		glyph = glyphHeart
	}
	col, row := l.grid.cell(p.X, p.Y)
	if p.X < 0 || p.Y < 0 || col >= cols || row >= rows {
		return
	}
	screen.SetContent(col, row, glyph, nil, styleBase.Foreground(rgb(p.Faded())))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func putWidget(screen tcell.Screen, w widget) {
	putText(screen, w.col, w.row, w.label, w.style)
}

func putBanner(screen tcell.Screen, cols, row int, s string, style tcell.Style) {
	col := (cols - len(s)) / 2
	pad := make([]rune, len(s))
	for i := range pad {
		pad[i] = ' '
	}
	putText(screen, col, row-1, string(pad), style)
	putText(screen, col, row, s, style)
	putText(screen, col, row+1, string(pad), style)
}

func putText(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(col+i, row, r, nil, style)
	}
}
