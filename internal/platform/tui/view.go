package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/skyflap/skyflap/internal/core"
	"github.com/skyflap/skyflap/internal/game"
)

// Visual characters for rendering
const (
	actorBody        = '●'
	actorBeak        = '▶'
	barrierChar      = '█'
	barrierCapTop    = '▄'
	barrierCapBottom = '▀'
	groundChar       = '═'
	cloudChar        = '~'
)

// drawFrame renders one simulation snapshot into the screen buffer.
// The simulation runs in continuous world units; everything here scales
// down to terminal cells. Row 0 is the HUD, the last row is the ground.
func drawFrame(dst *core.Screen, snap game.Snapshot, tickRate int, now time.Time) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	groundY := h - 1
	fieldTop := 1
	fieldH := groundY - fieldTop

	if w < 20 || fieldH < 5 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	sx := float64(w) / snap.WorldW
	sy := float64(fieldH) / snap.WorldH

	drawBackdrop(dst, snap, fieldTop, groundY)

	for _, o := range snap.Obstacles {
		drawBarrier(dst, o.Top, sx, sy, fieldTop, false)
		drawBarrier(dst, o.Bottom, sx, sy, fieldTop, true)
	}

	drawActor(dst, snap, sx, sy, fieldTop)

	dst.DrawHLine(0, groundY, w, groundChar, core.ColorGreen)

	drawHUD(dst, snap, tickRate, now)

	switch {
	case (snap.Phase == game.PhaseIdle || snap.Phase == game.PhaseActive) && !snap.Started:
		// Shown for a fresh run and again after a soft reset, which
		// holds the world still until the next flap re-arms it.
		drawCenteredMessage(dst, "PRESS SPACE TO FLAP", "space/up/w flap, p pause, q quit")
	case snap.Phase == game.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "r resume, n new game, b menu, q quit")
	case snap.Phase == game.PhaseOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore),
			"n new game, b menu, q quit")
	}
}

// drawBackdrop paints the theme's sky band and scrolling ground scenery.
func drawBackdrop(dst *core.Screen, snap game.Snapshot, fieldTop, groundY int) {
	skyColor := backgroundColor(snap.Theme.Background)
	sceneryRune, sceneryColor := sceneryLook(snap.Theme.Scenery)

	// Sparse clouds in the top rows, drifting with the simulation.
	drift := snap.ElapsedTicks / 8
	for _, row := range []int{fieldTop + 1, fieldTop + 3} {
		if row >= groundY {
			break
		}
		for x := 0; x < dst.Width(); x++ {
			if (x+drift+row*5)%17 == 0 {
				dst.SetCell(x, row, cloudChar, skyColor)
			}
		}
	}

	// Ground scenery scrolls with the obstacles to sell the motion.
	sceneryRow := groundY - 1
	scroll := snap.ElapsedTicks / 4
	for x := 0; x < dst.Width(); x++ {
		if (x+scroll)%7 == 0 {
			dst.SetCell(x, sceneryRow, sceneryRune, sceneryColor)
		}
	}
}

// drawBarrier renders one world-space barrier box, capped at the gap edge.
func drawBarrier(dst *core.Screen, b core.Box, sx, sy float64, fieldTop int, isBottom bool) {
	x0 := int(b.X * sx)
	y0 := fieldTop + int(b.Y*sy)
	cw := core.Max(1, int(b.W*sx))
	ch := core.Max(1, int(b.H*sy))

	r := core.NewRect(x0, y0, cw, ch)
	dst.FillRect(r, barrierChar, core.ColorGreen)

	// Cap the edge facing the gap.
	if isBottom {
		for x := x0; x < x0+cw; x++ {
			dst.SetCell(x, y0, barrierCapBottom, core.ColorGreen)
		}
	} else {
		for x := x0; x < x0+cw; x++ {
			dst.SetCell(x, y0+ch-1, barrierCapTop, core.ColorGreen)
		}
	}
}

// drawActor renders the player with the current stage skin.
func drawActor(dst *core.Screen, snap game.Snapshot, sx, sy float64, fieldTop int) {
	x := int(snap.Actor.X * sx)
	y := fieldTop + int(snap.Actor.Y*sy)
	c := skinColor(snap.Skin)

	dst.SetCell(x, y, actorBody, c)
	dst.SetCell(x+1, y, actorBeak, c)
}

// drawHUD renders the top status row: score, best, lives, run time, date.
func drawHUD(dst *core.Screen, snap game.Snapshot, tickRate int, now time.Time) {
	lives := strings.Repeat("*", snap.Lives)
	if lives == "" {
		lives = "-"
	}

	seconds := 0
	if tickRate > 0 {
		seconds = snap.ElapsedTicks / tickRate
	}

	hud := fmt.Sprintf(" Score: %d  Best: %d  Lives: %s  Time: %02d:%02d ",
		snap.Score, snap.HighScore, lives, seconds/60, seconds%60)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	date := now.Format("Jan 02 2006 15:04")
	if len(hud)+len(date)+1 < dst.Width() {
		dst.DrawTextColored(dst.Width()-len(date)-1, 0, date, core.ColorGray)
	}
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	width := len(title)
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	width += 6

	height := len(lines) + 4
	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2

	box := core.NewRect(x, y, width, height)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(y+1, title)
	for i, l := range lines {
		dst.DrawTextCentered(y+3+i, l)
	}
}
