package t2048

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/merge2048/internal/board"
	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/session"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
	statsBar   = 20 // Widest histogram bar
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	n := len(snap.Rows)
	boardW := n*cellWidth + 1
	boardH := n*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	if g.showStats && g.screenW >= boardW+statsWidth()+4 {
		boardX = 1
	}
	boardY := hudHeight + 1

	g.renderHUD(dst, snap, boardX, boardW)
	g.renderBoard(dst, snap.Rows, boardX, boardY)
	if g.showStats {
		g.renderStats(dst, snap, boardX, boardY, boardW, boardH)
	}
	g.renderOverlays(dst, snap, core.NewRect(boardX, boardY, boardW, boardH))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, high score and move count.
func (g *Game) renderHUD(dst *core.Screen, snap session.Snapshot, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", snap.Score))

	best := max(snap.HighScore, snap.Score)
	bestStr := fmt.Sprintf("Best: %d", best)
	dst.DrawText(max(boardX+boardW-len(bestStr), boardX), 1, bestStr)

	info := fmt.Sprintf("Moves: %d", snap.Moves)
	if g.lastKnown && !g.lastTurn.Moved && !snap.Over {
		info += "  (no change)"
	}
	dst.DrawText(boardX, 2, info)
}

// renderBoard draws the grid lines and the tile values.
func (g *Game) renderBoard(dst *core.Screen, rows [][]board.Rank, boardX, boardY int) {
	n := len(rows)
	grid := g.theme.Grid

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.SetColored(px, py, gridCorner(x, y, n), grid)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', grid)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', grid)
				}
			}
		}
	}

	for y, row := range rows {
		for x, r := range row {
			if r == 0 {
				continue
			}
			val := tileText(r)
			pad := max((cellWidth-1-len(val))/2, 0)
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			dst.DrawTextColored(cellX+pad, cellY, val, g.theme.TileColor(r))
		}
	}
}

// tileText is the decimal tile value, or 2^k when that does not fit the cell.
func tileText(r board.Rank) string {
	val := strconv.Itoa(r.Value())
	if len(val) > cellWidth-1 {
		return fmt.Sprintf("2^%d", r)
	}
	return val
}

func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

func statsWidth() int {
	// "  2048 " label + bar + count
	return 7 + statsBar + 5
}

// renderStats draws the tile distribution and merge rate, to the right of
// the board when it fits and below it otherwise.
func (g *Game) renderStats(dst *core.Screen, snap session.Snapshot, boardX, boardY, boardW, boardH int) {
	x := boardX + boardW + 3
	y := boardY
	if x+statsWidth() > g.screenW {
		x = boardX
		y = boardY + boardH + 1
	}

	rate := 0.0
	if snap.Moves > 0 {
		rate = float64(snap.Collisions) / float64(snap.Moves)
	}
	dst.DrawText(x, y, fmt.Sprintf("Merges: %d (%.2f/move)", snap.Collisions, rate))

	most := 0
	for _, e := range snap.Histogram {
		most = max(most, e.Count)
	}
	for i, e := range snap.Histogram {
		if y+2+i >= g.screenH {
			break
		}
		bar := e.Count
		if most > statsBar {
			bar = max(e.Count*statsBar/most, 1)
		}
		line := fmt.Sprintf("%6d %s %d", e.Rank.Value(), strings.Repeat("█", bar), e.Count)
		dst.DrawTextColored(x, y+2+i, line, g.theme.TileColor(e.Rank))
	}
}

// renderOverlays draws the end-of-game and stuck-board boxes.
func (g *Game) renderOverlays(dst *core.Screen, snap session.Snapshot, area core.Rect) {
	switch {
	case snap.Over && g.quit:
		g.drawOverlay(dst, area, "GAME ENDED", fmt.Sprintf("Score: %d", snap.Score))
	case snap.Over:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score)}
		if snap.Score > snap.HighScore {
			lines = append(lines, "Personal record!")
		}
		lines = append(lines, "R: restart  Q: quit")
		g.drawOverlay(dst, area, lines...)
	case snap.Stuck:
		g.drawOverlay(dst, area, "No moves left", "Press any direction")
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := area.CenteredIn(maxLen+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box)

	cx, _ := area.Center()
	for i, line := range lines {
		dst.DrawText(cx-utf8.RuneCountInString(line)/2, box.Y+1+i, line)
	}
}
