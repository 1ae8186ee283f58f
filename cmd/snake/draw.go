package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/aaronzipp/blobarena/internal/snake"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleHead   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x4ecdc4))
	styleBody   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x3aa89e))
	styleFood   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xff6b6b))
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Each grid cell is two columns wide so the board looks square.
const cellWidth = 2

func draw(screen tcell.Screen, game *snake.Game) {
	screen.Clear()

	// Board origin leaves room for the border.
	ox, oy := 1, 2
	drawText(screen, 0, 0, styleText, fmt.Sprintf("Score: %d   High score: %d", game.Score, game.HighScore))

	w := snake.GridSize*cellWidth + 2
	h := snake.GridSize + 2
	for x := 0; x < w; x++ {
		screen.SetContent(x, oy-1, '─', nil, styleBorder)
		screen.SetContent(x, oy+h-2, '─', nil, styleBorder)
	}
	for y := oy - 1; y < oy+h-1; y++ {
		screen.SetContent(0, y, '│', nil, styleBorder)
		screen.SetContent(w-1, y, '│', nil, styleBorder)
	}
	screen.SetContent(0, oy-1, '┌', nil, styleBorder)
	screen.SetContent(w-1, oy-1, '┐', nil, styleBorder)
	screen.SetContent(0, oy+h-2, '└', nil, styleBorder)
	screen.SetContent(w-1, oy+h-2, '┘', nil, styleBorder)

	drawCell(screen, ox, oy, game.Food, '●', styleFood)
	for i := len(game.Body) - 1; i >= 0; i-- {
		style := styleBody
		if i == 0 {
			style = styleHead
		}
		drawCell(screen, ox, oy, game.Body[i], '█', style)
	}

	status := "arrows/wasd steer, r restart, q quit"
	if game.Over {
		status = "GAME OVER - press r for a new game"
	}
	drawText(screen, 0, oy+h-1, styleText, status)

	screen.Show()
}

func drawCell(screen tcell.Screen, ox, oy int, p snake.Point, r rune, style tcell.Style) {
	if p.X < 0 || p.Y < 0 || p.X >= snake.GridSize || p.Y >= snake.GridSize {
		return
	}
	x := ox + p.X*cellWidth
	y := oy + p.Y
	for i := 0; i < cellWidth; i++ {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
