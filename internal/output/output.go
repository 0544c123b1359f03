// Package output renders boards and finished games for people and tools.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const (
	topBorder    = "┌───┬───┬───┬───┬───┬───┬───┬───┐"
	middleBorder = "├───┼───┼───┼───┼───┼───┼───┼───┤"
	bottomBorder = "└───┴───┴───┴───┴───┴───┴───┴───┘"
	fileLabels   = "  a   b   c   d   e   f   g   h"
)

// BoardStyle controls how RenderBoard draws a board.
type BoardStyle struct {
	Grid     lipgloss.Style
	White    lipgloss.Style
	Black    lipgloss.Style
	Attacked lipgloss.Style // applied on top of the piece style

	// Symbols draws Unicode chess symbols instead of FEN letters.
	Symbols bool

	// MarkAttacked brackets attacked squares, for output without colour.
	MarkAttacked bool

	// Labels adds rank numbers and file letters.
	Labels bool
}

// DefaultBoardStyle highlights attacked squares in red.
func DefaultBoardStyle() BoardStyle {
	return BoardStyle{
		Grid:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		White:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Black:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Attacked: lipgloss.NewStyle().Background(lipgloss.Color("52")),
		Labels:   true,
	}
}

// PlainBoardStyle draws without any terminal styling.
func PlainBoardStyle() BoardStyle {
	return BoardStyle{
		Grid:         lipgloss.NewStyle(),
		White:        lipgloss.NewStyle(),
		Black:        lipgloss.NewStyle(),
		Attacked:     lipgloss.NewStyle(),
		MarkAttacked: true,
	}
}

// RenderBoard draws the board with rank 8 at the top. Squares attacked by
// the side not to move are highlighted.
func RenderBoard(b *engine.Board, style BoardStyle) string {
	var sb strings.Builder
	indent := ""
	if style.Labels {
		indent = "  "
	}

	sb.WriteString(indent + style.Grid.Render(topBorder) + "\n")
	for y := chess.BoardSize - 1; y >= 0; y-- {
		if y < chess.BoardSize-1 {
			sb.WriteString(indent + style.Grid.Render(middleBorder) + "\n")
		}
		if style.Labels {
			fmt.Fprintf(&sb, "%d ", y+1)
		}
		for x := 0; x < chess.BoardSize; x++ {
			sb.WriteString(style.Grid.Render("│"))
			sb.WriteString(renderCell(b, chess.C(x, y), style))
		}
		sb.WriteString(style.Grid.Render("│") + "\n")
	}
	sb.WriteString(indent + style.Grid.Render(bottomBorder) + "\n")
	if style.Labels {
		sb.WriteString(indent + fileLabels + "\n")
	}
	return sb.String()
}

func renderCell(b *engine.Board, c chess.Coord, style BoardStyle) string {
	glyph := " "
	pieceStyle := style.White
	if p, ok := b.PieceAt(c); ok {
		if style.Symbols {
			glyph = string(p.Symbol())
		} else {
			glyph = string(p.Letter())
		}
		if p.Colour() == chess.Black {
			pieceStyle = style.Black
		}
	}

	cell := " " + glyph + " "
	if b.IsUnderAttack(c) {
		if style.MarkAttacked {
			cell = "[" + glyph + "]"
		}
		pieceStyle = pieceStyle.Inherit(style.Attacked)
	}
	return pieceStyle.Render(cell)
}

// StatusLine summarises the position: turn, side to move and state.
func StatusLine(b *engine.Board) string {
	return fmt.Sprintf("%d %s %s", b.Turn(), b.ActiveColour(), b.State())
}

// DumpBoard renders the board followed by the status line and the
// base64 snapshot.
func DumpBoard(b *engine.Board, style BoardStyle) string {
	return RenderBoard(b, style) + "\n" + StatusLine(b) + "\n" + b.Snapshot().String() + "\n"
}
