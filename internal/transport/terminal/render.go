package terminal

import (
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const rowSeparator = "+- - - - - -+"

// ANSI palette indexes for the two marks.
const (
	colorX = "1" // red
	colorO = "4" // blue
)

// Renderer draws a grid as text. Empty cells show the move number that fills them.
type Renderer struct {
	output *termenv.Output
}

// NewRenderer - styles marks for the terminal behind w, or plain text when color is false.
func NewRenderer(w io.Writer, color bool) *Renderer {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

func (that *Renderer) Render(grid entity.Grid) string {
	var sb strings.Builder

	sb.WriteString(rowSeparator)
	sb.WriteByte('\n')

	for row := range entity.BoardSize {
		sb.WriteString("|")
		for col := range entity.BoardSize {
			sb.WriteByte(' ')
			sb.WriteString(that.cell(grid[row][col], row, col))
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
		sb.WriteString(rowSeparator)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (that *Renderer) cell(cell entity.Cell, row, col int) string {
	player, ok := cell.Player()
	if !ok {
		return strconv.Itoa(entity.EncodeMove(row, col))
	}

	color := colorX
	if player == entity.PlayerO {
		color = colorO
	}

	return that.output.String(player.String()).
		Foreground(that.output.Color(color)).
		Bold().
		String()
}
