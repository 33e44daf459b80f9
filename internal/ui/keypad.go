package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/growwithdv/Modern-Calculator/internal/symbol"
)

type cellKind int

const (
	cellDigit cellKind = iota
	cellOperator
	cellAction
)

// keypadCell is one key on the on-screen keypad. id matches the canonical
// identifier produced by keyID; sym names a symbol glyph to render instead
// of the id, so ASCII mode swaps labels without touching highlighting.
type keypadCell struct {
	id   string
	sym  string
	kind cellKind
	wide bool
}

const keypadCellWidth = 5

var keypadRows = [][]keypadCell{
	{{id: "C", kind: cellAction}, {id: "CE", kind: cellAction}, {id: "⌫", sym: "backspace", kind: cellAction}, {id: "÷", sym: "divide", kind: cellOperator}},
	{{id: "7"}, {id: "8"}, {id: "9"}, {id: "×", sym: "multiply", kind: cellOperator}},
	{{id: "4"}, {id: "5"}, {id: "6"}, {id: "-", kind: cellOperator}},
	{{id: "1"}, {id: "2"}, {id: "3"}, {id: "+", kind: cellOperator}},
	{{id: "0"}, {id: "."}, {id: "=", kind: cellOperator, wide: true}},
}

// keypadWidth is the rendered width of the grid, used to size the display
// row so digits line up with the keys below them.
const keypadWidth = 4 * (keypadCellWidth + 2)

func renderKeypad(styles *Styles, pressed string) string {
	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, renderKeypadCell(styles, cell, pressed))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderKeypadCell(styles *Styles, cell keypadCell, pressed string) string {
	style := styles.Key
	switch cell.kind {
	case cellOperator:
		style = styles.KeyOperator
	case cellAction:
		style = styles.KeyAction
	}
	if pressed != "" && cell.id == pressed {
		style = styles.KeyPressed
	}

	width := keypadCellWidth
	if cell.wide {
		// Spans two cells including the border columns between them.
		width = 2*keypadCellWidth + 2
	}

	label := cell.id
	if cell.sym != "" {
		label = symbol.Get(cell.sym)
	}
	return style.Width(width).Render(label)
}
