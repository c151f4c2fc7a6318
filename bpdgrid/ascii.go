package bpdgrid

import (
	"fmt"
	"strings"
)

// This file defines a compact text form of a grid, one rune per
// tile and one line per row. It is meant for test fixtures and
// command line tools, not as an interchange format.
//
//	.  Blank        |  Vertical
//	+  Plus         -  Horizontal
//	r  ElbowSE      o  Dot
//	j  ElbowNW      *  Star
//	_  Empty        #  Special
//	D  Drift
//
// A Drift's label and highlight flag are not representable here:
// String writes any drift as 'D', Parse reads 'D' as a zero Drift.

var codeRunes = map[Code]rune{
	Blank:      '.',
	Plus:       '+',
	ElbowSE:    'r',
	ElbowNW:    'j',
	Vertical:   '|',
	Horizontal: '-',
	Dot:        'o',
	Star:       '*',
	Empty:      '_',
	Special:    '#',
}

var runeCodes = map[rune]Cell{}

func init() {
	for c, r := range codeRunes {
		runeCodes[r] = c
	}
	runeCodes['D'] = Drift{}
}

// String returns the text form of the grid.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 1; i <= g.rows; i++ {
		for j := 1; j <= g.cols; j++ {
			switch c := g.At(i, j).(type) {
			case Drift:
				b.WriteRune('D')
			case Code:
				if r, ok := codeRunes[c]; ok {
					b.WriteRune(r)
				} else {
					b.WriteRune('?')
				}
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// Parse reads the text form back into a Grid. Lines must all have
// the same length; a trailing newline is ignored.
func Parse(s string) (*Grid, error) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return New(nil)
	}
	lines := strings.Split(s, "\n")
	cells := make([][]Cell, len(lines))
	for i, line := range lines {
		row := make([]Cell, 0, len(line))
		for j, r := range line {
			c, ok := runeCodes[r]
			if !ok {
				return nil, fmt.Errorf("bpdgrid: unknown tile rune %q at row %d, column %d", r, i+1, j+1)
			}
			row = append(row, c)
		}
		cells[i] = row
	}
	return New(cells)
}
