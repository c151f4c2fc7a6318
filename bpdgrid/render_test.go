package bpdgrid

import (
	"errors"
	"reflect"
	"testing"
)

func mustGrid(t *testing.T, cells [][]Cell) *Grid {
	t.Helper()
	g, err := New(cells)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustRender(t *testing.T, g *Grid) []Command {
	t.Helper()
	cmds, err := Render(g)
	if err != nil {
		t.Fatal(err)
	}
	return cmds
}

func TestRenderDeterministic(t *testing.T) {
	g := mustGrid(t, [][]Cell{
		{Blank, Plus, ElbowSE},
		{Vertical, Drift{Label: "3", Highlighted: true}, Horizontal},
		{ElbowNW, Dot, Star},
	})
	first := mustRender(t, g)
	second := mustRender(t, g)
	if !reflect.DeepEqual(first, second) {
		t.Error("two renders of the same grid differ")
	}
}

func TestRenderTileCounts(t *testing.T) {
	for _, tc := range []struct {
		cell Cell
		want int
	}{
		{Blank, 2},
		{Plus, 2},
		{ElbowSE, 1},
		{ElbowNW, 1},
		{Vertical, 1},
		{Horizontal, 1},
		{Dot, 1},
		{Star, 1},
		{Empty, 0},
		{Special, 0},
		{Drift{Label: "1"}, 3},
	} {
		g := mustGrid(t, [][]Cell{{tc.cell}})
		if got := len(mustRender(t, g)); got != tc.want {
			t.Errorf("%v emits %d commands, want %d", tc.cell, got, tc.want)
		}
	}
}

func TestRenderPlus(t *testing.T) {
	cmds := mustRender(t, mustGrid(t, [][]Cell{{Plus}}))
	if len(cmds) != 2 {
		t.Fatalf("Plus emits %d commands, want 2", len(cmds))
	}
	v, ok := cmds[0].(Segment)
	if !ok || v.X0 != v.X1 {
		t.Errorf("first command %#v is not the vertical segment", cmds[0])
	}
	h, ok := cmds[1].(Segment)
	if !ok || h.Y0 != h.Y1 {
		t.Errorf("second command %#v is not the horizontal segment", cmds[1])
	}
	// both pass through the cell center
	if v.X0 != 0.5 || h.Y0 != 0.5 {
		t.Errorf("segments cross at (%g,%g), want (0.5,0.5)", v.X0, h.Y0)
	}
}

func TestRenderDotStarMerged(t *testing.T) {
	dot := mustRender(t, mustGrid(t, [][]Cell{{Dot}}))
	star := mustRender(t, mustGrid(t, [][]Cell{{Star}}))
	if !reflect.DeepEqual(dot, star) {
		t.Error("Dot and Star render differently")
	}
	m, ok := dot[0].(Marker)
	if !ok || m.X != 0.5 || m.Y != 0.5 {
		t.Errorf("marker %#v is not centered at (0.5,0.5)", dot[0])
	}
}

func TestRenderElbows(t *testing.T) {
	se := mustRender(t, mustGrid(t, [][]Cell{{ElbowSE}}))[0].(Curve)
	if se.P0 != (Point{1, 0.5}) || se.P3 != (Point{0.5, 0}) {
		t.Errorf("ElbowSE runs %v -> %v, want (1,0.5) -> (0.5,0)", se.P0, se.P3)
	}
	if se.P1 != (Point{0.5, 0.5}) || se.P2 != se.P1 {
		t.Errorf("ElbowSE controls %v, %v, want the cell center twice", se.P1, se.P2)
	}

	nw := mustRender(t, mustGrid(t, [][]Cell{{ElbowNW}}))[0].(Curve)
	if nw.P0 != (Point{0, 0.5}) || nw.P3 != (Point{0.5, 1}) {
		t.Errorf("ElbowNW runs %v -> %v, want (0,0.5) -> (0.5,1)", nw.P0, nw.P3)
	}
}

func TestRenderFlippedY(t *testing.T) {
	// drift at row 1, col 1 of a 2x2 grid lands in the top-left
	// unit square (0,1)-(1,2) under the flipped-y transform
	g := mustGrid(t, [][]Cell{
		{Drift{Label: "3", Highlighted: true}, Empty},
		{Empty, Empty},
	})
	cmds := mustRender(t, g)
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	fill := cmds[0].(FillRect)
	if fill.X0 != 0 || fill.Y0 != 1 || fill.X1 != 1 || fill.Y1 != 2 {
		t.Errorf("fill spans (%g,%g)-(%g,%g), want (0,1)-(1,2)", fill.X0, fill.Y0, fill.X1, fill.Y1)
	}
	label := cmds[2].(Label)
	if label.X != 0.5 || label.Y != 1.5 || label.Content != "3" {
		t.Errorf("label %#v, want %q at (0.5,1.5)", label, "3")
	}
	if label.Style != LabelEmphasis {
		t.Errorf("highlighted drift uses style %v, want %v", label.Style, LabelEmphasis)
	}
}

func TestRenderDriftDefaultColor(t *testing.T) {
	cmds := mustRender(t, mustGrid(t, [][]Cell{{Drift{Label: "7"}}}))
	if s := cmds[2].(Label).Style; s != LabelDefault {
		t.Errorf("plain drift uses style %v, want %v", s, LabelDefault)
	}
}

func TestRenderUnknownCode(t *testing.T) {
	g := mustGrid(t, [][]Cell{
		{Blank, Blank},
		{Blank, Code(42)},
	})
	_, err := Render(g)
	var cellErr *CellError
	if !errors.As(err, &cellErr) {
		t.Fatalf("got %v, want a CellError", err)
	}
	if cellErr.Row != 2 || cellErr.Col != 2 {
		t.Errorf("CellError at (%d,%d), want (2,2)", cellErr.Row, cellErr.Col)
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	g := mustGrid(t, nil)
	if cmds := mustRender(t, g); len(cmds) != 0 {
		t.Errorf("empty grid emits %d commands", len(cmds))
	}
}
