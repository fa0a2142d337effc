package rule

import (
	"testing"

	"github.com/lixenwraith/halflife/grid"
)

// gridFrom builds a one-to-one grid from rows of '#' (alive) and '.' (dead)
func gridFrom(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows), grid.OneToOne)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				g.Set(x, y, 1)
			}
		}
	}
	return g
}

func assertPattern(t *testing.T, g *grid.Grid, rows ...string) {
	t.Helper()
	for y, row := range rows {
		for x, c := range row {
			want := c == '#'
			if got := g.Alive(x, y); got != want {
				t.Errorf("Cell (%d,%d): expected alive=%v, got %v", x, y, want, got)
			}
		}
	}
}

func TestNextRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			got := Next(alive, n) != 0
			want := n == 3 || (alive && n == 2)
			if got != want {
				t.Errorf("Next(alive=%v, n=%d): expected alive=%v, got %v", alive, n, want, got)
			}
		}
	}
}

func TestNextStoresNeighbourCount(t *testing.T) {
	if v := Next(true, 2); v != 2 {
		t.Errorf("Expected survivor with 2 neighbours to store 2, got %d", v)
	}
	if v := Next(false, 3); v != 3 {
		t.Errorf("Expected birth to store 3, got %d", v)
	}
}

func TestLoneCenterDies(t *testing.T) {
	g := gridFrom(t,
		"...",
		".#.",
		"...",
	)
	next := Step(g)
	if next.Population() != 0 {
		t.Errorf("Expected empty generation, got population %d", next.Population())
	}
}

func TestFullThreeByThreeUsesBoundedEdges(t *testing.T) {
	g := gridFrom(t,
		"###",
		"###",
		"###",
	)

	if n := Neighbors(g, 0, 0); n != 3 {
		t.Errorf("Expected corner to see 3 neighbours, got %d", n)
	}
	if n := Neighbors(g, 1, 0); n != 5 {
		t.Errorf("Expected edge midpoint to see 5 neighbours, got %d", n)
	}
	if n := Neighbors(g, 1, 1); n != 8 {
		t.Errorf("Expected center to see 8 neighbours, got %d", n)
	}

	next := Step(g)
	assertPattern(t, next,
		"#.#",
		"...",
		"#.#",
	)
}

func TestBirthAndSurvivalOverlap(t *testing.T) {
	// (1,1) has exactly three neighbours in both cases
	dead := gridFrom(t,
		"#.#",
		"...",
		".#.",
	)
	alive := gridFrom(t,
		"#.#",
		".#.",
		".#.",
	)

	if !Step(dead).Alive(1, 1) {
		t.Error("Expected dead cell with 3 neighbours to be born")
	}
	if !Step(alive).Alive(1, 1) {
		t.Error("Expected live cell with 3 neighbours to survive")
	}
}

func TestOvercrowdingAndIsolationKill(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"zero", []string{"...", ".#.", "..."}},
		{"one", []string{"#..", ".#.", "..."}},
		{"four", []string{"#.#", ".#.", "#.#"}},
		{"eight", []string{"###", "###", "###"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFrom(t, tt.rows...)
			if Step(g).Alive(1, 1) {
				t.Error("Expected center to die")
			}
		})
	}

	// Dead cells with 4 neighbours stay dead
	g := gridFrom(t,
		"#.#",
		"...",
		"#.#",
	)
	if Step(g).Alive(1, 1) {
		t.Error("Expected dead center with 4 neighbours to stay dead")
	}
}

func TestBlinkerOscillates(t *testing.T) {
	g := gridFrom(t,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)

	g1 := Step(g)
	assertPattern(t, g1,
		".....",
		".....",
		".###.",
		".....",
		".....",
	)

	g2 := Step(g1)
	assertPattern(t, g2,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)
}

func TestGliderDoesNotWrap(t *testing.T) {
	// Glider heading into the bottom-right corner of a 4x4 board
	g := gridFrom(t,
		".#..",
		"..#.",
		"###.",
		"....",
	)

	for i := 0; i < 12; i++ {
		g = Step(g)
	}

	// A toroidal board would keep 5 cells forever; bounded edges collapse it into a block
	assertPattern(t, g,
		"....",
		"....",
		"..##",
		"..##",
	)
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := gridFrom(t,
		".#.",
		".#.",
		".#.",
	)
	before := g.Clone()
	Step(g)
	if !g.Equal(before) {
		t.Error("Expected input grid to be unchanged after Step")
	}
}

func TestStepIsDeterministic(t *testing.T) {
	g, err := grid.Seed(40, 20, grid.Doubled, grid.NewRand(5))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	a := Step(g)
	b := Step(g)
	if !a.Equal(b) {
		t.Error("Expected identical successors from identical input")
	}
}

func TestEngineMatchesStep(t *testing.T) {
	g, err := grid.Seed(30, 12, grid.Doubled, grid.NewRand(11))
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	ref := g.Clone()
	e := NewEngine()

	for i := 0; i < 20; i++ {
		ref = Step(ref)
		g = e.Step(g)
		if !g.Equal(ref) {
			t.Fatalf("Generation %d: engine diverged from Step", i+1)
		}
	}
}

func TestEngineReallocatesOnShapeChange(t *testing.T) {
	e := NewEngine()
	small := gridFrom(t, "...", "###", "...")
	next := e.Step(small)
	if next.Width() != 3 || next.Height() != 3 {
		t.Fatalf("Expected 3x3 successor, got %dx%d", next.Width(), next.Height())
	}

	big, _ := grid.Seed(10, 6, grid.Doubled, grid.NewRand(3))
	want := Step(big)
	got := e.Step(big)
	if !got.Equal(want) {
		t.Error("Expected engine to handle a reseeded grid of a different shape")
	}
	if got == small || got == next {
		t.Error("Expected a new buffer after shape change")
	}
}
