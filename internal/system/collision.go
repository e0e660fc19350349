// internal/system/collision.go
package system

import (
	"math"
	"sort"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// SpatialQuery finds enemies that may overlap a box. Indices refer to the
// slice the query was built from and come back in ascending order, so the
// first hit in list order wins no matter which implementation is used.
type SpatialQuery interface {
	Candidates(box component.Rect) []int
}

// IndexBuilder builds a SpatialQuery over the enemies of the current tick.
type IndexBuilder func(enemies []*component.Enemy) SpatialQuery

// ListIndex is the naive broadphase: every enemy is a candidate.
type ListIndex struct {
	all []int
}

func NewListIndex(enemies []*component.Enemy) SpatialQuery {
	all := make([]int, len(enemies))
	for i := range all {
		all[i] = i
	}
	return &ListIndex{all: all}
}

func (l *ListIndex) Candidates(component.Rect) []int {
	return l.all
}

type cellKey struct {
	x, y int
}

// GridIndex buckets enemies into uniform cells. Enemies spanning several
// cells are stored in each of them.
type GridIndex struct {
	cellSize float32
	cells    map[cellKey][]int
}

// NewGridIndex uses config.GridCellSize cells.
func NewGridIndex(enemies []*component.Enemy) SpatialQuery {
	return NewGridIndexSized(enemies, config.GridCellSize)
}

func NewGridIndexSized(enemies []*component.Enemy, cellSize float32) *GridIndex {
	g := &GridIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
	}
	for i, e := range enemies {
		g.forEachCell(e.Bounds(), func(k cellKey) {
			g.cells[k] = append(g.cells[k], i)
		})
	}
	return g
}

func (g *GridIndex) cellOf(v float32) int {
	return int(math.Floor(float64(v / g.cellSize)))
}

func (g *GridIndex) forEachCell(r component.Rect, fn func(cellKey)) {
	x0, x1 := g.cellOf(r.X), g.cellOf(r.Right())
	y0, y1 := g.cellOf(r.Y), g.cellOf(r.Bottom())
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			fn(cellKey{cx, cy})
		}
	}
}

func (g *GridIndex) Candidates(box component.Rect) []int {
	seen := make(map[int]struct{})
	var out []int
	g.forEachCell(box, func(k cellKey) {
		for _, i := range g.cells[k] {
			if _, dup := seen[i]; dup {
				continue
			}
			seen[i] = struct{}{}
			out = append(out, i)
		}
	})
	sort.Ints(out)
	return out
}

// IndexBuilderByName maps a -broadphase flag value to a builder.
func IndexBuilderByName(name string) (IndexBuilder, bool) {
	switch name {
	case "", "list":
		return NewListIndex, true
	case "grid":
		return NewGridIndex, true
	}
	return nil, false
}
