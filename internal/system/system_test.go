package system

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"
	"testing"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/utils"
)

var testSprite = component.SpriteSize{W: 400, H: 400} // 32x32 once scaled

func TestWaveSize(t *testing.T) {
	cases := []struct {
		round, cols, rows int
	}{
		{1, 3, 1},
		{2, 6, 2},
		{3, 9, 3},
		{4, 9, 3},
		{10, 9, 3},
	}
	for _, tc := range cases {
		cols, rows := WaveSize(tc.round)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("round %d: expected %dx%d, got %dx%d", tc.round, tc.cols, tc.rows, cols, rows)
		}
	}
}

func TestWaveSpeed(t *testing.T) {
	if got := WaveSpeed(1); got != float32(0.2)+float32(0.1)*1 {
		t.Errorf("round 1: got %v", got)
	}
	if WaveSpeed(5) <= WaveSpeed(4) {
		t.Error("wave speed should grow with the round")
	}
}

func TestSpawnEnemies_GridLayout(t *testing.T) {
	s := NewSpawner(testSprite, utils.NewPRNGService(1))
	enemies := s.SpawnEnemies(800, 3, 2)

	if len(enemies) != 6 {
		t.Fatalf("expected 6 enemies, got %d", len(enemies))
	}

	width := enemies[0].ScaledWidth()
	gap := (800 - width*3) / 4
	for i, e := range enemies {
		col, row := i/2, i%2
		wantX := gap*float32(col+1) + float32(col)*width
		wantY := float32(-50 + row*50)
		if e.X != wantX || e.Y != wantY {
			t.Errorf("enemy %d (col %d, row %d): expected (%v, %v), got (%v, %v)", i, col, row, wantX, wantY, e.X, e.Y)
		}
		if e.Speed != 1.5 || e.IsDead {
			t.Errorf("enemy %d: unexpected state %+v", i, e)
		}
	}
}

func TestSpawnEnemies_SharedDirection(t *testing.T) {
	seenSign := map[bool]bool{}
	for seed := int64(1); seed <= 20; seed++ {
		s := NewSpawner(testSprite, utils.NewPRNGService(seed))
		enemies := s.SpawnEnemies(800, 9, 3)
		first := enemies[0].HorizontalSpeed
		if first != 2 && first != -2 {
			t.Fatalf("seed %d: unexpected horizontal speed %v", seed, first)
		}
		for i, e := range enemies {
			if e.HorizontalSpeed != first {
				t.Fatalf("seed %d: enemy %d has speed %v, wave shares %v", seed, i, e.HorizontalSpeed, first)
			}
		}
		seenSign[first > 0] = true
	}
	if !seenSign[true] || !seenSign[false] {
		t.Errorf("expected both directions across seeds, got %v", seenSign)
	}
}

func enemiesAt(points ...[2]float32) []*component.Enemy {
	out := make([]*component.Enemy, 0, len(points))
	for _, p := range points {
		out = append(out, component.NewEnemy(p[0], p[1], 0, 0, testSprite))
	}
	return out
}

func TestListIndex_ReturnsEverything(t *testing.T) {
	enemies := enemiesAt([2]float32{0, 0}, [2]float32{500, 500}, [2]float32{100, 0})
	got := NewListIndex(enemies).Candidates(component.Rect{X: 0, Y: 0, W: 1, H: 1})
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("expected all indices in order, got %v", got)
	}
}

func TestGridIndex_CandidatesAreSupersetOfHits(t *testing.T) {
	enemies := enemiesAt(
		[2]float32{10, -40},
		[2]float32{60, 10},
		[2]float32{300, 300},
		[2]float32{127, 63},
		[2]float32{700, 550},
	)
	grid := NewGridIndexSized(enemies, 64)

	boxes := []component.Rect{
		{X: 20, Y: -20, W: 5, H: 10},
		{X: 70, Y: 30, W: 5, H: 10},
		{X: 130, Y: 60, W: 5, H: 10},
		{X: 400, Y: 100, W: 5, H: 10},
		{X: 710, Y: 560, W: 5, H: 10},
	}
	for _, box := range boxes {
		t.Run(fmt.Sprintf("%v", box), func(t *testing.T) {
			cands := grid.Candidates(box)
			in := map[int]bool{}
			for i, c := range cands {
				in[c] = true
				if i > 0 && cands[i-1] >= c {
					t.Errorf("candidates not ascending: %v", cands)
				}
			}
			for i, e := range enemies {
				if box.Overlaps(e.Bounds()) && !in[i] {
					t.Errorf("enemy %d overlaps %v but is not a candidate (%v)", i, box, cands)
				}
			}
		})
	}
}

func TestGridIndex_FarBoxHasNoCandidates(t *testing.T) {
	grid := NewGridIndexSized(enemiesAt([2]float32{0, 0}), 64)
	if got := grid.Candidates(component.Rect{X: 600, Y: 400, W: 5, H: 10}); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestIndexBuilderByName(t *testing.T) {
	for _, name := range []string{"", "list", "grid"} {
		if _, ok := IndexBuilderByName(name); !ok {
			t.Errorf("%q should be a known broadphase", name)
		}
	}
	if _, ok := IndexBuilderByName("quadtree"); ok {
		t.Error("unknown broadphase accepted")
	}
}

type drawCall struct {
	kind   string
	name   string
	x, y   float32
	sx, sy float32
}

type recordingSurface struct {
	calls  []drawCall
	failOn string
}

func (s *recordingSurface) Size() (float32, float32) { return 800, 600 }

func (s *recordingSurface) Clear(color.Color) error {
	s.calls = append(s.calls, drawCall{kind: "clear"})
	return nil
}

func (s *recordingSurface) DrawSprite(name string, x, y, sx, sy float32) error {
	if name == s.failOn {
		return fmt.Errorf("%w: no sprite %q", ErrRenderSubmission, name)
	}
	s.calls = append(s.calls, drawCall{kind: "sprite", name: name, x: x, y: y, sx: sx, sy: sy})
	return nil
}

func (s *recordingSurface) DrawRect(x, y, w, h float32, _ color.Color) error {
	s.calls = append(s.calls, drawCall{kind: "rect", x: x, y: y})
	return nil
}

func (s *recordingSurface) DrawText(str string, x, y float32, _ color.Color) error {
	s.calls = append(s.calls, drawCall{kind: "text", name: str, x: x, y: y})
	return nil
}

func (s *recordingSurface) Present() error { return nil }

func TestRenderSystem_DrawOrderAndPlacement(t *testing.T) {
	surface := &recordingSurface{}
	inactive := component.NewBullet(0, 0, 5)
	inactive.IsActive = false
	scene := Scene{
		Player:  component.NewPlayer(100, 500, 15, component.SpriteSize{W: 500, H: 500}),
		Bullets: []*component.Bullet{component.NewBullet(50, 60, 5), inactive},
		Enemies: enemiesAt([2]float32{10, 20}),
	}

	if err := NewRenderSystem().Draw(surface, scene); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	kinds := make([]string, 0, len(surface.calls))
	for _, c := range surface.calls {
		kinds = append(kinds, c.kind+":"+c.name)
	}
	want := []string{"clear:", "sprite:background", "rect:", "sprite:enemy", "sprite:player"}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}

	enemy := surface.calls[3]
	if enemy.x != 10 || enemy.y != 55 || enemy.sy >= 0 {
		t.Errorf("enemy should be drawn shifted down and flipped, got %+v", enemy)
	}
}

func TestRenderSystem_PropagatesSurfaceError(t *testing.T) {
	surface := &recordingSurface{failOn: "enemy"}
	scene := Scene{Enemies: enemiesAt([2]float32{0, 0})}

	err := NewRenderSystem().Draw(surface, scene)
	if !errors.Is(err, ErrRenderSubmission) {
		t.Errorf("expected ErrRenderSubmission, got %v", err)
	}
}
