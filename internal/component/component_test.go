package component

import (
	"testing"

	"go-space-invaders/internal/input"
)

// enemyBox builds an enemy whose collision box is exactly (x, y, w, h).
func enemyBox(x, y, w, h float32) *Enemy {
	e := NewEnemy(x, y, 0, 0, SpriteSize{W: w, H: h})
	e.ScaleFactor = 1
	return e
}

type heldKeys map[input.Action]bool

func (h heldKeys) IsPressed(a input.Action) bool { return h[a] }

func TestBulletUpdate_InactiveIsNoop(t *testing.T) {
	b := NewBullet(10, 20, 5)
	b.IsActive = false
	before := *b

	b.Update()

	if *b != before {
		t.Errorf("inactive bullet changed: before %+v, after %+v", before, *b)
	}
}

func TestBulletUpdate_MovesUp(t *testing.T) {
	b := NewBullet(10, 20, 5)
	b.Update()

	if b.Y != 15 {
		t.Errorf("expected y=15, got %v", b.Y)
	}
	if !b.IsActive {
		t.Error("bullet still on screen should stay active")
	}
}

func TestBulletUpdate_LeavesTop(t *testing.T) {
	for _, y := range []float32{0, -3, 4.9} {
		b := NewBullet(10, y, 5)
		b.Update()
		if b.IsActive {
			t.Errorf("bullet starting at y=%v should be inactive after update, y=%v", y, b.Y)
		}
	}
}

func TestNewBullet_FixedSize(t *testing.T) {
	b := NewBullet(1, 2, 3)
	if b.Width != 5 || b.Height != 10 || !b.IsActive {
		t.Errorf("unexpected bullet %+v", b)
	}
}

func TestCollidesWith_Scenario(t *testing.T) {
	b := NewBullet(100, 100, 5)

	hit := enemyBox(98, 105, 22, 35) // (98,105)-(120,140)
	if !b.CollidesWith(hit) {
		t.Error("expected collision with enemy spanning (98,105)-(120,140)")
	}

	miss := enemyBox(200, 200, 20, 30) // (200,200)-(220,230)
	if b.CollidesWith(miss) {
		t.Error("expected no collision with enemy spanning (200,200)-(220,230)")
	}
}

func TestCollidesWith_AnyCorner(t *testing.T) {
	b := NewBullet(100, 100, 5) // box (100,100)-(105,110)

	cases := []struct {
		name string
		e    *Enemy
	}{
		{"top-left", enemyBox(90, 90, 12, 12)},
		{"top-right", enemyBox(103, 90, 12, 12)},
		{"bottom-left", enemyBox(90, 108, 12, 12)},
		{"bottom-right", enemyBox(103, 108, 12, 12)},
		{"covers", enemyBox(50, 50, 100, 100)},
		{"inside", enemyBox(101, 101, 2, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !b.CollidesWith(tc.e) {
				t.Errorf("expected collision for %s", tc.name)
			}
		})
	}
}

func TestCollidesWith_SharedEdgeIsExclusive(t *testing.T) {
	b := NewBullet(100, 100, 5) // box (100,100)-(105,110)

	cases := []struct {
		name string
		e    *Enemy
	}{
		{"left edge", enemyBox(90, 100, 10, 10)},
		{"right edge", enemyBox(105, 100, 10, 10)},
		{"top edge", enemyBox(100, 90, 5, 10)},
		{"bottom edge", enemyBox(100, 110, 5, 10)},
		{"corner", enemyBox(105, 110, 10, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if b.CollidesWith(tc.e) {
				t.Errorf("boxes sharing only the %s must not collide", tc.name)
			}
		})
	}
}

func TestEnemyBounds_UsesScaledSpriteWithoutDrawOffset(t *testing.T) {
	e := NewEnemy(10, 20, 1, 2, SpriteSize{W: 400, H: 400})
	r := e.Bounds()

	if r.X != 10 || r.Y != 20 {
		t.Errorf("collision box must not be offset, got %+v", r)
	}
	if r.W != 400*e.ScaleFactor || r.H != 400*e.ScaleFactor {
		t.Errorf("collision box must be sprite size x scale, got %+v", r)
	}

	_, drawY, _, scaleY := e.DrawPlacement()
	if drawY != 55 || scaleY >= 0 {
		t.Errorf("draw placement should be shifted by 35 and flipped, got y=%v scaleY=%v", drawY, scaleY)
	}
}

func TestEnemyUpdate_MovesDownAndSideways(t *testing.T) {
	e := enemyBox(100, 10, 20, 20)
	e.Speed = 1.5
	e.HorizontalSpeed = 2

	e.Update(800)

	if e.X != 102 || e.Y != 11.5 {
		t.Errorf("expected (102, 11.5), got (%v, %v)", e.X, e.Y)
	}
	if e.HorizontalSpeed != 2 {
		t.Errorf("no wall touched, speed should stay 2, got %v", e.HorizontalSpeed)
	}
}

func TestEnemyUpdate_BouncesOnRightWall(t *testing.T) {
	e := enemyBox(779, 0, 20, 20) // right edge 799
	e.HorizontalSpeed = 2

	e.Update(800)

	if e.HorizontalSpeed != -2 {
		t.Fatalf("expected speed flipped to -2 on the crossing update, got %v", e.HorizontalSpeed)
	}
	if e.X != 781 {
		t.Errorf("enemy should overshoot before bouncing, x=%v", e.X)
	}

	e.Update(800)
	if e.X != 779 {
		t.Errorf("expected enemy to move left with flipped speed, x=%v", e.X)
	}
	if e.HorizontalSpeed != -2 {
		t.Errorf("speed should keep the flipped sign, got %v", e.HorizontalSpeed)
	}
}

func TestEnemyUpdate_BouncesOnLeftWall(t *testing.T) {
	e := enemyBox(1, 0, 20, 20)
	e.HorizontalSpeed = -2

	e.Update(800)

	if e.HorizontalSpeed != 2 {
		t.Errorf("expected speed flipped to 2, got %v", e.HorizontalSpeed)
	}
}

func TestPlayerUpdate_Movement(t *testing.T) {
	cases := []struct {
		name  string
		keys  heldKeys
		wantX float32
	}{
		{"idle", heldKeys{}, 100},
		{"left", heldKeys{input.Left: true}, 85},
		{"right", heldKeys{input.Right: true}, 115},
		{"both", heldKeys{input.Left: true, input.Right: true}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(100, 500, 15, SpriteSize{W: 500, H: 500})
			p.Update(tc.keys, 800)
			if p.X != tc.wantX {
				t.Errorf("expected x=%v, got %v", tc.wantX, p.X)
			}
		})
	}
}

func TestPlayerUpdate_Clamped(t *testing.T) {
	p := NewPlayer(5, 500, 15, SpriteSize{W: 500, H: 500})
	p.Update(heldKeys{input.Left: true}, 800)
	if p.X != 0 {
		t.Errorf("expected clamp to 0, got %v", p.X)
	}

	p = NewPlayer(745, 500, 15, SpriteSize{W: 500, H: 500})
	p.Update(heldKeys{input.Right: true}, 800)
	if want := 800 - p.ScaledWidth(); p.X != want {
		t.Errorf("expected clamp to %v, got %v", want, p.X)
	}
}

func TestPlayerShoot(t *testing.T) {
	p := NewPlayer(100, 500, 15, SpriteSize{W: 500, H: 500})
	b := p.Shoot()

	if b.X != 122 || b.Y != 500 || b.Speed != 5 || !b.IsActive {
		t.Errorf("unexpected bullet %+v", b)
	}
}

func TestNewCenteredPlayer(t *testing.T) {
	p := NewCenteredPlayer(800, 600, SpriteSize{W: 500, H: 500})
	if p.X != 375 || p.Y != 500 || p.Speed != 15 || p.ScaleFactor != 0.1 {
		t.Errorf("unexpected player %+v", p)
	}
}
