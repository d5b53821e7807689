package game

import "testing"

func TestActorFlapOverridesVelocity(t *testing.T) {
	a := NewActor(100, 100, 60, 60, 3, "blue")

	a.Vel = 12.5 // Falling fast
	a.Flap(-9)

	if a.Vel != -9 {
		t.Errorf("Flap should set velocity to the impulse, got %g", a.Vel)
	}

	// A second tap replaces, never accumulates
	a.Flap(-9)
	if a.Vel != -9 {
		t.Errorf("repeated flaps must not stack, got %g", a.Vel)
	}
}

func TestActorGravityIntegrationOrder(t *testing.T) {
	a := NewActor(100, 100, 60, 60, 3, "blue")
	a.Y = 50
	a.Vel = 2

	a.ApplyGravity(0.9)

	// Position moves by the pre-update velocity, then velocity gains gravity
	if a.Y != 52 {
		t.Errorf("Y = %g, expected 52", a.Y)
	}
	if a.Vel != 2.9 {
		t.Errorf("Vel = %g, expected 2.9", a.Vel)
	}
}

func TestActorGravityPullsDownAfterFlap(t *testing.T) {
	a := NewActor(500, 500, 60, 60, 3, "blue")
	a.Flap(-9)

	startY := a.Y
	for i := 0; i < 5; i++ {
		a.ApplyGravity(0.9)
	}

	if a.Y >= startY {
		t.Errorf("actor should have risen after a flap, Y went %g -> %g", startY, a.Y)
	}

	// Keep falling; gravity eventually wins
	for i := 0; i < 30; i++ {
		a.ApplyGravity(0.9)
	}
	if a.Vel <= 0 {
		t.Errorf("velocity should turn downward, got %g", a.Vel)
	}
}

func TestActorReduceLifeFloorsAtZero(t *testing.T) {
	a := NewActor(100, 100, 60, 60, 2, "blue")

	a.ReduceLife()
	a.ReduceLife()
	a.ReduceLife() // Extra call must not go negative

	if a.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", a.Lives)
	}
}

func TestActorBoxDerivedFromPosition(t *testing.T) {
	a := NewActor(100, 200, 60, 40, 3, "blue")

	box := a.Box()
	if box.X != 70 || box.Y != 180 {
		t.Errorf("box top-left = (%g, %g), expected (70, 180)", box.X, box.Y)
	}
	if box.W != 60 || box.H != 40 {
		t.Errorf("box size = %gx%g, expected 60x40", box.W, box.H)
	}

	a.Y += 10
	if a.Box().Y != 190 {
		t.Error("box must track position each tick")
	}
}

func TestActorAdoptState(t *testing.T) {
	out := NewActor(100, 100, 60, 60, 3, "blue")
	out.X, out.Y, out.Vel, out.Lives = 42, 84, -3.5, 2

	in := NewActor(500, 500, 60, 60, 3, "green")
	in.AdoptState(out)

	if in.X != 42 || in.Y != 84 {
		t.Errorf("position not adopted, got (%g, %g)", in.X, in.Y)
	}
	if in.Vel != -3.5 {
		t.Errorf("velocity not adopted, got %g", in.Vel)
	}
	if in.Lives != 2 {
		t.Errorf("lives not adopted, got %d", in.Lives)
	}
	if in.Skin != "green" {
		t.Errorf("skin must stay the stage's own, got %q", in.Skin)
	}
}

func TestActorMoveTo(t *testing.T) {
	a := NewActor(100, 100, 60, 60, 3, "blue")
	a.Vel = 7

	a.MoveTo(970, 600)

	if a.X != 940 || a.Y != 570 {
		t.Errorf("MoveTo should center the box, got (%g, %g)", a.X, a.Y)
	}
	if a.Vel != 0 {
		t.Errorf("MoveTo should zero velocity, got %g", a.Vel)
	}
}
