package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(4, 6)

	if got := a.Add(b); got != V(5, 8) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := b.Sub(a); got != V(3, 4) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Mul(3); got != V(3, 6) {
		t.Errorf("Mul failed: got %v", got)
	}
	if got := b.Div(2); got != V(2, 3) {
		t.Errorf("Div failed: got %v", got)
	}
	if got := a.MulVec(b); got != V(4, 12) {
		t.Errorf("MulVec failed: got %v", got)
	}
	if got := b.DivVec(V(2, 3)); got != V(2, 2) {
		t.Errorf("DivVec failed: got %v", got)
	}
	if got := a.Dot(b); got != 16 {
		t.Errorf("Dot failed: got %v", got)
	}
	if got := V(1, 0).Perp(); got != V(0, 1) {
		t.Errorf("Perp failed: got %v", got)
	}
}

func TestVec2_Immutable(t *testing.T) {
	a := V(1, 1)
	c := a.Copy()
	_ = a.Add(V(5, 5)).Mul(10)

	if a != V(1, 1) {
		t.Errorf("operation mutated receiver: %v", a)
	}
	if c != a {
		t.Errorf("Copy differs: %v vs %v", c, a)
	}
	if Zero() != (Vec2{}) {
		t.Errorf("Zero not zero: %v", Zero())
	}
}

func TestDifferenceAndDistance(t *testing.T) {
	tests := []struct {
		a, b     Vec2
		diff     Vec2
		distance float64
	}{
		{V(0, 0), V(3, 4), V(3, 4), 5},
		{V(30, 0), V(-30, 0), V(-60, 0), 60},
		{V(1, 1), V(1, 1), V(0, 0), 0},
	}

	for _, tt := range tests {
		diff := Difference(tt.a, tt.b)
		if diff != tt.diff {
			t.Errorf("Difference(%v, %v) = %v, want %v", tt.a, tt.b, diff, tt.diff)
		}
		if got := Distance(diff); math.Abs(got-tt.distance) > 1e-12 {
			t.Errorf("Distance(%v) = %v, want %v", diff, got, tt.distance)
		}
	}
}

func TestVec2_DivByZero(t *testing.T) {
	v := V(1, 0).Div(0)
	if !math.IsInf(v.X, 1) {
		t.Errorf("expected +Inf, got %v", v.X)
	}
	if !math.IsNaN(v.Y) {
		t.Errorf("expected NaN, got %v", v.Y)
	}
	if v.IsFinite() {
		t.Error("IsFinite() = true for non-finite vector")
	}
}

func TestVec2_IsFinite(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		valid bool
	}{
		{"zero", Zero(), true},
		{"normal", V(1e9, -3), true},
		{"NaN", V(math.NaN(), 0), false},
		{"+Inf", V(0, math.Inf(1)), false},
		{"-Inf", V(math.Inf(-1), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.valid {
				t.Errorf("IsFinite() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestBodyError(t *testing.T) {
	err := &BodyError{Index: 2, Name: "moon", Wrapped: ErrNonPositiveMass}
	expected := "body 2 (moon): dynamo: body mass must be positive and finite"
	if err.Error() != expected {
		t.Errorf("BodyError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrNonPositiveMass) {
		t.Error("BodyError does not unwrap to its cause")
	}

	anon := &BodyError{Index: 0, Wrapped: ErrNonFinite}
	if anon.Error() != "body 0: dynamo: non-finite vector component" {
		t.Errorf("unexpected message %q", anon.Error())
	}
}
