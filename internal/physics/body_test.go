package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

func TestNewBody_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mass     float64
		position dynamo.Vec2
		velocity dynamo.Vec2
		wantErr  error
	}{
		{"valid", 1, dynamo.Zero(), dynamo.Zero(), nil},
		{"zero mass", 0, dynamo.Zero(), dynamo.Zero(), dynamo.ErrNonPositiveMass},
		{"negative mass", -3, dynamo.Zero(), dynamo.Zero(), dynamo.ErrNonPositiveMass},
		{"NaN mass", math.NaN(), dynamo.Zero(), dynamo.Zero(), dynamo.ErrNonPositiveMass},
		{"infinite mass", math.Inf(1), dynamo.Zero(), dynamo.Zero(), dynamo.ErrNonPositiveMass},
		{"NaN position", 1, dynamo.V(math.NaN(), 0), dynamo.Zero(), dynamo.ErrNonFinite},
		{"infinite velocity", 1, dynamo.Zero(), dynamo.V(0, math.Inf(-1)), dynamo.ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBody(tt.mass, tt.position, tt.velocity)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !b.Alive() {
					t.Error("new body is not alive")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if b != nil {
				t.Error("expected nil body on error")
			}
		})
	}
}

func TestNewBody_Options(t *testing.T) {
	b := MustBody(4, dynamo.V(1, 2), dynamo.V(3, 4), Named("io"), Colored("#ff8800"), Pinned())

	view := b.View()
	want := BodyView{
		Name:     "io",
		Color:    "#ff8800",
		Mass:     4,
		Position: dynamo.V(1, 2),
		Velocity: dynamo.V(3, 4),
		Pinned:   true,
	}
	if view != want {
		t.Errorf("View() = %+v, want %+v", view, want)
	}
}

func TestMustBody_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero mass")
		}
	}()
	MustBody(0, dynamo.Zero(), dynamo.Zero())
}
