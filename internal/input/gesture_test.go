package input

import (
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
)

func TestTracker_DragPans(t *testing.T) {
	tr := NewTracker()

	if cmds := tr.Handle(Pointer{X: 10, Y: 10, Button: ButtonLeft, Action: Press}); cmds != nil {
		t.Fatalf("press produced commands: %v", cmds)
	}

	cmds := tr.Handle(Pointer{X: 14, Y: 7, Button: ButtonLeft, Action: Motion})
	if len(cmds) != 1 {
		t.Fatalf("expected one pan, got %v", cmds)
	}
	if pan, ok := cmds[0].(Pan); !ok || pan.DX != 4 || pan.DY != -3 {
		t.Errorf("unexpected pan: %#v", cmds[0])
	}

	cmds = tr.Handle(Pointer{X: 16, Y: 7, Button: ButtonLeft, Action: Motion})
	if pan := cmds[0].(Pan); pan.DX != 2 || pan.DY != 0 {
		t.Errorf("pan should be relative to last motion: %#v", pan)
	}

	if cmds := tr.Handle(Pointer{X: 16, Y: 7, Action: Release}); cmds != nil {
		t.Errorf("release after drag produced %v", cmds)
	}
	if cmds := tr.Handle(Pointer{X: 30, Y: 30, Action: Motion}); cmds != nil {
		t.Errorf("motion without button produced %v", cmds)
	}
}

func TestTracker_ClickPicks(t *testing.T) {
	tr := NewTracker()
	tr.Handle(Pointer{X: 5, Y: 6, Button: ButtonLeft, Action: Press})
	tr.Handle(Pointer{X: 5, Y: 6, Button: ButtonLeft, Action: Motion})

	cmds := tr.Handle(Pointer{X: 5, Y: 6, Action: Release})
	if len(cmds) != 1 {
		t.Fatalf("expected pick, got %v", cmds)
	}
	if pick, ok := cmds[0].(Pick); !ok || pick.At != dynamo.V(5, 6) {
		t.Errorf("unexpected command: %#v", cmds[0])
	}
}

func TestTracker_RightDragSpawns(t *testing.T) {
	tr := NewTracker()
	tr.Handle(Pointer{X: 20, Y: 20, Button: ButtonRight, Action: Press})
	tr.Handle(Pointer{X: 25, Y: 22, Button: ButtonRight, Action: Motion})

	from, to, ok := tr.Dragging()
	if !ok || from != dynamo.V(20, 20) || to != dynamo.V(25, 22) {
		t.Errorf("Dragging() = %v %v %v", from, to, ok)
	}

	cmds := tr.Handle(Pointer{X: 30, Y: 24, Button: ButtonRight, Action: Release})
	if len(cmds) != 1 {
		t.Fatalf("expected spawn, got %v", cmds)
	}
	spawn, ok := cmds[0].(Spawn)
	if !ok || spawn.From != dynamo.V(20, 20) || spawn.To != dynamo.V(30, 24) {
		t.Errorf("unexpected spawn: %#v", cmds[0])
	}
	if _, _, ok := tr.Dragging(); ok {
		t.Error("still dragging after release")
	}
}

func TestTracker_Wheel(t *testing.T) {
	tests := []struct {
		p    Pointer
		want Zoom
	}{
		{Pointer{Button: ButtonWheelUp, Action: Press}, Zoom{Steps: 1}},
		{Pointer{Button: ButtonWheelDown, Action: Press}, Zoom{Steps: -1}},
		{Pointer{Button: ButtonWheelUp, Action: Press, Shift: true}, Zoom{Steps: 1, Coarse: true}},
	}

	for _, tt := range tests {
		cmds := NewTracker().Handle(tt.p)
		if len(cmds) != 1 || cmds[0] != Command(tt.want) {
			t.Errorf("Handle(%+v) = %v, want %v", tt.p, cmds, tt.want)
		}
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		key  string
		want Command
	}{
		{" ", TogglePause{}},
		{"q", Quit{}},
		{"+", ScaleTime{Factor: TimeScaleStep}},
		{"0", ResetTime{}},
		{"left", Pan{DX: KeyPanStep}},
		{"]", Zoom{Steps: 1}},
		{"tab", CycleSelection{}},
	}

	for _, tt := range tests {
		if got := km.Lookup(tt.key); got != tt.want {
			t.Errorf("Lookup(%q) = %#v, want %#v", tt.key, got, tt.want)
		}
	}
	if got := km.Lookup("F13"); got != nil {
		t.Errorf("unbound key returned %#v", got)
	}
}
