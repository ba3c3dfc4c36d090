package editor

import (
	"testing"

	"garment-studio/core"
)

func TestDragMovesElementByPointerDelta(t *testing.T) {
	s := NewSession()
	id := s.AddImage("img") // spawns at (60, 80), 50x50

	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})
	if !s.Dragging() {
		t.Fatal("press on element should start a drag")
	}

	s.PointerMove(core.SurfaceFront, core.Point{X: 100, Y: 120})
	el, _ := s.Element(id)
	if el.Position.X != 75 || el.Position.Y != 95 {
		t.Errorf("got position (%v, %v), want (75, 95)", el.Position.X, el.Position.Y)
	}

	s.PointerUp()
	if s.Dragging() {
		t.Error("drag should end on pointer up")
	}

	// Moves after release do nothing.
	s.PointerMove(core.SurfaceFront, core.Point{X: 200, Y: 200})
	el, _ = s.Element(id)
	if el.Position.X != 75 || el.Position.Y != 95 {
		t.Errorf("move after release changed position to (%v, %v)", el.Position.X, el.Position.Y)
	}
}

func TestDragClampsToSurface(t *testing.T) {
	s := NewSession()
	id := s.AddImage("img")

	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})

	s.PointerMove(core.SurfaceFront, core.Point{X: 1000, Y: 1000})
	el, _ := s.Element(id)
	wantX := float64(SurfaceWidth - DefaultElementSize)
	wantY := float64(SurfaceHeight - DefaultElementSize)
	if el.Position.X != wantX || el.Position.Y != wantY {
		t.Errorf("got position (%v, %v), want clamped (%v, %v)", el.Position.X, el.Position.Y, wantX, wantY)
	}

	s.PointerMove(core.SurfaceFront, core.Point{X: -500, Y: -500})
	el, _ = s.Element(id)
	if el.Position.X != 0 || el.Position.Y != 0 {
		t.Errorf("got position (%v, %v), want clamped (0, 0)", el.Position.X, el.Position.Y)
	}
}

func TestClampUsesElementSize(t *testing.T) {
	s := NewSession()
	id := s.AddText("wide", "#000") // 100x30

	s.PointerDown(core.SurfaceFront, core.Point{X: 65, Y: 85})
	s.PointerMove(core.SurfaceFront, core.Point{X: 1000, Y: 1000})

	el, _ := s.Element(id)
	if el.Position.X != SurfaceWidth-100 || el.Position.Y != SurfaceHeight-30 {
		t.Errorf("got position (%v, %v), want (%v, %v)", el.Position.X, el.Position.Y, float64(SurfaceWidth-100), float64(SurfaceHeight-30))
	}
}

func TestPressReleaseWithoutMove(t *testing.T) {
	s := NewSession()
	id := s.AddImage("img")

	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})
	s.PointerUp()

	el, _ := s.Element(id)
	if el.Position.X != ZoneX || el.Position.Y != ZoneY {
		t.Errorf("press-release moved element to (%v, %v)", el.Position.X, el.Position.Y)
	}
}

func TestPointerDownEmptyCanvas(t *testing.T) {
	s := NewSession()
	s.AddImage("img")

	s.PointerDown(core.SurfaceBack, core.Point{X: 5, Y: 5})

	if s.Dragging() {
		t.Error("press on empty canvas should not start a drag")
	}
	if _, ok := s.SelectedID(); ok {
		t.Error("press on empty canvas should clear selection")
	}
	if s.ActiveSide() != core.SurfaceBack {
		t.Errorf("got active side %q, want %q", s.ActiveSide(), core.SurfaceBack)
	}
}

func TestPointerMoveIgnoredOnOtherSurface(t *testing.T) {
	s := NewSession()
	id := s.AddImage("img")

	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})
	s.PointerMove(core.SurfaceBack, core.Point{X: 200, Y: 200})

	el, _ := s.Element(id)
	if el.Position.X != ZoneX || el.Position.Y != ZoneY {
		t.Errorf("cross-surface move changed position to (%v, %v)", el.Position.X, el.Position.Y)
	}
	if !s.Dragging() {
		t.Error("cross-surface move should not cancel the drag")
	}
}

func TestPointerLeaveCancelsDrag(t *testing.T) {
	s := NewSession()
	id := s.AddImage("img")

	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})
	s.PointerLeave(core.SurfaceFront)

	if s.Dragging() {
		t.Fatal("pointer leave should cancel the drag")
	}
	s.PointerMove(core.SurfaceFront, core.Point{X: 200, Y: 200})
	el, _ := s.Element(id)
	if el.Position.X != ZoneX || el.Position.Y != ZoneY {
		t.Errorf("move after leave changed position to (%v, %v)", el.Position.X, el.Position.Y)
	}
}

func TestRemoveMidDragAbandonsDrag(t *testing.T) {
	s := NewSession()
	id := s.AddImage("img")

	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})
	if err := s.Remove(id); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Must not panic or resurrect the element.
	s.PointerMove(core.SurfaceFront, core.Point{X: 100, Y: 120})
	if s.Dragging() {
		t.Error("drag should be abandoned after the element is removed")
	}
}

func TestHitTestPrefersTopmost(t *testing.T) {
	s := NewSession()
	bottom := s.AddImage("bottom")
	top := s.AddImage("top") // same spawn point, later insertion renders above
	s.ClearSelection()

	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})
	if selected, _ := s.SelectedID(); selected != top {
		t.Errorf("got selection %q, want topmost %q", selected, top)
	}

	// A selected element renders above everything, so pressing the overlap
	// again while the bottom one is selected must hit the bottom one.
	if err := s.Select(bottom); err != nil {
		t.Fatalf("select: %v", err)
	}
	s.PointerUp()
	s.PointerDown(core.SurfaceFront, core.Point{X: 85, Y: 105})
	if selected, _ := s.SelectedID(); selected != bottom {
		t.Errorf("got selection %q, want selected-on-top %q", selected, bottom)
	}
}

func TestPointerCoordinatesTranslatedByFrame(t *testing.T) {
	s := NewSession()
	id := s.AddImage("img")
	s.SetSurfaceFrame(core.SurfaceFront, core.Rect{
		Origin: core.Point{X: 300, Y: 40},
		Size:   core.Size{Width: SurfaceWidth, Height: SurfaceHeight},
	})

	// Viewport (385, 145) is surface-local (85, 105), inside the element.
	s.PointerDown(core.SurfaceFront, core.Point{X: 385, Y: 145})
	if !s.Dragging() {
		t.Fatal("press inside the translated frame should start a drag")
	}

	s.PointerMove(core.SurfaceFront, core.Point{X: 400, Y: 160})
	el, _ := s.Element(id)
	if el.Position.X != 75 || el.Position.Y != 95 {
		t.Errorf("got position (%v, %v), want (75, 95)", el.Position.X, el.Position.Y)
	}
}
