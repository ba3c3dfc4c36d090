package editor

import (
	"math"

	"garment-studio/core"
)

// dragState tracks an in-flight drag. The zero value is the Idle state.
type dragState struct {
	active    bool
	elementID string
	surface   core.Surface
	offset    core.Point // press point minus element top-left, surface-local
}

// Dragging reports whether a drag is in flight.
func (s *Session) Dragging() bool {
	return s.drag.active
}

// PointerDown handles a press at viewport coordinates p over the given
// surface. Pressing an element selects it, makes its surface the active side,
// and starts a drag. Pressing empty canvas makes the surface active and
// clears selection without starting a drag; this is how the user switches
// which side subsequent adds target.
func (s *Session) PointerDown(surface core.Surface, p core.Point) {
	frame, ok := s.frames[surface]
	if !ok {
		return
	}
	local := p.Sub(frame.Origin)

	el := s.hitTest(surface, local)
	if el == nil {
		s.activeSide = surface
		s.selectedID = ""
		return
	}

	s.selectedID = el.ID
	s.activeSide = surface
	s.drag = dragState{
		active:    true,
		elementID: el.ID,
		surface:   surface,
		offset:    local.Sub(el.Position),
	}
}

// PointerMove handles pointer motion while the button is held. Moves are
// ignored unless a drag is in flight on this same surface. The dragged
// element follows the pointer minus the recorded offset, clamped so it never
// leaves the visible canvas. Only position changes; never rotation or size.
func (s *Session) PointerMove(surface core.Surface, p core.Point) {
	if !s.drag.active || s.drag.surface != surface {
		return
	}

	el := s.find(s.drag.elementID)
	if el == nil {
		// The element was deleted mid-drag; abandon the drag.
		s.drag = dragState{}
		return
	}

	frame := s.frames[surface]
	local := p.Sub(frame.Origin)
	pos := local.Sub(s.drag.offset)

	// Component-wise clamp; the lower bound wins if the element is wider or
	// taller than the surface.
	el.Position = core.Point{
		X: math.Max(0, math.Min(frame.Size.Width-el.Size.Width, pos.X)),
		Y: math.Max(0, math.Min(frame.Size.Height-el.Size.Height, pos.Y)),
	}
}

// PointerUp ends any drag in flight, unconditionally.
func (s *Session) PointerUp() {
	s.drag = dragState{}
}

// PointerLeave ends any drag in flight when the pointer exits a surface, so a
// missed pointer-up can never leave the session stuck dragging.
func (s *Session) PointerLeave(surface core.Surface) {
	s.drag = dragState{}
}

// hitTest returns the topmost element under a surface-local point, or nil.
// The selected element renders on top, so it is checked first; the remaining
// elements are checked in reverse insertion order to match visual stacking.
// Containment uses the element's axis-aligned bounds; rotation is ignored.
func (s *Session) hitTest(surface core.Surface, local core.Point) *core.DesignElement {
	if sel := s.find(s.selectedID); sel != nil && sel.Surface == surface {
		if (core.Rect{Origin: sel.Position, Size: sel.Size}).Contains(local) {
			return sel
		}
	}
	for i := len(s.elements) - 1; i >= 0; i-- {
		el := s.elements[i]
		if el.Surface != surface || el.ID == s.selectedID {
			continue
		}
		if (core.Rect{Origin: el.Position, Size: el.Size}).Contains(local) {
			return el
		}
	}
	return nil
}
