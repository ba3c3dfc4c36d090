// Package editor implements the headless custom garment design editor: the
// element model, the per-surface drag state machine, and the projections the
// UI renders from. A Session owns its element collection exclusively; all
// mutations happen synchronously in response to discrete input events.
package editor

import (
	"math"

	"garment-studio/core"

	"github.com/oklog/ulid/v2"
)

// Surface geometry, in pixels. Both print surfaces share the same dimensions.
const (
	SurfaceWidth  = 240
	SurfaceHeight = 320

	// The placement zone is the sub-rectangle of the surface roughly centered
	// on the garment's print area. New elements spawn at its origin; it is not
	// a movement constraint.
	ZoneX      = 60
	ZoneY      = 80
	ZoneWidth  = 120
	ZoneHeight = 150

	// MinElementSize is the floor for element width and height, so repeated
	// shrinking can never make an element unselectable.
	MinElementSize = 20

	RotationStep = 45 // degrees per rotate action

	DefaultElementSize = 50
	DefaultTextWidth   = 100
	DefaultTextHeight  = 30
)

const DefaultDesignName = "My Custom Design"

// Session is the in-memory design document plus all interaction state. It is
// not safe for concurrent use; the UI event loop drives it from one goroutine.
type Session struct {
	name  string
	style core.GarmentStyle

	// elements is the single flat collection; the per-surface views are
	// computed projections over it, which keeps id uniqueness trivial.
	elements   []*core.DesignElement
	selectedID string
	activeSide core.Surface

	frames map[core.Surface]core.Rect
	drag   dragState

	newID func() string
}

// NewSession creates an empty design document with both surface frames at the
// viewport origin.
func NewSession() *Session {
	return &Session{
		name:       DefaultDesignName,
		style:      core.StyleHalfSleeve,
		activeSide: core.SurfaceFront,
		frames: map[core.Surface]core.Rect{
			core.SurfaceFront: {Size: core.Size{Width: SurfaceWidth, Height: SurfaceHeight}},
			core.SurfaceBack:  {Size: core.Size{Width: SurfaceWidth, Height: SurfaceHeight}},
		},
		newID: func() string { return ulid.Make().String() },
	}
}

// SetSurfaceFrame records where a surface's container sits in viewport
// coordinates. Pointer events are translated against this frame before any
// position arithmetic.
func (s *Session) SetSurfaceFrame(surface core.Surface, frame core.Rect) {
	s.frames[surface] = frame
}

func (s *Session) Name() string                 { return s.name }
func (s *Session) SetName(name string)          { s.name = name }
func (s *Session) Style() core.GarmentStyle     { return s.style }
func (s *Session) SetStyle(g core.GarmentStyle) { s.style = g }
func (s *Session) ActiveSide() core.Surface     { return s.activeSide }

// SelectedID returns the currently selected element id, if any.
func (s *Session) SelectedID() (string, bool) {
	return s.selectedID, s.selectedID != ""
}

// AddImage places an image element carrying its content as a data URI.
func (s *Session) AddImage(dataURI string) string {
	return s.addElement(core.ImageContent{Data: dataURI}, core.Size{Width: DefaultElementSize, Height: DefaultElementSize})
}

func (s *Session) AddText(value, color string) string {
	return s.addElement(core.TextContent{Value: value, Color: color}, core.Size{Width: DefaultTextWidth, Height: DefaultTextHeight})
}

func (s *Session) AddShape(name, color string) string {
	return s.addElement(core.ShapeContent{Name: name, Color: color}, core.Size{Width: DefaultElementSize, Height: DefaultElementSize})
}

// addElement appends a new element at the placement zone origin on the active
// side, marks it selected, and returns its id.
func (s *Session) addElement(content core.Content, size core.Size) string {
	el := &core.DesignElement{
		ID:       s.newID(),
		Content:  content,
		Position: core.Point{X: ZoneX, Y: ZoneY},
		Size:     size,
		Rotation: 0,
		Surface:  s.activeSide,
	}
	s.elements = append(s.elements, el)
	s.selectedID = el.ID
	return el.ID
}

// Remove deletes an element. Removing the selected element clears selection.
func (s *Session) Remove(id string) error {
	for i, el := range s.elements {
		if el.ID == id {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			if s.selectedID == id {
				s.selectedID = ""
			}
			if s.drag.elementID == id {
				s.drag = dragState{}
			}
			return nil
		}
	}
	return core.ErrElementNotFound
}

// Rotate advances an element's rotation by one step, wrapping at 360.
func (s *Session) Rotate(id string) error {
	el := s.find(id)
	if el == nil {
		return core.ErrElementNotFound
	}
	el.Rotation = (el.Rotation + RotationStep) % 360
	return nil
}

// Resize scales both axes by the given factor, clamped below at the minimum
// element size. There is no upper bound.
func (s *Session) Resize(id string, scale float64) error {
	el := s.find(id)
	if el == nil {
		return core.ErrElementNotFound
	}
	el.Size.Width = math.Max(MinElementSize, el.Size.Width*scale)
	el.Size.Height = math.Max(MinElementSize, el.Size.Height*scale)
	return nil
}

// Move repositions an element absolutely. Callers that track the pointer are
// responsible for clamping to the surface before calling.
func (s *Session) Move(id string, x, y float64) error {
	el := s.find(id)
	if el == nil {
		return core.ErrElementNotFound
	}
	el.Position = core.Point{X: x, Y: y}
	return nil
}

// Select marks an element as the single selection. Selecting an unknown id
// leaves the prior selection unchanged.
func (s *Session) Select(id string) error {
	if s.find(id) == nil {
		return core.ErrElementNotFound
	}
	s.selectedID = id
	return nil
}

func (s *Session) ClearSelection() {
	s.selectedID = ""
}

// Element returns a copy of the element with the given id.
func (s *Session) Element(id string) (core.DesignElement, bool) {
	if el := s.find(id); el != nil {
		return *el, true
	}
	return core.DesignElement{}, false
}

// FrontElements returns the front surface's elements in insertion order.
func (s *Session) FrontElements() []core.DesignElement {
	return s.SurfaceElements(core.SurfaceFront)
}

// BackElements returns the back surface's elements in insertion order.
func (s *Session) BackElements() []core.DesignElement {
	return s.SurfaceElements(core.SurfaceBack)
}

// SurfaceElements is the computed per-surface projection of the flat
// collection. It returns copies; mutations go through Session operations.
func (s *Session) SurfaceElements(surface core.Surface) []core.DesignElement {
	out := make([]core.DesignElement, 0, len(s.elements))
	for _, el := range s.elements {
		if el.Surface == surface {
			out = append(out, *el)
		}
	}
	return out
}

func (s *Session) find(id string) *core.DesignElement {
	if id == "" {
		return nil
	}
	for _, el := range s.elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}
