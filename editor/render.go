package editor

import "garment-studio/core"

// Z-indices matching the editor's visual stacking: the selected element is
// raised above everything else so its handles stay reachable.
const (
	zIndexBase     = 1
	zIndexSelected = 10
)

type (
	// StackItem is one element positioned in a surface's visual stack.
	StackItem struct {
		Element  core.DesignElement
		Selected bool
		ZIndex   int
	}

	// SurfaceView is the render projection for one surface: the base garment
	// artwork, the placement zone, and the ordered element stack. It carries
	// no state of its own; re-render after every mutation.
	SurfaceView struct {
		Surface       core.Surface
		GarmentImage  string
		PlacementZone core.Rect
		Active        bool

		// ShowPlaceholder is set only when this surface is active and empty;
		// purely cosmetic.
		ShowPlaceholder bool

		// Stack is in paint order: insertion order with the selected element
		// moved last.
		Stack []StackItem
	}
)

// RenderSurface projects the session onto one surface.
func (s *Session) RenderSurface(surface core.Surface) SurfaceView {
	view := SurfaceView{
		Surface:      surface,
		GarmentImage: GarmentImage(s.style, surface),
		PlacementZone: core.Rect{
			Origin: core.Point{X: ZoneX, Y: ZoneY},
			Size:   core.Size{Width: ZoneWidth, Height: ZoneHeight},
		},
		Active: s.activeSide == surface,
	}

	var selected *StackItem
	for _, el := range s.elements {
		if el.Surface != surface {
			continue
		}
		item := StackItem{Element: *el, ZIndex: zIndexBase}
		if el.ID == s.selectedID {
			item.Selected = true
			item.ZIndex = zIndexSelected
			selected = &item
			continue
		}
		view.Stack = append(view.Stack, item)
	}
	if selected != nil {
		view.Stack = append(view.Stack, *selected)
	}

	view.ShowPlaceholder = len(view.Stack) == 0 && view.Active
	return view
}
