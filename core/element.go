package core

import (
	"encoding/json"
	"fmt"
)

// Surface identifies one of the two independent print areas of a garment.
// An element belongs to exactly one surface for its whole lifetime.
type Surface string

const (
	SurfaceFront Surface = "front"
	SurfaceBack  Surface = "back"
)

func (s Surface) Valid() bool {
	return s == SurfaceFront || s == SurfaceBack
}

// GarmentStyle selects the base garment silhouette behind the design.
type GarmentStyle string

const (
	StyleSleeveless GarmentStyle = "sleeveless"
	StyleHalfSleeve GarmentStyle = "half-sleeve"
	StyleFullSleeve GarmentStyle = "full-sleeve"
)

// DisplayName returns the human-readable style label used in product names.
func (g GarmentStyle) DisplayName() string {
	switch g {
	case StyleSleeveless:
		return "Sleeveless"
	case StyleHalfSleeve:
		return "Half Sleeve"
	case StyleFullSleeve:
		return "Full Sleeve"
	}
	return string(g)
}

type (
	// Point is a position in surface-local pixel coordinates, top-left origin.
	Point struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}

	Size struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}

	Rect struct {
		Origin Point `json:"origin"`
		Size   Size  `json:"size"`
	}
)

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

type ElementKind string

const (
	ElementImage ElementKind = "image"
	ElementText  ElementKind = "text"
	ElementShape ElementKind = "shape"
)

// Content is the kind-specific payload of a design element. Exactly three
// implementations exist; the marker method keeps the set closed.
type Content interface {
	Kind() ElementKind
	content()
}

type (
	// ImageContent embeds the image itself as a data URI, so placing an
	// image on the canvas never requires a separate upload round-trip.
	ImageContent struct {
		Data string
	}

	TextContent struct {
		Value string
		Color string
	}

	// ShapeContent names one of the preset shapes (star, heart, circle, square).
	ShapeContent struct {
		Name  string
		Color string
	}
)

func (ImageContent) Kind() ElementKind { return ElementImage }
func (TextContent) Kind() ElementKind  { return ElementText }
func (ShapeContent) Kind() ElementKind { return ElementShape }

func (ImageContent) content() {}
func (TextContent) content()  {}
func (ShapeContent) content() {}

// DesignElement is a single placed visual item on one surface of the garment.
type DesignElement struct {
	ID       string
	Content  Content
	Position Point
	Size     Size
	Rotation int // degrees, [0, 360)
	Surface  Surface
}

// wireElement is the flat JSON shape shared with the design API.
type wireElement struct {
	ID       string      `json:"id"`
	Type     ElementKind `json:"type"`
	Content  string      `json:"content"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Rotation int         `json:"rotation"`
	Color    string      `json:"color,omitempty"`
	Side     Surface     `json:"side"`
}

func (e DesignElement) MarshalJSON() ([]byte, error) {
	w := wireElement{
		ID:       e.ID,
		X:        e.Position.X,
		Y:        e.Position.Y,
		Width:    e.Size.Width,
		Height:   e.Size.Height,
		Rotation: e.Rotation,
		Side:     e.Surface,
	}

	switch c := e.Content.(type) {
	case ImageContent:
		w.Type = ElementImage
		w.Content = c.Data
	case TextContent:
		w.Type = ElementText
		w.Content = c.Value
		w.Color = c.Color
	case ShapeContent:
		w.Type = ElementShape
		w.Content = c.Name
		w.Color = c.Color
	default:
		return nil, fmt.Errorf("design element %s has no content", e.ID)
	}

	return json.Marshal(w)
}

func (e *DesignElement) UnmarshalJSON(data []byte) error {
	var w wireElement
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch w.Type {
	case ElementImage:
		e.Content = ImageContent{Data: w.Content}
	case ElementText:
		e.Content = TextContent{Value: w.Content, Color: w.Color}
	case ElementShape:
		e.Content = ShapeContent{Name: w.Content, Color: w.Color}
	default:
		return fmt.Errorf("unknown design element type %q", w.Type)
	}

	e.ID = w.ID
	e.Position = Point{X: w.X, Y: w.Y}
	e.Size = Size{Width: w.Width, Height: w.Height}
	e.Rotation = w.Rotation
	e.Surface = w.Side
	return nil
}
