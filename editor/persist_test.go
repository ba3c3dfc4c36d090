package editor

import (
	"encoding/json"
	"testing"

	"garment-studio/core"
)

func TestPayloadPartitionsBySurface(t *testing.T) {
	s := NewSession()
	s.SetName("Race Day")
	frontID := s.AddImage("data:image/png;base64,abc")
	s.PointerDown(core.SurfaceBack, core.Point{X: 5, Y: 5})
	backID := s.AddText("42", "#ffffff")

	p := s.Payload()
	if p.Name != "Race Day" {
		t.Errorf("got name %q, want Race Day", p.Name)
	}
	if len(p.FrontDesign) != 1 || p.FrontDesign[0].ID != frontID {
		t.Errorf("front partition wrong: %+v", p.FrontDesign)
	}
	if len(p.BackDesign) != 1 || p.BackDesign[0].ID != backID {
		t.Errorf("back partition wrong: %+v", p.BackDesign)
	}
}

func TestDesignRoundTrip(t *testing.T) {
	s := NewSession()
	s.SetName("Round Trip")
	imgID := s.AddImage("data:image/png;base64,abc")
	if err := s.Rotate(imgID); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	s.PointerDown(core.SurfaceBack, core.Point{X: 5, Y: 5})
	shapeID := s.AddShape("star", "#ffcc00")

	data, err := json.Marshal(s.Payload())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var rec core.DesignRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := FromRecord(&rec)
	if restored.Name() != "Round Trip" {
		t.Errorf("got name %q, want Round Trip", restored.Name())
	}

	img, ok := restored.Element(imgID)
	if !ok {
		t.Fatalf("image element %s lost in round trip", imgID)
	}
	if img.Surface != core.SurfaceFront || img.Rotation != RotationStep {
		t.Errorf("got surface %q rotation %d, want front %d", img.Surface, img.Rotation, RotationStep)
	}

	shape, ok := restored.Element(shapeID)
	if !ok {
		t.Fatalf("shape element %s lost in round trip", shapeID)
	}
	if shape.Surface != core.SurfaceBack {
		t.Errorf("got surface %q, want back", shape.Surface)
	}
	content, ok := shape.Content.(core.ShapeContent)
	if !ok {
		t.Fatalf("got content %T, want core.ShapeContent", shape.Content)
	}
	if content.Name != "star" || content.Color != "#ffcc00" {
		t.Errorf("got shape %q color %q", content.Name, content.Color)
	}
}

func TestFromRecordKeepsEmptyNameDefault(t *testing.T) {
	s := FromRecord(&core.DesignRecord{})
	if s.Name() != DefaultDesignName {
		t.Errorf("got name %q, want %q", s.Name(), DefaultDesignName)
	}
}
