package editor

import "garment-studio/core"

// Payload flattens the session into the wire shape expected by the design
// API, partitioned by surface. Image elements already embed their content as
// a data URI; no extra encoding happens at this boundary.
func (s *Session) Payload() core.DesignPayload {
	return core.DesignPayload{
		Name:        s.name,
		FrontDesign: s.FrontElements(),
		BackDesign:  s.BackElements(),
	}
}

// FromRecord hydrates an editor session from a previously saved design. The
// two persisted partitions fold back into one flat collection tagged with
// the correct surface, and element ids are preserved so a later save
// round-trips cleanly.
func FromRecord(rec *core.DesignRecord) *Session {
	s := NewSession()
	if rec.Name != "" {
		s.name = rec.Name
	}
	for _, el := range rec.FrontDesign {
		el.Surface = core.SurfaceFront
		e := el
		s.elements = append(s.elements, &e)
	}
	for _, el := range rec.BackDesign {
		el.Surface = core.SurfaceBack
		e := el
		s.elements = append(s.elements, &e)
	}
	return s
}
