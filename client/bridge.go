package client

import (
	"context"
	"fmt"
	"strings"

	"garment-studio/core"
	"garment-studio/editor"

	"github.com/sirupsen/logrus"
)

// SaveDesign persists the session as a new design record. An empty name is a
// validation error and a missing identity an authentication error; in both
// cases no network call is made. API failures come back as retryable errors
// and never touch the in-memory document.
func (c *Client) SaveDesign(ctx context.Context, sess *editor.Session) (*core.DesignRecord, error) {
	if strings.TrimSpace(sess.Name()) == "" {
		return nil, &core.ValidationError{Field: "name", Reason: "design name must not be empty"}
	}
	if !c.Authenticated() {
		return nil, core.ErrUnauthenticated
	}
	return c.CreateDesign(ctx, sess.Payload())
}

// AddToCart produces the order line item for the current design. When the
// caller is authenticated the design is saved first, best-effort: a failed
// save is logged and the item ships with a nil design reference instead of
// blocking the add-to-cart action.
func (c *Client) AddToCart(ctx context.Context, sess *editor.Session, base *core.Product, size, color string, quantity int) (core.CartItem, error) {
	if base == nil {
		return core.CartItem{}, &core.ValidationError{Field: "product", Reason: "base product not available"}
	}

	var designID *string
	if c.Authenticated() {
		design, err := c.CreateDesign(ctx, sess.Payload())
		if err != nil {
			logrus.WithError(err).Warn("failed to save design before add-to-cart, proceeding without design reference")
		} else {
			designID = &design.ID
		}
	}

	return core.CartItem{
		ProductID:      base.ID,
		Name:           fmt.Sprintf("Custom Compression Shirt (%s) - %s", sess.Style().DisplayName(), sess.Name()),
		Price:          base.Price,
		Image:          base.Image,
		CustomDesignID: designID,
		GarmentStyle:   sess.Style(),
		Size:           size,
		Color:          color,
		Quantity:       quantity,
	}, nil
}

// LoadDesign fetches a saved design and hydrates a fresh editor session from
// it, with element ids intact.
func (c *Client) LoadDesign(ctx context.Context, id string) (*editor.Session, error) {
	record, err := c.GetDesign(ctx, id)
	if err != nil {
		return nil, err
	}
	return editor.FromRecord(record), nil
}
