package core

import (
	"context"
	"time"
)

type (
	// DesignRecord is the durable copy of a saved custom design. The in-memory
	// editor session and the record are not kept in sync after save; a later
	// save overwrites the record from current session state.
	DesignRecord struct {
		ID            string          `json:"id"`
		UserID        string          `json:"-"` // Not exposed in JSON responses, used internally.
		Name          string          `json:"name"`
		FrontDesign   []DesignElement `json:"frontDesign"`
		BackDesign    []DesignElement `json:"backDesign"`
		PreviewFront  string          `json:"previewFront,omitempty"`
		PreviewBack   string          `json:"previewBack,omitempty"`
		BaseProductID string          `json:"baseProductId,omitempty"`
		CreatedAt     time.Time       `json:"createdAt"`
		UpdatedAt     time.Time       `json:"updatedAt"`
	}

	// DesignPayload is the wire shape the editor submits on save.
	DesignPayload struct {
		Name         string          `json:"name"`
		FrontDesign  []DesignElement `json:"frontDesign"`
		BackDesign   []DesignElement `json:"backDesign"`
		PreviewFront string          `json:"previewFront,omitempty"`
		PreviewBack  string          `json:"previewBack,omitempty"`
	}

	// DesignStore defines the persistence layer for user-owned designs.
	// All operations are scoped to a specific user.
	DesignStore interface {
		// List returns all designs owned by a user, newest first.
		List(ctx context.Context, userID string) ([]*DesignRecord, error)

		// Get returns a single design by its ID, ensuring it belongs to the user.
		Get(ctx context.Context, userID, id string) (*DesignRecord, error)

		// Create stores a new design and returns its generated ID.
		Create(ctx context.Context, design *DesignRecord) (string, error)

		// Update overwrites an existing design, ensuring it belongs to the user.
		Update(ctx context.Context, design *DesignRecord) error

		// Delete removes a design, ensuring it belongs to the user.
		Delete(ctx context.Context, userID, id string) error
	}
)

type (
	ProductColor struct {
		Name string `json:"name"`
		Hex  string `json:"hex"`
	}

	Product struct {
		ID          string         `json:"id"`
		Name        string         `json:"name"`
		Price       float64        `json:"price"`
		Category    string         `json:"category"`
		Description string         `json:"description,omitempty"`
		Image       string         `json:"image"`
		Sizes       []string       `json:"sizes"`
		Colors      []ProductColor `json:"colors"`
		IsActive    bool           `json:"isActive"`
		Quantity    int            `json:"quantity"`
	}

	ProductStore interface {
		// BaseCustomProduct returns the active base product for custom
		// garments (the blank compression shirt the design is printed on).
		BaseCustomProduct(ctx context.Context) (*Product, error)
	}
)

// DefaultBaseProduct is the product a fresh installation offers as the blank
// custom garment until an admin replaces it.
func DefaultBaseProduct() *Product {
	return &Product{
		ID:          "custom-compression-shirt",
		Name:        "Custom Compression Shirt",
		Price:       39.99,
		Category:    "custom",
		Description: "Blank compression shirt printed with your own design.",
		Image:       "/assets/products/custom-compression-shirt.jpg",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors: []ProductColor{
			{Name: "White", Hex: "#ffffff"},
			{Name: "Black", Hex: "#000000"},
		},
		IsActive: true,
		Quantity: 100,
	}
}

type (
	// CartItem is one order line. CustomDesignID is a snapshot pointer to the
	// saved design at the time the item was added; later edits to the design
	// never alter the line item. It is nil when the design could not be saved.
	CartItem struct {
		ProductID      string       `json:"id"`
		Name           string       `json:"name"`
		Price          float64      `json:"price"`
		Image          string       `json:"image"`
		CustomDesignID *string      `json:"customDesignId"`
		GarmentStyle   GarmentStyle `json:"shirtStyle,omitempty"`
		Size           string       `json:"size"`
		Color          string       `json:"color"`
		Quantity       int          `json:"quantity"`
	}

	Order struct {
		ID        string     `json:"id"`
		UserID    string     `json:"-"`
		Items     []CartItem `json:"items"`
		Total     float64    `json:"total"`
		Status    string     `json:"status"`
		CreatedAt time.Time  `json:"createdAt"`
	}

	OrderStore interface {
		CreateOrder(ctx context.Context, order *Order) (string, error)
		ListOrders(ctx context.Context, userID string) ([]*Order, error)
	}
)
