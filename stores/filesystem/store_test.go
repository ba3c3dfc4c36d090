package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"garment-studio/core"
)

func TestDesignLifecycle(t *testing.T) {
	s := NewStore(t.TempDir())
	ctx := context.Background()

	id, err := s.Create(ctx, &core.DesignRecord{
		UserID: "user-1",
		Name:   "First",
		FrontDesign: []core.DesignElement{{
			ID:      "el-1",
			Content: core.ShapeContent{Name: "circle", Color: "#00f"},
			Size:    core.Size{Width: 50, Height: 50},
			Surface: core.SurfaceFront,
		}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Get(ctx, "user-1", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "First" || len(got.FrontDesign) != 1 {
		t.Errorf("got %+v", got)
	}

	got.Name = "Renamed"
	if err := s.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, _ := s.Get(ctx, "user-1", id)
	if updated.Name != "Renamed" {
		t.Errorf("got name %q after update", updated.Name)
	}

	if err := s.Delete(ctx, "user-1", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "user-1", id); err != core.ErrDesignNotFound {
		t.Errorf("second delete: got %v, want ErrDesignNotFound", err)
	}
}

func TestPathLikeIDsRejected(t *testing.T) {
	s := NewStore(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"../escape", "a/b", ".", ".."} {
		if _, err := s.Get(ctx, "user-1", id); err == core.ErrDesignNotFound || err == nil {
			t.Errorf("id %q should be rejected outright, got %v", id, err)
		}
	}
}

func TestListSkipsCorruptFiles(t *testing.T) {
	base := t.TempDir()
	s := NewStore(base)
	ctx := context.Background()

	if _, err := s.Create(ctx, &core.DesignRecord{UserID: "user-1", Name: "good"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	corrupt := filepath.Join(base, "designs", "user-1", "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	designs, err := s.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(designs) != 1 || designs[0].Name != "good" {
		t.Errorf("got %d designs", len(designs))
	}
}

func TestSeededBaseProductEditable(t *testing.T) {
	base := t.TempDir()
	s := NewStore(base)

	product, err := s.BaseCustomProduct(context.Background())
	if err != nil {
		t.Fatalf("base product: %v", err)
	}
	if product.ID != "custom-compression-shirt" {
		t.Errorf("got product id %q", product.ID)
	}

	// Deactivating the seeded file hides the product.
	if err := os.WriteFile(filepath.Join(base, "products", "base.json"), []byte(`{"id":"x","isActive":false}`), 0644); err != nil {
		t.Fatalf("rewrite product: %v", err)
	}
	if _, err := s.BaseCustomProduct(context.Background()); err != core.ErrProductNotFound {
		t.Errorf("inactive product: got %v, want ErrProductNotFound", err)
	}
}

func TestOrdersPersist(t *testing.T) {
	base := t.TempDir()
	ctx := context.Background()

	s := NewStore(base)
	if _, err := s.CreateOrder(ctx, &core.Order{UserID: "user-1", Total: 39.99}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	// A fresh store over the same directory sees the order.
	reopened := NewStore(base)
	orders, err := reopened.ListOrders(ctx, "user-1")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].Total != 39.99 {
		t.Fatalf("got %d orders", len(orders))
	}
	if orders[0].Status != "pending" {
		t.Errorf("got status %q, want pending", orders[0].Status)
	}
}
