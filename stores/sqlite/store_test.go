package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"garment-studio/core"
)

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "test.db"))
}

func TestDesignLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	design := &core.DesignRecord{
		UserID: "user-1",
		Name:   "First",
		FrontDesign: []core.DesignElement{{
			ID:       "el-1",
			Content:  core.TextContent{Value: "GO", Color: "#ff0000"},
			Position: core.Point{X: 60, Y: 80},
			Size:     core.Size{Width: 100, Height: 30},
			Surface:  core.SurfaceFront,
		}},
		BackDesign: []core.DesignElement{{
			ID:      "el-2",
			Content: core.ImageContent{Data: "data:image/png;base64,abc"},
			Size:    core.Size{Width: 50, Height: 50},
			Surface: core.SurfaceBack,
		}},
	}
	id, err := s.Create(ctx, design)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Get(ctx, "user-1", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "First" {
		t.Errorf("got name %q", got.Name)
	}
	if len(got.FrontDesign) != 1 || len(got.BackDesign) != 1 {
		t.Fatalf("elements lost: front=%d back=%d", len(got.FrontDesign), len(got.BackDesign))
	}
	text, ok := got.FrontDesign[0].Content.(core.TextContent)
	if !ok || text.Value != "GO" || text.Color != "#ff0000" {
		t.Errorf("front element content wrong: %+v", got.FrontDesign[0].Content)
	}
	if _, ok := got.BackDesign[0].Content.(core.ImageContent); !ok {
		t.Errorf("back element content wrong: %+v", got.BackDesign[0].Content)
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
	if _, err := s.Get(ctx, "user-1", id); err != core.ErrDesignNotFound {
		t.Errorf("get after delete: got %v, want ErrDesignNotFound", err)
	}
}

func TestUpdateMissingDesign(t *testing.T) {
	s := newTestStore(t)

	err := s.Update(context.Background(), &core.DesignRecord{UserID: "user-1", ID: "missing", Name: "x"})
	if err != core.ErrDesignNotFound {
		t.Errorf("got %v, want ErrDesignNotFound", err)
	}
}

func TestListNewestFirstAndScoped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"one", "two"} {
		if _, err := s.Create(ctx, &core.DesignRecord{UserID: "user-1", Name: name}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	if _, err := s.Create(ctx, &core.DesignRecord{UserID: "user-2", Name: "other"}); err != nil {
		t.Fatalf("create for user-2: %v", err)
	}

	designs, err := s.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(designs) != 2 {
		t.Fatalf("got %d designs, want 2", len(designs))
	}
	if designs[0].Name != "two" {
		t.Errorf("not newest first: %s, %s", designs[0].Name, designs[1].Name)
	}
}

func TestSeededBaseProduct(t *testing.T) {
	s := newTestStore(t)

	product, err := s.BaseCustomProduct(context.Background())
	if err != nil {
		t.Fatalf("base product: %v", err)
	}
	if product.ID != "custom-compression-shirt" {
		t.Errorf("got product id %q", product.ID)
	}
	if len(product.Sizes) == 0 || len(product.Colors) == 0 {
		t.Errorf("seeded variants missing: sizes=%v colors=%v", product.Sizes, product.Colors)
	}
}

func TestOrders(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	designID := "d-1"
	id, err := s.CreateOrder(ctx, &core.Order{
		UserID: "user-1",
		Items: []core.CartItem{{
			ProductID:      "custom-compression-shirt",
			CustomDesignID: &designID,
			Quantity:       2,
		}},
		Total: 79.98,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	orders, err := s.ListOrders(ctx, "user-1")
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != id {
		t.Fatalf("got %d orders", len(orders))
	}
	if orders[0].Status != "pending" || orders[0].Total != 79.98 {
		t.Errorf("got %+v", orders[0])
	}
	if got := orders[0].Items[0].CustomDesignID; got == nil || *got != designID {
		t.Errorf("design reference lost: %v", got)
	}
}
