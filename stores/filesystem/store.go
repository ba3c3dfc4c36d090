package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"garment-studio/core"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// fsStore persists designs and orders as JSON files under basePath:
// designs/<user>/<id>.json, orders/<user>/<id>.json. The base product lives
// at products/base.json and is seeded on first run so it can be edited in
// place.
type fsStore struct {
	basePath string
}

// NewStore creates a new filesystem-based store.
func NewStore(basePath string) *fsStore {
	for _, dir := range []string{basePath, filepath.Join(basePath, "designs"), filepath.Join(basePath, "orders"), filepath.Join(basePath, "products")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("failed to create storage directory: %v", err)
		}
	}

	s := &fsStore{basePath: basePath}
	if err := s.seedBaseProduct(); err != nil {
		log.Fatalf("failed to seed base product: %v", err)
	}
	return s
}

func (s *fsStore) productPath() string {
	return filepath.Join(s.basePath, "products", "base.json")
}

func (s *fsStore) seedBaseProduct() error {
	if _, err := os.Stat(s.productPath()); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	data, err := json.MarshalIndent(core.DefaultBaseProduct(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.productPath(), data, 0644)
}

// userDir resolves a per-user directory, refusing ids that escape it.
func (s *fsStore) userDir(kind, userID string) (string, error) {
	dir := filepath.Join(s.basePath, kind, userID)
	absBase, err := filepath.Abs(filepath.Join(s.basePath, kind))
	if err != nil {
		return "", err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(absDir, absBase) {
		return "", fmt.Errorf("invalid path: access denied")
	}
	return dir, nil
}

func (s *fsStore) designPath(userID, id string) (string, error) {
	if filepath.Base(id) != id || id == "" || id == "." || id == ".." {
		return "", fmt.Errorf("invalid design id")
	}
	dir, err := s.userDir("designs", userID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, id+".json"), nil
}

// DesignStore implementation
func (s *fsStore) List(ctx context.Context, userID string) ([]*core.DesignRecord, error) {
	dir, err := s.userDir("designs", userID)
	if err != nil {
		return nil, err
	}
	log := logrus.WithField("user_id", userID).WithField("path", dir)

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*core.DesignRecord{}, nil
		}
		log.WithError(err).Error("Failed to read user design directory")
		return nil, err
	}

	designs := make([]*core.DesignRecord, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			log.WithError(err).Warnf("Failed to read design file %s, skipping", file.Name())
			continue
		}
		var design core.DesignRecord
		if err := json.Unmarshal(data, &design); err != nil {
			log.WithError(err).Warnf("Failed to unmarshal design file %s, skipping", file.Name())
			continue
		}
		design.UserID = userID
		designs = append(designs, &design)
	}

	sort.Slice(designs, func(i, j int) bool {
		return designs[i].CreatedAt.After(designs[j].CreatedAt)
	})
	log.Debugf("Listed %d designs", len(designs))
	return designs, nil
}

func (s *fsStore) Get(ctx context.Context, userID, id string) (*core.DesignRecord, error) {
	path, err := s.designPath(userID, id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrDesignNotFound
		}
		return nil, err
	}

	var design core.DesignRecord
	if err := json.Unmarshal(data, &design); err != nil {
		return nil, err
	}
	design.UserID = userID
	return &design, nil
}

func (s *fsStore) Create(ctx context.Context, design *core.DesignRecord) (string, error) {
	id := ulid.Make().String()
	path, err := s.designPath(design.UserID, id)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	now := time.Now()
	copied := *design
	copied.ID = id
	copied.CreatedAt = now
	copied.UpdatedAt = now

	if err := s.writeDesign(path, &copied); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{"user_id": design.UserID, "design_id": id}).Info("Design created")
	return id, nil
}

func (s *fsStore) Update(ctx context.Context, design *core.DesignRecord) error {
	path, err := s.designPath(design.UserID, design.ID)
	if err != nil {
		return err
	}

	existing, err := s.Get(ctx, design.UserID, design.ID)
	if err != nil {
		return err
	}

	copied := *design
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now()
	return s.writeDesign(path, &copied)
}

func (s *fsStore) Delete(ctx context.Context, userID, id string) error {
	path, err := s.designPath(userID, id)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return core.ErrDesignNotFound
		}
		return err
	}
	return nil
}

func (s *fsStore) writeDesign(path string, design *core.DesignRecord) error {
	data, err := json.Marshal(design)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ProductStore implementation
func (s *fsStore) BaseCustomProduct(ctx context.Context) (*core.Product, error) {
	data, err := os.ReadFile(s.productPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrProductNotFound
		}
		return nil, err
	}
	var product core.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, core.ErrProductNotFound
	}
	return &product, nil
}

// OrderStore implementation
func (s *fsStore) CreateOrder(ctx context.Context, order *core.Order) (string, error) {
	dir, err := s.userDir("orders", order.UserID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	id := ulid.Make().String()
	copied := *order
	copied.ID = id
	copied.CreatedAt = time.Now()
	if copied.Status == "" {
		copied.Status = "pending"
	}

	data, err := json.Marshal(&copied)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, id+".json"), data, 0644); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{"user_id": order.UserID, "order_id": id}).Info("Order created")
	return id, nil
}

func (s *fsStore) ListOrders(ctx context.Context, userID string) ([]*core.Order, error) {
	dir, err := s.userDir("orders", userID)
	if err != nil {
		return nil, err
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*core.Order{}, nil
		}
		return nil, err
	}

	orders := make([]*core.Order, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			logrus.WithError(err).Warnf("Failed to read order file %s, skipping", file.Name())
			continue
		}
		var order core.Order
		if err := json.Unmarshal(data, &order); err != nil {
			logrus.WithError(err).Warnf("Failed to unmarshal order file %s, skipping", file.Name())
			continue
		}
		order.UserID = userID
		orders = append(orders, &order)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
