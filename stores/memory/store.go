package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"garment-studio/core"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// memStore keeps designs, products, and orders in process memory. Each
// instance owns its own maps, so tests get isolated stores.
type memStore struct {
	mu      sync.RWMutex
	designs map[string]map[string]*core.DesignRecord // userID -> designID -> record
	orders  map[string][]*core.Order                 // userID -> orders, insertion order
	base    *core.Product
}

// NewStore creates a new in-memory store seeded with the default base product.
func NewStore() *memStore {
	return &memStore{
		designs: make(map[string]map[string]*core.DesignRecord),
		orders:  make(map[string][]*core.Order),
		base:    core.DefaultBaseProduct(),
	}
}

// List returns all designs owned by a user, newest first.
func (s *memStore) List(ctx context.Context, userID string) ([]*core.DesignRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userDesigns, ok := s.designs[userID]
	if !ok {
		return []*core.DesignRecord{}, nil
	}

	designs := make([]*core.DesignRecord, 0, len(userDesigns))
	for _, design := range userDesigns {
		copied := *design
		designs = append(designs, &copied)
	}
	sort.Slice(designs, func(i, j int) bool {
		return designs[i].CreatedAt.After(designs[j].CreatedAt)
	})

	logrus.WithField("user_id", userID).Debugf("Listed %d designs", len(designs))
	return designs, nil
}

func (s *memStore) Get(ctx context.Context, userID, id string) (*core.DesignRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	design, ok := s.designs[userID][id]
	if !ok {
		logrus.WithFields(logrus.Fields{"user_id": userID, "design_id": id}).Warn("Design not found")
		return nil, core.ErrDesignNotFound
	}

	copied := *design
	return &copied, nil
}

func (s *memStore) Create(ctx context.Context, design *core.DesignRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ulid.Make().String()
	now := time.Now()

	copied := *design
	copied.ID = id
	copied.CreatedAt = now
	copied.UpdatedAt = now

	userDesigns, ok := s.designs[design.UserID]
	if !ok {
		userDesigns = make(map[string]*core.DesignRecord)
		s.designs[design.UserID] = userDesigns
	}
	userDesigns[id] = &copied

	logrus.WithFields(logrus.Fields{"user_id": design.UserID, "design_id": id}).Info("Design created")
	return id, nil
}

func (s *memStore) Update(ctx context.Context, design *core.DesignRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.designs[design.UserID][design.ID]
	if !ok {
		return core.ErrDesignNotFound
	}

	copied := *design
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now()
	s.designs[design.UserID][design.ID] = &copied

	logrus.WithFields(logrus.Fields{"user_id": design.UserID, "design_id": design.ID}).Info("Design updated")
	return nil
}

func (s *memStore) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.designs[userID][id]; !ok {
		return core.ErrDesignNotFound
	}
	delete(s.designs[userID], id)

	logrus.WithFields(logrus.Fields{"user_id": userID, "design_id": id}).Info("Design deleted")
	return nil
}

// BaseCustomProduct returns the seeded blank custom garment product.
func (s *memStore) BaseCustomProduct(ctx context.Context) (*core.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.base == nil || !s.base.IsActive {
		return nil, core.ErrProductNotFound
	}
	copied := *s.base
	return &copied, nil
}

func (s *memStore) CreateOrder(ctx context.Context, order *core.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ulid.Make().String()
	copied := *order
	copied.ID = id
	copied.CreatedAt = time.Now()
	if copied.Status == "" {
		copied.Status = "pending"
	}
	s.orders[order.UserID] = append(s.orders[order.UserID], &copied)

	logrus.WithFields(logrus.Fields{"user_id": order.UserID, "order_id": id, "items": len(order.Items)}).Info("Order created")
	return id, nil
}

func (s *memStore) ListOrders(ctx context.Context, userID string) ([]*core.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userOrders := s.orders[userID]
	orders := make([]*core.Order, 0, len(userOrders))
	for i := len(userOrders) - 1; i >= 0; i-- {
		copied := *userOrders[i]
		orders = append(orders, &copied)
	}
	return orders, nil
}
