package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"garment-studio/core"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	db *sql.DB
}

// NewStore creates a new SQLite-based store and seeds the base custom
// product if the products table is empty.
func NewStore(dataSourceName string) *sqliteStore {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS custom_designs (
		id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		front_design TEXT,
		back_design TEXT,
		preview_front TEXT,
		preview_back TEXT,
		base_product_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		PRIMARY KEY (user_id, id)
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		category TEXT NOT NULL DEFAULT 'normal',
		description TEXT,
		image TEXT,
		sizes TEXT,
		colors TEXT,
		is_active INTEGER DEFAULT 1,
		quantity INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		items TEXT NOT NULL,
		total REAL NOT NULL,
		status TEXT DEFAULT 'pending',
		created_at DATETIME
	);`
	if _, err = db.Exec(schema); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	s := &sqliteStore{db}
	if err := s.seedBaseProduct(); err != nil {
		log.Fatalf("failed to seed base product: %v", err)
	}
	return s
}

func (s *sqliteStore) seedBaseProduct() error {
	base := core.DefaultBaseProduct()
	sizes, err := json.Marshal(base.Sizes)
	if err != nil {
		return err
	}
	colors, err := json.Marshal(base.Colors)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT OR IGNORE INTO products (id, name, price, category, description, image, sizes, colors, is_active, quantity)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		base.ID, base.Name, base.Price, base.Category, base.Description, base.Image, string(sizes), string(colors), base.IsActive, base.Quantity,
	)
	return err
}

func marshalElements(elements []core.DesignElement) (string, error) {
	if elements == nil {
		elements = []core.DesignElement{}
	}
	data, err := json.Marshal(elements)
	return string(data), err
}

func unmarshalElements(data string) ([]core.DesignElement, error) {
	if data == "" {
		return []core.DesignElement{}, nil
	}
	var elements []core.DesignElement
	if err := json.Unmarshal([]byte(data), &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// DesignStore implementation
func (s *sqliteStore) List(ctx context.Context, userID string) ([]*core.DesignRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, front_design, back_design, preview_front, preview_back, base_product_id, created_at, updated_at
		 FROM custom_designs WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []*core.DesignRecord
	for rows.Next() {
		design := core.DesignRecord{UserID: userID}
		var front, back string
		var baseProductID sql.NullString
		if err := rows.Scan(&design.ID, &design.Name, &front, &back, &design.PreviewFront, &design.PreviewBack, &baseProductID, &design.CreatedAt, &design.UpdatedAt); err != nil {
			return nil, err
		}
		if design.FrontDesign, err = unmarshalElements(front); err != nil {
			logrus.WithError(err).WithField("design_id", design.ID).Warn("Skipping design with corrupt front elements")
			continue
		}
		if design.BackDesign, err = unmarshalElements(back); err != nil {
			logrus.WithError(err).WithField("design_id", design.ID).Warn("Skipping design with corrupt back elements")
			continue
		}
		design.BaseProductID = baseProductID.String
		designs = append(designs, &design)
	}
	return designs, rows.Err()
}

func (s *sqliteStore) Get(ctx context.Context, userID, id string) (*core.DesignRecord, error) {
	design := core.DesignRecord{ID: id, UserID: userID}
	var front, back string
	var baseProductID sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT name, front_design, back_design, preview_front, preview_back, base_product_id, created_at, updated_at
		 FROM custom_designs WHERE user_id = ? AND id = ?`, userID, id).
		Scan(&design.Name, &front, &back, &design.PreviewFront, &design.PreviewBack, &baseProductID, &design.CreatedAt, &design.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrDesignNotFound
		}
		return nil, err
	}
	if design.FrontDesign, err = unmarshalElements(front); err != nil {
		return nil, err
	}
	if design.BackDesign, err = unmarshalElements(back); err != nil {
		return nil, err
	}
	design.BaseProductID = baseProductID.String
	return &design, nil
}

func (s *sqliteStore) Create(ctx context.Context, design *core.DesignRecord) (string, error) {
	id := ulid.Make().String()
	front, err := marshalElements(design.FrontDesign)
	if err != nil {
		return "", err
	}
	back, err := marshalElements(design.BackDesign)
	if err != nil {
		return "", err
	}

	now := time.Now()
	log := logrus.WithFields(logrus.Fields{
		"design_id": id,
		"user_id":   design.UserID,
	})
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO custom_designs (id, user_id, name, front_design, back_design, preview_front, preview_back, base_product_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, design.UserID, design.Name, front, back, design.PreviewFront, design.PreviewBack, design.BaseProductID, now, now)
	if err != nil {
		log.WithError(err).Error("Failed to create design")
		return "", err
	}
	log.Info("Design created successfully")
	return id, nil
}

func (s *sqliteStore) Update(ctx context.Context, design *core.DesignRecord) error {
	front, err := marshalElements(design.FrontDesign)
	if err != nil {
		return err
	}
	back, err := marshalElements(design.BackDesign)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE custom_designs SET name = ?, front_design = ?, back_design = ?, preview_front = ?, preview_back = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		design.Name, front, back, design.PreviewFront, design.PreviewBack, time.Now(), design.UserID, design.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrDesignNotFound
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM custom_designs WHERE user_id = ? AND id = ?", userID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrDesignNotFound
	}
	return nil
}

// ProductStore implementation
func (s *sqliteStore) BaseCustomProduct(ctx context.Context) (*core.Product, error) {
	var product core.Product
	var sizes, colors string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, price, category, description, image, sizes, colors, is_active, quantity
		 FROM products WHERE category = 'custom' AND is_active = 1 LIMIT 1`).
		Scan(&product.ID, &product.Name, &product.Price, &product.Category, &product.Description, &product.Image, &sizes, &colors, &product.IsActive, &product.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrProductNotFound
		}
		return nil, err
	}
	if sizes != "" {
		if err := json.Unmarshal([]byte(sizes), &product.Sizes); err != nil {
			return nil, err
		}
	}
	if colors != "" {
		if err := json.Unmarshal([]byte(colors), &product.Colors); err != nil {
			return nil, err
		}
	}
	return &product, nil
}

// OrderStore implementation
func (s *sqliteStore) CreateOrder(ctx context.Context, order *core.Order) (string, error) {
	id := ulid.Make().String()
	items, err := json.Marshal(order.Items)
	if err != nil {
		return "", err
	}
	status := order.Status
	if status == "" {
		status = "pending"
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO orders (id, user_id, items, total, status, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, order.UserID, string(items), order.Total, status, time.Now())
	if err != nil {
		logrus.WithError(err).WithField("user_id", order.UserID).Error("Failed to create order")
		return "", err
	}
	return id, nil
}

func (s *sqliteStore) ListOrders(ctx context.Context, userID string) ([]*core.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, items, total, status, created_at FROM orders WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*core.Order
	for rows.Next() {
		order := core.Order{UserID: userID}
		var items string
		if err := rows.Scan(&order.ID, &items, &order.Total, &order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(items), &order.Items); err != nil {
			logrus.WithError(err).WithField("order_id", order.ID).Warn("Skipping order with corrupt items")
			continue
		}
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}
