package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"sort"
	"time"

	"garment-studio/core"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/oklog/ulid/v2"
)

// s3Store keeps designs and orders as JSON objects under
// designs/<user>/<id>.json and orders/<user>/<id>.json. The base product is
// read from products/base.json when present, falling back to the default.
type s3Store struct {
	s3Client *s3.Client
	bucket   string
}

// NewStore creates a new S3-based store.
func NewStore(bucketName string) *s3Store {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	return &s3Store{
		s3Client: s3.NewFromConfig(cfg),
		bucket:   bucketName,
	}
}

// objectKey builds a per-user object key, refusing ids that look like paths.
func objectKey(kind, userID, id string) (string, error) {
	if path.Base(id) != id || id == "" || id == "." || id == ".." {
		return "", fmt.Errorf("invalid id: must not be a path")
	}
	return path.Join(kind, userID, id+".json"), nil
}

func (s *s3Store) getJSON(ctx context.Context, key string, out any) error {
	resp, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *s3Store) putJSON(ctx context.Context, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	return err
}

func isNoSuchKey(err error) bool {
	var nsk *s3types.NoSuchKey
	return errors.As(err, &nsk)
}

// DesignStore implementation
func (s *s3Store) List(ctx context.Context, userID string) ([]*core.DesignRecord, error) {
	prefix := path.Join("designs", userID) + "/"
	output, err := s.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list designs for user %s: %v", userID, err)
	}

	designs := make([]*core.DesignRecord, 0, len(output.Contents))
	for _, object := range output.Contents {
		var design core.DesignRecord
		if err := s.getJSON(ctx, *object.Key, &design); err != nil {
			log.Printf("warn: failed to load design object %s: %v", *object.Key, err)
			continue
		}
		design.UserID = userID
		designs = append(designs, &design)
	}

	sort.Slice(designs, func(i, j int) bool {
		return designs[i].CreatedAt.After(designs[j].CreatedAt)
	})
	return designs, nil
}

func (s *s3Store) Get(ctx context.Context, userID, id string) (*core.DesignRecord, error) {
	key, err := objectKey("designs", userID, id)
	if err != nil {
		return nil, err
	}
	var design core.DesignRecord
	if err := s.getJSON(ctx, key, &design); err != nil {
		if isNoSuchKey(err) {
			return nil, core.ErrDesignNotFound
		}
		return nil, fmt.Errorf("failed to get design %s: %v", id, err)
	}
	design.UserID = userID
	return &design, nil
}

func (s *s3Store) Create(ctx context.Context, design *core.DesignRecord) (string, error) {
	id := ulid.Make().String()
	key, err := objectKey("designs", design.UserID, id)
	if err != nil {
		return "", err
	}

	now := time.Now()
	copied := *design
	copied.ID = id
	copied.CreatedAt = now
	copied.UpdatedAt = now

	if err := s.putJSON(ctx, key, &copied); err != nil {
		return "", fmt.Errorf("failed to upload design: %v", err)
	}
	return id, nil
}

func (s *s3Store) Update(ctx context.Context, design *core.DesignRecord) error {
	key, err := objectKey("designs", design.UserID, design.ID)
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
	if err := s.putJSON(ctx, key, &copied); err != nil {
		return fmt.Errorf("failed to update design %s: %v", design.ID, err)
	}
	return nil
}

func (s *s3Store) Delete(ctx context.Context, userID, id string) error {
	key, err := objectKey("designs", userID, id)
	if err != nil {
		return err
	}
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	_, err = s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete design %s: %v", id, err)
	}
	return nil
}

// ProductStore implementation
func (s *s3Store) BaseCustomProduct(ctx context.Context) (*core.Product, error) {
	var product core.Product
	if err := s.getJSON(ctx, "products/base.json", &product); err != nil {
		if isNoSuchKey(err) {
			return core.DefaultBaseProduct(), nil
		}
		return nil, fmt.Errorf("failed to get base product: %v", err)
	}
	if !product.IsActive {
		return nil, core.ErrProductNotFound
	}
	return &product, nil
}

// OrderStore implementation
func (s *s3Store) CreateOrder(ctx context.Context, order *core.Order) (string, error) {
	id := ulid.Make().String()
	key, err := objectKey("orders", order.UserID, id)
	if err != nil {
		return "", err
	}

	copied := *order
	copied.ID = id
	copied.CreatedAt = time.Now()
	if copied.Status == "" {
		copied.Status = "pending"
	}

	if err := s.putJSON(ctx, key, &copied); err != nil {
		return "", fmt.Errorf("failed to upload order: %v", err)
	}
	return id, nil
}

func (s *s3Store) ListOrders(ctx context.Context, userID string) ([]*core.Order, error) {
	prefix := path.Join("orders", userID) + "/"
	output, err := s.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %v", userID, err)
	}

	orders := make([]*core.Order, 0, len(output.Contents))
	for _, object := range output.Contents {
		var order core.Order
		if err := s.getJSON(ctx, *object.Key, &order); err != nil {
			log.Printf("warn: failed to load order object %s: %v", *object.Key, err)
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
