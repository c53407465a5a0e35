// Package postgres implements the document store on PostgreSQL through GORM.
//
// Documents of every collection live in a single "documents" table as JSONB.
// Equality filters are translated to JSONB containment, so
//
//	store.GetDocuments(ctx, "trackingevent", ports.Filter{"tracking_number": "LGF-7Q2ZK91D"}, 0)
//
// runs
//
//	SELECT * FROM documents WHERE collection = 'trackingevent'
//	    AND data @> '{"tracking_number":"LGF-7Q2ZK91D"}'::jsonb ORDER BY seq
//
// Values read back follow encoding/json: numbers arrive as json.Number and
// timestamps as RFC 3339 strings.
package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"logiflow/internal/adapters/out/docstore"
	"logiflow/internal/core/ports"

	"github.com/google/uuid"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	_ ports.DocumentStore  = (*Store)(nil)
	_ ports.StoreInspector = (*Store)(nil)
)

// Store is a DocumentStore backed by a PostgreSQL table.
type Store struct {
	db *gorm.DB
}

// Open connects to dsn and makes sure the documents table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	store := NewStore(db)
	if err = store.Ping(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping postgres: %w", err), store.Close())
	}
	if err = db.WithContext(ctx).AutoMigrate(&DocumentDTO{}); err != nil {
		return nil, errors.Join(fmt.Errorf("prepare documents table: %w", err), store.Close())
	}

	return store, nil
}

// NewStore wraps an open GORM connection. The documents table must exist.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateDocument saves doc as JSON and returns the generated UUID.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc ports.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	dto := DocumentDTO{
		ID:         uuid.New(),
		Collection: collection,
		Data:       string(data),
	}
	if err = s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return "", storeError("create document in "+collection, err)
	}

	return dto.ID.String(), nil
}

// GetDocuments retrieves matching documents in insertion order.
func (s *Store) GetDocuments(
	ctx context.Context,
	collection string,
	filter ports.Filter,
	limit int,
) ([]ports.Document, error) {
	query := s.db.WithContext(ctx).Where("collection = ?", collection)
	if len(filter) > 0 {
		containment, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("encode filter: %w", err)
		}
		query = query.Where("data @> ?::jsonb", string(containment))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []DocumentDTO
	if err := query.Order("seq").Find(&dtos).Error; err != nil {
		return nil, storeError("get documents from "+collection, err)
	}

	docs := make([]ports.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, err := toDocument(dto)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// DatabaseName implements ports.StoreInspector.
func (s *Store) DatabaseName() string {
	return s.db.Migrator().CurrentDatabase()
}

// Ping implements ports.StoreInspector.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ListCollections implements ports.StoreInspector.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&DocumentDTO{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, storeError("list collections", err)
	}
	return names, nil
}

func toDocument(dto DocumentDTO) (ports.Document, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(dto.Data)))
	dec.UseNumber()

	doc := ports.Document{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", dto.ID, err)
	}
	doc[docstore.IDField] = dto.ID.String()
	return doc, nil
}
