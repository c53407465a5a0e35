package postgres

import (
	"time"

	"github.com/google/uuid"
)

// DocumentDTO is the row holding one stored document. Every collection
// shares the documents table; Seq preserves insertion order.
type DocumentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	Collection string    `gorm:"not null;index"`
	Data       string    `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for documents.
func (DocumentDTO) TableName() string {
	return "documents"
}
