package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lisbeauty/storefront/pkg/logger"
)

// Record is one key/value row of the SQL-backed store.
type Record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

// TableName specifies the table name
func (Record) TableName() string {
	return "store_records"
}

// Gorm is a durable store persisted as key/value rows in a relational
// database. It keeps the JSON-blob key space of the other backends so the
// catalog can move to SQL without touching the core.
type Gorm struct {
	db *gorm.DB
}

// NewGorm creates a SQL-backed store and runs its migration.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(key string) ([]byte, bool) {
	var rec Record
	err := g.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false
	}
	if err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("store read failed, treating as absent")
		return nil, false
	}
	return rec.Value, true
}

func (g *Gorm) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (g *Gorm) Remove(key string) {
	if err := g.db.Delete(&Record{}, "key = ?", key).Error; err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("store delete failed")
	}
}
