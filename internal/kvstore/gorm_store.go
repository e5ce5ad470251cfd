package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/streamrent/streamrent/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted collection snapshot.
type Record struct {
	Key       string    `gorm:"primaryKey;column:record_key;size:64"`
	Value     []byte    `gorm:"column:record_value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Record) TableName() string {
	return "kv_records"
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm connection as a Store and ensures the backing
// table exists.
func NewGormStore(db *gorm.DB) (Store, error) {
	if db == nil {
		return nil, errors.New("kvstore: nil gorm db")
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec Record
	err := s.db.WithContext(ctx).
		Where("record_key = ?", key).
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeValue(rec.Value)
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	return s.upsert(s.db.WithContext(ctx), key, value)
}

func (s *gormStore) SetAll(ctx context.Context, values map[string][]byte) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := s.upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *gormStore) upsert(tx *gorm.DB, key string, value []byte) error {
	rec := Record{
		Key:       key,
		Value:     encodeValue(value),
		UpdatedAt: time.Now().UTC(),
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"record_value", "updated_at"}),
	}).Create(&rec).Error
}

// Dialect selects the gorm dialector for the configured SQL backend.
func Dialect(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.StorageType {
	case "mysql":
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)), nil
	case "postgres":
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
		)), nil
	case "sqlite":
		return sqlite.Open(cfg.DBPath), nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.StorageType)
	}
}
