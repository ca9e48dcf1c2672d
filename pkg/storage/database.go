package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a single stored value.
type Entry struct {
	Key       string    `gorm:"column:storage_key;primaryKey"`
	Value     []byte    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Database is a Store backed by an SQLite database.
type Database struct {
	db *gorm.DB
}

// Connect opens the SQLite database at dsn, migrates the schema and
// configures the connection pool.
func Connect(dsn string) (*Database, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Entry{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all read-modify-write cycles on a key and
	// prevents SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return &Database{db: db}, nil
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func (d *Database) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry

	err := d.db.WithContext(ctx).Where("storage_key = ?", key).First(&entry).Error
	if err != nil {
		return nil, translate(err)
	}

	return entry.Value, nil
}

func (d *Database) Set(ctx context.Context, key string, value []byte) error {
	entry := Entry{
		Key:   key,
		Value: value,
	}

	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error

	return translate(err)
}

func (d *Database) Remove(ctx context.Context, key string) error {
	return translate(d.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&Entry{}).Error)
}

func (d *Database) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	err := d.db.WithContext(ctx).Model(&Entry{}).Order("storage_key ASC").Pluck("storage_key", &keys).Error
	if err != nil {
		return nil, translate(err)
	}

	return keys, nil
}

func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return translate(err)
	}

	return translate(sqlDB.PingContext(ctx))
}

// translate replaces database errors with the errors of this package.
//
// For most errors, we cannot provide the user with a helpful message.
// They are logged so that server admins can debug and a general error is returned.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrKeyNotFound
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		log.Error().Int("code", sqliteErr.Code()).Msgf("%T: %v", err, err.Error())
		return ErrStorage
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return ErrStorage
}
