package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any, preload ...string) error {
	tx := f.DB.WithContext(ctx)
	for _, p := range preload {
		tx = tx.Preload(p)
	}
	if column != "" {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

// FirstOrCreateBy looks a record up by a single column match and
// inserts the given entity when no row exists. The entity is populated
// either way.
func (f *PostgresDB) FirstOrCreateBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).FirstOrCreate(entity).Error
	if err != nil {
		return fmt.Errorf("first or create by %q: %w", column, err)
	}
	return nil
}

// DeleteWhere removes every row of model matching all filters. Zero
// affected rows is not an error.
func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, filters map[string]any) error {
	tx := f.DB.WithContext(ctx)
	for column, value := range filters {
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if err := tx.Delete(model).Error; err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}
	return nil
}
