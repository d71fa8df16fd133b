package database

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/money-flow-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/money-flow-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// createKindEnumSQL creates the kind enum unless it already exists
var createKindEnumSQL = fmt.Sprintf(`DO $$ BEGIN
	CREATE TYPE %s AS ENUM ('expense', 'income');
EXCEPTION
	WHEN duplicate_object THEN null;
END $$;`, model.KindEnumType)

// SchemaManager brings the schema up to the shape the models describe.
// It only creates what is missing and keeps no version history.
type SchemaManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSchemaManager creates a new schema manager
func NewSchemaManager(db *gorm.DB, logger coreport.Logger) *SchemaManager {
	return &SchemaManager{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the kind enum, then the money_flows table and its indexes
func (s *SchemaManager) EnsureSchema(ctx context.Context) error {
	s.logger.Info("Ensuring database schema", nil)

	db := s.db.WithContext(ctx)

	if err := db.Exec(createKindEnumSQL).Error; err != nil {
		s.logger.Error("Failed to create enum type", map[string]any{
			"type":  model.KindEnumType,
			"error": err.Error(),
		})
		return fmt.Errorf("failed to create enum type %s: %w", model.KindEnumType, err)
	}

	if err := db.AutoMigrate(&model.MoneyFlow{}); err != nil {
		s.logger.Error("Failed to migrate money flow table", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to migrate money flow table: %w", err)
	}

	s.logger.Info("Database schema is up to date", nil)
	return nil
}
