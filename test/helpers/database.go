package helpers

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/factory-planner/internal/adapters/persistence"
	"github.com/andrescamacho/factory-planner/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory sqlite store that is closed when the test ends
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

// NewSeededTestDB is NewTestDB with the fixture catalog already stored
func NewSeededTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewTestDB(t)
	repo := persistence.NewGormCatalogRepository(db)
	if err := repo.Replace(context.Background(), NewFixtureCatalog(t)); err != nil {
		t.Fatalf("failed to seed fixture catalog: %v", err)
	}
	return db
}
