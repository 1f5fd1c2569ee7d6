package service

import (
	"testing"

	"friends-corner/internal/model"
	"friends-corner/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestStore opens an in-memory SQLite database with the full schema.
func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Member{}, &model.Memory{}, &model.Photo{}, &model.Song{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return store.New(db), db
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
