package repository

import (
	"testing"
	"time"

	"clinic-pharmacy-api/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(entity.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedMedicine(t *testing.T, db *gorm.DB, sku string, stock int) *entity.Medicine {
	t.Helper()
	m := &entity.Medicine{
		SKU:          sku,
		Name:         sku,
		Category:     "tablet",
		Unit:         "strip",
		SellingPrice: decimal.RequireFromString("2.50"),
		StockQty:     stock,
		ReorderLevel: entity.DefaultReorderLevel,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("failed to seed medicine: %v", err)
	}
	return m
}

func stockOf(t *testing.T, db *gorm.DB, m *entity.Medicine) int {
	t.Helper()
	var stored entity.Medicine
	if err := db.First(&stored, "id = ?", m.ID).Error; err != nil {
		t.Fatalf("failed to load medicine: %v", err)
	}
	return stored.StockQty
}
