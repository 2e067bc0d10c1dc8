package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-pharmacy-api/internal/domain/entity"
	"clinic-pharmacy-api/internal/service"
	"clinic-pharmacy-api/pkg/pagination"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
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

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// noCache is the Redis-less cache service.
func noCache(log *logrus.Logger) *service.RedisCacheService {
	return service.NewRedisCacheService(nil, log, 0)
}

// recordingCache counts dashboard invalidations.
type recordingCache struct {
	invalidations int
}

func (c *recordingCache) InvalidateDashboard(ctx context.Context) {
	c.invalidations++
}

func firstPage(q entity.ListQuery) entity.ListQuery {
	q.Page = pagination.New(1, 10)
	return q
}

func seedPatient(t *testing.T, db *gorm.DB, name, phone string) *entity.Patient {
	t.Helper()
	p := &entity.Patient{Name: name, Phone: phone}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	return p
}

func seedDoctor(t *testing.T, db *gorm.DB, name, specialization string) *entity.Doctor {
	t.Helper()
	d := &entity.Doctor{Name: name, Specialization: specialization}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return d
}

func seedMedicine(t *testing.T, db *gorm.DB, sku, name string, price string, stock int) *entity.Medicine {
	t.Helper()
	m := &entity.Medicine{
		SKU:          sku,
		Name:         name,
		Category:     "tablet",
		Unit:         "strip",
		SellingPrice: decimal.RequireFromString(price),
		StockQty:     stock,
		ReorderLevel: entity.DefaultReorderLevel,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("failed to seed medicine: %v", err)
	}
	return m
}

func stockOf(t *testing.T, db *gorm.DB, id interface{}) int {
	t.Helper()
	var m entity.Medicine
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		t.Fatalf("failed to load medicine: %v", err)
	}
	return m.StockQty
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	return n
}

func strPtr(s string) *string { return &s }
