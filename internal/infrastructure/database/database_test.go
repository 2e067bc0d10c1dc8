package database

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"clinic-pharmacy-api/config"

	"github.com/sirupsen/logrus"
)

func TestDSNs(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: "5432", User: "clinic", Password: "p@ss word", Name: "clinic", TimeZone: "Asia/Dhaka",
	}

	dsn := PostgresDSN(cfg)
	if !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "TimeZone=Asia/Dhaka") {
		t.Errorf("unexpected postgres dsn %q", dsn)
	}

	if got := migrationURL(cfg); got != "pgx5://clinic:p%40ss%20word@db:5432/clinic?sslmode=disable" {
		t.Errorf("unexpected migration url %q", got)
	}

	if got := SQLiteDSN("clinic.db"); got != "file:clinic.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Errorf("unexpected sqlite dsn %q", got)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 || len(names)%2 != 0 {
		t.Fatalf("expected paired up/down migrations, got %v", names)
	}

	up, err := fs.ReadFile(migrationFiles, "migrations/000001_init.up.sql")
	if err != nil {
		t.Fatal(err)
	}
	for _, table := range []string{"patients", "medicines", "stock_movements", "sale_items", "prescription_items"} {
		if !strings.Contains(string(up), "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("init migration does not create %s", table)
		}
	}
	if !strings.Contains(string(up), "stock_qty BETWEEN 0 AND 1000000000") {
		t.Error("init migration must bound stock_qty")
	}
}

func TestRunMigrations_RequiresPostgres(t *testing.T) {
	if _, err := RunMigrations(config.DBConfig{Driver: DriverSQLite}); err == nil {
		t.Error("expected migrations to refuse sqlite")
	}
	if _, err := RollbackMigrations(config.DBConfig{Driver: DriverPostgres}, 0); err == nil {
		t.Error("expected rollback to require at least one step")
	}
}

func TestNewConnection_SQLite(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := NewConnection(config.DBConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")}, log)
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()

	for _, table := range []string{"patients", "doctors", "appointments", "medicines", "stock_movements", "sales", "sale_items", "prescriptions", "prescription_items"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("expected table %s", table)
		}
	}

	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		t.Fatal(err)
	}
	if fk != 1 {
		t.Error("expected foreign keys enforced")
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	if _, err := NewConnection(config.DBConfig{Driver: "mysql"}, log); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
