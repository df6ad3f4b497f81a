package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/mysql"
)

func TestOpenGormWithDialector_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing()

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	log, _ := test.NewNullLogger()

	gdb, err := OpenGormWithDialector(dial, log)
	if err != nil {
		t.Fatalf("OpenGormWithDialector error: %v", err)
	}
	if gdb == nil {
		t.Fatalf("got nil gorm.DB")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer sqlDB.Close()

	mock.ExpectPing().WillReturnError(errors.New("no ping"))

	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	log, _ := test.NewNullLogger()

	gdb, err := OpenGormWithDialector(dial, log)
	if err == nil {
		t.Fatalf("expected error, got nil (gdb=%v)", gdb)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDialector(t *testing.T) {
	for _, d := range []string{"mysql", "postgres", "sqlite"} {
		dial, err := Dialector(d, "dsn")
		if err != nil || dial == nil {
			t.Errorf("Dialector(%q) = %v, %v", d, dial, err)
		}
		if dial.Name() != d {
			t.Errorf("Dialector(%q).Name() = %q", d, dial.Name())
		}
	}
	if _, err := Dialector("oracle", "dsn"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestOpenGorm_SQLiteFile(t *testing.T) {
	log, hook := test.NewNullLogger()
	gdb, err := OpenGorm("sqlite", filepath.Join(t.TempDir(), "records.db"), log)
	if err != nil {
		t.Fatalf("OpenGorm: %v", err)
	}
	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	if e := hook.LastEntry(); e == nil || e.Message != "gorm: connected" {
		t.Fatalf("expected connect log, got %+v", e)
	}
}
