package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
)

func TestOpenGormWithDialector_PingSucceeds(t *testing.T) {
	// No ping monitoring here: the opener pings more than once and every
	// unmonitored Ping succeeds.
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	mock.ExpectPing()
	mock.ExpectClose()

	dial := mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true})
	db, err := OpenGormWithDialector(dial)
	if err != nil {
		t.Fatalf("OpenGormWithDialector: %v", err)
	}
	if db == nil {
		t.Fatal("nil handle")
	}
	if err := Close(db); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestOpenGormWithDialector_PingFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer sqlDB.Close()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	dial := mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true})
	if _, err := OpenGormWithDialector(dial); err == nil {
		t.Fatal("expected error when the database is unreachable")
	}
}
