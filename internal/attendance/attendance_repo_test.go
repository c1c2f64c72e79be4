package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRepository_WithTx(t *testing.T) {
	mainDB, mainMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mainDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: mainDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { txDB.Close() })

	txMock.ExpectBegin()
	txMock.ExpectExec(`UPDATE "attendances" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	tx, err := txDB.Begin()
	assert.NoError(t, err)

	rec := &Attendance{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		WorkDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ShiftCode:  "P",
		Status:     "PRESENT",
	}
	err = NewRepository(gormDB).WithTx(tx).Update(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())

	// seluruh statement berjalan di dalam transaksi, bukan di pool utama
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, mainMock.ExpectationsWereMet())
}
