package employee

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

func employeeRows(id uuid.UUID, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "employee_number", "full_name", "position", "rotation_offset", "role", "active", "created_at", "updated_at",
	}).AddRow(id.String(), "EMP-00001", name, "Operator", 2, "EMPLOYEE", true, time.Now(), time.Now())
}

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

	repo := NewRepository(gormDB)
	id := uuid.New()

	t.Run("query ikut transaksi yang diberikan", func(t *testing.T) {
		txMock.ExpectBegin()
		txMock.ExpectQuery(`SELECT .* FROM "employees"`).WillReturnRows(employeeRows(id, "Budi"))
		txMock.ExpectRollback()

		tx, err := txDB.Begin()
		assert.NoError(t, err)

		e, err := repo.WithTx(tx).FindByID(context.Background(), id.String())
		assert.NoError(t, err)
		assert.Equal(t, "Budi", e.FullName)
		assert.NoError(t, tx.Rollback())
		assert.NoError(t, txMock.ExpectationsWereMet())
	})

	t.Run("repo dasar tetap memakai pool utama setelah WithTx", func(t *testing.T) {
		mainMock.ExpectQuery(`SELECT .* FROM "employees"`).WillReturnRows(employeeRows(id, "Sari"))

		e, err := repo.FindByID(context.Background(), id.String())
		assert.NoError(t, err)
		assert.Equal(t, "Sari", e.FullName)
		assert.NoError(t, mainMock.ExpectationsWereMet())
	})
}
