package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/littlelemon/restaurant-backend/models"
	"github.com/littlelemon/restaurant-backend/repositories"
)

var bookingColumns = []string{"id", "name", "guest_number", "date", "comment"}

func TestBookingRepository_Create(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		date := models.NewDate(2026, time.September, 15)
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs("maria", 4, date.Time, "window seat").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

		comment := "window seat"
		booking := models.NewBooking("maria", 4, &date, &comment)
		err := repo.Create(context.Background(), booking)

		require.NoError(t, err)
		assert.Equal(t, int64(11), booking.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs("maria", 1, nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

		booking := models.NewBooking("maria", 1, nil, nil)
		err := repo.Create(context.Background(), booking)

		require.NoError(t, err)
		assert.Equal(t, int64(12), booking.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	t.Run("existing booking with nullable fields populated", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		rows := sqlmock.NewRows(bookingColumns).
			AddRow(int64(11), "maria", 4, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), "window seat")
		mock.ExpectQuery("SELECT id, name, guest_number, date, comment FROM bookings WHERE id").
			WithArgs(int64(11)).
			WillReturnRows(rows)

		booking, err := repo.GetByID(context.Background(), 11)

		require.NoError(t, err)
		require.NotNil(t, booking.Name)
		assert.Equal(t, "maria", *booking.Name)
		assert.Equal(t, 4, booking.GuestNumber)
		require.NotNil(t, booking.Date)
		assert.Equal(t, "2026-09-15", booking.Date.String())
		require.NotNil(t, booking.Comment)
		assert.Equal(t, "window seat", *booking.Comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null columns scan to nil pointers", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		rows := sqlmock.NewRows(bookingColumns).
			AddRow(int64(12), nil, 1, nil, nil)
		mock.ExpectQuery("SELECT id, name, guest_number, date, comment FROM bookings WHERE id").
			WithArgs(int64(12)).
			WillReturnRows(rows)

		booking, err := repo.GetByID(context.Background(), 12)

		require.NoError(t, err)
		assert.Nil(t, booking.Name)
		assert.Nil(t, booking.Date)
		assert.Nil(t, booking.Comment)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		mock.ExpectQuery("SELECT id, name, guest_number, date, comment FROM bookings WHERE id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		_, err := repo.GetByID(context.Background(), 99)

		assert.True(t, errors.Is(err, repositories.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, zap.NewNop())

	rows := sqlmock.NewRows(bookingColumns).
		AddRow(int64(1), "maria", 2, nil, nil).
		AddRow(int64(2), "admin", 6, nil, nil)
	mock.ExpectQuery("SELECT id, name, guest_number, date, comment FROM bookings ORDER BY id").
		WillReturnRows(rows)

	bookings, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "maria", *bookings[0].Name)
	assert.Equal(t, "admin", *bookings[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db, zap.NewNop())

	rows := sqlmock.NewRows(bookingColumns).
		AddRow(int64(1), "maria", 2, nil, nil)
	mock.ExpectQuery("SELECT id, name, guest_number, date, comment FROM bookings WHERE name").
		WithArgs("maria").
		WillReturnRows(rows)

	bookings, err := repo.ListByName(context.Background(), "maria")

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "maria", *bookings[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Update(t *testing.T) {
	t.Run("existing booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		date := models.NewDate(2026, time.October, 1)
		mock.ExpectExec("UPDATE bookings").
			WithArgs(int64(11), "maria", 6, date.Time, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		name := "maria"
		booking := &models.Booking{ID: 11, Name: &name, GuestNumber: 6, Date: &date}
		err := repo.Update(context.Background(), booking)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		mock.ExpectExec("UPDATE bookings").
			WithArgs(int64(99), nil, 1, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 0))

		booking := &models.Booking{ID: 99, GuestNumber: 1}
		err := repo.Update(context.Background(), booking)

		assert.True(t, errors.Is(err, repositories.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Delete(t *testing.T) {
	t.Run("existing booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		mock.ExpectExec("DELETE FROM bookings WHERE id").
			WithArgs(int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 11))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewBookingRepository(db, zap.NewNop())

		mock.ExpectExec("DELETE FROM bookings WHERE id").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.True(t, errors.Is(err, repositories.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
