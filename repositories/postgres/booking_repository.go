package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/littlelemon/restaurant-backend/models"
	"github.com/littlelemon/restaurant-backend/repositories"
	"go.uber.org/zap"
)

// BookingRepository implements the repositories.BookingRepository interface
type BookingRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *DB, logger *zap.Logger) repositories.BookingRepository {
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new booking and fills in its generated ID
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (name, guest_number, date, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		booking.Name,
		booking.GuestNumber,
		dateArg(booking.Date),
		booking.Comment,
	).Scan(&booking.ID)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	r.logger.Debug("booking created", zap.Int64("id", booking.ID))
	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `
		SELECT id, name, guest_number, date, comment
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", id, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// List retrieves every booking, unfiltered
func (r *BookingRepository) List(ctx context.Context) ([]*models.Booking, error) {
	query := `
		SELECT id, name, guest_number, date, comment
		FROM bookings
		ORDER BY id
	`

	return r.queryBookings(ctx, query)
}

// ListByName retrieves bookings owned by the given username.
// The row filter runs here, in SQL, never after serialization.
func (r *BookingRepository) ListByName(ctx context.Context, name string) ([]*models.Booking, error) {
	query := `
		SELECT id, name, guest_number, date, comment
		FROM bookings
		WHERE name = $1
		ORDER BY id
	`

	return r.queryBookings(ctx, query, name)
}

// Update updates a booking
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET name = $2,
		    guest_number = $3,
		    date = $4,
		    comment = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.Name,
		booking.GuestNumber,
		dateArg(booking.Date),
		booking.Comment,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", booking.ID, repositories.ErrNotFound)
	}

	r.logger.Debug("booking updated", zap.Int64("id", booking.ID))
	return nil
}

// Delete deletes a booking
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", id, repositories.ErrNotFound)
	}

	r.logger.Debug("booking deleted", zap.Int64("id", id))
	return nil
}

// queryBookings is a helper method to query multiple bookings
func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]*models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking scans one booking row, converting nullable columns
func scanBooking(row rowScanner) (*models.Booking, error) {
	booking := &models.Booking{}
	var name, comment sql.NullString
	var date sql.NullTime

	err := row.Scan(
		&booking.ID,
		&name,
		&booking.GuestNumber,
		&date,
		&comment,
	)
	if err != nil {
		return nil, err
	}

	if name.Valid {
		booking.Name = &name.String
	}
	if comment.Valid {
		booking.Comment = &comment.String
	}
	if date.Valid {
		d := models.NewDate(date.Time.Year(), date.Time.Month(), date.Time.Day())
		booking.Date = &d
	}

	return booking, nil
}

// dateArg converts an optional Date into a driver-friendly value
func dateArg(d *models.Date) interface{} {
	if d == nil {
		return nil
	}
	return d.Time
}
