package repositories

import (
	"context"
	"errors"

	"github.com/littlelemon/restaurant-backend/models"
)

// ErrNotFound is returned by repositories when no row matches the lookup.
// Callers distinguish it from infrastructure failures with errors.Is.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("record already exists")

// MenuItemRepository handles menu item data operations
type MenuItemRepository interface {
	// Create inserts a new menu item and fills in its generated ID
	Create(ctx context.Context, item *models.MenuItem) error

	// GetByID retrieves a menu item by ID
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)

	// List retrieves all menu items
	List(ctx context.Context) ([]*models.MenuItem, error)

	// Update updates a menu item
	Update(ctx context.Context, item *models.MenuItem) error

	// Delete deletes a menu item
	Delete(ctx context.Context, id int64) error
}

// BookingRepository handles booking data operations
type BookingRepository interface {
	// Create inserts a new booking and fills in its generated ID
	Create(ctx context.Context, booking *models.Booking) error

	// GetByID retrieves a booking by ID
	GetByID(ctx context.Context, id int64) (*models.Booking, error)

	// List retrieves every booking, unfiltered
	List(ctx context.Context) ([]*models.Booking, error)

	// ListByName retrieves bookings owned by the given username.
	// The filter runs in SQL, before any serialization.
	ListByName(ctx context.Context, name string) ([]*models.Booking, error)

	// Update updates a booking
	Update(ctx context.Context, booking *models.Booking) error

	// Delete deletes a booking
	Delete(ctx context.Context, id int64) error
}

// UserRepository handles user account data operations
type UserRepository interface {
	// Create inserts a new user and fills in its generated ID
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
