package models

import (
	"fmt"
	"strconv"
	"strings"
)

// MenuItem field constraints.
const (
	MenuItemTitleMaxLength = 255
	MenuItemPriceMax       = 9999.99
	MenuItemPriceDecimals  = 2
)

// MenuItem represents a single item on the restaurant menu.
// Price is stored as NUMERIC(6,2): at most 4 integer digits and 2 decimals.
type MenuItem struct {
	ID       int64   `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	Price    float64 `json:"price" db:"price"`
	Featured bool    `json:"featured" db:"featured"`
}

// TableName returns the table name for the MenuItem model.
func (MenuItem) TableName() string {
	return "menu_items"
}

// NewMenuItem creates a new MenuItem instance.
func NewMenuItem(title string, price float64, featured bool) *MenuItem {
	return &MenuItem{
		Title:    title,
		Price:    price,
		Featured: featured,
	}
}

// ValidateTitle checks the menu item title constraint.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MenuItemTitleMaxLength {
		return fmt.Errorf("title must be at most %d characters", MenuItemTitleMaxLength)
	}
	return nil
}

// ValidatePrice parses a JSON number literal and checks the decimal bound:
// non-negative, at most 9999.99, at most 2 decimal places. The check runs on
// the literal so excess precision is rejected rather than silently rounded.
func ValidatePrice(literal string) (float64, error) {
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, fmt.Errorf("price must be a valid number")
	}
	if v < 0 {
		return 0, fmt.Errorf("price must not be negative")
	}
	if v > MenuItemPriceMax {
		return 0, fmt.Errorf("price must be at most %.2f", MenuItemPriceMax)
	}
	if decimalPlaces(literal, v) > MenuItemPriceDecimals {
		return 0, fmt.Errorf("price must have at most %d decimal places", MenuItemPriceDecimals)
	}
	return v, nil
}

// decimalPlaces counts fractional digits in a number literal. Exponent forms
// are normalized through the parsed value first.
func decimalPlaces(literal string, v float64) int {
	if strings.ContainsAny(literal, "eE") {
		literal = strconv.FormatFloat(v, 'f', -1, 64)
	}
	dot := strings.IndexByte(literal, '.')
	if dot < 0 {
		return 0
	}
	frac := strings.TrimRight(literal[dot+1:], "0")
	return len(frac)
}
