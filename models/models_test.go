package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.September, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-15"`, string(data))

	var got Date
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, d, got)
}

func TestDateUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a string", `20260915`},
		{"wrong format", `"15/09/2026"`},
		{"not a date", `"hello"`},
		{"datetime", `"2026-09-15T10:00:00Z"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tt.input), &d))
		})
	}
}

func TestDateBefore(t *testing.T) {
	earlier := NewDate(2026, time.March, 1)
	later := NewDate(2026, time.March, 2)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.May, 4, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, NewDate(2026, time.May, 4), d)

	require.NoError(t, d.Scan(nil))

	assert.Error(t, d.Scan("2026-05-04"))
}

func TestValidateTitle(t *testing.T) {
	t.Run("valid title", func(t *testing.T) {
		assert.NoError(t, ValidateTitle("Greek Salad"))
	})

	t.Run("empty title", func(t *testing.T) {
		assert.Error(t, ValidateTitle(""))
	})

	t.Run("title at max length", func(t *testing.T) {
		assert.NoError(t, ValidateTitle(strings.Repeat("a", MenuItemTitleMaxLength)))
	})

	t.Run("title over max length", func(t *testing.T) {
		assert.Error(t, ValidateTitle(strings.Repeat("a", MenuItemTitleMaxLength+1)))
	})
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    float64
		wantErr bool
	}{
		{"integer literal", "12", 12, false},
		{"two decimals", "12.50", 12.5, false},
		{"trailing zeros beyond two", "12.5000", 12.5, false},
		{"zero", "0", 0, false},
		{"maximum", "9999.99", 9999.99, false},
		{"over maximum", "10000", 0, true},
		{"over maximum with decimals", "10000.00", 0, true},
		{"three decimals", "5.999", 0, true},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
		{"exponent within bounds", "1.25e1", 12.5, false},
		{"exponent with excess precision", "1.2345e1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePrice(tt.literal)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateGuestNumber(t *testing.T) {
	assert.NoError(t, ValidateGuestNumber(1))
	assert.NoError(t, ValidateGuestNumber(12))
	assert.Error(t, ValidateGuestNumber(0))
	assert.Error(t, ValidateGuestNumber(-3))
}

func TestValidateBookingDate(t *testing.T) {
	today := NewDate(2026, time.June, 10)

	t.Run("today is valid", func(t *testing.T) {
		assert.NoError(t, ValidateBookingDate(today, today))
	})

	t.Run("future is valid", func(t *testing.T) {
		assert.NoError(t, ValidateBookingDate(NewDate(2026, time.June, 11), today))
	})

	t.Run("past is rejected", func(t *testing.T) {
		assert.Error(t, ValidateBookingDate(NewDate(2026, time.June, 9), today))
	})
}

func TestValidateComment(t *testing.T) {
	assert.NoError(t, ValidateComment(""))
	assert.NoError(t, ValidateComment(strings.Repeat("x", BookingCommentMaxLength)))
	assert.Error(t, ValidateComment(strings.Repeat("x", BookingCommentMaxLength+1)))
}

func TestNewBooking(t *testing.T) {
	date := NewDate(2026, time.July, 1)
	comment := "window seat"
	b := NewBooking("maria", 4, &date, &comment)

	require.NotNil(t, b.Name)
	assert.Equal(t, "maria", *b.Name)
	assert.Equal(t, 4, b.GuestNumber)
	require.NotNil(t, b.Date)
	assert.Equal(t, date, *b.Date)
	require.NotNil(t, b.Comment)
	assert.Equal(t, "window seat", *b.Comment)
}

func TestMenuItemJSON(t *testing.T) {
	item := MenuItem{ID: 3, Title: "Bruschetta", Price: 7.5, Featured: true}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"title":"Bruschetta","price":7.5,"featured":true}`, string(data))
}
