package validator_test

import (
	"errors"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoom struct {
	RoomNumber    string           `json:"room_number"     validate:"required,max=10"`
	RoomType      string           `json:"room_type"       validate:"required,oneof=SINGLE DOUBLE SUITE"`
	PricePerNight *decimal.Decimal `json:"price_per_night" validate:"required,decimal=6.2"`
}

type testGuest struct {
	Email       string `json:"email"         validate:"required,email,max=254"`
	CheckInDate string `json:"check_in_date" validate:"required,date"`
}

func price(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)

	return &d
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name     string
		data     testRoom
		sentinel error
		wantErr  bool
	}{
		{
			name: "valid struct",
			data: testRoom{RoomNumber: "101", RoomType: "SINGLE", PricePerNight: price("89.99")},
		},
		{
			name:    "missing required field",
			data:    testRoom{RoomType: "SINGLE", PricePerNight: price("89.99")},
			wantErr: true,
		},
		{
			name:    "room number too long",
			data:    testRoom{RoomNumber: "12345678901", RoomType: "SINGLE", PricePerNight: price("89.99")},
			wantErr: true,
		},
		{
			name:     "room type outside enumeration",
			data:     testRoom{RoomNumber: "101", RoomType: "PENTHOUSE", PricePerNight: price("89.99")},
			sentinel: failure.ErrInvalidEnumValue,
			wantErr:  true,
		},
		{
			name:     "price with three fractional digits",
			data:     testRoom{RoomNumber: "101", RoomType: "SUITE", PricePerNight: price("1234.567")},
			sentinel: failure.ErrInvalidDecimalValue,
			wantErr:  true,
		},
		{
			name:     "price overflowing precision",
			data:     testRoom{RoomNumber: "101", RoomType: "SUITE", PricePerNight: price("10000")},
			sentinel: failure.ErrInvalidDecimalValue,
			wantErr:  true,
		},
		{
			name:    "missing price",
			data:    testRoom{RoomNumber: "101", RoomType: "SUITE"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.NotEmpty(t, err.Error())

			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel), "expected %v to match %v", err, tt.sentinel)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "ada@example.com", tag: "email"},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "valid date", field: "2024-02-29", tag: "date"},
		{name: "invalid date", field: "2023-02-29", tag: "date", expectError: true},
		{name: "valid decimal string", field: "12.50", tag: "decimal=6.2"},
		{name: "invalid decimal string", field: "12.505", tag: "decimal=6.2", expectError: true},
		{name: "decimal value", field: decimal.RequireFromString("9999.99"), tag: "decimal=6.2"},
		{name: "valid oneof", field: "DOUBLE", tag: "oneof=SINGLE DOUBLE SUITE"},
		{name: "invalid oneof", field: "double", tag: "oneof=SINGLE DOUBLE SUITE", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"email":"ada@example.com","check_in_date":"2024-01-01"}`,
		},
		{
			name:        "invalid email",
			jsonBody:    `{"email":"ada","check_in_date":"2024-01-01"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"email":}`,
			expectError: true,
		},
		{
			name:        "unknown field",
			jsonBody:    `{"email":"ada@example.com","check_in_date":"2024-01-01","vip":true}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data testGuest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&testGuest{})
	require.Error(t, err)

	assert.Equal(t, "email is required", err.Error())

	err = validator.ValidateStruct(&testRoom{RoomNumber: "101", RoomType: "LOFT", PricePerNight: price("1")})
	require.Error(t, err)

	assert.Equal(t, "room_type must be one of SINGLE DOUBLE SUITE", err.Error())
	assert.Equal(t, 400, failure.GetCode(err))
}
