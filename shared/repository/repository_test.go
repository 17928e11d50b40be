package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"hotel/infras/otel/mocks"
	"hotel/shared/dto"
	"hotel/shared/failure"
	"net"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type testRoom struct {
	ID         int64  `db:"id"`
	RoomNumber string `db:"room_number"`
	Available  bool   `db:"is_available"`
	Ignored    string
	Skipped    string `db:"-"`
}

func newTestRepository() Repository[testRoom] {
	return NewRepository[testRoom]("room", "room", "id", nil, mocks.NewOtel())
}

func TestInsertQuery(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t,
		"INSERT INTO room (room_number, is_available) VALUES (:room_number, :is_available) "+
			"RETURNING room.id, room.room_number, room.is_available",
		repo.insertQuery(),
	)
}

func TestOrderClause(t *testing.T) {
	repo := newTestRepository()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{
			name: "default ordering",
			want: "ORDER BY room.id ASC",
		},
		{
			name:   "known column descending",
			params: dto.QueryParams{SortBy: "room_number", SortDir: dto.SortDirDesc},
			want:   "ORDER BY room.room_number DESC, room.id ASC",
		},
		{
			name:   "known column without direction",
			params: dto.QueryParams{SortBy: "is_available"},
			want:   "ORDER BY room.is_available ASC, room.id ASC",
		},
		{
			name:   "primary column descending",
			params: dto.QueryParams{SortBy: "id", SortDir: dto.SortDirDesc},
			want:   "ORDER BY room.id DESC",
		},
		{
			name:   "unknown column",
			params: dto.QueryParams{SortBy: "price; DROP TABLE room", SortDir: dto.SortDirDesc},
			want:   "ORDER BY room.id ASC",
		},
		{
			name:   "field without db tag",
			params: dto.QueryParams{SortBy: "Ignored"},
			want:   "ORDER BY room.id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.OrderClause(tt.params))
		})
	}
}

func TestBuildWhereClause(t *testing.T) {
	repo := newTestRepository()

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "is_available", Value: true, Operator: dto.FilterOperatorEq, Table: "room"},
		},
	})
	assert.Equal(t, " WHERE (room.is_available = :is_available)", where)
	assert.Equal(t, map[string]any{"is_available": true}, args)
}

func TestExistRequiresFilter(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.Exist(context.Background(), dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     int
		message  string
	}{
		{
			name: "unique violation",
			err: &pq.Error{
				Code:   "23505",
				Detail: "Key (email)=(ada@example.com) already exists.",
			},
			sentinel: failure.ErrUniqueConstraintViolation,
			code:     http.StatusConflict,
			message:  "guest with this email already exists",
		},
		{
			name:     "unique violation without detail",
			err:      &pq.Error{Code: "23505"},
			sentinel: failure.ErrUniqueConstraintViolation,
			code:     http.StatusConflict,
			message:  "guest already exists",
		},
		{
			name:     "check violation",
			err:      &pq.Error{Code: "23514", Constraint: "room_room_type_check"},
			sentinel: failure.ErrInvalidEnumValue,
			code:     http.StatusBadRequest,
			message:  "guest violates check constraint room_room_type_check",
		},
		{
			name:     "numeric out of range",
			err:      fmt.Errorf("exec: %w", &pq.Error{Code: "22003"}),
			sentinel: failure.ErrInvalidDecimalValue,
			code:     http.StatusBadRequest,
		},
		{
			name:    "value too long",
			err:     &pq.Error{Code: "22001"},
			code:    http.StatusBadRequest,
			message: "guest has a value too long for its column",
		},
		{
			name:    "not null violation",
			err:     &pq.Error{Code: "23502", Column: "phone"},
			code:    http.StatusBadRequest,
			message: "guest is missing required column phone",
		},
		{
			name:     "connection failure class",
			err:      &pq.Error{Code: "08006"},
			sentinel: failure.ErrStoreUnavailable,
			code:     http.StatusServiceUnavailable,
		},
		{
			name:     "bad connection",
			err:      driver.ErrBadConn,
			sentinel: failure.ErrStoreUnavailable,
			code:     http.StatusServiceUnavailable,
		},
		{
			name:     "network error",
			err:      &net.OpError{Op: "dial", Err: timeoutError{}},
			sentinel: failure.ErrStoreUnavailable,
			code:     http.StatusServiceUnavailable,
		},
		{
			name:    "unclassified",
			err:     errors.New("syntax error at or near"),
			code:    http.StatusInternalServerError,
			message: "failed to insert (guest): syntax error at or near",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateError("guest", "insert", tt.err)

			assert.Error(t, err)
			assert.Equal(t, tt.code, failure.GetCode(err))

			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}

			if tt.message != "" {
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}

	assert.NoError(t, TranslateError("guest", "insert", nil))
}
