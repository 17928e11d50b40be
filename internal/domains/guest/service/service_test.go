package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	guestMocks "hotel/internal/domains/guest/mocks"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	gDto "hotel/shared/dto"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
)

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t
}

func fakeGuest(id int64, checkIn string) model.Guest {
	return model.Guest{
		ID:           id,
		FirstName:    gofakeit.FirstName(),
		LastName:     gofakeit.LastName(),
		Email:        gofakeit.Email(),
		Phone:        gofakeit.DigitN(10),
		CheckInDate:  date(checkIn),
		CheckOutDate: date(checkIn).AddDate(0, 0, gofakeit.IntRange(1, 14)),
	}
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topic.GuestCreated = "hotel.guest.created"

	return cfg
}

func TestGuestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockEvents := eventMocks.NewMockEmitter(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newConfig(), mockEvents, mockOtel)

	req := dto.CreateGuestRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Phone:        "5550100",
		CheckInDate:  "2024-03-15",
		CheckOutDate: "2024-03-10",
	}

	tests := []struct {
		name      string
		req       dto.CreateGuestRequest
		setupMock func()
		sentinel  error
		wantCode  int
		wantErr   bool
	}{
		{
			name: "check-out before check-in is accepted",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Guest{
						FirstName:    "Ada",
						LastName:     "Lovelace",
						Email:        "ada@example.com",
						Phone:        "5550100",
						CheckInDate:  date("2024-03-15"),
						CheckOutDate: date("2024-03-10"),
					}).
					DoAndReturn(func(_ context.Context, guest model.Guest) (model.Guest, error) {
						guest.ID = 11

						return guest, nil
					})

				mockEvents.EXPECT().
					Emit(gomock.Any(), "hotel.guest.created", "11", dto.GuestCreatedEvent{
						ID:           11,
						Email:        "ada@example.com",
						CheckInDate:  "2024-03-15",
						CheckOutDate: "2024-03-10",
					})
			},
		},
		{
			name: "duplicate email",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, failure.UniqueConstraintViolation("guest with this email already exists"))
			},
			sentinel: failure.ErrUniqueConstraintViolation,
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
		{
			name: "malformed date never reaches the store",
			req: dto.CreateGuestRequest{
				FirstName:    "Ada",
				LastName:     "Lovelace",
				Email:        "ada@example.com",
				CheckInDate:  "15/03/2024",
				CheckOutDate: "2024-03-18",
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.sentinel != nil {
					assert.ErrorIs(t, err, tt.sentinel)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(11), res.ID)
			assert.Equal(t, tt.req.CheckInDate, res.CheckInDate)
			assert.Equal(t, tt.req.CheckOutDate, res.CheckOutDate)
			assert.Equal(t, tt.req.Email, res.Email)
		})
	}

	assert.Len(t, mockOtel.Traced, 2)
}

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	svc := service.New(mockRepo, newConfig(), eventMocks.NewMockEmitter(ctrl), mocks.NewOtel())

	guest := fakeGuest(5, "2024-02-10")

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)

	res, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, guest.Email, res.Email)
	assert.Equal(t, "2024-02-10", res.CheckInDate)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

	_, err = svc.Get(context.Background(), 6)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestGuestService_ListByCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	svc := service.New(mockRepo, newConfig(), eventMocks.NewMockEmitter(ctrl), mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		want      []string
		sentinel  error
		wantErr   bool
	}{
		{
			name: "most recent check-in first",
			setupMock: func() {
				mockRepo.EXPECT().
					ListOrderedBy(gomock.Any(), gDto.QueryParams{SortBy: "check_in_date", SortDir: "DESC"}).
					Return([]model.Guest{
						fakeGuest(3, "2024-03-15"),
						fakeGuest(2, "2024-02-10"),
						fakeGuest(1, "2024-01-01"),
					}, nil)
			},
			want: []string{"2024-03-15", "2024-02-10", "2024-01-01"},
		},
		{
			name: "no guests",
			setupMock: func() {
				mockRepo.EXPECT().ListOrderedBy(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			want: []string{},
		},
		{
			name: "store unavailable",
			setupMock: func() {
				mockRepo.EXPECT().
					ListOrderedBy(gomock.Any(), gomock.Any()).
					Return(nil, failure.StoreUnavailable(errors.New("connection refused")))
			},
			sentinel: failure.ErrStoreUnavailable,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ListByCheckIn(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.sentinel)

				return
			}

			require.NoError(t, err)

			dates := make([]string, 0, len(res.Guests))
			for _, g := range res.Guests {
				dates = append(dates, g.CheckInDate)
			}

			assert.Equal(t, tt.want, dates)
		})
	}
}

func TestGuestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	svc := service.New(mockRepo, newConfig(), eventMocks.NewMockEmitter(ctrl), mocks.NewOtel())

	tests := []struct {
		name   string
		params gDto.QueryParams
		want   gDto.QueryParams
	}{
		{
			name:   "empty params use the default order",
			params: gDto.QueryParams{},
			want:   service.DefaultOrder(),
		},
		{
			name:   "direction alone keeps the default column",
			params: gDto.QueryParams{SortDir: gDto.SortDirAsc},
			want:   gDto.QueryParams{SortBy: "check_in_date", SortDir: gDto.SortDirAsc},
		},
		{
			name:   "column alone keeps the default direction",
			params: gDto.QueryParams{SortBy: "email"},
			want:   gDto.QueryParams{SortBy: "email", SortDir: gDto.SortDirDesc},
		},
		{
			name:   "explicit column is passed through",
			params: gDto.QueryParams{SortBy: "last_name", SortDir: gDto.SortDirAsc},
			want:   gDto.QueryParams{SortBy: "last_name", SortDir: gDto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().ListOrderedBy(gomock.Any(), tt.want).Return([]model.Guest{}, nil)

			_, err := svc.List(context.Background(), tt.params)
			assert.NoError(t, err)
		})
	}
}
