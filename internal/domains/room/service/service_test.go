package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
)

func fakeRoom(available bool) model.Room {
	return model.Room{
		ID:            int64(gofakeit.IntRange(1, 1_000_000)),
		RoomNumber:    gofakeit.DigitN(4),
		RoomType:      model.RoomTypes()[gofakeit.IntRange(0, 2)],
		PricePerNight: decimal.NewFromFloat(gofakeit.Price(10, 9999)).Round(2),
		IsAvailable:   available,
	}
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topic.RoomCreated = "hotel.room.created"

	return cfg
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockEvents := eventMocks.NewMockEmitter(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newConfig(), mockEvents, mockOtel)

	price := decimal.RequireFromString("89.99")
	unavailable := false

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		sentinel  error
		wantErr   bool
	}{
		{
			name: "successful creation defaults to available",
			req: dto.CreateRoomRequest{
				RoomNumber:    "101",
				RoomType:      "SINGLE",
				PricePerNight: &price,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Room{
						RoomNumber:    "101",
						RoomType:      model.RoomTypeSingle,
						PricePerNight: price,
						IsAvailable:   true,
					}).
					Return(model.Room{ID: 1, RoomNumber: "101", RoomType: model.RoomTypeSingle, PricePerNight: price, IsAvailable: true}, nil)

				mockEvents.EXPECT().
					Emit(gomock.Any(), "hotel.room.created", "101", dto.RoomCreatedEvent{
						ID:            1,
						RoomNumber:    "101",
						RoomType:      "SINGLE",
						PricePerNight: "89.99",
						IsAvailable:   true,
					})
			},
		},
		{
			name: "explicitly unavailable",
			req: dto.CreateRoomRequest{
				RoomNumber:    "102",
				RoomType:      "SUITE",
				PricePerNight: &price,
				IsAvailable:   &unavailable,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
						assert.False(t, room.IsAvailable)

						room.ID = 2

						return room, nil
					})

				mockEvents.EXPECT().Emit(gomock.Any(), "hotel.room.created", "102", gomock.Any())
			},
		},
		{
			name: "duplicate room number",
			req: dto.CreateRoomRequest{
				RoomNumber:    "101",
				RoomType:      "DOUBLE",
				PricePerNight: &price,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Room{}, failure.UniqueConstraintViolation("room with this room_number already exists"))
			},
			sentinel: failure.ErrUniqueConstraintViolation,
			wantErr:  true,
		},
		{
			name: "room type outside enumeration",
			req: dto.CreateRoomRequest{
				RoomNumber:    "103",
				RoomType:      "PENTHOUSE",
				PricePerNight: &price,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Room{}, failure.InvalidEnumValue("room_type \"PENTHOUSE\" is not one of SINGLE DOUBLE SUITE"))
			},
			sentinel: failure.ErrInvalidEnumValue,
			wantErr:  true,
		},
		{
			name: "store unavailable",
			req: dto.CreateRoomRequest{
				RoomNumber:    "104",
				RoomType:      "SINGLE",
				PricePerNight: &price,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Room{}, failure.StoreUnavailable(errors.New("connection refused")))
			},
			sentinel: failure.ErrStoreUnavailable,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.sentinel)
				assert.Zero(t, res.ID)

				return
			}

			require.NoError(t, err)
			assert.NotZero(t, res.ID)
			assert.Equal(t, tt.req.RoomNumber, res.RoomNumber)
			assert.True(t, tt.req.PricePerNight.Equal(res.PricePerNight))
		})
	}

	assert.Len(t, mockOtel.Traced, 3)
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockEvents := eventMocks.NewMockEmitter(ctrl)

	svc := service.New(mockRepo, newConfig(), mockEvents, mocks.NewOtel())

	room := fakeRoom(true)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "found",
			id:   room.ID,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
			},
		},
		{
			name: "not found",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "repository error",
			id:   42,
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, room.ID, res.ID)
			assert.Equal(t, room.RoomType.Label(), res.RoomTypeLabel)
		})
	}
}

func TestRoomService_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockEvents := eventMocks.NewMockEmitter(ctrl)

	svc := service.New(mockRepo, newConfig(), mockEvents, mocks.NewOtel())

	roomA := fakeRoom(true)
	roomC := fakeRoom(true)

	tests := []struct {
		name      string
		setupMock func()
		want      []int64
		sentinel  error
		wantErr   bool
	}{
		{
			name: "only available rooms are returned in store order",
			setupMock: func() {
				mockRepo.EXPECT().ListWhereAvailable(gomock.Any(), true).Return([]model.Room{roomA, roomC}, nil)
			},
			want: []int64{roomA.ID, roomC.ID},
		},
		{
			name: "no rooms",
			setupMock: func() {
				mockRepo.EXPECT().ListWhereAvailable(gomock.Any(), true).Return([]model.Room{}, nil)
			},
			want: []int64{},
		},
		{
			name: "store unavailable",
			setupMock: func() {
				mockRepo.EXPECT().
					ListWhereAvailable(gomock.Any(), true).
					Return(nil, failure.StoreUnavailable(errors.New("connection reset")))
			},
			sentinel: failure.ErrStoreUnavailable,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ListAvailable(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.sentinel)
				assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			ids := make([]int64, 0, len(res.Rooms))
			for _, r := range res.Rooms {
				assert.True(t, r.IsAvailable)

				ids = append(ids, r.ID)
			}

			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRoomService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, newConfig(), eventMocks.NewMockEmitter(ctrl), mocks.NewOtel())

	occupied := fakeRoom(false)
	mockRepo.EXPECT().ListWhereAvailable(gomock.Any(), false).Return([]model.Room{occupied}, nil)

	res, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, res.Rooms, 1)
	assert.False(t, res.Rooms[0].IsAvailable)
}
