package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/event"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	ListAvailable(ctx context.Context) (dto.GetRoomsResponse, error)
	List(ctx context.Context, available bool) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	repo   repository.Room
	cfg    *config.Config
	events event.Emitter
	otel   otel.Otel
}

func New(repo repository.Room, cfg *config.Config, events event.Emitter, otel otel.Otel) Room {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("room_number", req.RoomNumber).Msg("failed to create room")

		return res, err
	}

	res.FromModel(room)

	var created dto.RoomCreatedEvent

	created.FromModel(room)
	s.events.Emit(ctx, s.cfg.Kafka.Topic.RoomCreated, room.RoomNumber, created)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// ListAvailable returns every room currently offered, ordered by id.
func (s *serviceImpl) ListAvailable(ctx context.Context) (dto.GetRoomsResponse, error) {
	return s.List(ctx, true)
}

func (s *serviceImpl) List(ctx context.Context, available bool) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.ListWhereAvailable(ctx, available)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Bool("available", available).Msg("failed to list rooms")

		return res, fmt.Errorf("failed to list rooms: %w", err)
	}

	res.FromModels(rooms)

	return res, nil
}
