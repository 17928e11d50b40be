package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	Get(ctx context.Context, id int64) (dto.GuestResponse, error)
	ListByCheckIn(ctx context.Context) (dto.GetGuestsResponse, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.GetGuestsResponse, error)
}

type serviceImpl struct {
	repo   repository.Guest
	cfg    *config.Config
	events event.Emitter
	otel   otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, events event.Emitter, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		events: events,
		otel:   otel,
	}
}

// DefaultOrder lists the most recent check-in first.
func DefaultOrder() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldCheckInDate, SortDir: gDto.SortDirDesc}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := req.ToModel()
	if err != nil {
		return res, err
	}

	guest, err = s.repo.Insert(ctx, guest)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("failed to register guest")

		return res, err
	}

	res.FromModel(guest)

	var created dto.GuestCreatedEvent

	created.FromModel(guest)
	s.events.Emit(ctx, s.cfg.Kafka.Topic.GuestCreated, fmt.Sprint(guest.ID), created)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("id", id).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) ListByCheckIn(ctx context.Context) (dto.GetGuestsResponse, error) {
	return s.List(ctx, DefaultOrder())
}

// List returns every guest. Missing sort fields are taken from DefaultOrder.
func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defaults := DefaultOrder()
	if params.SortBy == "" {
		params.SortBy = defaults.SortBy
	}

	if params.SortDir == "" {
		params.SortDir = defaults.SortDir
	}

	guests, err := s.repo.ListOrderedBy(ctx, params)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("sort_by", params.SortBy).Msg("failed to list guests")

		return res, fmt.Errorf("failed to list guests: %w", err)
	}

	res.FromModels(guests)

	return res, nil
}
