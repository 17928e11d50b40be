package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/numeric"
	gRepo "hotel/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) (model.Room, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Room, error)
	ListWhereAvailable(ctx context.Context, available bool) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// Insert rejects values the room table cannot hold exactly before writing.
func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) (model.Room, error) {
	if !room.RoomType.Valid() {
		return model.Room{}, failure.InvalidEnumValue(fmt.Sprintf("room_type %q is not one of SINGLE DOUBLE SUITE", room.RoomType))
	}

	if !numeric.Fits(room.PricePerNight, model.PricePrecision, model.PriceScale) {
		return model.Room{}, failure.InvalidDecimalValue(fmt.Sprintf("price_per_night %s does not fit NUMERIC(6,2)", room.PricePerNight))
	}

	return r.Repository.Insert(ctx, room) //nolint:wrapcheck
}

func (r *repositoryImpl) ListWhereAvailable(ctx context.Context, available bool) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListWhereAvailable")
	defer scope.End()

	scope.SetAttribute("room.is_available", available)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsAvailable,
				Value:    available,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	rooms, err := r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	return rooms, nil
}
