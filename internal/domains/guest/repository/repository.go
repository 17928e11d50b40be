package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/guest/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, guest model.Guest) (model.Guest, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Guest, error)
	ListOrderedBy(ctx context.Context, params gDto.QueryParams) ([]model.Guest, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// ListOrderedBy returns every guest sorted by params. Equal sort keys are
// ordered by id ascending.
func (r *repositoryImpl) ListOrderedBy(ctx context.Context, params gDto.QueryParams) ([]model.Guest, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.ListOrderedBy")
	defer scope.End()

	if params.SortBy != "" && !r.IsSortable(params.SortBy) {
		err := failure.BadRequestFromString(fmt.Sprintf("guests cannot be sorted by %q", params.SortBy))
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"guest.sort_by":  params.SortBy,
		"guest.sort_dir": params.SortDir,
	})

	guests, err := r.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	return guests, nil
}
