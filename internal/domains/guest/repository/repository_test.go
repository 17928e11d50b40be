package repository_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/guest/repository"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func TestGuestRepository_ListOrderedByRejectsUnknownColumn(t *testing.T) {
	otel := mocks.NewOtel()
	repo := repository.New(nil, otel)

	guests, err := repo.ListOrderedBy(context.Background(), gDto.QueryParams{SortBy: "nickname", SortDir: gDto.SortDirAsc})

	assert.Nil(t, guests)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.EqualError(t, err, `guests cannot be sorted by "nickname"`)
	assert.Len(t, otel.Traced, 1)
}
