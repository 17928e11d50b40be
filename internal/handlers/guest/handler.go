package guest

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"hotel/transport/http/view"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Guest
	view    view.Renderer
	otel    otel.Otel
}

func New(service service.Guest, view view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    view,
		otel:    otel,
	}
}

// Pages mounts the server-rendered guest listing.
func (handler *Handler) Pages(router chi.Router) {
	router.Get("/guests", handler.GuestsPage)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuestByID)
	})
}

// GuestsPage renders every guest, most recent check-in first.
func (handler *Handler) GuestsPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GuestsPage")
	defer scope.End()

	guests, err := handler.service.ListByCheckIn(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to list guests")

		handler.view.RenderError(w, err)

		return
	}

	scope.SetAttribute("guests.count", len(guests.Guests))

	if err = handler.view.Render(w, http.StatusOK, view.PageGuests, map[string]any{view.KeyGuests: guests.Guests}); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to render guests page")

		handler.view.RenderError(w, err)
	}
}

// CreateGuest registers a guest.
// @Summary Register a guest
// @Description Register a guest with stay dates formatted as YYYY-MM-DD.
// @Tags Guest
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "Guest details"
// @Success 201 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/guests [post]
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	var req dto.CreateGuestRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Msg("invalid create guest request")

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("guest registered")

	response.WithJSON(w, http.StatusCreated, guest)
}

// GetGuests lists guests.
// @Summary List guests
// @Description List guests ordered by a guest column, ties broken by id. Defaults to check_in_date DESC.
// @Tags Guest
// @Produce json
// @Param sort_by query string false "Column to order by" Enums(id, first_name, last_name, email, check_in_date, check_out_date)
// @Param sort_dir query string false "Order direction" Enums(ASC, DESC)
// @Success 200 {object} response.Data[dto.GetGuestsResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/guests [get]
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r)

	guests, err := handler.service.List(ctx, params)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuestByID retrieves a guest by its ID.
// @Summary Get a guest by ID
// @Tags Guest
// @Produce json
// @Param id path integer true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/guests/{id} [get]
func (handler *Handler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil || id <= 0 {
		err = failure.BadRequestFromString("guest id must be a positive integer")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}
