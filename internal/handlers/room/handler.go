package room

import (
	"fmt"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"hotel/transport/http/view"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Room
	view    view.Renderer
	otel    otel.Otel
}

func New(service service.Room, view view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		view:    view,
		otel:    otel,
	}
}

// Pages mounts the server-rendered room listing.
func (handler *Handler) Pages(router chi.Router) {
	router.Get("/rooms/available", handler.AvailableRoomsPage)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// AvailableRoomsPage renders every room open for booking, ordered by id.
func (handler *Handler) AvailableRoomsPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableRoomsPage")
	defer scope.End()

	rooms, err := handler.service.ListAvailable(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to list available rooms")

		handler.view.RenderError(w, err)

		return
	}

	scope.SetAttribute("rooms.count", len(rooms.Rooms))

	if err = handler.view.Render(w, http.StatusOK, view.PageRooms, map[string]any{view.KeyRooms: rooms.Rooms}); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to render rooms page")

		handler.view.RenderError(w, err)
	}
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Register a room in the inventory. Availability defaults to true.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms [post]
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Warn().Err(err).Msg("invalid create room request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	scope.AddEvent("room created")

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms lists rooms by availability.
// @Summary List rooms
// @Description List rooms ordered by id. Without the available parameter only available rooms are returned.
// @Tags Room
// @Produce json
// @Param available query boolean false "Availability filter" default(true)
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	available := true

	if raw := r.URL.Query().Get(constant.RequestParamAvailable); raw != "" {
		parsed := shared.ConvertStringToBool(raw)
		if parsed == nil {
			err := failure.BadRequestFromString(fmt.Sprintf("%s must be true or false", constant.RequestParamAvailable))
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}

		available = *parsed
	}

	rooms, err := handler.service.List(ctx, available)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path integer true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil || id <= 0 {
		err = failure.BadRequestFromString("room id must be a positive integer")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}
