package dto

import (
	"hotel/internal/domains/room/model"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber    string           `json:"room_number"     validate:"required,max=10"`
	RoomType      string           `json:"room_type"       validate:"required,oneof=SINGLE DOUBLE SUITE"`
	PricePerNight *decimal.Decimal `json:"price_per_night" validate:"required,decimal=6.2"`
	IsAvailable   *bool            `json:"is_available"    validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	room := model.Room{
		RoomNumber:  c.RoomNumber,
		RoomType:    model.RoomType(c.RoomType),
		IsAvailable: available,
	}

	if c.PricePerNight != nil {
		room.PricePerNight = *c.PricePerNight
	}

	return room
}

type RoomResponse struct {
	ID            int64           `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	RoomTypeLabel string          `json:"room_type_label"`
	PricePerNight decimal.Decimal `json:"price_per_night" swaggertype:"string" example:"89.99"`
	IsAvailable   bool            `json:"is_available"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.RoomNumber = room.RoomNumber
	r.RoomType = string(room.RoomType)
	r.RoomTypeLabel = room.RoomType.Label()
	r.PricePerNight = room.PricePerNight
	r.IsAvailable = room.IsAvailable
}

// Price renders the nightly price with exactly two fractional digits.
func (r RoomResponse) Price() string {
	return r.PricePerNight.StringFixed(model.PriceScale)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (g *GetRoomsResponse) FromModels(models []model.Room) {
	g.Rooms = make([]RoomResponse, 0, len(models))

	for _, m := range models {
		var res RoomResponse

		res.FromModel(m)
		g.Rooms = append(g.Rooms, res)
	}
}

type RoomCreatedEvent struct {
	ID            int64  `json:"id"`
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type"`
	PricePerNight string `json:"price_per_night"`
	IsAvailable   bool   `json:"is_available"`
}

func (e *RoomCreatedEvent) FromModel(room model.Room) {
	e.ID = room.ID
	e.RoomNumber = room.RoomNumber
	e.RoomType = string(room.RoomType)
	e.PricePerNight = room.PricePerNight.StringFixed(model.PriceScale)
	e.IsAvailable = room.IsAvailable
}
