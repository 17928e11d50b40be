package model

import "github.com/shopspring/decimal"

const (
	TableName  = "room"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldIsAvailable   = "is_available"
)

// Price column shape: NUMERIC(6,2).
const (
	PricePrecision = 6
	PriceScale     = 2
)

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeSuite  RoomType = "SUITE"
)

var roomTypeLabels = map[RoomType]string{
	RoomTypeSingle: "Single",
	RoomTypeDouble: "Double",
	RoomTypeSuite:  "Suite",
}

// RoomTypes lists the accepted room types in display order.
func RoomTypes() []RoomType {
	return []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite}
}

func (t RoomType) Valid() bool {
	_, ok := roomTypeLabels[t]

	return ok
}

// Label is the human-readable name of the room type, or the raw value when unknown.
func (t RoomType) Label() string {
	if label, ok := roomTypeLabels[t]; ok {
		return label
	}

	return string(t)
}

type Room struct {
	ID            int64           `db:"id"`
	RoomNumber    string          `db:"room_number"`
	RoomType      RoomType        `db:"room_type"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	IsAvailable   bool            `db:"is_available"`
}
