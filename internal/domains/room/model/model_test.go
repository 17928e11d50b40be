package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel/internal/domains/room/model"
)

func TestRoomType(t *testing.T) {
	tests := []struct {
		roomType model.RoomType
		valid    bool
		label    string
	}{
		{roomType: model.RoomTypeSingle, valid: true, label: "Single"},
		{roomType: model.RoomTypeDouble, valid: true, label: "Double"},
		{roomType: model.RoomTypeSuite, valid: true, label: "Suite"},
		{roomType: "PENTHOUSE", valid: false, label: "PENTHOUSE"},
		{roomType: "", valid: false, label: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.roomType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.roomType.Valid())
			assert.Equal(t, tt.label, tt.roomType.Label())
		})
	}

	assert.Equal(t, []model.RoomType{model.RoomTypeSingle, model.RoomTypeDouble, model.RoomTypeSuite}, model.RoomTypes())
}
