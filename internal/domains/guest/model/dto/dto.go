package dto

import (
	"fmt"

	"hotel/internal/domains/guest/model"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

type CreateGuestRequest struct {
	FirstName    string `json:"first_name"     validate:"required,max=100"`
	LastName     string `json:"last_name"      validate:"required,max=100"`
	Email        string `json:"email"          validate:"required,email,max=254"`
	Phone        string `json:"phone"          validate:"required,max=15"`
	CheckInDate  string `json:"check_in_date"  validate:"required,date"  example:"2024-03-15"`
	CheckOutDate string `json:"check_out_date" validate:"required,date"  example:"2024-03-18"`
}

func (c *CreateGuestRequest) ToModel() (model.Guest, error) {
	checkIn, err := timezone.ParseDate(c.CheckInDate)
	if err != nil {
		return model.Guest{}, failure.BadRequest(fmt.Errorf("check_in_date: %w", err)) //nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(c.CheckOutDate)
	if err != nil {
		return model.Guest{}, failure.BadRequest(fmt.Errorf("check_out_date: %w", err)) //nolint:wrapcheck
	}

	return model.Guest{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}

type GuestResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CheckInDate  string `json:"check_in_date"  example:"2024-03-15"`
	CheckOutDate string `json:"check_out_date" example:"2024-03-18"`
}

func (r *GuestResponse) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.FirstName = guest.FirstName
	r.LastName = guest.LastName
	r.Email = guest.Email
	r.Phone = guest.Phone
	r.CheckInDate = timezone.FormatDate(guest.CheckInDate)
	r.CheckOutDate = timezone.FormatDate(guest.CheckOutDate)
}

type GetGuestsResponse struct {
	Guests []GuestResponse `json:"guests"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest) {
	g.Guests = make([]GuestResponse, 0, len(models))

	for _, m := range models {
		var res GuestResponse

		res.FromModel(m)
		g.Guests = append(g.Guests, res)
	}
}

type GuestCreatedEvent struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

func (e *GuestCreatedEvent) FromModel(guest model.Guest) {
	e.ID = guest.ID
	e.Email = guest.Email
	e.CheckInDate = timezone.FormatDate(guest.CheckInDate)
	e.CheckOutDate = timezone.FormatDate(guest.CheckOutDate)
}
