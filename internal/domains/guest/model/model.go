package model

import "time"

const (
	TableName  = "guest"
	EntityName = "guest"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
)

// Guest is a registered stay. CheckInDate and CheckOutDate are calendar
// dates; nothing requires the check-out to follow the check-in.
type Guest struct {
	ID           int64     `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
