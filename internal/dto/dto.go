// Package dto holds the transfer objects exchanged with API clients.
// They mirror the domain entities field for field, but carry ids as
// strings for wire transport. The *Input variants omit the id and are
// used for creation requests, where the store assigns it.
package dto

import "time"

type Flight struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        time.Time `json:"date"`
}

type FlightInput struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        time.Time `json:"date"`
}

type Passenger struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
}

type PassengerInput struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
}

type Reservation struct {
	ID        string    `json:"id"`
	Seat      string    `json:"seat"`
	Flight    Flight    `json:"flight"`
	Passenger Passenger `json:"passenger"`
}
