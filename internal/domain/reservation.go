package domain

// Reservation assigns a seat on a flight to a passenger. The flight and
// passenger are loaded eagerly: a reservation value always carries both
// referenced records in full.
type Reservation struct {
	ID        int64
	Seat      string
	Flight    Flight
	Passenger Passenger
}
