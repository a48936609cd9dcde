package domain

import "time"

// Flight is a scheduled trip between two cities. Date carries the
// calendar day only (midnight UTC); the agency does not track times.
type Flight struct {
	ID          int64     `db:"id"`
	Origin      string    `db:"origin"`
	Destination string    `db:"destination"`
	Date        time.Time `db:"date"`
}
