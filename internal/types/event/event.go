package event

import "time"

// Artist is a performer slot on an event lineup.
type Artist struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Time  string `json:"time,omitempty"`
	Image string `json:"image,omitempty"`
}

// Event is a scheduled happening, optionally tied to a club via VenueID.
// Date and Time are the display strings shown on cards; StartsAt is the
// real timestamp used for chronological filtering.
type Event struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	StartsAt        time.Time `json:"startsAt"`
	Location        string    `json:"location"`
	VenueID         int       `json:"venueId"`
	Image           string    `json:"image,omitempty"`
	Price           float64   `json:"price"`
	TicketInfo      string    `json:"ticketInfo,omitempty"`
	Category        string    `json:"category,omitempty"`
	Featured        bool      `json:"featured"`
	Artists         []Artist  `json:"artists"`
	AttendeesCount  int       `json:"attendeesCount"`
	InterestedCount int       `json:"interestedCount"`
	DressCode       string    `json:"dressCode,omitempty"`
}

// UpdateEvent carries partial edits to an event record. Nil means
// "leave the field alone".
type UpdateEvent struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *string    `json:"date,omitempty"`
	Time        *string    `json:"time,omitempty"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	Location    *string    `json:"location,omitempty"`
	VenueID     *int       `json:"venueId,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	TicketInfo  *string    `json:"ticketInfo,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Featured    *bool      `json:"featured,omitempty"`
	Artists     *[]Artist  `json:"artists,omitempty"`
	DressCode   *string    `json:"dressCode,omitempty"`
}

type InsertEvent struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
	StartsAt    time.Time `json:"startsAt"`
	Location    string    `json:"location" validate:"required"`
	VenueID     int       `json:"venueId"`
	Image       string    `json:"image"`
	Price       float64   `json:"price" validate:"gte=0"`
	TicketInfo  string    `json:"ticketInfo"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Artists     []Artist  `json:"artists"`
	DressCode   string    `json:"dressCode"`
}
