package review

import "time"

// Review is a user's rating of a club. Inserting one recomputes the
// parent club's aggregate rating and review count.
type Review struct {
	ID      int       `json:"id"`
	UserID  int       `json:"userId"`
	ClubID  int       `json:"clubId"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment,omitempty"`
	Date    time.Time `json:"date"`
}

type InsertReview struct {
	UserID  int    `json:"userId" validate:"required,gt=0"`
	ClubID  int    `json:"clubId" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
