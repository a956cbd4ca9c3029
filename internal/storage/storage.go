package storage

import (
	"context"
	"errors"
	"time"

	"nightOutAPI/internal/types/club"
	"nightOutAPI/internal/types/event"
	"nightOutAPI/internal/types/review"
	"nightOutAPI/internal/types/user"
)

// ErrNotFound is returned when a lookup by id (or username/email)
// matches nothing. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")

// Storage is the repository surface the services run against. Two
// backings exist: the seeded in-memory store (default, and what the
// tests use) and the pgx-backed Postgres store.
//
// A limit of 0 means "no limit" on the filtered listings.
type Storage interface {
	GetUser(ctx context.Context, id int) (*user.User, error)
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUsers(ctx context.Context) ([]user.User, error)
	CreateUser(ctx context.Context, ins *user.InsertUser) (*user.User, error)
	UpdateUser(ctx context.Context, id int, upd *user.UpdateProfileRequest) (*user.User, error)

	GetClubs(ctx context.Context) ([]club.Club, error)
	GetClub(ctx context.Context, id int) (*club.Club, error)
	CreateClub(ctx context.Context, ins *club.InsertClub) (*club.Club, error)
	UpdateClub(ctx context.Context, id int, upd *club.UpdateClub) (*club.Club, error)
	GetFeaturedClubs(ctx context.Context, limit int) ([]club.Club, error)
	SearchClubs(ctx context.Context, query string) ([]club.Club, error)

	GetEvents(ctx context.Context) ([]event.Event, error)
	GetEvent(ctx context.Context, id int) (*event.Event, error)
	CreateEvent(ctx context.Context, ins *event.InsertEvent) (*event.Event, error)
	UpdateEvent(ctx context.Context, id int, upd *event.UpdateEvent) (*event.Event, error)
	GetFeaturedEvents(ctx context.Context, limit int) ([]event.Event, error)
	GetUpcomingEvents(ctx context.Context, now time.Time, limit int) ([]event.Event, error)
	GetEventsByClub(ctx context.Context, clubID int) ([]event.Event, error)

	GetReviews(ctx context.Context, clubID int) ([]review.Review, error)
	CreateReview(ctx context.Context, ins *review.InsertReview) (*review.Review, error)
}
