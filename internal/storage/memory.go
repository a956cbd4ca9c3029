package storage

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"nightOutAPI/internal/types/club"
	"nightOutAPI/internal/types/event"
	"nightOutAPI/internal/types/review"
	"nightOutAPI/internal/types/user"
)

// MemStorage is the map-backed in-memory store. All state lives behind
// a single RWMutex; multi-step mutations (review insert plus club
// aggregate recompute) run under one write lock, so readers never see
// a half-applied update.
type MemStorage struct {
	mu sync.RWMutex

	users   map[int]*user.User
	clubs   map[int]*club.Club
	events  map[int]*event.Event
	reviews map[int]*review.Review

	userID   int
	clubID   int
	eventID  int
	reviewID int
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:    make(map[int]*user.User),
		clubs:    make(map[int]*club.Club),
		events:   make(map[int]*event.Event),
		reviews:  make(map[int]*review.Review),
		userID:   1,
		clubID:   1,
		eventID:  1,
		reviewID: 1,
	}
}

// User operations

func (s *MemStorage) GetUser(ctx context.Context, id int) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := 1; id < s.userID; id++ {
		u, ok := s.users[id]
		if ok && strings.EqualFold(u.Username, username) {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := 1; id < s.userID; id++ {
		u, ok := s.users[id]
		if ok && strings.EqualFold(u.Email, email) {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) GetUsers(ctx context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.users))
	for id := 1; id < s.userID; id++ {
		if u, ok := s.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *MemStorage) CreateUser(ctx context.Context, ins *user.InsertUser) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.userID
	s.userID++

	u := &user.User{
		ID:               id,
		Username:         ins.Username,
		PasswordHash:     ins.PasswordHash,
		Email:            ins.Email,
		FullName:         ins.FullName,
		Age:              ins.Age,
		Gender:           ins.Gender,
		ProfileImage:     ins.ProfileImage,
		DrinkPreferences: ins.DrinkPreferences,
		MusicTaste:       ins.MusicTaste,
		VibePref:         ins.VibePref,
		IsActive:         true,
	}
	s.users[id] = u

	out := *u
	return &out, nil
}

func (s *MemStorage) UpdateUser(ctx context.Context, id int, upd *user.UpdateProfileRequest) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Age != nil {
		u.Age = *upd.Age
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.ProfileImage != nil {
		u.ProfileImage = *upd.ProfileImage
	}
	if upd.DrinkPreferences != nil {
		u.DrinkPreferences = *upd.DrinkPreferences
	}
	if upd.MusicTaste != nil {
		u.MusicTaste = *upd.MusicTaste
	}
	if upd.VibePref != nil {
		u.VibePref = *upd.VibePref
	}

	out := *u
	return &out, nil
}

// Club operations

func (s *MemStorage) GetClubs(ctx context.Context) ([]club.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]club.Club, 0, len(s.clubs))
	for id := 1; id < s.clubID; id++ {
		if c, ok := s.clubs[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *MemStorage) GetClub(ctx context.Context, id int) (*club.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clubs[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *c
	return &out, nil
}

func (s *MemStorage) CreateClub(ctx context.Context, ins *club.InsertClub) (*club.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.clubID
	s.clubID++

	c := &club.Club{
		ID:          id,
		Name:        ins.Name,
		Description: ins.Description,
		Location:    ins.Location,
		Distance:    ins.Distance,
		PriceRange:  ins.PriceRange,
		Rating:      ins.Rating,
		ReviewCount: ins.ReviewCount,
		Images:      ins.Images,
		Category:    ins.Category,
		Features:    ins.Features,
		OpenHours:   ins.OpenHours,
		MusicTypes:  ins.MusicTypes,
		IsFeatured:  ins.IsFeatured,
	}
	s.clubs[id] = c

	out := *c
	return &out, nil
}

func (s *MemStorage) UpdateClub(ctx context.Context, id int, upd *club.UpdateClub) (*club.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clubs[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Location != nil {
		c.Location = *upd.Location
	}
	if upd.Distance != nil {
		c.Distance = *upd.Distance
	}
	if upd.PriceRange != nil {
		c.PriceRange = *upd.PriceRange
	}
	if upd.Images != nil {
		c.Images = *upd.Images
	}
	if upd.Category != nil {
		c.Category = *upd.Category
	}
	if upd.Features != nil {
		c.Features = *upd.Features
	}
	if upd.OpenHours != nil {
		c.OpenHours = *upd.OpenHours
	}
	if upd.MusicTypes != nil {
		c.MusicTypes = *upd.MusicTypes
	}
	if upd.IsFeatured != nil {
		c.IsFeatured = *upd.IsFeatured
	}

	out := *c
	return &out, nil
}

func (s *MemStorage) GetFeaturedClubs(ctx context.Context, limit int) ([]club.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []club.Club{}
	for id := 1; id < s.clubID; id++ {
		c, ok := s.clubs[id]
		if !ok || !c.IsFeatured {
			continue
		}
		out = append(out, *c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemStorage) SearchClubs(ctx context.Context, query string) ([]club.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)

	out := []club.Club{}
	for id := 1; id < s.clubID; id++ {
		c, ok := s.clubs[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			strings.Contains(strings.ToLower(c.Location), q) ||
			containsFold(c.Category, q) ||
			containsFold(c.MusicTypes, q) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func containsFold(values []string, loweredQuery string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), loweredQuery) {
			return true
		}
	}
	return false
}

// Event operations

func (s *MemStorage) GetEvents(ctx context.Context) ([]event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]event.Event, 0, len(s.events))
	for id := 1; id < s.eventID; id++ {
		if e, ok := s.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *MemStorage) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *e
	return &out, nil
}

func (s *MemStorage) CreateEvent(ctx context.Context, ins *event.InsertEvent) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.eventID
	s.eventID++

	artists := ins.Artists
	if artists == nil {
		artists = []event.Artist{}
	}

	e := &event.Event{
		ID:              id,
		Name:            ins.Name,
		Description:     ins.Description,
		Date:            ins.Date,
		Time:            ins.Time,
		StartsAt:        ins.StartsAt,
		Location:        ins.Location,
		VenueID:         ins.VenueID,
		Image:           ins.Image,
		Price:           ins.Price,
		TicketInfo:      ins.TicketInfo,
		Category:        ins.Category,
		Featured:        ins.Featured,
		Artists:         artists,
		AttendeesCount:  0,
		InterestedCount: 0,
		DressCode:       ins.DressCode,
	}
	s.events[id] = e

	out := *e
	return &out, nil
}

func (s *MemStorage) UpdateEvent(ctx context.Context, id int, upd *event.UpdateEvent) (*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Time != nil {
		e.Time = *upd.Time
	}
	if upd.StartsAt != nil {
		e.StartsAt = *upd.StartsAt
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.VenueID != nil {
		e.VenueID = *upd.VenueID
	}
	if upd.Image != nil {
		e.Image = *upd.Image
	}
	if upd.Price != nil {
		e.Price = *upd.Price
	}
	if upd.TicketInfo != nil {
		e.TicketInfo = *upd.TicketInfo
	}
	if upd.Featured != nil {
		e.Featured = *upd.Featured
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Artists != nil {
		e.Artists = *upd.Artists
	}
	if upd.DressCode != nil {
		e.DressCode = *upd.DressCode
	}

	out := *e
	return &out, nil
}

func (s *MemStorage) GetFeaturedEvents(ctx context.Context, limit int) ([]event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []event.Event{}
	for id := 1; id < s.eventID; id++ {
		e, ok := s.events[id]
		if !ok || !e.Featured {
			continue
		}
		out = append(out, *e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemStorage) GetUpcomingEvents(ctx context.Context, now time.Time, limit int) ([]event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []event.Event{}
	for id := 1; id < s.eventID; id++ {
		e, ok := s.events[id]
		if !ok || e.StartsAt.Before(now) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemStorage) GetEventsByClub(ctx context.Context, clubID int) ([]event.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []event.Event{}
	for id := 1; id < s.eventID; id++ {
		if e, ok := s.events[id]; ok && e.VenueID == clubID {
			out = append(out, *e)
		}
	}
	return out, nil
}

// Review operations

func (s *MemStorage) GetReviews(ctx context.Context, clubID int) ([]review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []review.Review{}
	for id := 1; id < s.reviewID; id++ {
		if r, ok := s.reviews[id]; ok && r.ClubID == clubID {
			out = append(out, *r)
		}
	}
	return out, nil
}

// CreateReview stores the review and recomputes the parent club's
// rating (mean of all its ratings, one decimal) and review count. Both
// steps happen under the write lock, so concurrent inserts against the
// same club can't compute from a stale review list.
func (s *MemStorage) CreateReview(ctx context.Context, ins *review.InsertReview) (*review.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.reviewID
	s.reviewID++

	r := &review.Review{
		ID:      id,
		UserID:  ins.UserID,
		ClubID:  ins.ClubID,
		Rating:  ins.Rating,
		Comment: ins.Comment,
		Date:    time.Now(),
	}
	s.reviews[id] = r

	if c, ok := s.clubs[ins.ClubID]; ok {
		total, count := 0, 0
		for rid := 1; rid < s.reviewID; rid++ {
			if rv, ok := s.reviews[rid]; ok && rv.ClubID == ins.ClubID {
				total += rv.Rating
				count++
			}
		}
		c.Rating = math.Round(float64(total)/float64(count)*10) / 10
		c.ReviewCount = count
	}

	out := *r
	return &out, nil
}
