package services

import (
	"context"
	"strings"

	"nightOutAPI/internal/storage"
	"nightOutAPI/internal/types/partner"
)

// Synthetic attributes rotated across candidates until real location
// and availability data exist on user profiles.
var (
	partnerDistances      = []float64{2.1, 3.5, 0.8, 5.2, 8.7, 1.2, 4.3}
	partnerAvailabilities = []string{"Tonight", "Weekends", "Weekdays"}
)

// nearbyThreshold is the distance (miles) under which a candidate
// counts as nearby.
const nearbyThreshold = 5.0

type PartnerService struct {
	store storage.Storage
}

func NewPartnerService(store storage.Storage) *PartnerService {
	return &PartnerService{store: store}
}

// GetPartners builds the drinking-buddy candidate list from active
// user accounts and applies the match criteria. Empty criteria return
// every candidate.
func (s *PartnerService) GetPartners(ctx context.Context, criteria partner.MatchCriteria) ([]partner.Partner, error) {
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	partners := []partner.Partner{}
	for i, u := range users {
		if !u.IsActive {
			continue
		}
		p := partner.Partner{
			ID:           u.ID,
			Username:     u.Username,
			ProfileImage: u.ProfileImage,
			Gender:       u.Gender,
			Age:          u.Age,
			Preferences: partner.Preferences{
				DrinkType:      u.DrinkPreferences,
				MusicTaste:     u.MusicTaste,
				FavoriteVenues: []string{},
			},
			Distance:     partnerDistances[i%len(partnerDistances)],
			Availability: partnerAvailabilities[i%len(partnerAvailabilities)],
			Bio:          u.VibePref,
		}
		if Matches(p, criteria) {
			partners = append(partners, p)
		}
	}
	return partners, nil
}

// Matches is the match predicate: a conjunction of gender equality,
// inclusive age range, nearby distance, drink-preference overlap and
// music-taste membership. Each condition only applies when its
// criterion is set.
func Matches(p partner.Partner, c partner.MatchCriteria) bool {
	if c.Gender != "" && !strings.EqualFold(p.Gender, c.Gender) {
		return false
	}
	if c.MinAge > 0 && p.Age < c.MinAge {
		return false
	}
	if c.MaxAge > 0 && p.Age > c.MaxAge {
		return false
	}
	if c.NearbyOnly && p.Distance >= nearbyThreshold {
		return false
	}
	if len(c.DrinkTypes) > 0 && !overlaps(p.Preferences.DrinkType, c.DrinkTypes) {
		return false
	}
	if c.Music != "" && !contains(p.Preferences.MusicTaste, c.Music) {
		return false
	}
	return true
}

func overlaps(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
