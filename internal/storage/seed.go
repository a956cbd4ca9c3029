package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"nightOutAPI/internal/types/club"
	"nightOutAPI/internal/types/event"
	"nightOutAPI/internal/types/review"
	"nightOutAPI/internal/types/user"
)

// NewSeededMemStorage builds the in-memory store and loads the sample
// data set the app ships with: four clubs, four events, four users and
// three reviews on the first club.
func NewSeededMemStorage() *MemStorage {
	s := NewMemStorage()
	if err := Seed(context.Background(), s); err != nil {
		// Seeding only fails on programmer error in the fixtures.
		log.Fatalf("Failed to seed storage: %v", err)
	}
	return s
}

// Seed loads the fixture data into any Storage backing.
func Seed(ctx context.Context, s Storage) error {
	clubs := []club.InsertClub{
		{
			Name:        "Pulse Nightclub",
			Description: "The hottest dance floors with world-class DJs every weekend. The perfect place to lose yourself in music.",
			Location:    "123 Nightlife Ave, Downtown",
			Distance:    5.2,
			PriceRange:  "$$$",
			Rating:      4.5,
			ReviewCount: 128,
			Images:      []string{"https://images.unsplash.com/photo-1566737236500-c8ac43014a67?ixlib=rb-4.0.3&auto=format&fit=crop&w=1950&q=80"},
			Category:    []string{"Nightclub", "Dance", "VIP"},
			Features:    []string{"Craft Cocktails", "DJ Nights", "VIP Areas", "Smoking Terrace", "Valet Parking", "Table Service"},
			OpenHours:   "10 PM - 4 AM",
			MusicTypes:  []string{"EDM", "Hip Hop"},
			IsFeatured:  true,
		},
		{
			Name:        "Skyline Lounge",
			Description: "Rooftop views with craft cocktails and DJ sets. Known for its exclusive VIP sections.",
			Location:    "Downtown, 5.2 miles away",
			Distance:    5.2,
			PriceRange:  "$$",
			Rating:      4.8,
			ReviewCount: 96,
			Images:      []string{"https://images.unsplash.com/photo-1566737236500-c8ac43014a67?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
			Category:    []string{"Lounge", "Rooftop", "Cocktail Bar"},
			Features:    []string{"Rooftop View", "Craft Cocktails", "DJ Sets", "VIP Sections"},
			OpenHours:   "8 PM - 2 AM",
			MusicTypes:  []string{"House", "Lounge", "Top 40"},
		},
		{
			Name:        "Velvet Underground",
			Description: "Industrial-chic space with underground electronic music and immersive light shows.",
			Location:    "Arts District, 3.7 miles away",
			Distance:    3.7,
			PriceRange:  "$$$",
			Rating:      4.7,
			ReviewCount: 112,
			Images:      []string{"https://images.unsplash.com/photo-1556035511-3168381ea4d4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
			Category:    []string{"Underground", "Electronic", "Alternative"},
			Features:    []string{"Light Shows", "Underground DJs", "Art Installations", "Industrial Space"},
			OpenHours:   "11 PM - 6 AM",
			MusicTypes:  []string{"Techno", "House", "Experimental"},
		},
		{
			Name:        "Rhythm & Blues",
			Description: "Live music venue with jazz and blues performers. Authentic speakeasy atmosphere.",
			Location:    "Riverside, 6.3 miles away",
			Distance:    6.3,
			PriceRange:  "$$",
			Rating:      4.5,
			ReviewCount: 76,
			Images:      []string{"https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
			Category:    []string{"Live Music", "Jazz", "Blues", "Speakeasy"},
			Features:    []string{"Live Performances", "Craft Cocktails", "Intimate Setting", "Historical Building"},
			OpenHours:   "7 PM - 2 AM",
			MusicTypes:  []string{"Jazz", "Blues", "Soul"},
		},
	}

	for i := range clubs {
		if _, err := s.CreateClub(ctx, &clubs[i]); err != nil {
			return fmt.Errorf("seed club %q: %w", clubs[i].Name, err)
		}
	}

	now := time.Now()
	events := []event.InsertEvent{
		{
			Name:        "Summer Blast Party",
			Description: "The season's biggest rooftop party with open bar for the first hour. Featuring DJ Maxwell.",
			Date:        "July 10",
			Time:        "10 PM - 5 AM",
			StartsAt:    now.AddDate(0, 0, 7),
			Location:    "Skyline Rooftop, 789 Highrise Blvd",
			VenueID:     2,
			Image:       "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?auto=format&fit=crop&w=1950&q=80",
			Price:       30,
			TicketInfo:  "General Admission",
			Category:    "Hot Event",
			Featured:    true,
			Artists: []event.Artist{
				{Name: "DJ Maxwell", Role: "Headliner", Time: "1 AM - 3 AM", Image: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&q=80"},
				{Name: "DJ Luna", Role: "Opening Set", Time: "10 PM - 1 AM", Image: "https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&q=80"},
				{Name: "DJ Rhythm", Role: "Closing Set", Time: "3 AM - 5 AM", Image: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&q=80"},
			},
			DressCode: "Upscale Summer Chic: Stylish summer attire required. No athletic wear, flip-flops, or excessively casual clothing. Dress to impress!",
		},
		{
			Name:        "Neon Nights: Glow Party",
			Description: "The ultimate UV party with neon paint, black lights, and the city's top EDM DJs.",
			Date:        "July 15",
			Time:        "10 PM - 3 AM",
			StartsAt:    now.AddDate(0, 0, 12),
			Location:    "Pulse Nightclub",
			VenueID:     1,
			Image:       "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Price:       25,
			TicketInfo:  "early bird",
			Category:    "This Weekend",
			Featured:    true,
			DressCode:   "Neon and white clothing encouraged for the UV effect. Comfortable shoes recommended.",
		},
		{
			Name:        "Throwback Thursday: 90s Hits",
			Description: "Relive the golden age of pop with 90s hits, themed cocktails, and nostalgic vibes.",
			Date:        "July 13",
			Time:        "9 PM - 2 AM",
			StartsAt:    now.AddDate(0, 0, 10),
			Location:    "Retro Lounge",
			VenueID:     4,
			Image:       "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Price:       15,
			TicketInfo:  "cover",
			Category:    "This Week",
			DressCode:   "90s inspired outfits encouraged but not required. Bring your nostalgia!",
		},
		{
			Name:        "Rooftop Summer Series",
			Description: "Open-air lounge party with craft cocktails, city views, and tropical house music.",
			Date:        "July 21",
			Time:        "8 PM - 1 AM",
			StartsAt:    now.AddDate(0, 0, 18),
			Location:    "Skyline Lounge",
			VenueID:     2,
			Image:       "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
			Price:       30,
			TicketInfo:  "w/ 1 drink",
			Category:    "Next Week",
			DressCode:   "Smart casual. No athletic wear or flip flops.",
		},
	}

	for i := range events {
		if _, err := s.CreateEvent(ctx, &events[i]); err != nil {
			return fmt.Errorf("seed event %q: %w", events[i].Name, err)
		}
	}

	// One shared hash keeps seeding fast; bcrypt per user would add
	// noticeable startup cost for identical fixture passwords.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed password hash: %w", err)
	}

	users := []user.InsertUser{
		{
			Username:         "sarah_89",
			PasswordHash:     string(hash),
			Email:            "sarah@example.com",
			FullName:         "Sarah Johnson",
			Age:              27,
			Gender:           "female",
			ProfileImage:     "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&q=80",
			DrinkPreferences: []string{"Cocktails", "Wine"},
			MusicTaste:       []string{"EDM", "Pop"},
			VibePref:         "Energetic dance clubs",
		},
		{
			Username:         "mike_31",
			PasswordHash:     string(hash),
			Email:            "mike@example.com",
			FullName:         "Mike Thompson",
			Age:              31,
			Gender:           "male",
			ProfileImage:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&q=80",
			DrinkPreferences: []string{"Beer", "Shots"},
			MusicTaste:       []string{"Hip Hop", "R&B"},
			VibePref:         "Upscale venues",
		},
		{
			Username:         "alex_25",
			PasswordHash:     string(hash),
			Email:            "alex@example.com",
			FullName:         "Alex Chen",
			Age:              25,
			Gender:           "non-binary",
			ProfileImage:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&q=80",
			DrinkPreferences: []string{"Cocktails", "Wine"},
			MusicTaste:       []string{"Alternative", "Rock"},
			VibePref:         "Live music spots",
		},
		{
			Username:         "david_29",
			PasswordHash:     string(hash),
			Email:            "david@example.com",
			FullName:         "David Wilson",
			Age:              29,
			Gender:           "male",
			ProfileImage:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&q=80",
			DrinkPreferences: []string{"Beer", "Whiskey"},
			MusicTaste:       []string{"Jazz", "Blues"},
			VibePref:         "Relaxed lounges",
		},
	}

	for i := range users {
		if _, err := s.CreateUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed user %q: %w", users[i].Username, err)
		}
	}

	reviews := []review.InsertReview{
		{UserID: 1, ClubID: 1, Rating: 5, Comment: "Amazing vibes and great music selection! The VIP service was worth every penny. Will definitely be back."},
		{UserID: 2, ClubID: 1, Rating: 4, Comment: "Great DJs and dance floors. Drinks are a bit pricey but strong. The lines can get long after midnight."},
		{UserID: 3, ClubID: 1, Rating: 3, Comment: "Sound system is incredible, but it gets very crowded on weekends. Weekday nights are better if you want space to dance."},
	}

	for i := range reviews {
		if _, err := s.CreateReview(ctx, &reviews[i]); err != nil {
			return fmt.Errorf("seed review for club %d: %w", reviews[i].ClubID, err)
		}
	}

	return nil
}
