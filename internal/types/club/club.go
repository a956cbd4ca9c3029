package club

// Club is a venue record (nightclub, lounge, bar...). Rating and
// ReviewCount are maintained by the storage layer whenever a review
// is inserted for the club.
type Club struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Distance    float64  `json:"distance"`
	PriceRange  string   `json:"priceRange"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Images      []string `json:"images"`
	Category    []string `json:"category"`
	Features    []string `json:"features"`
	OpenHours   string   `json:"openHours"`
	MusicTypes  []string `json:"musicTypes"`
	IsFeatured  bool     `json:"isFeatured"`
}

// UpdateClub carries partial edits to a club record. Nil means "leave
// the field alone". Rating and ReviewCount are deliberately absent;
// only review inserts may touch them.
type UpdateClub struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Distance    *float64  `json:"distance,omitempty" validate:"omitempty,gte=0"`
	PriceRange  *string   `json:"priceRange,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Category    *[]string `json:"category,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	OpenHours   *string   `json:"openHours,omitempty"`
	MusicTypes  *[]string `json:"musicTypes,omitempty"`
	IsFeatured  *bool     `json:"isFeatured,omitempty"`
}

type InsertClub struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Distance    float64  `json:"distance" validate:"gte=0"`
	PriceRange  string   `json:"priceRange"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int      `json:"reviewCount" validate:"gte=0"`
	Images      []string `json:"images"`
	Category    []string `json:"category"`
	Features    []string `json:"features"`
	OpenHours   string   `json:"openHours"`
	MusicTypes  []string `json:"musicTypes"`
	IsFeatured  bool     `json:"isFeatured"`
}
