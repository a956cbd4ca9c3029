package partner

// Partner is the candidate view surfaced for drinking-buddy matching:
// a sanitized slice of a user record plus the attributes the match
// predicate filters on.
type Partner struct {
	ID           int         `json:"id"`
	Username     string      `json:"username"`
	ProfileImage string      `json:"profileImage,omitempty"`
	Gender       string      `json:"gender"`
	Age          int         `json:"age"`
	Preferences  Preferences `json:"preferences"`
	Distance     float64     `json:"distance"`
	Availability string      `json:"availability"`
	Bio          string      `json:"bio,omitempty"`
}

type Preferences struct {
	DrinkType      []string `json:"drinkType"`
	MusicTaste     []string `json:"musicTaste"`
	FavoriteVenues []string `json:"favoriteVenues"`
}

// MatchCriteria is the conjunction of filters a requester can apply.
// Zero values mean "don't filter on this".
type MatchCriteria struct {
	Gender     string
	MinAge     int
	MaxAge     int
	NearbyOnly bool
	DrinkTypes []string
	Music      string
}

// Empty reports whether no filter is set, in which case the full
// candidate list comes back unfiltered.
func (c MatchCriteria) Empty() bool {
	return c.Gender == "" && c.MinAge == 0 && c.MaxAge == 0 &&
		!c.NearbyOnly && len(c.DrinkTypes) == 0 && c.Music == ""
}
