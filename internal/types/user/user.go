package user

// User is an account record. PasswordHash never leaves the server; the
// json tag keeps it out of every response body.
type User struct {
	ID               int      `json:"id"`
	Username         string   `json:"username"`
	PasswordHash     string   `json:"-"`
	Email            string   `json:"email"`
	FullName         string   `json:"fullName,omitempty"`
	Age              int      `json:"age,omitempty"`
	Gender           string   `json:"gender,omitempty"`
	ProfileImage     string   `json:"profileImage,omitempty"`
	DrinkPreferences []string `json:"drinkPreferences"`
	MusicTaste       []string `json:"musicTaste"`
	VibePref         string   `json:"vibePref,omitempty"`
	IsActive         bool     `json:"isActive"`
}

// InsertUser is the storage-level insert shape. Password is already
// hashed by the time it reaches storage.
type InsertUser struct {
	Username         string
	PasswordHash     string
	Email            string
	FullName         string
	Age              int
	Gender           string
	ProfileImage     string
	DrinkPreferences []string
	MusicTaste       []string
	VibePref         string
}

type RegisterRequest struct {
	Username         string   `json:"username" validate:"required,min=3,max=30"`
	Password         string   `json:"password" validate:"required,min=6"`
	Email            string   `json:"email" validate:"required,email"`
	FullName         string   `json:"fullName"`
	Age              int      `json:"age" validate:"omitempty,gte=18,lte=120"`
	Gender           string   `json:"gender"`
	ProfileImage     string   `json:"profileImage"`
	DrinkPreferences []string `json:"drinkPreferences"`
	MusicTaste       []string `json:"musicTaste"`
	VibePref         string   `json:"vibePref"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries partial profile edits. Nil means
// "leave the field alone".
type UpdateProfileRequest struct {
	FullName         *string   `json:"fullName,omitempty"`
	Age              *int      `json:"age,omitempty" validate:"omitempty,gte=18,lte=120"`
	Gender           *string   `json:"gender,omitempty"`
	ProfileImage     *string   `json:"profileImage,omitempty"`
	DrinkPreferences *[]string `json:"drinkPreferences,omitempty"`
	MusicTaste       *[]string `json:"musicTaste,omitempty"`
	VibePref         *string   `json:"vibePref,omitempty"`
}

// AuthResponse is what register and login hand back: the sanitized user
// plus a signed session token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
