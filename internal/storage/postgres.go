package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nightOutAPI/internal/types/club"
	"nightOutAPI/internal/types/event"
	"nightOutAPI/internal/types/review"
	"nightOutAPI/internal/types/user"
)

// PostgresStorage is the persistent Storage backing. It speaks plain
// SQL through a pgx pool; the in-memory store stays the default for
// local runs and tests.
type PostgresStorage struct {
	db *pgxpool.Pool
}

func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// EnsureSchema creates the tables on first run.
func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			email TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			age INT NOT NULL DEFAULT 0,
			gender TEXT NOT NULL DEFAULT '',
			profile_image TEXT NOT NULL DEFAULT '',
			drink_preferences TEXT[] NOT NULL DEFAULT '{}',
			music_taste TEXT[] NOT NULL DEFAULT '{}',
			vibe_preference TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);
		CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_idx ON users (LOWER(username));
		CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email));

		CREATE TABLE IF NOT EXISTS clubs (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			location TEXT NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			price_range TEXT NOT NULL DEFAULT '',
			rating REAL NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			images TEXT[] NOT NULL DEFAULT '{}',
			category TEXT[] NOT NULL DEFAULT '{}',
			features TEXT[] NOT NULL DEFAULT '{}',
			open_hours TEXT NOT NULL DEFAULT '',
			music_types TEXT[] NOT NULL DEFAULT '{}',
			is_featured BOOLEAN NOT NULL DEFAULT FALSE
		);

		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			starts_at TIMESTAMPTZ NOT NULL,
			location TEXT NOT NULL,
			venue_id INT NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL DEFAULT 0,
			ticket_info TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			artists JSONB NOT NULL DEFAULT '[]',
			attendees_count INT NOT NULL DEFAULT 0,
			interested_count INT NOT NULL DEFAULT 0,
			dress_code TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS events_venue_idx ON events (venue_id);
		CREATE INDEX IF NOT EXISTS events_starts_at_idx ON events (starts_at);

		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			club_id INT NOT NULL,
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS reviews_club_idx ON reviews (club_id);
	`

	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// User operations

const userColumns = `
	id, username, password_hash, email, full_name, age, gender,
	profile_image, drink_preferences, music_taste, vibe_preference, is_active
`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Email,
		&u.FullName,
		&u.Age,
		&u.Gender,
		&u.ProfileImage,
		&u.DrinkPreferences,
		&u.MusicTaste,
		&u.VibePref,
		&u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int) (*user.User, error) {
	query := `SELECT` + userColumns + `FROM users WHERE id = $1`
	return scanUser(s.db.QueryRow(ctx, query, id))
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT` + userColumns + `FROM users WHERE LOWER(username) = LOWER($1)`
	return scanUser(s.db.QueryRow(ctx, query, username))
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT` + userColumns + `FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(s.db.QueryRow(ctx, query, email))
}

func (s *PostgresStorage) GetUsers(ctx context.Context) ([]user.User, error) {
	query := `SELECT` + userColumns + `FROM users ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *PostgresStorage) CreateUser(ctx context.Context, ins *user.InsertUser) (*user.User, error) {
	query := `
		INSERT INTO users (
			username, password_hash, email, full_name, age, gender,
			profile_image, drink_preferences, music_taste, vibe_preference, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
		RETURNING` + userColumns

	return scanUser(s.db.QueryRow(ctx, query,
		ins.Username,
		ins.PasswordHash,
		ins.Email,
		ins.FullName,
		ins.Age,
		ins.Gender,
		ins.ProfileImage,
		textArray(ins.DrinkPreferences),
		textArray(ins.MusicTaste),
		ins.VibePref,
	))
}

func (s *PostgresStorage) UpdateUser(ctx context.Context, id int, upd *user.UpdateProfileRequest) (*user.User, error) {
	query := `
		UPDATE users SET
			full_name = COALESCE($2, full_name),
			age = COALESCE($3, age),
			gender = COALESCE($4, gender),
			profile_image = COALESCE($5, profile_image),
			drink_preferences = COALESCE($6, drink_preferences),
			music_taste = COALESCE($7, music_taste),
			vibe_preference = COALESCE($8, vibe_preference)
		WHERE id = $1
		RETURNING` + userColumns

	return scanUser(s.db.QueryRow(ctx, query,
		id,
		upd.FullName,
		upd.Age,
		upd.Gender,
		upd.ProfileImage,
		upd.DrinkPreferences,
		upd.MusicTaste,
		upd.VibePref,
	))
}

// Club operations

const clubColumns = `
	id, name, description, location, distance, price_range, rating,
	review_count, images, category, features, open_hours, music_types, is_featured
`

func scanClub(row pgx.Row) (*club.Club, error) {
	var c club.Club
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Location,
		&c.Distance,
		&c.PriceRange,
		&c.Rating,
		&c.ReviewCount,
		&c.Images,
		&c.Category,
		&c.Features,
		&c.OpenHours,
		&c.MusicTypes,
		&c.IsFeatured,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan club: %w", err)
	}
	return &c, nil
}

func (s *PostgresStorage) queryClubs(ctx context.Context, query string, args ...any) ([]club.Club, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clubs: %w", err)
	}
	defer rows.Close()

	clubs := []club.Club{}
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

func (s *PostgresStorage) GetClubs(ctx context.Context) ([]club.Club, error) {
	return s.queryClubs(ctx, `SELECT`+clubColumns+`FROM clubs ORDER BY id`)
}

func (s *PostgresStorage) GetClub(ctx context.Context, id int) (*club.Club, error) {
	query := `SELECT` + clubColumns + `FROM clubs WHERE id = $1`
	return scanClub(s.db.QueryRow(ctx, query, id))
}

func (s *PostgresStorage) CreateClub(ctx context.Context, ins *club.InsertClub) (*club.Club, error) {
	query := `
		INSERT INTO clubs (
			name, description, location, distance, price_range, rating,
			review_count, images, category, features, open_hours, music_types, is_featured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + clubColumns

	return scanClub(s.db.QueryRow(ctx, query,
		ins.Name,
		ins.Description,
		ins.Location,
		ins.Distance,
		ins.PriceRange,
		ins.Rating,
		ins.ReviewCount,
		textArray(ins.Images),
		textArray(ins.Category),
		textArray(ins.Features),
		ins.OpenHours,
		textArray(ins.MusicTypes),
		ins.IsFeatured,
	))
}

func (s *PostgresStorage) UpdateClub(ctx context.Context, id int, upd *club.UpdateClub) (*club.Club, error) {
	query := `
		UPDATE clubs SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			location = COALESCE($4, location),
			distance = COALESCE($5, distance),
			price_range = COALESCE($6, price_range),
			images = COALESCE($7, images),
			category = COALESCE($8, category),
			features = COALESCE($9, features),
			open_hours = COALESCE($10, open_hours),
			music_types = COALESCE($11, music_types),
			is_featured = COALESCE($12, is_featured)
		WHERE id = $1
		RETURNING` + clubColumns

	return scanClub(s.db.QueryRow(ctx, query,
		id,
		upd.Name,
		upd.Description,
		upd.Location,
		upd.Distance,
		upd.PriceRange,
		upd.Images,
		upd.Category,
		upd.Features,
		upd.OpenHours,
		upd.MusicTypes,
		upd.IsFeatured,
	))
}

func (s *PostgresStorage) GetFeaturedClubs(ctx context.Context, limit int) ([]club.Club, error) {
	query := `SELECT` + clubColumns + `FROM clubs WHERE is_featured ORDER BY id`
	if limit > 0 {
		return s.queryClubs(ctx, query+` LIMIT $1`, limit)
	}
	return s.queryClubs(ctx, query)
}

func (s *PostgresStorage) SearchClubs(ctx context.Context, query string) ([]club.Club, error) {
	sql := `
		SELECT` + clubColumns + `
		FROM clubs
		WHERE name ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'
		   OR location ILIKE '%' || $1 || '%'
		   OR EXISTS (SELECT 1 FROM unnest(category) AS cat WHERE cat ILIKE '%' || $1 || '%')
		   OR EXISTS (SELECT 1 FROM unnest(music_types) AS mt WHERE mt ILIKE '%' || $1 || '%')
		ORDER BY id
	`
	return s.queryClubs(ctx, sql, query)
}

// Event operations

const eventColumns = `
	id, name, description, date, time, starts_at, location, venue_id, image,
	price, ticket_info, category, featured, artists, attendees_count,
	interested_count, dress_code
`

func scanEvent(row pgx.Row) (*event.Event, error) {
	var e event.Event
	var artistsJSON []byte
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.Date,
		&e.Time,
		&e.StartsAt,
		&e.Location,
		&e.VenueID,
		&e.Image,
		&e.Price,
		&e.TicketInfo,
		&e.Category,
		&e.Featured,
		&artistsJSON,
		&e.AttendeesCount,
		&e.InterestedCount,
		&e.DressCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	if err := json.Unmarshal(artistsJSON, &e.Artists); err != nil {
		return nil, fmt.Errorf("failed to decode event artists: %w", err)
	}
	return &e, nil
}

func (s *PostgresStorage) queryEvents(ctx context.Context, query string, args ...any) ([]event.Event, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (s *PostgresStorage) GetEvents(ctx context.Context) ([]event.Event, error) {
	return s.queryEvents(ctx, `SELECT`+eventColumns+`FROM events ORDER BY id`)
}

func (s *PostgresStorage) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	query := `SELECT` + eventColumns + `FROM events WHERE id = $1`
	return scanEvent(s.db.QueryRow(ctx, query, id))
}

func (s *PostgresStorage) CreateEvent(ctx context.Context, ins *event.InsertEvent) (*event.Event, error) {
	artists := ins.Artists
	if artists == nil {
		artists = []event.Artist{}
	}
	artistsJSON, err := json.Marshal(artists)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event artists: %w", err)
	}

	query := `
		INSERT INTO events (
			name, description, date, time, starts_at, location, venue_id,
			image, price, ticket_info, category, featured, artists, dress_code
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING` + eventColumns

	return scanEvent(s.db.QueryRow(ctx, query,
		ins.Name,
		ins.Description,
		ins.Date,
		ins.Time,
		ins.StartsAt,
		ins.Location,
		ins.VenueID,
		ins.Image,
		ins.Price,
		ins.TicketInfo,
		ins.Category,
		ins.Featured,
		artistsJSON,
		ins.DressCode,
	))
}

func (s *PostgresStorage) UpdateEvent(ctx context.Context, id int, upd *event.UpdateEvent) (*event.Event, error) {
	var artistsJSON []byte
	if upd.Artists != nil {
		var err error
		if artistsJSON, err = json.Marshal(*upd.Artists); err != nil {
			return nil, fmt.Errorf("failed to encode event artists: %w", err)
		}
	}

	query := `
		UPDATE events SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			date = COALESCE($4, date),
			time = COALESCE($5, time),
			starts_at = COALESCE($6, starts_at),
			location = COALESCE($7, location),
			venue_id = COALESCE($8, venue_id),
			image = COALESCE($9, image),
			price = COALESCE($10, price),
			ticket_info = COALESCE($11, ticket_info),
			category = COALESCE($12, category),
			featured = COALESCE($13, featured),
			artists = COALESCE($14, artists),
			dress_code = COALESCE($15, dress_code)
		WHERE id = $1
		RETURNING` + eventColumns

	return scanEvent(s.db.QueryRow(ctx, query,
		id,
		upd.Name,
		upd.Description,
		upd.Date,
		upd.Time,
		upd.StartsAt,
		upd.Location,
		upd.VenueID,
		upd.Image,
		upd.Price,
		upd.TicketInfo,
		upd.Category,
		upd.Featured,
		artistsJSON,
		upd.DressCode,
	))
}

func (s *PostgresStorage) GetFeaturedEvents(ctx context.Context, limit int) ([]event.Event, error) {
	query := `SELECT` + eventColumns + `FROM events WHERE featured ORDER BY id`
	if limit > 0 {
		return s.queryEvents(ctx, query+` LIMIT $1`, limit)
	}
	return s.queryEvents(ctx, query)
}

func (s *PostgresStorage) GetUpcomingEvents(ctx context.Context, now time.Time, limit int) ([]event.Event, error) {
	query := `SELECT` + eventColumns + `FROM events WHERE starts_at >= $1 ORDER BY starts_at`
	if limit > 0 {
		return s.queryEvents(ctx, query+` LIMIT $2`, now, limit)
	}
	return s.queryEvents(ctx, query, now)
}

func (s *PostgresStorage) GetEventsByClub(ctx context.Context, clubID int) ([]event.Event, error) {
	query := `SELECT` + eventColumns + `FROM events WHERE venue_id = $1 ORDER BY id`
	return s.queryEvents(ctx, query, clubID)
}

// Review operations

const reviewColumns = ` id, user_id, club_id, rating, comment, date `

func scanReview(row pgx.Row) (*review.Review, error) {
	var r review.Review
	err := row.Scan(&r.ID, &r.UserID, &r.ClubID, &r.Rating, &r.Comment, &r.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan review: %w", err)
	}
	return &r, nil
}

func (s *PostgresStorage) GetReviews(ctx context.Context, clubID int) ([]review.Review, error) {
	query := `SELECT` + reviewColumns + `FROM reviews WHERE club_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []review.Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *r)
	}
	return reviews, rows.Err()
}

// CreateReview inserts the review and refreshes the parent club's
// aggregate rating and review count inside one transaction.
func (s *PostgresStorage) CreateReview(ctx context.Context, ins *review.InsertReview) (*review.Review, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin review transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO reviews (user_id, club_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING` + reviewColumns

	r, err := scanReview(tx.QueryRow(ctx, query, ins.UserID, ins.ClubID, ins.Rating, ins.Comment))
	if err != nil {
		return nil, err
	}

	recompute := `
		UPDATE clubs SET
			rating = agg.avg_rating,
			review_count = agg.review_count
		FROM (
			SELECT ROUND(AVG(rating)::numeric, 1) AS avg_rating, COUNT(*) AS review_count
			FROM reviews
			WHERE club_id = $1
		) AS agg
		WHERE clubs.id = $1
	`
	if _, err := tx.Exec(ctx, recompute, ins.ClubID); err != nil {
		return nil, fmt.Errorf("failed to recompute club rating: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit review transaction: %w", err)
	}
	return r, nil
}

// textArray keeps nil slices out of text[] columns so they land as
// empty arrays instead of NULL.
func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
