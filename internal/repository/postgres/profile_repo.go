package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-profilepage-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type profileRepo struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, user_id, name, description, slug, image_url, theme,
	       social_links, is_public, created_at, updated_at`

// social_links is marshaled explicitly: the pool runs in simple protocol
// mode (PgBouncer), where pgx cannot infer the jsonb parameter type from a
// Go map.
func marshalLinks(links domain.SocialLinks) (string, error) {
	raw, err := json.Marshal(links.Normalize())
	if err != nil {
		return "", fmt.Errorf("failed to encode social links: %w", err)
	}
	return string(raw), nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var rawLinks []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Slug,
		&p.ImageURL, &p.Theme, &rawLinks, &p.IsPublic,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(rawLinks, &p.SocialLinks); err != nil {
		return nil, fmt.Errorf("failed to decode social links: %w", err)
	}
	return &p, nil
}

// ListByUser returns all profiles owned by a user, newest first.
func (r *profileRepo) ListByUser(ctx context.Context, userID string) ([]domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// GetByID retrieves a profile by its ID (for the edit flow)
func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = $1`

	return scanProfile(r.db.QueryRow(ctx, query, id))
}

// GetBySlugPublic retrieves a public profile by slug. Private profiles are
// filtered in the query itself so they can never leak through this path.
func (r *profileRepo) GetBySlugPublic(ctx context.Context, slug string) (*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE slug = $1 AND is_public = TRUE`

	return scanProfile(r.db.QueryRow(ctx, query, slug))
}

// CountBySlug counts profiles holding a slug, optionally excluding one
// record (the profile being edited, so its own slug doesn't self-conflict).
func (r *profileRepo) CountBySlug(ctx context.Context, slug string, excludeID string) (int, error) {
	query := `SELECT COUNT(*) FROM profiles WHERE slug = $1`
	args := []any{slug}
	if excludeID != "" {
		query += ` AND id <> $2`
		args = append(args, excludeID)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Insert persists a new profile and fills in the server-side timestamps.
func (r *profileRepo) Insert(ctx context.Context, profile *domain.Profile) error {
	links, err := marshalLinks(profile.SocialLinks)
	if err != nil {
		return err
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles (
			id, user_id, name, description, slug, image_url, theme,
			social_links, is_public, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.Exec(ctx, query,
		profile.ID, profile.UserID, profile.Name, profile.Description, profile.Slug,
		profile.ImageURL, profile.Theme, links, profile.IsPublic,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return translateSlugConflict(err)
}

// Update fully replaces the mutable fields and refreshes updated_at.
// Owner and created_at never change.
func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	links, err := marshalLinks(profile.SocialLinks)
	if err != nil {
		return err
	}

	profile.UpdatedAt = time.Now()

	query := `
		UPDATE profiles SET
			name = $2,
			description = $3,
			slug = $4,
			image_url = $5,
			theme = $6,
			social_links = $7,
			is_public = $8,
			updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		profile.ID, profile.Name, profile.Description, profile.Slug,
		profile.ImageURL, profile.Theme, links, profile.IsPublic,
		profile.UpdatedAt,
	)
	if err != nil {
		return translateSlugConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a profile by id. Deleting an id that does not exist is an
// error so callers can tell the user nothing happened.
func (r *profileRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// translateSlugConflict maps the unique constraint violation on slug to the
// domain error the usecase turns into a field-level validation failure.
// This closes the race between the availability pre-check and the write.
func translateSlugConflict(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrSlugTaken
	}
	return err
}
