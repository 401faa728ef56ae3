package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hackbuddy/hackbuddy/internal/model"
)

type ProfileRepository interface {
	ByID(id string) (*model.Profile, error)
	Create(profile *model.Profile) error
	Update(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByID(id string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Get(&profile, `SELECT * FROM profiles WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// Create inserts a profile row. The primary key is the owning user's ID, and
// the insert is a no-op when a row already exists, so two concurrent
// first-logins cannot produce duplicates.
func (r *profileRepository) Create(profile *model.Profile) error {
	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO profiles (id, full_name, bio, cv_url, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, profile.ID, profile.FullName, profile.Bio, profile.CVURL, profile.UpdatedAt)

	return err
}

func (r *profileRepository) Update(profile *model.Profile) error {
	profile.UpdatedAt = time.Now()

	result, err := r.db.Exec(`
		UPDATE profiles
		SET full_name = $1, bio = $2, cv_url = $3, updated_at = $4
		WHERE id = $5
	`, profile.FullName, profile.Bio, profile.CVURL, profile.UpdatedAt, profile.ID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no profile found for id: %s", profile.ID)
	}

	return nil
}
