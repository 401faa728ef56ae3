package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hackbuddy/hackbuddy/internal/model"
)

type HackathonRepository interface {
	Create(hackathon *model.Hackathon) error
	ByUserID(userID string) ([]*model.Hackathon, error)
	ByID(id string) (*model.Hackathon, error)
	Delete(id string) error
}

type hackathonRepository struct {
	db *sqlx.DB
}

func NewHackathonRepository(db *sqlx.DB) HackathonRepository {
	return &hackathonRepository{db: db}
}

func (r *hackathonRepository) Create(hackathon *model.Hackathon) error {
	if hackathon.ID == "" {
		hackathon.ID = uuid.New().String()
	}
	if hackathon.CreatedAt.IsZero() {
		hackathon.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO hackathons (id, user_id, title, description, date, location, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, hackathon.ID, hackathon.UserID, hackathon.Title, hackathon.Description,
		hackathon.Date, hackathon.Location, hackathon.Duration, hackathon.CreatedAt)

	return err
}

func (r *hackathonRepository) ByUserID(userID string) ([]*model.Hackathon, error) {
	var hackathons []*model.Hackathon
	err := r.db.Select(&hackathons, `
		SELECT * FROM hackathons WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}

	return hackathons, nil
}

func (r *hackathonRepository) ByID(id string) (*model.Hackathon, error) {
	var hackathon model.Hackathon
	err := r.db.Get(&hackathon, `SELECT * FROM hackathons WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrHackathonNotFound
	}
	if err != nil {
		return nil, err
	}

	return &hackathon, nil
}

func (r *hackathonRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM hackathons WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrHackathonNotFound
	}

	return nil
}
