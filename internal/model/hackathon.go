package model

import "time"

type Hackathon struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        string    `db:"date" json:"date"`
	Location    string    `db:"location" json:"location"`
	Duration    string    `db:"duration" json:"duration"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
