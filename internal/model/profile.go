package model

import "time"

// Profile is the per-user record of display fields and resume reference.
// ID doubles as the owning user's ID, so at most one row per user can exist.
type Profile struct {
	ID        string    `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	Bio       string    `db:"bio" json:"bio"`
	CVURL     *string   `db:"cv_url" json:"cv_url,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (p *Profile) HasCV() bool {
	return p.CVURL != nil && *p.CVURL != ""
}
