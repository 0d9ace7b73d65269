package domain

import "time"

// Project groups palettes under a unique name.
// It is storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
