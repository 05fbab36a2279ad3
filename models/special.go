package models

import "time"

// SpecialType - именованная бонусная категория без собственного веса.
// Penalty-спешалы вычитаются из очков игрока.
type SpecialType struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Enabled   bool      `json:"enabled" db:"enabled"`
	Penalty   bool      `json:"penalty" db:"penalty"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
