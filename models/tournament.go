package models

import "time"

// TournamentStatus представляет статусы турнира, соответствующие ENUM в БД.
type TournamentStatus string

const (
	StatusDraft     TournamentStatus = "draft"
	StatusActive    TournamentStatus = "active"
	StatusCompleted TournamentStatus = "completed"
)

// FinalRound - после него применяется финальный рейтинг.
const FinalRound = 3

// Tournament представляет турнир ладдера.
type Tournament struct {
	ID           int              `json:"id" db:"id"`
	Name         string           `json:"name" db:"name"`
	StartDate    time.Time        `json:"start_date" db:"start_date"`
	EndDate      time.Time        `json:"end_date" db:"end_date"`
	Status       TournamentStatus `json:"status" db:"status"`
	MaxPlayers   int              `json:"max_players" db:"max_players"`
	CurrentRound int              `json:"current_round" db:"current_round"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
	SnapshotKey  *string          `json:"-" db:"snapshot_key"`
	SnapshotURL  *string          `json:"snapshot_url,omitempty" db:"-"`
}

// GroupCapacity - мест в каждой из двух групп.
func (t Tournament) GroupCapacity() int {
	return t.MaxPlayers / 2
}
