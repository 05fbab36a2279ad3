package models

import "time"

// Group представляет одну из двух когорт ладдера.
type Group string

const (
	GroupTop    Group = "top"    // Linker Rijtje
	GroupBottom Group = "bottom" // Rechter Rijtje
)

func (g Group) Valid() bool {
	return g == GroupTop || g == GroupBottom
}

// TournamentStats - накопители текущего турнира.
type TournamentStats struct {
	Games         int `json:"games" db:"games"`
	Specials      int `json:"specials" db:"specials"`
	Points        int `json:"points" db:"points"`
	MatchesPlayed int `json:"matches_played" db:"matches_played"`
}

// CareerStats - накопители за всю карьеру игрока.
type CareerStats struct {
	TotalGames        int `json:"total_games" db:"total_games"`
	TotalSpecials     int `json:"total_specials" db:"total_specials"`
	TotalPoints       int `json:"total_points" db:"total_points"`
	TotalMatches      int `json:"total_matches" db:"total_matches"`
	TournamentsPlayed int `json:"tournaments_played" db:"tournaments_played"`
	Promotions        int `json:"promotions" db:"promotions"`
	Relegations       int `json:"relegations" db:"relegations"`
}

type Player struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Group     Group     `json:"group" db:"player_group"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Tournament TournamentStats `json:"tournament"`
	Career     CareerStats     `json:"career"`

	AvatarKey *string `json:"-" db:"avatar_key"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"-"`
}

// FoldCareer переносит накопители турнира в карьерные.
// Сами накопители турнира не обнуляются, для этого есть ResetTournament.
func (p *Player) FoldCareer() {
	p.Career.TotalGames += p.Tournament.Games
	p.Career.TotalSpecials += p.Tournament.Specials
	p.Career.TotalPoints += p.Tournament.Points
	p.Career.TotalMatches += p.Tournament.MatchesPlayed
	p.Career.TournamentsPlayed++
}

func (p *Player) ResetTournament() {
	p.Tournament = TournamentStats{}
}
