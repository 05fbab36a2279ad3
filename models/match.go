package models

import "time"

// GamesPerMatch - сумма геймов обеих команд в завершенном матче.
const GamesPerMatch = 8

// Team - ровно два игрока.
type Team [2]int

func (t Team) Contains(playerID int) bool {
	return t[0] == playerID || t[1] == playerID
}

// Specials: player id -> special name -> points.
type Specials map[int]map[string]int

type Match struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	Round        int       `json:"round" db:"round"`
	Group        Group     `json:"group" db:"match_group"`
	Court        int       `json:"court" db:"court"`
	Team1        Team      `json:"team1" db:"team1"`
	Team2        Team      `json:"team2" db:"team2"`
	Team1Score   int       `json:"team1_score" db:"team1_score"`
	Team2Score   int       `json:"team2_score" db:"team2_score"`
	Specials     Specials  `json:"specials" db:"specials"`
	Completed    bool      `json:"completed" db:"completed"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Players returns the four roster ids, team1 first.
func (m *Match) Players() []int {
	return []int{m.Team1[0], m.Team1[1], m.Team2[0], m.Team2[1]}
}

func (m *Match) HasPlayer(playerID int) bool {
	return m.Team1.Contains(playerID) || m.Team2.Contains(playerID)
}

// GamesFor returns the games won by the team of playerID, ok is false when
// the player is not in the match.
func (m *Match) GamesFor(playerID int) (games int, ok bool) {
	switch {
	case m.Team1.Contains(playerID):
		return m.Team1Score, true
	case m.Team2.Contains(playerID):
		return m.Team2Score, true
	}
	return 0, false
}
