package models

import "time"

// StandingRow - строка таблицы группы.
type StandingRow struct {
	Rank     int             `json:"rank"`
	PlayerID int             `json:"player_id"`
	Name     string          `json:"name"`
	Group    Group           `json:"group"`
	Stats    TournamentStats `json:"stats"`
}

// TournamentOverview is the read model served to clients and cached by the
// state store.
type TournamentOverview struct {
	Tournament   *Tournament    `json:"tournament"`
	Top          []StandingRow  `json:"top"`
	Bottom       []StandingRow  `json:"bottom"`
	Matches      []*Match       `json:"matches"`
	SpecialTypes []*SpecialType `json:"special_types"`
	LoadedAt     time.Time      `json:"loaded_at"`
}

// Standings returns the table of group.
func (o *TournamentOverview) Standings(group Group) []StandingRow {
	if group == GroupBottom {
		return o.Bottom
	}
	return o.Top
}
