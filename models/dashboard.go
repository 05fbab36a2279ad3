package models

type DashboardStats struct {
	PlayersTotal      int `json:"players_total"`
	ActivePlayers     int `json:"active_players"`
	TournamentsTotal  int `json:"tournaments_total"`
	ActiveTournaments int `json:"active_tournaments"`
	MatchesTotal      int `json:"matches_total"`
	CompletedMatches  int `json:"completed_matches"`
}
