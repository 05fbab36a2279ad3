// Package standings computes per-tournament accumulators and group rankings
// from completed matches.
package standings

import (
	"sort"

	"github.com/Dosada05/ladder-system/models"
)

// Rank returns a copy of players ordered by tournament points, highest
// first. Equal points keep their input order.
func Rank(players []*models.Player) []*models.Player {
	ranked := make([]*models.Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Tournament.Points > ranked[j].Tournament.Points
	})
	return ranked
}

// SpecialPoints sums the specials awarded to playerID in m. Penalty types
// subtract; names without a known type count as positive.
func SpecialPoints(m *models.Match, playerID int, types map[string]models.SpecialType) int {
	total := 0
	for name, value := range m.Specials[playerID] {
		if st, ok := types[name]; ok && st.Penalty {
			total -= value
			continue
		}
		total += value
	}
	return total
}

// Recalculate rebuilds the tournament accumulators of players from the
// completed matches. Players are modified in place; career stats are left
// untouched.
func Recalculate(players []*models.Player, matches []*models.Match, types []*models.SpecialType) {
	byName := make(map[string]models.SpecialType, len(types))
	for _, st := range types {
		if st != nil {
			byName[st.Name] = *st
		}
	}

	index := make(map[int]*models.Player, len(players))
	for _, p := range players {
		p.ResetTournament()
		index[p.ID] = p
	}

	for _, m := range matches {
		if m == nil || !m.Completed {
			continue
		}
		for _, id := range m.Players() {
			p, ok := index[id]
			if !ok {
				continue
			}
			games, _ := m.GamesFor(id)
			specials := SpecialPoints(m, id, byName)
			p.Tournament.Games += games
			p.Tournament.Specials += specials
			p.Tournament.Points += games + specials
			p.Tournament.MatchesPlayed++
		}
	}
}

// Movement describes the end-of-tournament group changes.
type Movement struct {
	Promoted  *models.Player `json:"promoted,omitempty"`
	Relegated *models.Player `json:"relegated,omitempty"`
}

// PromotionRelegation picks the bottom-group winner and the top-group last
// place. Either side is nil when its group has no players.
func PromotionRelegation(top, bottom []*models.Player) Movement {
	var mv Movement
	if rankedBottom := Rank(bottom); len(rankedBottom) > 0 {
		mv.Promoted = rankedBottom[0]
	}
	if rankedTop := Rank(top); len(rankedTop) > 0 {
		mv.Relegated = rankedTop[len(rankedTop)-1]
	}
	return mv
}

// Table ranks players and numbers the rows from 1.
func Table(players []*models.Player) []models.StandingRow {
	ranked := Rank(players)
	rows := make([]models.StandingRow, 0, len(ranked))
	for i, p := range ranked {
		rows = append(rows, models.StandingRow{
			Rank:     i + 1,
			PlayerID: p.ID,
			Name:     p.Name,
			Group:    p.Group,
			Stats:    p.Tournament,
		})
	}
	return rows
}

// Participants returns copies of the players who appear in matches, with
// Group taken from the match they played in. Players without matches are
// omitted; copies keep the caller's players untouched.
func Participants(players []*models.Player, matches []*models.Match) []*models.Player {
	groupOf := make(map[int]models.Group)
	for _, m := range matches {
		if m == nil {
			continue
		}
		for _, id := range m.Players() {
			groupOf[id] = m.Group
		}
	}
	out := make([]*models.Player, 0, len(groupOf))
	for _, p := range players {
		if p == nil {
			continue
		}
		g, ok := groupOf[p.ID]
		if !ok {
			continue
		}
		cp := *p
		cp.Group = g
		out = append(out, &cp)
	}
	return out
}

// SplitGroups partitions players by group, preserving order.
func SplitGroups(players []*models.Player) (top, bottom []*models.Player) {
	for _, p := range players {
		switch p.Group {
		case models.GroupTop:
			top = append(top, p)
		case models.GroupBottom:
			bottom = append(bottom, p)
		}
	}
	return top, bottom
}
