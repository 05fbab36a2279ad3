package pairings

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/ladder-system/models"
)

// ManualPairing is one operator-entered match. Zero is an empty slot.
type ManualPairing struct {
	Team1 [2]int `json:"team1"`
	Team2 [2]int `json:"team2"`
}

// IncompletePairingsError carries one message per problem found by
// ValidateManual.
type IncompletePairingsError struct {
	Group    models.Group
	Messages []string
}

func (e *IncompletePairingsError) Error() string {
	return fmt.Sprintf("%s: group %s: %s", ErrIncompletePairings, e.Group, strings.Join(e.Messages, "; "))
}

func (e *IncompletePairingsError) Unwrap() error {
	return ErrIncompletePairings
}

// ValidateManual reports empty slots, players outside the active group and
// players listed twice in the same match. Matches are numbered from 1.
func ValidateManual(pairings []ManualPairing, group models.Group, players []*models.Player) []string {
	members := make(map[int]bool, len(players))
	for _, p := range players {
		if p != nil && p.Active && p.Group == group {
			members[p.ID] = true
		}
	}

	var messages []string
	for i, mp := range pairings {
		n := i + 1
		seen := make(map[int]bool, 4)
		for t, team := range [][2]int{mp.Team1, mp.Team2} {
			for s, id := range team {
				if id == 0 {
					messages = append(messages, fmt.Sprintf("Match %d: team %d player %d is empty", n, t+1, s+1))
					continue
				}
				if !members[id] {
					messages = append(messages, fmt.Sprintf("Match %d: player %d is not an active %s group player", n, id, group))
				}
				if seen[id] {
					messages = append(messages, fmt.Sprintf("Match %d: player %d is selected more than once", n, id))
				}
				seen[id] = true
			}
		}
	}
	return messages
}

type ManualGenerator struct{}

func NewManualGenerator() Generator {
	return &ManualGenerator{}
}

func (g *ManualGenerator) GetName() string {
	return "Manual"
}

func (g *ManualGenerator) Generate(ctx context.Context, params GeneratePairingsParams) ([]*models.Match, error) {
	if len(params.Manual) != MatchesPerRound {
		return nil, fmt.Errorf("%w: group %s has %d", ErrInvalidPairingCount, params.Group, len(params.Manual))
	}
	if msgs := ValidateManual(params.Manual, params.Group, params.Players); len(msgs) > 0 {
		return nil, &IncompletePairingsError{Group: params.Group, Messages: msgs}
	}

	matches := make([]*models.Match, 0, MatchesPerRound)
	for i, mp := range params.Manual {
		matches = append(matches, newMatch(params, i, MatchesPerRound, models.Team(mp.Team1), models.Team(mp.Team2)))
	}
	return matches, nil
}
