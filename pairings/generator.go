package pairings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/ladder-system/models"
)

const (
	GroupSize       = 8
	MatchesPerRound = 6
)

var (
	ErrInvalidGroupSize    = errors.New("group must contain exactly 8 eligible players")
	ErrInvalidPairingCount = errors.New("manual pairing requires exactly 6 matches per group")
	ErrIncompletePairings  = errors.New("manual pairings are incomplete")
	ErrInvalidBracket      = errors.New("invalid seed bracket")
)

type Mode string

const (
	ModeRandom Mode = "random"
	ModeRanked Mode = "ranked"
	ModeManual Mode = "manual"
)

type GeneratePairingsParams struct {
	TournamentID int
	Round        int
	Group        models.Group
	Players      []*models.Player
	Manual       []ManualPairing
}

type Generator interface {
	Generate(ctx context.Context, params GeneratePairingsParams) ([]*models.Match, error)

	GetName() string
}

// NewGenerator returns the generator for mode. The random generator gets
// its own shuffle source.
func NewGenerator(mode Mode) (Generator, error) {
	switch mode {
	case ModeRandom:
		return NewRandomGenerator(nil), nil
	case ModeRanked:
		return NewRankedGenerator(EightPlayerBracket)
	case ModeManual:
		return NewManualGenerator(), nil
	default:
		return nil, fmt.Errorf("unsupported pairing mode %q", mode)
	}
}

// eligiblePlayers keeps the active members of group and checks that there
// are exactly size of them.
func eligiblePlayers(players []*models.Player, group models.Group, size int) ([]*models.Player, error) {
	eligible := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p != nil && p.Active && p.Group == group {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) != size {
		return nil, fmt.Errorf("%w: group %s needs %d, has %d", ErrInvalidGroupSize, group, size, len(eligible))
	}
	return eligible, nil
}

// courtFor assigns the first half of the round (rounded up) to the group's
// first court and the rest to the second. The bottom group plays on courts 3-4.
func courtFor(group models.Group, matchIndex, total int) int {
	court := 1
	if matchIndex >= (total+1)/2 {
		court = 2
	}
	if group == models.GroupBottom {
		court += 2
	}
	return court
}

func newMatch(params GeneratePairingsParams, index, total int, team1, team2 models.Team) *models.Match {
	return &models.Match{
		TournamentID: params.TournamentID,
		Round:        params.Round,
		Group:        params.Group,
		Court:        courtFor(params.Group, index, total),
		Team1:        team1,
		Team2:        team2,
		Specials:     models.Specials{},
	}
}
