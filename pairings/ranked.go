package pairings

import (
	"context"
	"fmt"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/standings"
)

// SeedPairing is one match of a bracket in 1-based seeds.
type SeedPairing struct {
	Team1 [2]int
	Team2 [2]int
}

// Bracket is a fixed seed table for one group size.
type Bracket struct {
	Size     int
	Pairings []SeedPairing
}

// EightPlayerBracket gives every seed three matches with three partners.
// Matches k and k+3 are played at the same time and never share a seed.
var EightPlayerBracket = Bracket{
	Size: GroupSize,
	Pairings: []SeedPairing{
		{Team1: [2]int{1, 8}, Team2: [2]int{4, 5}},
		{Team1: [2]int{1, 6}, Team2: [2]int{2, 5}},
		{Team1: [2]int{1, 4}, Team2: [2]int{2, 3}},
		{Team1: [2]int{2, 7}, Team2: [2]int{3, 6}},
		{Team1: [2]int{3, 8}, Team2: [2]int{4, 7}},
		{Team1: [2]int{5, 8}, Team2: [2]int{6, 7}},
	},
}

type RankedGenerator struct {
	bracket Bracket
}

// NewRankedGenerator checks the seed table: at least one match, every seed
// within 1..Size and no seed twice in the same match.
func NewRankedGenerator(bracket Bracket) (Generator, error) {
	if bracket.Size < 4 {
		return nil, fmt.Errorf("%w: size %d, need at least 4 players", ErrInvalidBracket, bracket.Size)
	}
	if len(bracket.Pairings) == 0 {
		return nil, fmt.Errorf("%w: no pairings", ErrInvalidBracket)
	}
	for i, sp := range bracket.Pairings {
		seen := make(map[int]bool, 4)
		for _, seed := range [4]int{sp.Team1[0], sp.Team1[1], sp.Team2[0], sp.Team2[1]} {
			if seed < 1 || seed > bracket.Size {
				return nil, fmt.Errorf("%w: match %d: seed %d outside 1..%d", ErrInvalidBracket, i+1, seed, bracket.Size)
			}
			if seen[seed] {
				return nil, fmt.Errorf("%w: match %d: seed %d twice", ErrInvalidBracket, i+1, seed)
			}
			seen[seed] = true
		}
	}
	return &RankedGenerator{bracket: bracket}, nil
}

func (g *RankedGenerator) GetName() string {
	return "Ranked"
}

func (g *RankedGenerator) Generate(ctx context.Context, params GeneratePairingsParams) ([]*models.Match, error) {
	eligible, err := eligiblePlayers(params.Players, params.Group, g.bracket.Size)
	if err != nil {
		return nil, err
	}

	ranked := standings.Rank(eligible)
	seed := func(n int) int { return ranked[n-1].ID }

	matches := make([]*models.Match, 0, len(g.bracket.Pairings))
	for i, sp := range g.bracket.Pairings {
		matches = append(matches, newMatch(params, i, len(g.bracket.Pairings),
			models.Team{seed(sp.Team1[0]), seed(sp.Team1[1])},
			models.Team{seed(sp.Team2[0]), seed(sp.Team2[1])},
		))
	}
	return matches, nil
}
