package pairings

import (
	"context"
	"math/rand"
	"time"

	"github.com/Dosada05/ladder-system/models"
)

// quartetRotations are the three partner splits of four players a,b,c,d:
// ab-cd, ac-bd, ad-bc.
var quartetRotations = [3][4]int{
	{0, 1, 2, 3},
	{0, 2, 1, 3},
	{0, 3, 1, 2},
}

type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator uses rng for shuffling, or a time-seeded source when
// rng is nil. The generator is not safe for concurrent use with a shared rng.
func NewRandomGenerator(rng *rand.Rand) Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomGenerator{rng: rng}
}

func (g *RandomGenerator) GetName() string {
	return "Random"
}

// Generate shuffles the eight players and splits the shuffled list into two
// quartets. Each quartet plays its three partner rotations on one court.
func (g *RandomGenerator) Generate(ctx context.Context, params GeneratePairingsParams) ([]*models.Match, error) {
	eligible, err := eligiblePlayers(params.Players, params.Group, GroupSize)
	if err != nil {
		return nil, err
	}

	shuffled := make([]int, len(eligible))
	for i, p := range eligible {
		shuffled[i] = p.ID
	}
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	matches := make([]*models.Match, 0, MatchesPerRound)
	for i := 0; i < MatchesPerRound; i++ {
		base := (i / 3) * 4
		rot := quartetRotations[i%3]
		at := func(k int) int { return shuffled[(base+rot[k])%GroupSize] }
		matches = append(matches, newMatch(params, i, MatchesPerRound,
			models.Team{at(0), at(1)},
			models.Team{at(2), at(3)},
		))
	}
	return matches, nil
}
