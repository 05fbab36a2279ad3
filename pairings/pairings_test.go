package pairings

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/ladder-system/models"
)

func groupOf(group models.Group, firstID int, points ...int) []*models.Player {
	players := make([]*models.Player, 0, GroupSize)
	for i := 0; i < GroupSize; i++ {
		p := &models.Player{ID: firstID + i, Group: group, Active: true}
		if i < len(points) {
			p.Tournament.Points = points[i]
		}
		players = append(players, p)
	}
	return players
}

func assertRoundShape(t *testing.T, matches []*models.Match, group models.Group, courts [2]int) {
	t.Helper()
	require.Len(t, matches, MatchesPerRound)

	perCourt := map[int]int{}
	for _, m := range matches {
		perCourt[m.Court]++
		assert.Equal(t, group, m.Group)
		assert.False(t, m.Completed)
		assert.Zero(t, m.Team1Score)
		assert.Zero(t, m.Team2Score)
		assert.Empty(t, m.Specials)

		seen := map[int]bool{}
		for _, id := range m.Players() {
			assert.NotZero(t, id)
			assert.False(t, seen[id], "player %d twice in match", id)
			seen[id] = true
		}
	}
	assert.Equal(t, map[int]int{courts[0]: 3, courts[1]: 3}, perCourt)

	// matches k and k+3 run at the same time
	for k := 0; k < 3; k++ {
		a, b := matches[k], matches[k+3]
		for _, id := range a.Players() {
			assert.False(t, b.HasPlayer(id), "player %d on both courts in slot %d", id, k+1)
		}
	}
}

func TestRandomGenerator_Generate(t *testing.T) {
	gen := NewRandomGenerator(rand.New(rand.NewSource(42)))
	players := groupOf(models.GroupTop, 1)

	for i := 0; i < 20; i++ {
		matches, err := gen.Generate(context.Background(), GeneratePairingsParams{
			TournamentID: 7, Round: 1, Group: models.GroupTop, Players: players,
		})
		require.NoError(t, err)
		assertRoundShape(t, matches, models.GroupTop, [2]int{1, 2})

		plays := map[int]int{}
		for _, m := range matches {
			assert.Equal(t, 7, m.TournamentID)
			assert.Equal(t, 1, m.Round)
			for _, id := range m.Players() {
				plays[id]++
			}
		}
		assert.Len(t, plays, GroupSize)
		for id, n := range plays {
			assert.Equal(t, 3, n, "player %d", id)
		}
	}
}

func TestRandomGenerator_BottomGroupCourts(t *testing.T) {
	gen := NewRandomGenerator(rand.New(rand.NewSource(1)))
	players := groupOf(models.GroupBottom, 10)

	matches, err := gen.Generate(context.Background(), GeneratePairingsParams{Round: 1, Group: models.GroupBottom, Players: players})
	require.NoError(t, err)
	assertRoundShape(t, matches, models.GroupBottom, [2]int{3, 4})
}

func TestRandomGenerator_WrongGroupSize(t *testing.T) {
	gen := NewRandomGenerator(rand.New(rand.NewSource(1)))

	t.Run("seven players", func(t *testing.T) {
		players := groupOf(models.GroupTop, 1)[:7]
		_, err := gen.Generate(context.Background(), GeneratePairingsParams{Group: models.GroupTop, Players: players})
		assert.ErrorIs(t, err, ErrInvalidGroupSize)
	})

	t.Run("inactive player does not count", func(t *testing.T) {
		players := groupOf(models.GroupTop, 1)
		players[3].Active = false
		_, err := gen.Generate(context.Background(), GeneratePairingsParams{Group: models.GroupTop, Players: players})
		assert.ErrorIs(t, err, ErrInvalidGroupSize)
	})

	t.Run("other group filtered out", func(t *testing.T) {
		players := append(groupOf(models.GroupTop, 1), groupOf(models.GroupBottom, 20)...)
		matches, err := gen.Generate(context.Background(), GeneratePairingsParams{Group: models.GroupTop, Players: players})
		require.NoError(t, err)
		for _, m := range matches {
			for _, id := range m.Players() {
				assert.Less(t, id, 20)
			}
		}
	})
}

func TestRankedGenerator_AllTiedKeepsInputOrder(t *testing.T) {
	gen, err := NewRankedGenerator(EightPlayerBracket)
	require.NoError(t, err)
	players := groupOf(models.GroupTop, 1) // ids 1..8, all zero points

	matches, err := gen.Generate(context.Background(), GeneratePairingsParams{Round: 2, Group: models.GroupTop, Players: players})
	require.NoError(t, err)
	assertRoundShape(t, matches, models.GroupTop, [2]int{1, 2})

	want := [][2]models.Team{
		{{1, 8}, {4, 5}},
		{{1, 6}, {2, 5}},
		{{1, 4}, {2, 3}},
		{{2, 7}, {3, 6}},
		{{3, 8}, {4, 7}},
		{{5, 8}, {6, 7}},
	}
	for i, m := range matches {
		assert.Equal(t, want[i][0], m.Team1, "match %d", i+1)
		assert.Equal(t, want[i][1], m.Team2, "match %d", i+1)
	}
}

func TestRankedGenerator_SeedsByPoints(t *testing.T) {
	gen, err := NewRankedGenerator(EightPlayerBracket)
	require.NoError(t, err)
	// ids 1..8 with points so that seed order is 8,7,...,1
	players := groupOf(models.GroupBottom, 1, 1, 2, 3, 4, 5, 6, 7, 8)

	first, err := gen.Generate(context.Background(), GeneratePairingsParams{Round: 3, Group: models.GroupBottom, Players: players})
	require.NoError(t, err)
	assert.Equal(t, models.Team{8, 1}, first[0].Team1)
	assert.Equal(t, models.Team{5, 4}, first[0].Team2)
	assert.Equal(t, 3, first[0].Court)
	assert.Equal(t, 4, first[5].Court)

	second, err := gen.Generate(context.Background(), GeneratePairingsParams{Round: 3, Group: models.GroupBottom, Players: players})
	require.NoError(t, err)
	for i := range first {
		assert.Equal(t, first[i].Team1, second[i].Team1)
		assert.Equal(t, first[i].Team2, second[i].Team2)
	}
}

func TestRankedGenerator_WrongGroupSize(t *testing.T) {
	gen, err := NewRankedGenerator(EightPlayerBracket)
	require.NoError(t, err)
	_, err = gen.Generate(context.Background(), GeneratePairingsParams{Group: models.GroupTop, Players: groupOf(models.GroupTop, 1)[:5]})
	assert.ErrorIs(t, err, ErrInvalidGroupSize)
}

func TestRankedGenerator_FourPlayerBracket(t *testing.T) {
	bracket := Bracket{
		Size: 4,
		Pairings: []SeedPairing{
			{Team1: [2]int{1, 4}, Team2: [2]int{2, 3}},
			{Team1: [2]int{1, 3}, Team2: [2]int{2, 4}},
			{Team1: [2]int{1, 2}, Team2: [2]int{3, 4}},
		},
	}
	gen, err := NewRankedGenerator(bracket)
	require.NoError(t, err)

	players := groupOf(models.GroupTop, 1, 0, 9, 5, 2)[:4] // seeds: 2,3,4,1
	matches, err := gen.Generate(context.Background(), GeneratePairingsParams{Round: 2, Group: models.GroupTop, Players: players})
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, models.Team{2, 1}, matches[0].Team1)
	assert.Equal(t, models.Team{3, 4}, matches[0].Team2)
	assert.Equal(t, []int{1, 1, 2}, []int{matches[0].Court, matches[1].Court, matches[2].Court})

	_, err = gen.Generate(context.Background(), GeneratePairingsParams{Group: models.GroupTop, Players: groupOf(models.GroupTop, 1)})
	assert.ErrorIs(t, err, ErrInvalidGroupSize, "eight players do not fit a four-player bracket")
}

func TestNewRankedGenerator_RejectsBadBracket(t *testing.T) {
	outOfRange := Bracket{Size: GroupSize, Pairings: append([]SeedPairing{}, EightPlayerBracket.Pairings...)}
	outOfRange.Pairings[5] = SeedPairing{Team1: [2]int{5, 9}, Team2: [2]int{6, 7}}

	tests := []struct {
		name    string
		bracket Bracket
	}{
		{"seed above size", outOfRange},
		{"seed zero", Bracket{Size: 4, Pairings: []SeedPairing{{Team1: [2]int{0, 1}, Team2: [2]int{2, 3}}}}},
		{"seed twice in match", Bracket{Size: 4, Pairings: []SeedPairing{{Team1: [2]int{1, 2}, Team2: [2]int{2, 3}}}}},
		{"no pairings", Bracket{Size: 4}},
		{"too small", Bracket{Size: 2, Pairings: []SeedPairing{{Team1: [2]int{1, 2}, Team2: [2]int{1, 2}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewRankedGenerator(tt.bracket)
			assert.ErrorIs(t, err, ErrInvalidBracket)
			assert.Nil(t, gen)
		})
	}
	assert.Equal(t, [2]int{5, 8}, EightPlayerBracket.Pairings[5].Team1, "shared table untouched")
}

func validManual() []ManualPairing {
	return []ManualPairing{
		{Team1: [2]int{1, 2}, Team2: [2]int{3, 4}},
		{Team1: [2]int{1, 3}, Team2: [2]int{2, 4}},
		{Team1: [2]int{1, 4}, Team2: [2]int{2, 3}},
		{Team1: [2]int{5, 6}, Team2: [2]int{7, 8}},
		{Team1: [2]int{5, 7}, Team2: [2]int{6, 8}},
		{Team1: [2]int{5, 8}, Team2: [2]int{6, 7}},
	}
}

func TestManualGenerator_Generate(t *testing.T) {
	gen := NewManualGenerator()
	players := groupOf(models.GroupTop, 1)

	matches, err := gen.Generate(context.Background(), GeneratePairingsParams{
		TournamentID: 3, Round: 1, Group: models.GroupTop, Players: players, Manual: validManual(),
	})
	require.NoError(t, err)
	assertRoundShape(t, matches, models.GroupTop, [2]int{1, 2})
	assert.Equal(t, models.Team{1, 3}, matches[1].Team1)
}

func TestManualGenerator_RejectsWrongCount(t *testing.T) {
	gen := NewManualGenerator()
	players := groupOf(models.GroupTop, 1)

	for _, n := range []int{0, 5, 7} {
		manual := validManual()
		if n <= len(manual) {
			manual = manual[:n]
		} else {
			manual = append(manual, manual[0])
		}
		_, err := gen.Generate(context.Background(), GeneratePairingsParams{Group: models.GroupTop, Players: players, Manual: manual})
		assert.ErrorIs(t, err, ErrInvalidPairingCount, "count %d", n)
	}
}

func TestManualGenerator_IncompletePairings(t *testing.T) {
	gen := NewManualGenerator()
	players := groupOf(models.GroupTop, 1)
	manual := validManual()
	manual[2].Team2[1] = 0
	manual[4].Team1[1] = 5

	_, err := gen.Generate(context.Background(), GeneratePairingsParams{Group: models.GroupTop, Players: players, Manual: manual})
	require.ErrorIs(t, err, ErrIncompletePairings)

	var incomplete *IncompletePairingsError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, []string{
		"Match 3: team 2 player 2 is empty",
		"Match 5: player 5 is selected more than once",
	}, incomplete.Messages)
}

func TestValidateManual_UnknownPlayer(t *testing.T) {
	manual := validManual()
	manual[0].Team1[0] = 99

	msgs := ValidateManual(manual, models.GroupTop, groupOf(models.GroupTop, 1))
	assert.Equal(t, []string{"Match 1: player 99 is not an active top group player"}, msgs)
}

func TestNewGenerator(t *testing.T) {
	for _, mode := range []Mode{ModeRandom, ModeRanked, ModeManual} {
		gen, err := NewGenerator(mode)
		require.NoError(t, err)
		assert.NotEmpty(t, gen.GetName())
	}
	_, err := NewGenerator("swiss")
	assert.Error(t, err)
}
