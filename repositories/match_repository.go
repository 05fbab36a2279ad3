package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dosada05/ladder-system/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchTournamentInvalid = errors.New("match tournament conflict or invalid")
)

type ListMatchesFilter struct {
	Round     *int
	Group     *models.Group
	Completed *bool
}

type MatchRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, matches []*models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByTournament(ctx context.Context, tournamentID int, filter ListMatchesFilter) ([]*models.Match, error)
	UpdateScore(ctx context.Context, exec SQLExecutor, match *models.Match) error
	DeleteRound(ctx context.Context, exec SQLExecutor, tournamentID, round int) error
	Count(ctx context.Context, completedOnly bool) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `
	id, tournament_id, round, match_group, court, team1, team2,
	team1_score, team2_score, specials, completed, created_at, updated_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var (
		m            models.Match
		team1, team2 pq.Int64Array
		specialsRaw  []byte
	)
	err := row.Scan(
		&m.ID, &m.TournamentID, &m.Round, &m.Group, &m.Court, &team1, &team2,
		&m.Team1Score, &m.Team2Score, &specialsRaw, &m.Completed, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if m.Team1, err = arrayTeam(team1); err != nil {
		return nil, fmt.Errorf("match %d team1: %w", m.ID, err)
	}
	if m.Team2, err = arrayTeam(team2); err != nil {
		return nil, fmt.Errorf("match %d team2: %w", m.ID, err)
	}
	m.Specials = models.Specials{}
	if len(specialsRaw) > 0 {
		if err := json.Unmarshal(specialsRaw, &m.Specials); err != nil {
			return nil, fmt.Errorf("match %d specials: %w", m.ID, err)
		}
	}
	return &m, nil
}

func marshalSpecials(s models.Specials) ([]byte, error) {
	if s == nil {
		s = models.Specials{}
	}
	return json.Marshal(s)
}

func (r *postgresMatchRepository) CreateBatch(ctx context.Context, exec SQLExecutor, matches []*models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches
			(tournament_id, round, match_group, court, team1, team2, team1_score, team2_score, specials, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	for _, m := range matches {
		specials, err := marshalSpecials(m.Specials)
		if err != nil {
			return fmt.Errorf("failed to encode specials: %w", err)
		}
		err = executor.QueryRowContext(ctx, query,
			m.TournamentID, m.Round, m.Group, m.Court, teamArray(m.Team1), teamArray(m.Team2),
			m.Team1Score, m.Team2Score, string(specials), m.Completed,
		).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return r.handleMatchError(err)
		}
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil && !errors.Is(err, ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return m, err
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int, filter ListMatchesFilter) ([]*models.Match, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1`)

	args := []interface{}{tournamentID}
	if filter.Round != nil {
		args = append(args, *filter.Round)
		qb.WriteString(" AND round = $" + strconv.Itoa(len(args)))
	}
	if filter.Group != nil {
		args = append(args, *filter.Group)
		qb.WriteString(" AND match_group = $" + strconv.Itoa(len(args)))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		qb.WriteString(" AND completed = $" + strconv.Itoa(len(args)))
	}
	qb.WriteString(" ORDER BY round ASC, match_group ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan match for tournament %d: %w", tournamentID, scanErr)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) UpdateScore(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	executor := r.getExecutor(exec)
	specials, err := marshalSpecials(m.Specials)
	if err != nil {
		return fmt.Errorf("failed to encode specials: %w", err)
	}
	query := `
		UPDATE matches SET
			team1_score = $1, team2_score = $2, specials = $3, completed = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`
	err = executor.QueryRowContext(ctx, query, m.Team1Score, m.Team2Score, string(specials), m.Completed, m.ID).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to update score of match %d: %w", m.ID, err)
	}
	return nil
}

func (r *postgresMatchRepository) DeleteRound(ctx context.Context, exec SQLExecutor, tournamentID, round int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM matches WHERE tournament_id = $1 AND round = $2`, tournamentID, round)
	if err != nil {
		return fmt.Errorf("failed to delete round %d of tournament %d: %w", round, tournamentID, err)
	}
	return nil
}

func (r *postgresMatchRepository) Count(ctx context.Context, completedOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM matches`
	if completedOnly {
		query += ` WHERE completed`
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return n, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" && pqErr.Constraint == "matches_tournament_id_fkey" {
		return ErrMatchTournamentInvalid
	}
	return err
}
