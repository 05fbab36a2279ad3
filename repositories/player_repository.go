package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/ladder-system/models"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameConflict = errors.New("player name already exists")
	ErrPlayerInUse        = errors.New("player is referenced by matches")
)

type ListPlayersFilter struct {
	Group  *models.Group
	Active *bool
}

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context, filter ListPlayersFilter) ([]*models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	UpdateStats(ctx context.Context, exec SQLExecutor, player *models.Player) error
	ResetTournamentStats(ctx context.Context, exec SQLExecutor) error
	UpdateAvatarKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, activeOnly bool) (int, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const playerColumns = `
	id, name, player_group, active, created_at,
	games, specials, points, matches_played,
	total_games, total_specials, total_points, total_matches, tournaments_played, promotions, relegations,
	avatar_key`

func scanPlayer(row interface{ Scan(...interface{}) error }) (*models.Player, error) {
	var p models.Player
	err := row.Scan(
		&p.ID, &p.Name, &p.Group, &p.Active, &p.CreatedAt,
		&p.Tournament.Games, &p.Tournament.Specials, &p.Tournament.Points, &p.Tournament.MatchesPlayed,
		&p.Career.TotalGames, &p.Career.TotalSpecials, &p.Career.TotalPoints, &p.Career.TotalMatches,
		&p.Career.TournamentsPlayed, &p.Career.Promotions, &p.Career.Relegations,
		&p.AvatarKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (name, player_group, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, p.Name, p.Group, p.Active).Scan(&p.ID, &p.CreatedAt)
	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if err != nil && !errors.Is(err, ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to scan player by id %d: %w", id, err)
	}
	return p, err
}

func (r *postgresPlayerRepository) List(ctx context.Context, filter ListPlayersFilter) ([]*models.Player, error) {
	var qb strings.Builder
	qb.WriteString(`SELECT ` + playerColumns + ` FROM players WHERE 1=1`)

	args := []interface{}{}
	if filter.Group != nil {
		args = append(args, *filter.Group)
		fmt.Fprintf(&qb, " AND player_group = $%d", len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		fmt.Fprintf(&qb, " AND active = $%d", len(args))
	}
	// id order is the input order for ranking ties
	qb.WriteString(" ORDER BY id ASC")

	rows, err := r.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		p, scanErr := scanPlayer(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan player: %w", scanErr)
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	query := `UPDATE players SET name = $1, player_group = $2, active = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, p.Name, p.Group, p.Active, p.ID)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

// UpdateStats writes group membership and both accumulator sets.
func (r *postgresPlayerRepository) UpdateStats(ctx context.Context, exec SQLExecutor, p *models.Player) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE players SET
			player_group = $1,
			games = $2, specials = $3, points = $4, matches_played = $5,
			total_games = $6, total_specials = $7, total_points = $8, total_matches = $9,
			tournaments_played = $10, promotions = $11, relegations = $12
		WHERE id = $13`
	result, err := executor.ExecContext(ctx, query,
		p.Group,
		p.Tournament.Games, p.Tournament.Specials, p.Tournament.Points, p.Tournament.MatchesPlayed,
		p.Career.TotalGames, p.Career.TotalSpecials, p.Career.TotalPoints, p.Career.TotalMatches,
		p.Career.TournamentsPlayed, p.Career.Promotions, p.Career.Relegations,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update stats of player %d: %w", p.ID, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) ResetTournamentStats(ctx context.Context, exec SQLExecutor) error {
	executor := r.getExecutor(exec)
	query := `UPDATE players SET games = 0, specials = 0, points = 0, matches_played = 0`
	if _, err := executor.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to reset tournament stats: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) UpdateAvatarKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET avatar_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("failed to update player avatar key: %w", err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	// matches keep plain id arrays, so the reference check is done here
	var inUse bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM matches WHERE $1 = ANY(team1) OR $1 = ANY(team2))`, id,
	).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("failed to check player references: %w", err)
	}
	if inUse {
		return ErrPlayerInUse
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Count(ctx context.Context, activeOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM players`
	if activeOnly {
		query += ` WHERE active`
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return n, nil
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err, "players_name_key") {
		return ErrPlayerNameConflict
	}
	return err
}
