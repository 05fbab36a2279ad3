package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/ladder-system/models"
)

var (
	ErrSpecialTypeNotFound     = errors.New("special type not found")
	ErrSpecialTypeNameConflict = errors.New("special type name already exists")
)

type SpecialTypeRepository interface {
	Create(ctx context.Context, st *models.SpecialType) error
	GetByID(ctx context.Context, id int) (*models.SpecialType, error)
	List(ctx context.Context, enabledOnly bool) ([]*models.SpecialType, error)
	Update(ctx context.Context, st *models.SpecialType) error
	Delete(ctx context.Context, id int) error
}

type postgresSpecialTypeRepository struct {
	db *sql.DB
}

func NewPostgresSpecialTypeRepository(db *sql.DB) SpecialTypeRepository {
	return &postgresSpecialTypeRepository{db: db}
}

func (r *postgresSpecialTypeRepository) Create(ctx context.Context, st *models.SpecialType) error {
	query := `
		INSERT INTO special_types (name, enabled, penalty)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, st.Name, st.Enabled, st.Penalty).Scan(&st.ID, &st.CreatedAt)
	return r.handleSpecialError(err)
}

func (r *postgresSpecialTypeRepository) GetByID(ctx context.Context, id int) (*models.SpecialType, error) {
	query := `SELECT id, name, enabled, penalty, created_at FROM special_types WHERE id = $1`
	var st models.SpecialType
	err := r.db.QueryRowContext(ctx, query, id).Scan(&st.ID, &st.Name, &st.Enabled, &st.Penalty, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpecialTypeNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *postgresSpecialTypeRepository) List(ctx context.Context, enabledOnly bool) ([]*models.SpecialType, error) {
	query := `SELECT id, name, enabled, penalty, created_at FROM special_types`
	if enabledOnly {
		query += ` WHERE enabled`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query special types: %w", err)
	}
	defer rows.Close()

	types := make([]*models.SpecialType, 0)
	for rows.Next() {
		var st models.SpecialType
		if err := rows.Scan(&st.ID, &st.Name, &st.Enabled, &st.Penalty, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan special type: %w", err)
		}
		types = append(types, &st)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *postgresSpecialTypeRepository) Update(ctx context.Context, st *models.SpecialType) error {
	query := `UPDATE special_types SET name = $1, enabled = $2, penalty = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, st.Name, st.Enabled, st.Penalty, st.ID)
	if err != nil {
		return r.handleSpecialError(err)
	}
	return checkAffectedRows(result, ErrSpecialTypeNotFound)
}

func (r *postgresSpecialTypeRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM special_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSpecialTypeNotFound)
}

func (r *postgresSpecialTypeRepository) handleSpecialError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err, "special_types_name_key") {
		return ErrSpecialTypeNameConflict
	}
	return err
}
