package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/ladder-system/models"
	"github.com/Dosada05/ladder-system/repositories"
)

type SpecialTypeService interface {
	CreateSpecialType(ctx context.Context, input SpecialTypeInput) (*models.SpecialType, error)
	ListSpecialTypes(ctx context.Context, enabledOnly bool) ([]*models.SpecialType, error)
	UpdateSpecialType(ctx context.Context, id int, input UpdateSpecialTypeInput) (*models.SpecialType, error)
	DeleteSpecialType(ctx context.Context, id int) error
}

type SpecialTypeInput struct {
	Name    string `json:"name"`
	Enabled *bool  `json:"enabled"`
	Penalty bool   `json:"penalty"`
}

type UpdateSpecialTypeInput struct {
	Name    *string `json:"name"`
	Enabled *bool   `json:"enabled"`
	Penalty *bool   `json:"penalty"`
}

type specialTypeService struct {
	specialRepo repositories.SpecialTypeRepository
}

func NewSpecialTypeService(specialRepo repositories.SpecialTypeRepository) SpecialTypeService {
	return &specialTypeService{specialRepo: specialRepo}
}

func (s *specialTypeService) CreateSpecialType(ctx context.Context, input SpecialTypeInput) (*models.SpecialType, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		v := newValidationError()
		v.Add("name", "must be provided")
		return nil, v
	}
	st := &models.SpecialType{Name: name, Enabled: true, Penalty: input.Penalty}
	if input.Enabled != nil {
		st.Enabled = *input.Enabled
	}
	if err := s.specialRepo.Create(ctx, st); err != nil {
		return nil, handleRepositoryError(err)
	}
	return st, nil
}

func (s *specialTypeService) ListSpecialTypes(ctx context.Context, enabledOnly bool) ([]*models.SpecialType, error) {
	types, err := s.specialRepo.List(ctx, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list special types: %w", err)
	}
	return types, nil
}

// UpdateSpecialType не переименовывает спешалы задним числом: уже
// записанные в матчах имена остаются как есть.
func (s *specialTypeService) UpdateSpecialType(ctx context.Context, id int, input UpdateSpecialTypeInput) (*models.SpecialType, error) {
	st, err := s.specialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, handleRepositoryError(err)
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			v := newValidationError()
			v.Add("name", "must not be empty")
			return nil, v
		}
		st.Name = name
	}
	if input.Enabled != nil {
		st.Enabled = *input.Enabled
	}
	if input.Penalty != nil {
		st.Penalty = *input.Penalty
	}
	if err := s.specialRepo.Update(ctx, st); err != nil {
		return nil, handleRepositoryError(err)
	}
	return st, nil
}

func (s *specialTypeService) DeleteSpecialType(ctx context.Context, id int) error {
	if err := s.specialRepo.Delete(ctx, id); err != nil {
		return handleRepositoryError(err)
	}
	return nil
}
