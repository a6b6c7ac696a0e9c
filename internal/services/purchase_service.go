package services

import (
	"context"
	"errors"
	"fmt"

	"caderneta-backend/internal/format"
	"caderneta-backend/internal/models"
	"caderneta-backend/internal/repositories"
)

var ErrNegativeAmount = errors.New("valor cannot be negative")

type PurchaseService struct {
	Repo    *repositories.PurchaseRepository
	Persons *repositories.PersonRepository
}

func NewPurchaseService(repo *repositories.PurchaseRepository, persons *repositories.PersonRepository) *PurchaseService {
	return &PurchaseService{Repo: repo, Persons: persons}
}

// ListByPerson returns the purchase history of one record. The owner
// must exist; a missing person surfaces as pgx.ErrNoRows.
func (s *PurchaseService) ListByPerson(ctx context.Context, personID string) ([]*models.Purchase, error) {
	if _, err := s.Persons.Get(ctx, personID); err != nil {
		return nil, err
	}
	purchases, err := s.Repo.ListByPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	if purchases == nil {
		purchases = []*models.Purchase{}
	}
	return purchases, nil
}

// Create adds a line item to a person's history.
func (s *PurchaseService) Create(ctx context.Context, personID string, in *models.PurchaseInput, createdBy string) (*models.Purchase, error) {
	if err := validatePurchaseInput(in); err != nil {
		return nil, err
	}
	if _, err := s.Persons.Get(ctx, personID); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.Repo.Create(ctx, personID, in, createdBy)
}

// Update rewrites a line item; the row must belong to the person.
func (s *PurchaseService) Update(ctx context.Context, personID, id string, in *models.PurchaseInput) (*models.Purchase, error) {
	if err := validatePurchaseInput(in); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.Repo.Update(ctx, personID, id, in)
}

// Delete removes a line item; the row must belong to the person.
func (s *PurchaseService) Delete(ctx context.Context, personID, id string) error {
	return s.Repo.Delete(ctx, personID, id)
}

func validatePurchaseInput(in *models.PurchaseInput) error {
	if in.Amount < 0 {
		return ErrNegativeAmount
	}
	if in.Date != nil && *in.Date != "" && format.StorageDateToDisplay(*in.Date) == "" {
		return ErrInvalidDate
	}
	return nil
}
