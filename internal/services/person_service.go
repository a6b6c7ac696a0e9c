package services

import (
	"context"
	"errors"
	"fmt"

	"caderneta-backend/internal/format"
	"caderneta-backend/internal/models"
	"caderneta-backend/internal/repositories"
)

// PageSize is the fixed page size of the record list.
const PageSize = 10

var (
	ErrInvalidMaritalStatus = errors.New("invalid estado_civil")
	ErrInvalidDate          = errors.New("dates must use the yyyy-mm-dd format")
)

// PersonPage is one page of search results with the exact total.
type PersonPage struct {
	Persons  []*models.Person `json:"persons"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// HasPrev reports whether a previous page exists.
func (p *PersonPage) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether records remain beyond this page.
func (p *PersonPage) HasNext() bool { return p.Page*p.PageSize < p.Total }

type PersonService struct {
	Repo *repositories.PersonRepository
}

func NewPersonService(repo *repositories.PersonRepository) *PersonService {
	return &PersonService{Repo: repo}
}

// Search returns one page of records matching the filter. Pages are
// 1-based; anything below 1 is clamped.
func (s *PersonService) Search(ctx context.Context, query string, page int) (*PersonPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	persons, total, err := s.Repo.Search(ctx, query, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("search persons: %w", err)
	}
	if persons == nil {
		persons = []*models.Person{}
	}
	return &PersonPage{Persons: persons, Total: total, Page: page, PageSize: PageSize}, nil
}

// Get returns one record by ID.
func (s *PersonService) Get(ctx context.Context, id string) (*models.Person, error) {
	return s.Repo.Get(ctx, id)
}

// Create validates, normalizes and inserts a record.
func (s *PersonService) Create(ctx context.Context, in *models.PersonInput, createdBy string) (*models.Person, error) {
	if err := validatePersonInput(in); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.Repo.Create(ctx, in, createdBy)
}

// Update validates, normalizes and rewrites a record.
func (s *PersonService) Update(ctx context.Context, id string, in *models.PersonInput) (*models.Person, error) {
	if err := validatePersonInput(in); err != nil {
		return nil, err
	}
	in.Normalize()
	return s.Repo.Update(ctx, id, in)
}

// Delete removes a record and its purchase history.
func (s *PersonService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validatePersonInput(in *models.PersonInput) error {
	if in.MaritalStatus == "" {
		in.MaritalStatus = models.MaritalSingle
	}
	if !models.ValidMaritalStatus(in.MaritalStatus) {
		return ErrInvalidMaritalStatus
	}
	for _, d := range []*string{in.BirthDate, in.SpouseBirthDate} {
		if d != nil && *d != "" && format.StorageDateToDisplay(*d) == "" {
			return ErrInvalidDate
		}
	}
	return nil
}
