package repositories

import (
	"context"

	"caderneta-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository struct {
	DB *pgxpool.Pool
}

func NewPurchaseRepository(db *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

// ListByPerson returns every purchase owned by a person, newest date
// first and most recently created first within a date.
func (r *PurchaseRepository) ListByPerson(ctx context.Context, personID string) ([]*models.Purchase, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, person_id, created_by, created_at, data, descricao, valor
		 FROM purchases
		 WHERE person_id = $1
		 ORDER BY data DESC NULLS LAST, created_at DESC`,
		personID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.PersonID, &p.CreatedBy, &p.CreatedAt, &p.Date, &p.Description, &p.Amount); err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}

// Create inserts a purchase for a person.
func (r *PurchaseRepository) Create(ctx context.Context, personID string, in *models.PurchaseInput, createdBy string) (*models.Purchase, error) {
	var p models.Purchase
	err := r.DB.QueryRow(ctx,
		`INSERT INTO purchases(person_id, created_by, data, descricao, valor)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id, person_id, created_by, created_at, data, descricao, valor`,
		personID, createdBy, in.Date, in.Description, in.Amount,
	).Scan(&p.ID, &p.PersonID, &p.CreatedBy, &p.CreatedAt, &p.Date, &p.Description, &p.Amount)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update rewrites a purchase, scoped to its owning person so a row can
// never be edited through another person's URL. Returns pgx.ErrNoRows
// when the pair does not match.
func (r *PurchaseRepository) Update(ctx context.Context, personID, id string, in *models.PurchaseInput) (*models.Purchase, error) {
	var p models.Purchase
	err := r.DB.QueryRow(ctx,
		`UPDATE purchases SET data = $3, descricao = $4, valor = $5
		 WHERE id = $1 AND person_id = $2
		 RETURNING id, person_id, created_by, created_at, data, descricao, valor`,
		id, personID, in.Date, in.Description, in.Amount,
	).Scan(&p.ID, &p.PersonID, &p.CreatedBy, &p.CreatedAt, &p.Date, &p.Description, &p.Amount)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a purchase, scoped to its owning person.
func (r *PurchaseRepository) Delete(ctx context.Context, personID, id string) error {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM purchases WHERE id = $1 AND person_id = $2`, id, personID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
