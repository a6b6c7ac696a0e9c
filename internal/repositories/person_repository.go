package repositories

import (
	"context"

	"caderneta-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PersonRepository struct {
	DB *pgxpool.Pool
}

func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{DB: db}
}

const personColumns = `id, created_by, created_at, updated_at,
	nome, idade, tempo_crente_anos, numero_prontuario, estado_civil, data_nascimento,
	conjugue_nome, conjugue_idade, conjugue_tempo_crente_anos, conjugue_data_nascimento,
	congregacao_comum,
	cep, rua, numero_residencia, bairro, cidade, uf, endereco,
	aluguel, salario, pensao, mensalidade,
	tem_dependentes, dependentes_em_casa, filhos_idades, filhas_idades,
	filhos_qtd, filhas_qtd, dependentes_trabalhando, dependentes_salario`

func scanPerson(row pgx.Row) (*models.Person, error) {
	var p models.Person
	err := row.Scan(
		&p.ID, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.Name, &p.Age, &p.YearsOfFaith, &p.RecordNumber, &p.MaritalStatus, &p.BirthDate,
		&p.SpouseName, &p.SpouseAge, &p.SpouseYearsOfFaith, &p.SpouseBirthDate,
		&p.Congregation,
		&p.PostalCode, &p.Street, &p.HouseNumber, &p.Neighborhood, &p.City, &p.State, &p.Address,
		&p.Rent, &p.Salary, &p.Pension, &p.MonthlyDues,
		&p.HasDependents, &p.DependentsAtHome, &p.SonsAges, &p.DaughtersAges,
		&p.SonsCount, &p.DaughtersCount, &p.DependentsWorking, &p.DependentsSalary,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Search returns one page of records matching the filter plus the exact
// total count. The filter is a case-insensitive substring match on name
// or record number; an empty filter matches everything. Results are
// ordered newest created first.
func (r *PersonRepository) Search(ctx context.Context, query string, limit, offset int) ([]*models.Person, int, error) {
	pattern := "%" + query + "%"

	var total int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM persons
		 WHERE $1 = '' OR nome ILIKE $2 OR numero_prontuario ILIKE $2`,
		query, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx,
		`SELECT `+personColumns+` FROM persons
		 WHERE $1 = '' OR nome ILIKE $2 OR numero_prontuario ILIKE $2
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		query, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var persons []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, err
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return persons, total, nil
}

// Get returns one record by ID, or pgx.ErrNoRows.
func (r *PersonRepository) Get(ctx context.Context, id string) (*models.Person, error) {
	return scanPerson(r.DB.QueryRow(ctx,
		`SELECT `+personColumns+` FROM persons WHERE id = $1`, id,
	))
}

// Create inserts a normalized record and returns the stored row.
func (r *PersonRepository) Create(ctx context.Context, in *models.PersonInput, createdBy string) (*models.Person, error) {
	return scanPerson(r.DB.QueryRow(ctx,
		`INSERT INTO persons(
			created_by,
			nome, idade, tempo_crente_anos, numero_prontuario, estado_civil, data_nascimento,
			conjugue_nome, conjugue_idade, conjugue_tempo_crente_anos, conjugue_data_nascimento,
			congregacao_comum,
			cep, rua, numero_residencia, bairro, cidade, uf, endereco,
			aluguel, salario, pensao, mensalidade,
			tem_dependentes, dependentes_em_casa, filhos_idades, filhas_idades,
			filhos_qtd, filhas_qtd, dependentes_trabalhando, dependentes_salario
		) VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)
		RETURNING `+personColumns,
		createdBy,
		in.Name, in.Age, in.YearsOfFaith, in.RecordNumber, in.MaritalStatus, in.BirthDate,
		in.SpouseName, in.SpouseAge, in.SpouseYearsOfFaith, in.SpouseBirthDate,
		in.Congregation,
		in.PostalCode, in.Street, in.HouseNumber, in.Neighborhood, in.City, in.State, in.Address,
		in.Rent, in.Salary, in.Pension, in.MonthlyDues,
		in.HasDependents, in.DependentsAtHome, in.SonsAges, in.DaughtersAges,
		in.SonsQty(), in.DaughtersQty(), in.DependentsWorking, in.DependentsSalary,
	))
}

// Update rewrites every mutable field of a record and bumps updated_at.
// Returns pgx.ErrNoRows when the record does not exist.
func (r *PersonRepository) Update(ctx context.Context, id string, in *models.PersonInput) (*models.Person, error) {
	return scanPerson(r.DB.QueryRow(ctx,
		`UPDATE persons SET
			nome = $2, idade = $3, tempo_crente_anos = $4, numero_prontuario = $5,
			estado_civil = $6, data_nascimento = $7,
			conjugue_nome = $8, conjugue_idade = $9, conjugue_tempo_crente_anos = $10,
			conjugue_data_nascimento = $11,
			congregacao_comum = $12,
			cep = $13, rua = $14, numero_residencia = $15, bairro = $16, cidade = $17,
			uf = $18, endereco = $19,
			aluguel = $20, salario = $21, pensao = $22, mensalidade = $23,
			tem_dependentes = $24, dependentes_em_casa = $25, filhos_idades = $26,
			filhas_idades = $27, filhos_qtd = $28, filhas_qtd = $29,
			dependentes_trabalhando = $30, dependentes_salario = $31,
			updated_at = now()
		WHERE id = $1
		RETURNING `+personColumns,
		id,
		in.Name, in.Age, in.YearsOfFaith, in.RecordNumber, in.MaritalStatus, in.BirthDate,
		in.SpouseName, in.SpouseAge, in.SpouseYearsOfFaith, in.SpouseBirthDate,
		in.Congregation,
		in.PostalCode, in.Street, in.HouseNumber, in.Neighborhood, in.City, in.State, in.Address,
		in.Rent, in.Salary, in.Pension, in.MonthlyDues,
		in.HasDependents, in.DependentsAtHome, in.SonsAges, in.DaughtersAges,
		in.SonsQty(), in.DaughtersQty(), in.DependentsWorking, in.DependentsSalary,
	))
}

// Delete removes a record; its purchases cascade at the database level.
// Returns pgx.ErrNoRows when nothing was deleted.
func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
