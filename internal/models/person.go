package models

import (
	"strings"
	"time"
)

// Marital status values accepted for a person record. Spouse fields are
// only meaningful while the status is "casado".
const (
	MaritalSingle    = "solteiro"
	MaritalMarried   = "casado"
	MaritalWidowed   = "viuvo"
	MaritalSeparated = "separado"
)

// MaritalStatuses lists the valid estado_civil values.
var MaritalStatuses = []string{
	MaritalSingle,
	MaritalMarried,
	MaritalWidowed,
	MaritalSeparated,
}

// ValidMaritalStatus reports whether s is one of the known statuses.
func ValidMaritalStatus(s string) bool {
	for _, v := range MaritalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Person is a member record ("irmão"): personal, marital, address,
// financial and dependents data. Dates are stored as yyyy-mm-dd
// strings, money as base-unit BRL.
type Person struct {
	ID        string    `json:"id"`
	CreatedBy *string   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          *string `json:"nome"`
	Age           *int    `json:"idade"`
	YearsOfFaith  *int    `json:"tempo_crente_anos"`
	RecordNumber  *string `json:"numero_prontuario"`
	MaritalStatus string  `json:"estado_civil"`
	BirthDate     *string `json:"data_nascimento"`

	SpouseName         *string `json:"conjugue_nome"`
	SpouseAge          *int    `json:"conjugue_idade"`
	SpouseYearsOfFaith *int    `json:"conjugue_tempo_crente_anos"`
	SpouseBirthDate    *string `json:"conjugue_data_nascimento"`

	Congregation *string `json:"congregacao_comum"`

	PostalCode   *string `json:"cep"`
	Street       *string `json:"rua"`
	HouseNumber  *string `json:"numero_residencia"`
	Neighborhood *string `json:"bairro"`
	City         *string `json:"cidade"`
	State        *string `json:"uf"`
	Address      *string `json:"endereco"`

	Rent        *float64 `json:"aluguel"`
	Salary      *float64 `json:"salario"`
	Pension     *float64 `json:"pensao"`
	MonthlyDues *float64 `json:"mensalidade"`

	HasDependents     bool     `json:"tem_dependentes"`
	DependentsAtHome  *int     `json:"dependentes_em_casa"`
	SonsAges          []int    `json:"filhos_idades"`
	DaughtersAges     []int    `json:"filhas_idades"`
	SonsCount         int      `json:"filhos_qtd"`
	DaughtersCount    int      `json:"filhas_qtd"`
	DependentsWorking *int     `json:"dependentes_trabalhando"`
	DependentsSalary  *float64 `json:"dependentes_salario"`
}

// PersonInput carries the mutable person fields for create and update
// requests. Normalize must be called before the payload is persisted.
type PersonInput struct {
	Name          *string `json:"nome"`
	Age           *int    `json:"idade"`
	YearsOfFaith  *int    `json:"tempo_crente_anos"`
	RecordNumber  *string `json:"numero_prontuario"`
	MaritalStatus string  `json:"estado_civil"`
	BirthDate     *string `json:"data_nascimento"`

	SpouseName         *string `json:"conjugue_nome"`
	SpouseAge          *int    `json:"conjugue_idade"`
	SpouseYearsOfFaith *int    `json:"conjugue_tempo_crente_anos"`
	SpouseBirthDate    *string `json:"conjugue_data_nascimento"`

	Congregation *string `json:"congregacao_comum"`

	PostalCode   *string `json:"cep"`
	Street       *string `json:"rua"`
	HouseNumber  *string `json:"numero_residencia"`
	Neighborhood *string `json:"bairro"`
	City         *string `json:"cidade"`
	State        *string `json:"uf"`
	Address      *string `json:"endereco"`

	Rent        *float64 `json:"aluguel"`
	Salary      *float64 `json:"salario"`
	Pension     *float64 `json:"pensao"`
	MonthlyDues *float64 `json:"mensalidade"`

	HasDependents     bool     `json:"tem_dependentes"`
	DependentsAtHome  *int     `json:"dependentes_em_casa"`
	SonsAges          []int    `json:"filhos_idades"`
	DaughtersAges     []int    `json:"filhas_idades"`
	DependentsWorking *int     `json:"dependentes_trabalhando"`
	DependentsSalary  *float64 `json:"dependentes_salario"`
}

// Normalize enforces the record invariants in place:
//   - spouse fields are nil unless the status is "casado"
//   - every dependents field is nil when HasDependents is false
//   - age lists keep only non-negative values, order preserved
//   - empty strings collapse to nil
//   - the composed address is rebuilt from its parts when any is set
func (in *PersonInput) Normalize() {
	in.Name = trimToNil(in.Name)
	in.RecordNumber = trimToNil(in.RecordNumber)
	in.Congregation = trimToNil(in.Congregation)
	in.PostalCode = trimToNil(in.PostalCode)
	in.Street = trimToNil(in.Street)
	in.HouseNumber = trimToNil(in.HouseNumber)
	in.Neighborhood = trimToNil(in.Neighborhood)
	in.City = trimToNil(in.City)
	in.State = trimToNil(in.State)
	in.Address = trimToNil(in.Address)
	in.BirthDate = trimToNil(in.BirthDate)
	in.SpouseBirthDate = trimToNil(in.SpouseBirthDate)

	if in.MaritalStatus != MaritalMarried {
		in.SpouseName = nil
		in.SpouseAge = nil
		in.SpouseYearsOfFaith = nil
		in.SpouseBirthDate = nil
	} else {
		in.SpouseName = trimToNil(in.SpouseName)
	}

	if !in.HasDependents {
		in.DependentsAtHome = nil
		in.SonsAges = nil
		in.DaughtersAges = nil
		in.DependentsWorking = nil
		in.DependentsSalary = nil
	} else {
		in.SonsAges = filterAges(in.SonsAges)
		in.DaughtersAges = filterAges(in.DaughtersAges)
	}

	if composed := composeAddress(in.Street, in.HouseNumber, in.Neighborhood, in.City, in.State); composed != "" {
		in.Address = &composed
	}
}

// SonsQty returns the derived filhos_qtd value.
func (in *PersonInput) SonsQty() int { return len(in.SonsAges) }

// DaughtersQty returns the derived filhas_qtd value.
func (in *PersonInput) DaughtersQty() int { return len(in.DaughtersAges) }

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func filterAges(ages []int) []int {
	var out []int
	for _, a := range ages {
		if a >= 0 {
			out = append(out, a)
		}
	}
	return out
}

// composeAddress joins the non-empty address parts as
// "rua, numero, bairro, cidade/uf".
func composeAddress(street, number, neighborhood, city, state *string) string {
	var parts []string
	for _, p := range []*string{street, number, neighborhood} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	cityState := ""
	if city != nil && *city != "" {
		cityState = *city
	}
	if state != nil && *state != "" {
		if cityState != "" {
			cityState += "/" + *state
		} else {
			cityState = *state
		}
	}
	if cityState != "" {
		parts = append(parts, cityState)
	}
	return strings.Join(parts, ", ")
}
