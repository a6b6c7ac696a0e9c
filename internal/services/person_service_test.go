package services

import (
	"errors"
	"testing"

	"caderneta-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func TestPersonPagePagination(t *testing.T) {
	// 25 records at page size 10: pages 1 and 2 are full, page 3 holds
	// the last 5 and has no next.
	tests := []struct {
		page    int
		hasPrev bool
		hasNext bool
	}{
		{1, false, true},
		{2, true, true},
		{3, true, false},
	}
	for _, tt := range tests {
		p := &PersonPage{Total: 25, Page: tt.page, PageSize: PageSize}
		if got := p.HasPrev(); got != tt.hasPrev {
			t.Errorf("page %d HasPrev = %v, want %v", tt.page, got, tt.hasPrev)
		}
		if got := p.HasNext(); got != tt.hasNext {
			t.Errorf("page %d HasNext = %v, want %v", tt.page, got, tt.hasNext)
		}
	}
}

func TestPersonPageExactMultiple(t *testing.T) {
	p := &PersonPage{Total: 20, Page: 2, PageSize: PageSize}
	if p.HasNext() {
		t.Error("page 2 of exactly 20 records should have no next page")
	}
}

func TestValidatePersonInputMaritalStatus(t *testing.T) {
	in := &models.PersonInput{MaritalStatus: "divorciado"}
	if err := validatePersonInput(in); !errors.Is(err, ErrInvalidMaritalStatus) {
		t.Errorf("err = %v, want ErrInvalidMaritalStatus", err)
	}

	in = &models.PersonInput{}
	if err := validatePersonInput(in); err != nil {
		t.Errorf("empty status should default, got %v", err)
	}
	if in.MaritalStatus != models.MaritalSingle {
		t.Errorf("status = %q, want default solteiro", in.MaritalStatus)
	}
}

func TestValidatePersonInputDates(t *testing.T) {
	in := &models.PersonInput{MaritalStatus: models.MaritalSingle, BirthDate: strPtr("25/12/2024")}
	if err := validatePersonInput(in); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("display-format date should be rejected, got %v", err)
	}

	in = &models.PersonInput{MaritalStatus: models.MaritalSingle, BirthDate: strPtr("2024-12-25")}
	if err := validatePersonInput(in); err != nil {
		t.Errorf("storage-format date should pass, got %v", err)
	}
}

func TestValidatePurchaseInput(t *testing.T) {
	if err := validatePurchaseInput(&models.PurchaseInput{Amount: -1}); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("negative amount should be rejected, got %v", err)
	}
	if err := validatePurchaseInput(&models.PurchaseInput{Amount: 10, Date: strPtr("2024-01-31")}); err != nil {
		t.Errorf("valid purchase rejected: %v", err)
	}
	if err := validatePurchaseInput(&models.PurchaseInput{Amount: 10, Date: strPtr("31/01/2024")}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("display-format date should be rejected, got %v", err)
	}
}
