// Package cep looks up Brazilian postal codes against the ViaCEP
// service. Callers treat it as best-effort address enrichment: lookup
// failures never block record creation.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"caderneta-backend/internal/format"
)

// ErrNotFound is returned when the service does not know the CEP.
var ErrNotFound = errors.New("cep not found")

// ErrInvalidCEP is returned when the input is not 8 digits.
var ErrInvalidCEP = errors.New("cep must have 8 digits")

// Address is the subset of the ViaCEP response the forms use.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"rua"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"uf"`
}

type viaCEPResponse struct {
	CEP          string    `json:"cep"`
	Street       string    `json:"logradouro"`
	Neighborhood string    `json:"bairro"`
	City         string    `json:"localidade"`
	State        string    `json:"uf"`
	NotFound     looseBool `json:"erro"`
}

// looseBool accepts both the boolean and the quoted "true" forms ViaCEP
// has used for its erro flag over the years.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	s := string(data)
	*b = s == "true" || s == `"true"`
	return nil
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup resolves an 8-digit CEP to an address. Returns ErrInvalidCEP
// for malformed input and ErrNotFound when the service reports the code
// as unknown.
func (c *Client) Lookup(ctx context.Context, rawCEP string) (*Address, error) {
	digits := format.DigitsOnly(rawCEP)
	if len(digits) != 8 {
		return nil, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.BaseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cep lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cep lookup: unexpected status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("cep lookup: decode: %w", err)
	}
	if body.NotFound {
		return nil, ErrNotFound
	}

	return &Address{
		CEP:          body.CEP,
		Street:       body.Street,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		State:        body.State,
	}, nil
}
