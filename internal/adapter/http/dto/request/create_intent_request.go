package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidAmountValue = errors.New("invalid amount value")
	ErrMissingEmail       = errors.New("missing email")
)

// CreateIntentRequest is the payload for PIX charge creation.
//
// It accepts both the canonical English field names and the legacy
// Portuguese aliases used by the govbr checkout page (valor/nome/cpf), so
// either frontend generation can call the endpoint unchanged.
type CreateIntentRequest struct {
	Amount   float64 `json:"amount"`
	Valor    float64 `json:"valor"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Nome     string  `json:"nome"`
	Document string  `json:"document"`
	CPF      string  `json:"cpf"`
}

func (r CreateIntentRequest) ResolveAmount() (float64, error) {
	if r.Amount > 0 {
		return r.Amount, nil
	}
	if r.Valor > 0 {
		return r.Valor, nil
	}
	return 0, ErrInvalidAmountValue
}

func (r CreateIntentRequest) ResolveEmail() (string, error) {
	if v := strings.TrimSpace(r.Email); v != "" {
		return v, nil
	}
	return "", ErrMissingEmail
}

func (r CreateIntentRequest) ResolveName() string {
	if v := strings.TrimSpace(r.Name); v != "" {
		return v
	}
	return strings.TrimSpace(r.Nome)
}

func (r CreateIntentRequest) ResolveDocument() string {
	if v := strings.TrimSpace(r.Document); v != "" {
		return v
	}
	return strings.TrimSpace(r.CPF)
}
