package request

import (
	"errors"
	"testing"
)

func TestCreateIntentRequest_ResolveAmount(t *testing.T) {
	if v, err := (CreateIntentRequest{Amount: 10.5}).ResolveAmount(); err != nil || v != 10.5 {
		t.Fatalf("expected 10.5, got %v err=%v", v, err)
	}
	if v, err := (CreateIntentRequest{Valor: 7.2}).ResolveAmount(); err != nil || v != 7.2 {
		t.Fatalf("expected legacy alias 7.2, got %v err=%v", v, err)
	}
	// Canonical field wins when both are set.
	if v, err := (CreateIntentRequest{Amount: 1, Valor: 2}).ResolveAmount(); err != nil || v != 1 {
		t.Fatalf("expected canonical field to win, got %v err=%v", v, err)
	}
	for _, r := range []CreateIntentRequest{{}, {Amount: -1}, {Valor: -5}} {
		if _, err := r.ResolveAmount(); !errors.Is(err, ErrInvalidAmountValue) {
			t.Fatalf("expected ErrInvalidAmountValue for %+v, got %v", r, err)
		}
	}
}

func TestCreateIntentRequest_ResolveEmail(t *testing.T) {
	if v, err := (CreateIntentRequest{Email: " a@b.com "}).ResolveEmail(); err != nil || v != "a@b.com" {
		t.Fatalf("expected trimmed email, got %q err=%v", v, err)
	}
	if _, err := (CreateIntentRequest{Email: "   "}).ResolveEmail(); !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("expected ErrMissingEmail, got %v", err)
	}
}

func TestCreateIntentRequest_NameAndDocumentAliases(t *testing.T) {
	r := CreateIntentRequest{Nome: "Cliente", CPF: "12345678900"}
	if r.ResolveName() != "Cliente" || r.ResolveDocument() != "12345678900" {
		t.Fatalf("legacy aliases not resolved: %+v", r)
	}

	r = CreateIntentRequest{Name: "A", Nome: "B", Document: "1", CPF: "2"}
	if r.ResolveName() != "A" || r.ResolveDocument() != "1" {
		t.Fatalf("canonical fields must win: %+v", r)
	}
}
