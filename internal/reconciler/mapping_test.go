package reconciler

import (
	"encoding/json"
	"testing"

	"github.com/lucasferreira/vitrine-backend/pkg/mercadopago"
	"github.com/shopspring/decimal"
)

func TestBuildTransactionMapsFullPayer(t *testing.T) {
	payment := &mercadopago.Payment{
		ID:                999,
		Status:            "approved",
		TransactionAmount: 150.0,
		Payer: &mercadopago.Payer{
			FirstName: "Ana",
			LastName:  "Lima",
			Email:     "ana@x.com",
		},
	}
	raw, _ := json.Marshal(payment)

	tx := BuildTransaction(payment, raw)

	if tx.ClienteNome != "Ana Lima" {
		t.Fatalf("expected cliente nome Ana Lima got %q", tx.ClienteNome)
	}
	if tx.ClienteEmail != "ana@x.com" {
		t.Fatalf("expected payer email got %q", tx.ClienteEmail)
	}
	if !tx.Valor.Equal(decimal.NewFromFloat(150.0)) {
		t.Fatalf("expected valor 150 got %s", tx.Valor)
	}
	if tx.Status != "approved" {
		t.Fatalf("expected status approved got %q", tx.Status)
	}
	if tx.Referencia != "999" {
		t.Fatalf("expected referencia 999 got %q", tx.Referencia)
	}
	if tx.Moeda != "BRL" {
		t.Fatalf("expected default moeda BRL got %q", tx.Moeda)
	}
	if tx.Metodo != "mercadopago" {
		t.Fatalf("expected default metodo got %q", tx.Metodo)
	}
}

func TestBuildTransactionDefaultsMissingPayer(t *testing.T) {
	tx := BuildTransaction(&mercadopago.Payment{ID: 42}, nil)

	if tx.ClienteNome != "Cliente" {
		t.Fatalf("expected placeholder nome got %q", tx.ClienteNome)
	}
	if tx.ClienteEmail != "email@exemplo.com" {
		t.Fatalf("expected placeholder email got %q", tx.ClienteEmail)
	}
	if !tx.Valor.IsZero() {
		t.Fatalf("expected zero valor got %s", tx.Valor)
	}
	if tx.Status != "pending" {
		t.Fatalf("expected default status got %q", tx.Status)
	}
}

func TestBuildTransactionRequiresBothPayerNames(t *testing.T) {
	tx := BuildTransaction(&mercadopago.Payment{
		ID:    7,
		Payer: &mercadopago.Payer{FirstName: "Ana"},
	}, nil)

	if tx.ClienteNome != "Cliente" {
		t.Fatalf("expected placeholder nome when last name missing, got %q", tx.ClienteNome)
	}
}

func TestParseCheckoutID(t *testing.T) {
	cases := []struct {
		ref  string
		want *uint
	}{
		{ref: ""},
		{ref: "abc"},
		{ref: "0"},
		{ref: "-3"},
		{ref: "12", want: uintPtr(12)},
		{ref: " 12 ", want: uintPtr(12)},
	}

	for _, tc := range cases {
		got := parseCheckoutID(tc.ref)
		if tc.want == nil {
			if got != nil {
				t.Fatalf("ref %q: expected nil got %d", tc.ref, *got)
			}
			continue
		}
		if got == nil || *got != *tc.want {
			t.Fatalf("ref %q: expected %d got %v", tc.ref, *tc.want, got)
		}
	}
}

func uintPtr(v uint) *uint { return &v }
