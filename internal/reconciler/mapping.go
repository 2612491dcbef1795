package reconciler

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"github.com/lucasferreira/vitrine-backend/pkg/mercadopago"
	"github.com/shopspring/decimal"
)

// Notification carries the query parameters of one inbound gateway call.
type Notification struct {
	Topic string
	ID    string
	URL   string
}

const (
	TopicPayment       = "payment"
	TopicMerchantOrder = "merchant_order"
)

const (
	defaultClienteNome  = "Cliente"
	defaultClienteEmail = "email@exemplo.com"
	defaultMoeda        = "BRL"
	defaultStatus       = "pending"
	defaultMetodo       = "mercadopago"
)

// BuildTransaction derives the canonical transaction row from the gateway's
// authoritative payment object. The mapping is deterministic: every field
// absent from the payload falls back to a fixed default, and an absent or
// non-numeric external_reference leaves the checkout reference NULL.
func BuildTransaction(payment *mercadopago.Payment, raw json.RawMessage) *models.Transaction {
	tx := &models.Transaction{
		ClienteNome:  defaultClienteNome,
		ClienteEmail: defaultClienteEmail,
		Valor:        decimal.Zero,
		Moeda:        defaultMoeda,
		Status:       defaultStatus,
		Metodo:       defaultMetodo,
		Referencia:   strconv.FormatInt(payment.ID, 10),
		Metadata:     raw,
	}

	if payer := payment.Payer; payer != nil {
		if payer.FirstName != "" && payer.LastName != "" {
			tx.ClienteNome = payer.FirstName + " " + payer.LastName
		}
		if payer.Email != "" {
			tx.ClienteEmail = payer.Email
		}
	}
	if payment.TransactionAmount != 0 {
		tx.Valor = decimal.NewFromFloat(payment.TransactionAmount)
	}
	if payment.CurrencyID != "" {
		tx.Moeda = payment.CurrencyID
	}
	if payment.Status != "" {
		tx.Status = payment.Status
	}
	if payment.PaymentMethodID != "" {
		tx.Metodo = payment.PaymentMethodID
	}
	tx.CheckoutID = parseCheckoutID(payment.ExternalReference)

	return tx
}

func parseCheckoutID(ref string) *uint {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(ref, 10, 32)
	if err != nil || parsed == 0 {
		return nil
	}
	id := uint(parsed)
	return &id
}
