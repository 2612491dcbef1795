package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lucasferreira/vitrine-backend/internal/activity"
	"github.com/lucasferreira/vitrine-backend/internal/transactions"
	"github.com/lucasferreira/vitrine-backend/pkg/db/models"
	"github.com/lucasferreira/vitrine-backend/pkg/mercadopago"
	"gorm.io/gorm"
)

type stubGateway struct {
	payment    *mercadopago.Payment
	preference *mercadopago.Preference
	err        error
}

func (s *stubGateway) CreatePayment(_ context.Context, _ mercadopago.PaymentRequest) (*mercadopago.Payment, json.RawMessage, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	raw, _ := json.Marshal(s.payment)
	return s.payment, raw, nil
}

func (s *stubGateway) CreatePreference(_ context.Context, _ mercadopago.PreferenceRequest) (*mercadopago.Preference, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.preference, nil
}

type stubTransactionRepo struct {
	byReference map[string]*models.Transaction
	failErr     error
}

func (s *stubTransactionRepo) WithTx(_ *gorm.DB) transactions.Repository { return s }

func (s *stubTransactionRepo) Create(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	return s.UpsertByReference(nil, tx)
}

func (s *stubTransactionRepo) FindByID(_ context.Context, _ uint) (*models.Transaction, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTransactionRepo) FindByReference(_ context.Context, ref string) (*models.Transaction, error) {
	tx, ok := s.byReference[ref]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tx, nil
}

func (s *stubTransactionRepo) UpsertByReference(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	if s.byReference == nil {
		s.byReference = map[string]*models.Transaction{}
	}
	tx.ID = uint(len(s.byReference) + 1)
	s.byReference[tx.Referencia] = tx
	return tx, nil
}

func (s *stubTransactionRepo) List(_ context.Context, _, _ int) ([]models.Transaction, error) {
	return nil, nil
}

type stubActivityRepo struct {
	entries []*models.ActivityEntry
}

func (s *stubActivityRepo) WithTx(_ *gorm.DB) activity.Repository { return s }

func (s *stubActivityRepo) Append(_ context.Context, entry *models.ActivityEntry) (*models.ActivityEntry, error) {
	s.entries = append(s.entries, entry)
	return entry, nil
}

func (s *stubActivityRepo) List(_ context.Context, _, _ int) ([]models.ActivityEntry, error) {
	return nil, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func TestCreatePaymentStoresTransactionAndActivity(t *testing.T) {
	gateway := &stubGateway{payment: &mercadopago.Payment{
		ID:                888,
		Status:            "approved",
		TransactionAmount: 75.5,
		PaymentMethodID:   "pix",
	}}
	txRepo := &stubTransactionRepo{}
	actRepo := &stubActivityRepo{}
	svc, err := NewService(ServiceParams{
		Gateway:           gateway,
		TransactionRepo:   txRepo,
		ActivityRepo:      actRepo,
		TransactionRunner: stubTxRunner{},
	})
	if err != nil {
		t.Fatalf("setup service: %v", err)
	}

	payment, err := svc.CreatePayment(context.Background(), mercadopago.PaymentRequest{})
	if err != nil {
		t.Fatalf("create payment: %v", err)
	}
	if payment.ID != 888 {
		t.Fatalf("unexpected payment %+v", payment)
	}

	stored, ok := txRepo.byReference["888"]
	if !ok {
		t.Fatalf("expected local transaction for reference 888")
	}
	if stored.Status != "approved" || stored.Metodo != "pix" {
		t.Fatalf("unexpected transaction %+v", stored)
	}
	if len(actRepo.entries) != 1 {
		t.Fatalf("expected one activity entry, got %d", len(actRepo.entries))
	}
}

func TestCreatePaymentPropagatesGatewayError(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Gateway:           &stubGateway{err: errors.New("card declined")},
		TransactionRepo:   &stubTransactionRepo{},
		ActivityRepo:      &stubActivityRepo{},
		TransactionRunner: stubTxRunner{},
	})
	if err != nil {
		t.Fatalf("setup service: %v", err)
	}

	if _, err := svc.CreatePayment(context.Background(), mercadopago.PaymentRequest{}); err == nil {
		t.Fatalf("expected gateway error")
	}
}

func TestCreatePreferencePassesThrough(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Gateway:           &stubGateway{preference: &mercadopago.Preference{ID: "pref-1", InitPoint: "https://mp/init"}},
		TransactionRepo:   &stubTransactionRepo{},
		ActivityRepo:      &stubActivityRepo{},
		TransactionRunner: stubTxRunner{},
	})
	if err != nil {
		t.Fatalf("setup service: %v", err)
	}

	pref, err := svc.CreatePreference(context.Background(), mercadopago.PreferenceRequest{})
	if err != nil {
		t.Fatalf("create preference: %v", err)
	}
	if pref.InitPoint != "https://mp/init" {
		t.Fatalf("unexpected preference %+v", pref)
	}
}
