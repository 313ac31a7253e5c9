package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hypernova-labs/garage-service/internal/models"
)

func TestPayMarksInvoicePaid(t *testing.T) {
	id := uuid.New()
	invoices := &stubInvoiceStore{stored: map[string]*models.Invoice{
		id.String(): {ID: id, Total: 52.92, Paid: false},
	}}
	service := NewInvoiceService(invoices, testLogger())

	invoice, err := service.Pay(id)
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if !invoice.Paid {
		t.Error("expected invoice marked as paid")
	}
}

func TestPayIsIdempotent(t *testing.T) {
	id := uuid.New()
	invoices := &stubInvoiceStore{stored: map[string]*models.Invoice{
		id.String(): {ID: id, Total: 171.72, Paid: false},
	}}
	service := NewInvoiceService(invoices, testLogger())

	for i := 0; i < 2; i++ {
		invoice, err := service.Pay(id)
		if err != nil {
			t.Fatalf("Pay call %d: %v", i+1, err)
		}
		if !invoice.Paid {
			t.Fatalf("Pay call %d: expected paid=true", i+1)
		}
	}
}

func TestPayUnknownInvoiceReturnsNotFound(t *testing.T) {
	invoices := &stubInvoiceStore{stored: map[string]*models.Invoice{}}
	service := NewInvoiceService(invoices, testLogger())

	_, err := service.Pay(uuid.New())
	if err == nil {
		t.Fatal("expected error for unknown invoice")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}
