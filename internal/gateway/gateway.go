// Package gateway simulates the UPI payment gateway the payment service
// verifies transactions against. Transaction state lives behind the Store
// interface and the success/failure dice behind an injectable roll, so the
// probabilistic behavior stays in this placeholder adapter and tests run
// deterministically.
package gateway

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotRefundable       = errors.New("only successful transactions can be refunded")
)

// Status of a gateway transaction.
type Status string

const (
	StatusInitiated Status = "INITIATED"
	StatusSuccess   Status = "SUCCESS"
	StatusFailed    Status = "FAILED"
)

// Transaction is one payment attempt tracked by the gateway.
type Transaction struct {
	ID          string
	UPIID       string
	Amount      float64
	Currency    string
	PaymentLink string
	QRCode      string
	Status      Status
	Message     string
}

// Store holds gateway transaction state. Injected per gateway instance, not
// a process-wide singleton.
type Store interface {
	Save(ctx context.Context, tx Transaction) error
	Get(ctx context.Context, id string) (Transaction, error)
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	mu  sync.RWMutex
	txs map[string]Transaction
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{txs: make(map[string]Transaction)}
}

// Save stores or replaces a transaction.
func (s *MemoryStore) Save(_ context.Context, tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs[tx.ID] = tx
	return nil
}

// Get returns a transaction or ErrTransactionNotFound.
func (s *MemoryStore) Get(_ context.Context, id string) (Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return Transaction{}, ErrTransactionNotFound
	}
	return tx, nil
}

// Verification is the outcome of a verify call.
type Verification struct {
	Succeeded bool
	Status    Status
	Message   string
}

// RefundResult is the outcome of a refund call.
type RefundResult struct {
	Succeeded bool
	RefundID  string
	Message   string
}

// UPIGateway is the simulated gateway adapter.
type UPIGateway struct {
	store Store
	roll  func(n int) int
}

// NewUPIGateway creates a gateway over the given store. roll may be nil, in
// which case math/rand drives the simulated outcomes.
func NewUPIGateway(store Store, roll func(n int) int) *UPIGateway {
	if roll == nil {
		roll = rand.Intn
	}
	return &UPIGateway{store: store, roll: roll}
}

// GeneratePaymentLink creates and stores an INITIATED transaction with a
// simulated UPI link and QR code.
func (g *UPIGateway) GeneratePaymentLink(ctx context.Context, transactionID string, amount float64, upiID, currency string) (Transaction, error) {
	link := fmt.Sprintf("upi://pay?pa=%s&pn=FreelanceNexus&am=%.2f&cu=%s&tn=%s", upiID, amount, currency, transactionID)

	tx := Transaction{
		ID:          transactionID,
		UPIID:       upiID,
		Amount:      amount,
		Currency:    currency,
		PaymentLink: link,
		QRCode:      base64.StdEncoding.EncodeToString([]byte(link)),
		Status:      StatusInitiated,
		Message:     "UPI payment link generated successfully",
	}

	if err := g.store.Save(ctx, tx); err != nil {
		return Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	zlog.Logger.Info().Str("transaction_id", transactionID).Msg("UPI payment link generated")
	return tx, nil
}

// Verify checks a transaction against the simulated gateway: 90% success.
func (g *UPIGateway) Verify(ctx context.Context, transactionID string) (Verification, error) {
	tx, err := g.store.Get(ctx, transactionID)
	if err != nil {
		return Verification{}, fmt.Errorf("verify transaction %s: %w", transactionID, err)
	}

	succeeded := g.roll(100) < 90

	if succeeded {
		tx.Status = StatusSuccess
		tx.Message = "Payment verified successfully"
	} else {
		tx.Status = StatusFailed
		tx.Message = "Payment verification failed - insufficient funds or user cancelled"
	}

	if err := g.store.Save(ctx, tx); err != nil {
		return Verification{}, fmt.Errorf("save transaction: %w", err)
	}

	zlog.Logger.Info().Str("transaction_id", transactionID).Str("status", string(tx.Status)).Msg("UPI payment verified")

	return Verification{Succeeded: succeeded, Status: tx.Status, Message: tx.Message}, nil
}

// Refund initiates a refund for a successful transaction: 95% success.
func (g *UPIGateway) Refund(ctx context.Context, transactionID string) (RefundResult, error) {
	tx, err := g.store.Get(ctx, transactionID)
	if err != nil {
		return RefundResult{}, fmt.Errorf("refund transaction %s: %w", transactionID, err)
	}

	if tx.Status != StatusSuccess {
		return RefundResult{}, ErrNotRefundable
	}

	succeeded := g.roll(100) < 95

	result := RefundResult{
		Succeeded: succeeded,
		Message:   "Refund initiation failed. Please try again later",
	}
	if succeeded {
		result.RefundID = "RFD-" + uuid.NewString()
		result.Message = "Refund initiated successfully. Amount will be credited within 5-7 business days"
	}

	zlog.Logger.Info().Str("transaction_id", transactionID).Bool("succeeded", succeeded).Msg("UPI refund initiated")

	return result, nil
}
