package gateway

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	tx := Transaction{ID: "TXN-001", Amount: 250.5, Status: StatusInitiated}

	assert.NoError(t, store.Save(ctx, tx))

	got, err := store.Get(ctx, "TXN-001")
	assert.NoError(t, err)
	assert.Equal(t, tx, got)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "TXN-404")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestUPIGateway_GeneratePaymentLink(t *testing.T) {
	g := NewUPIGateway(NewMemoryStore(), nil)
	ctx := context.Background()

	tx, err := g.GeneratePaymentLink(ctx, "TXN-001", 250.5, "client@upi", "INR")
	assert.NoError(t, err)

	assert.Equal(t, "TXN-001", tx.ID)
	assert.Equal(t, StatusInitiated, tx.Status)
	assert.Equal(t, "upi://pay?pa=client@upi&pn=FreelanceNexus&am=250.50&cu=INR&tn=TXN-001", tx.PaymentLink)

	decoded, err := base64.StdEncoding.DecodeString(tx.QRCode)
	assert.NoError(t, err)
	assert.Equal(t, tx.PaymentLink, string(decoded))
}

func TestUPIGateway_Verify_Success(t *testing.T) {
	store := NewMemoryStore()
	g := NewUPIGateway(store, func(int) int { return 0 })
	ctx := context.Background()

	_, err := g.GeneratePaymentLink(ctx, "TXN-001", 250.5, "client@upi", "INR")
	assert.NoError(t, err)

	v, err := g.Verify(ctx, "TXN-001")
	assert.NoError(t, err)
	assert.True(t, v.Succeeded)
	assert.Equal(t, StatusSuccess, v.Status)

	tx, err := store.Get(ctx, "TXN-001")
	assert.NoError(t, err)
	assert.Equal(t, StatusSuccess, tx.Status)
}

func TestUPIGateway_Verify_Failure(t *testing.T) {
	store := NewMemoryStore()
	g := NewUPIGateway(store, func(int) int { return 99 })
	ctx := context.Background()

	_, err := g.GeneratePaymentLink(ctx, "TXN-001", 250.5, "client@upi", "INR")
	assert.NoError(t, err)

	v, err := g.Verify(ctx, "TXN-001")
	assert.NoError(t, err)
	assert.False(t, v.Succeeded)
	assert.Equal(t, StatusFailed, v.Status)

	tx, err := store.Get(ctx, "TXN-001")
	assert.NoError(t, err)
	assert.Equal(t, StatusFailed, tx.Status)
}

func TestUPIGateway_Verify_UnknownTransaction(t *testing.T) {
	g := NewUPIGateway(NewMemoryStore(), nil)

	_, err := g.Verify(context.Background(), "TXN-404")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestUPIGateway_Refund_Success(t *testing.T) {
	store := NewMemoryStore()
	g := NewUPIGateway(store, func(int) int { return 0 })
	ctx := context.Background()

	_, err := g.GeneratePaymentLink(ctx, "TXN-001", 250.5, "client@upi", "INR")
	assert.NoError(t, err)
	_, err = g.Verify(ctx, "TXN-001")
	assert.NoError(t, err)

	r, err := g.Refund(ctx, "TXN-001")
	assert.NoError(t, err)
	assert.True(t, r.Succeeded)
	assert.True(t, strings.HasPrefix(r.RefundID, "RFD-"))
}

func TestUPIGateway_Refund_SimulatedFailure(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	successRoll := NewUPIGateway(store, func(int) int { return 0 })
	_, err := successRoll.GeneratePaymentLink(ctx, "TXN-001", 250.5, "client@upi", "INR")
	assert.NoError(t, err)
	_, err = successRoll.Verify(ctx, "TXN-001")
	assert.NoError(t, err)

	failRoll := NewUPIGateway(store, func(int) int { return 99 })

	r, err := failRoll.Refund(ctx, "TXN-001")
	assert.NoError(t, err)
	assert.False(t, r.Succeeded)
	assert.Empty(t, r.RefundID)
}

func TestUPIGateway_Refund_RequiresSuccessfulTransaction(t *testing.T) {
	store := NewMemoryStore()
	g := NewUPIGateway(store, func(int) int { return 0 })
	ctx := context.Background()

	_, err := g.GeneratePaymentLink(ctx, "TXN-001", 250.5, "client@upi", "INR")
	assert.NoError(t, err)

	// Still INITIATED, never verified.
	_, err = g.Refund(ctx, "TXN-001")
	assert.ErrorIs(t, err, ErrNotRefundable)
}

func TestUPIGateway_Refund_UnknownTransaction(t *testing.T) {
	g := NewUPIGateway(NewMemoryStore(), nil)

	_, err := g.Refund(context.Background(), "TXN-404")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
