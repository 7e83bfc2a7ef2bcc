package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces

// IPaymentGateway abstracts the external online-collection provider.
//
// The service uses it for the customer-initiated online flow only; staff
// receipts (cash/cheque/transfer/UPI) never touch the gateway. The raw
// provider response is persisted on the payment event for audit.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
