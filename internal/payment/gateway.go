package payment

import "context"

// Client-side confirmation statuses reported back by the processor.
const (
	StatusSucceeded             = "succeeded"
	StatusProcessing            = "processing"
	StatusRequiresPaymentMethod = "requires_payment_method"
)

// Gateway creates payment intents. Amounts are integer minor currency
// units (cents), which is what the processor's API takes.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}
