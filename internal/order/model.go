package order

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// CartLine is one priced, quantity-bearing entry in an order.
// UnitPrice always comes from the catalog, never from the order text.
type CartLine struct {
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	AIHint          string  `json:"aiHint,omitempty"`
}

// Order invariant: TotalAmount is the sum of Quantity * UnitPrice
// across Items.
type Order struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Items         []CartLine `json:"items"`
	TotalAmount   float64    `json:"totalAmount"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	Status        string     `json:"status"`
	ClientSecret  string     `json:"clientSecret,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ResolvedCart is the resolver's answer for one order text.
//
// Zero lines with zero unmatched names means the interpreter understood
// nothing; zero lines with unmatched names means it understood things
// that are not on the menu. Callers must keep the two apart.
type ResolvedCart struct {
	Lines          []CartLine `json:"lines"`
	UnmatchedNames []string   `json:"unmatchedNames"`
	TotalAmount    float64    `json:"totalAmount"`
}

// NothingUnderstood reports the empty-interpreter-output outcome.
func (rc *ResolvedCart) NothingUnderstood() bool {
	return len(rc.Lines) == 0 && len(rc.UnmatchedNames) == 0
}
