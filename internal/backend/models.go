package backend

import (
	"time"

	"github.com/hammerbid/ordertrack/internal/lifecycle"
)

// OrderView is the order+product aggregate as the auction backend returns
// it. The backend owns every field; this service never mutates the record,
// it only requests transitions and re-fetches.
type OrderView struct {
	OrderID     string           `json:"order_id"`
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	FinalPrice  int64            `json:"final_price"`
	BuyerID     string           `json:"buyer_id"`
	SellerID    string           `json:"seller_id"`
	Status      lifecycle.Status `json:"status"`

	PaymentID string     `json:"payment_id,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`

	Shipping *ShippingInfo `json:"shipping,omitempty"`

	TrackingNumber string     `json:"tracking_number,omitempty"`
	Carrier        string     `json:"carrier,omitempty"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	ReceivedAt     *time.Time `json:"received_at,omitempty"`

	PayoutID string `json:"payout_id,omitempty"`

	CancelReason string     `json:"cancel_reason,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	Rating *Rating `json:"rating,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShippingInfo struct {
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type ShipmentInfo struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
}

// Rating is the +1/-1 feedback one counterparty leaves for the other after
// completion. At most one per (giver, order) pair; the backend enforces
// the uniqueness.
type Rating struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	GiverID    string    `json:"giver_id"`
	ReceiverID string    `json:"receiver_id"`
	Value      int       `json:"value"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RatingRequest struct {
	OrderID string `json:"order_id"`
	Value   int    `json:"value"`
	Comment string `json:"comment,omitempty"`
}

type RatingUpdate struct {
	Value   int    `json:"value"`
	Comment string `json:"comment,omitempty"`
}
