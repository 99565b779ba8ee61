package lifecycle

// Status is the backend-assigned lifecycle stage of an order. The backend
// is the only party that transitions it; this service treats the value as
// opaque and never infers or advances a status locally.
type Status string

const (
	StatusPaymentPending            Status = "PAYMENT_PENDING"
	StatusShippingInfoPending       Status = "SHIPPING_INFO_PENDING"
	StatusSellerConfirmationPending Status = "SELLER_CONFIRMATION_PENDING"
	StatusInTransit                 Status = "IN_TRANSIT"
	StatusBuyerConfirmationPending  Status = "BUYER_CONFIRMATION_PENDING"
	StatusCompleted                 Status = "COMPLETED"
	StatusCancelled                 Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPaymentPending, StatusShippingInfoPending, StatusSellerConfirmationPending,
		StatusInTransit, StatusBuyerConfirmationPending, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// StepDescriptor is one entry of the fixed happy-path sequence.
type StepDescriptor struct {
	Status Status `json:"status"`
	Number int    `json:"number"`
	Label  string `json:"label"`
}

// TotalSteps is the length of the happy-path sequence.
const TotalSteps = 5

// Steps is the fixed happy-path table, ordered by step number.
// BUYER_CONFIRMATION_PENDING has no row of its own: the buyer confirms
// while the shipment is still outstanding, so it shares step 4 with
// IN_TRANSIT.
var Steps = [TotalSteps]StepDescriptor{
	{Status: StatusPaymentPending, Number: 1, Label: "Payment"},
	{Status: StatusShippingInfoPending, Number: 2, Label: "Shipping Address"},
	{Status: StatusSellerConfirmationPending, Number: 3, Label: "Seller Confirmation"},
	{Status: StatusInTransit, Number: 4, Label: "In Transit"},
	{Status: StatusCompleted, Number: 5, Label: "Completed"},
}

// StepNumber maps a status to its position in the happy-path sequence.
// CANCELLED and any unrecognized value map to 0 ("no progress"); the
// unknown fallback is a defensive default for malformed backend data,
// not a normal code path.
func StepNumber(s Status) int {
	switch s {
	case StatusCancelled:
		return 0
	case StatusBuyerConfirmationPending:
		return 4
	}
	for _, step := range Steps {
		if step.Status == s {
			return step.Number
		}
	}
	return 0
}
