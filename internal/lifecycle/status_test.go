package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepNumber(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected int
	}{
		{
			name:     "payment pending is step 1",
			status:   StatusPaymentPending,
			expected: 1,
		},
		{
			name:     "shipping info pending is step 2",
			status:   StatusShippingInfoPending,
			expected: 2,
		},
		{
			name:     "seller confirmation pending is step 3",
			status:   StatusSellerConfirmationPending,
			expected: 3,
		},
		{
			name:     "in transit is step 4",
			status:   StatusInTransit,
			expected: 4,
		},
		{
			name:     "buyer confirmation pending shares step 4",
			status:   StatusBuyerConfirmationPending,
			expected: 4,
		},
		{
			name:     "completed is step 5",
			status:   StatusCompleted,
			expected: 5,
		},
		{
			name:     "cancelled is step 0",
			status:   StatusCancelled,
			expected: 0,
		},
		{
			name:     "unrecognized status falls back to 0",
			status:   Status("ESCROW_DISPUTE"),
			expected: 0,
		},
		{
			name:     "empty status falls back to 0",
			status:   Status(""),
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StepNumber(tc.status))
		})
	}
}

func TestStepNumber_IsIdempotent(t *testing.T) {
	statuses := []Status{
		StatusPaymentPending,
		StatusShippingInfoPending,
		StatusSellerConfirmationPending,
		StatusInTransit,
		StatusBuyerConfirmationPending,
		StatusCompleted,
		StatusCancelled,
		Status("SOMETHING_NEW"),
	}

	for _, s := range statuses {
		assert.Equal(t, StepNumber(s), StepNumber(s), "status %s", s)
	}
}

func TestStepNumber_RecognizedNonCancelledInRange(t *testing.T) {
	for _, s := range []Status{
		StatusPaymentPending,
		StatusShippingInfoPending,
		StatusSellerConfirmationPending,
		StatusInTransit,
		StatusBuyerConfirmationPending,
		StatusCompleted,
	} {
		n := StepNumber(s)
		assert.GreaterOrEqual(t, n, 1, "status %s", s)
		assert.LessOrEqual(t, n, TotalSteps, "status %s", s)
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusInTransit.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("UNKNOWN").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusInTransit.IsTerminal())
	assert.False(t, StatusPaymentPending.IsTerminal())
}
