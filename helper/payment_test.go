package helper

import (
	"catering_manager/apperr"
	"catering_manager/constants"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaymentTransition(t *testing.T) {
	cases := []struct {
		current, target string
		wantErr         bool
	}{
		{constants.PAYMENT_PENDING, constants.PAYMENT_PAID, false},
		{constants.PAYMENT_PENDING, constants.PAYMENT_FAILED, false},
		{constants.PAYMENT_PAID, constants.PAYMENT_REFUNDED, false},
		{constants.PAYMENT_FAILED, constants.PAYMENT_PAID, true},
		{constants.PAYMENT_REFUNDED, constants.PAYMENT_PAID, true},
		{constants.PAYMENT_PENDING, constants.PAYMENT_REFUNDED, true},
		{constants.PAYMENT_FAILED, constants.PAYMENT_REFUNDED, true},
	}

	for _, tc := range cases {
		noop, err := ValidatePaymentTransition(tc.current, tc.target)
		assert.False(t, noop, "%s->%s", tc.current, tc.target)
		if tc.wantErr {
			assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err), "%s->%s", tc.current, tc.target)
		} else {
			assert.NoError(t, err, "%s->%s", tc.current, tc.target)
		}
	}
}

func TestValidatePaymentTransitionIdempotent(t *testing.T) {
	for _, status := range constants.PaymentStatuses {
		noop, err := ValidatePaymentTransition(status, status)
		assert.True(t, noop, status)
		assert.NoError(t, err, status)
	}
}
