package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusLabelTotal(t *testing.T) {
	for _, s := range KnownOrderStatuses() {
		l := OrderStatusLabel(s)
		assert.NotEmpty(t, l.Label, "status %s", s)
		assert.NotEmpty(t, l.Class, "status %s", s)
	}
}

func TestOrderStatusLabelFallback(t *testing.T) {
	l := OrderStatusLabel(OrderStatusType("garbage"))
	assert.Equal(t, defaultStatusLabel, l)
}

func TestPayoutStatusLabel(t *testing.T) {
	statuses := []PayoutStatusType{
		PayoutStatusPending,
		PayoutStatusApproved,
		PayoutStatusReleased,
		PayoutStatusHeld,
		PayoutStatusRejected,
	}
	for _, s := range statuses {
		l := PayoutStatusLabel(s)
		assert.NotEmpty(t, l.Label, "status %s", s)
		assert.NotEmpty(t, l.Class, "status %s", s)
	}
	assert.Equal(t, defaultStatusLabel, PayoutStatusLabel("nope"))
}

func TestSellerStatusLabelFallback(t *testing.T) {
	assert.Equal(t, defaultStatusLabel, SellerStatusLabel(""))
}
