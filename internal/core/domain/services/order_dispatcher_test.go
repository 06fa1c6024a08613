package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/domain/services"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1001, 1, "Eggs")
	require.NoError(t, err)
	return o
}

func newAvailablePartner(t *testing.T, id int64) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(id, "Partner", "+91-98100-00001", "DL-01-AB-1234")
	require.NoError(t, err)
	return p
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()
	o := newPendingOrder(t)
	p := newAvailablePartner(t, 1)

	assigned, err := dispatcher.Dispatch(o, []*partner.Partner{p})
	require.NoError(t, err)

	assert.True(t, p.IsEqual(assigned))
	assert.Equal(t, order.Assigned, o.Status())
	require.NotNil(t, o.AssignedPartnerID())
	assert.Equal(t, p.ID(), *o.AssignedPartnerID())
	assert.Equal(t, partner.Busy, p.Status())
	require.NotNil(t, p.CurrentOrderID())
	assert.Equal(t, o.ID(), *p.CurrentOrderID())
}

func TestOrderDispatcher_Dispatch_SelectsFirstAvailable(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()
	o := newPendingOrder(t)

	busy := newAvailablePartner(t, 1)
	require.NoError(t, busy.AssignOrder(999))
	offline := newAvailablePartner(t, 2)
	require.NoError(t, offline.ChangeStatus(partner.Offline))
	first := newAvailablePartner(t, 3)
	second := newAvailablePartner(t, 4)

	assigned, err := dispatcher.Dispatch(o, []*partner.Partner{busy, offline, first, second})
	require.NoError(t, err)

	assert.Equal(t, first.ID(), assigned.ID())
	assert.Equal(t, partner.Available, second.Status())
}

func TestOrderDispatcher_Dispatch_NoPartnerAvailable(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	t.Run("empty slice", func(t *testing.T) {
		o := newPendingOrder(t)
		_, err := dispatcher.Dispatch(o, nil)
		assert.ErrorIs(t, err, services.ErrNoPartnerAvailable)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("none available", func(t *testing.T) {
		o := newPendingOrder(t)
		offline := newAvailablePartner(t, 1)
		require.NoError(t, offline.ChangeStatus(partner.Offline))

		_, err := dispatcher.Dispatch(o, []*partner.Partner{offline})
		assert.ErrorIs(t, err, services.ErrNoPartnerAvailable)
	})
}

func TestOrderDispatcher_Dispatch_InvalidOrder(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	var notConstructed order.Order
	_, err := dispatcher.Dispatch(&notConstructed, []*partner.Partner{newAvailablePartner(t, 1)})
	assert.Error(t, err)
}

func TestOrderDispatcher_Dispatch_NonPendingOrder(t *testing.T) {
	dispatcher := services.NewOrderDispatcher()

	o := newPendingOrder(t)
	require.NoError(t, o.Cancel())

	p := newAvailablePartner(t, 1)
	_, err := dispatcher.Dispatch(o, []*partner.Partner{p})
	require.Error(t, err)
	assert.Equal(t, partner.Available, p.Status())
}
