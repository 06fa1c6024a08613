package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/core/application/usecases/queries"
	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/pkg/errs"
)

type fakeOrderRepo struct {
	orders map[int64]*order.Order
}

func (f *fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	f.orders[o.ID()] = o
	return nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	f.orders[o.ID()] = o
	return nil
}

func (f *fakeOrderRepo) Get(_ context.Context, id int64) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (f *fakeOrderRepo) GetAllActive(_ context.Context) ([]*order.Order, error) {
	var active []*order.Order
	for _, o := range f.orders {
		if !o.Status().IsTerminal() {
			active = append(active, o)
		}
	}
	return active, nil
}

type fakePartnerRepo struct {
	partners []*partner.Partner
}

func (f *fakePartnerRepo) Add(_ context.Context, p *partner.Partner) error {
	f.partners = append(f.partners, p)
	return nil
}

func (f *fakePartnerRepo) Update(_ context.Context, _ *partner.Partner) error { return nil }

func (f *fakePartnerRepo) Get(_ context.Context, id int64) (*partner.Partner, error) {
	for _, p := range f.partners {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("partner", id)
}

func (f *fakePartnerRepo) GetAll(_ context.Context) ([]*partner.Partner, error) {
	return f.partners, nil
}

func (f *fakePartnerRepo) GetAllAvailable(_ context.Context) ([]*partner.Partner, error) {
	var available []*partner.Partner
	for _, p := range f.partners {
		if p.Status() == partner.Available {
			available = append(available, p)
		}
	}
	return available, nil
}

func ratedPartner(t *testing.T, id int64, deliveries int, ratings ...int) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(id, "Partner", "+91-98100-00001", "DL-01-AB-1234")
	require.NoError(t, err)

	for i := 0; i < deliveries; i++ {
		require.NoError(t, p.AssignOrder(int64(1000+i)))
		require.NoError(t, p.CompleteDelivery())
	}
	for _, r := range ratings {
		p.AddRating(r)
	}
	return p
}

func TestGetOrderStatusQueryHandler_Handle(t *testing.T) {
	repo := &fakeOrderRepo{orders: map[int64]*order.Order{}}
	o, err := order.NewOrder(1001, 1, "Milk")
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), o))

	handler := queries.NewGetOrderStatusQueryHandler(repo)

	query, err := queries.NewGetOrderStatusQuery(1001)
	require.NoError(t, err)

	response, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), response.ID)
	assert.Equal(t, int64(1), response.CustomerID)
	assert.Equal(t, "Milk", response.ItemName)
	assert.Equal(t, order.Pending, response.Status)
	assert.Nil(t, response.AssignedPartnerID)
}

func TestGetOrderStatusQueryHandler_Handle_NotFound(t *testing.T) {
	repo := &fakeOrderRepo{orders: map[int64]*order.Order{}}
	handler := queries.NewGetOrderStatusQueryHandler(repo)

	query, err := queries.NewGetOrderStatusQuery(9999)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewGetOrderStatusQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderStatusQuery(0)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)
}

func TestGetOrderStatusQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrderStatusQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrderStatusQueryIsNotConstructed)
}

func TestGetPartnerStatusQueryHandler_Handle(t *testing.T) {
	repo := &fakePartnerRepo{}
	p := ratedPartner(t, 7, 3, 5, 4)
	require.NoError(t, repo.Add(t.Context(), p))

	handler := queries.NewGetPartnerStatusQueryHandler(repo)

	query, err := queries.NewGetPartnerStatusQuery(7)
	require.NoError(t, err)

	response, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(7), response.ID)
	assert.Equal(t, partner.Available, response.Status)
	assert.Equal(t, 3, response.TotalDeliveries)
	assert.Equal(t, 4.5, response.AverageRating)
}

func TestGetTopPartnersQueryHandler_Handle_Ranking(t *testing.T) {
	repo := &fakePartnerRepo{}
	require.NoError(t, repo.Add(t.Context(), ratedPartner(t, 1, 2, 5)))
	require.NoError(t, repo.Add(t.Context(), ratedPartner(t, 2, 5, 3)))
	require.NoError(t, repo.Add(t.Context(), ratedPartner(t, 3, 2, 3)))
	require.NoError(t, repo.Add(t.Context(), ratedPartner(t, 4, 0)))

	handler := queries.NewGetTopPartnersQueryHandler(repo)

	query, err := queries.NewGetTopPartnersQuery(3)
	require.NoError(t, err)

	top, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Len(t, top, 3)
	assert.Equal(t, int64(2), top[0].ID) // most deliveries
	assert.Equal(t, int64(1), top[1].ID) // ties broken by rating
	assert.Equal(t, int64(3), top[2].ID)
}

func TestGetTopPartnersQueryHandler_Handle_FewerThanLimit(t *testing.T) {
	repo := &fakePartnerRepo{}
	require.NoError(t, repo.Add(t.Context(), ratedPartner(t, 1, 1)))

	handler := queries.NewGetTopPartnersQueryHandler(repo)

	query, err := queries.NewGetTopPartnersQuery(10)
	require.NoError(t, err)

	top, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestNewGetTopPartnersQuery_InvalidLimit(t *testing.T) {
	_, err := queries.NewGetTopPartnersQuery(0)
	assert.ErrorIs(t, err, queries.ErrLimitIsInvalid)

	_, err = queries.NewGetTopPartnersQuery(-1)
	assert.ErrorIs(t, err, queries.ErrLimitIsInvalid)
}

func TestGetActiveOrdersQueryHandler_Handle(t *testing.T) {
	repo := &fakeOrderRepo{orders: map[int64]*order.Order{}}

	active, err := order.NewOrder(1001, 1, "Milk")
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), active))

	done, err := order.NewOrder(1002, 1, "Eggs")
	require.NoError(t, err)
	require.NoError(t, done.Cancel())
	require.NoError(t, repo.Add(t.Context(), done))

	handler := queries.NewGetActiveOrdersQueryHandler(repo)

	responses, err := handler.Handle(t.Context(), queries.NewGetActiveOrdersQuery())
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, int64(1001), responses[0].ID)
}
