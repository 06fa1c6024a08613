package commands_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"quickcommerce/internal/core/application/usecases/commands"
	"quickcommerce/internal/core/domain/model/customer"
	"quickcommerce/internal/core/domain/model/order"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/core/ports"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id int64) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAll(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllAvailable(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

// stubNotifier records nothing and never fails, for handler tests that
// only care about persistence behavior.
type stubNotifier struct{}

func (stubNotifier) NotifyOrderCreated(context.Context, *order.Order)                     {}
func (stubNotifier) NotifyOrderAssigned(context.Context, *order.Order, *partner.Partner)  {}
func (stubNotifier) NotifyOrderPickedUp(context.Context, *order.Order, *partner.Partner)  {}
func (stubNotifier) NotifyOrderDelivered(context.Context, *order.Order, *partner.Partner) {}
func (stubNotifier) NotifyOrderCancelled(context.Context, *order.Order, string)           {}
func (stubNotifier) NotifyPartnerFreed(context.Context, *partner.Partner, *order.Order)   {}
func (stubNotifier) LogSystemEvent(context.Context, string)                               {}

// stubSequence hands out consecutive ids starting after base.
type stubSequence struct {
	mu   sync.Mutex
	last int64
}

func newStubSequence(base int64) *stubSequence {
	return &stubSequence{last: base}
}

func (s *stubSequence) Next(context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// recordingQueue captures dispatch queue traffic.
type recordingQueue struct {
	mu      sync.Mutex
	offered []int64
	removed []int64
}

func (q *recordingQueue) Offer(orderID int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.offered = append(q.offered, orderID)
}

func (q *recordingQueue) Remove(orderID int64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.removed = append(q.removed, orderID)
	return true
}

// recordingScheduler captures expiry timer requests.
type recordingScheduler struct {
	mu        sync.Mutex
	scheduled []int64
}

func (s *recordingScheduler) Schedule(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, orderID)
}
