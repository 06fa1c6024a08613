package partnerrepo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/adapters/out/memory/partnerrepo"
	"quickcommerce/internal/core/domain/model/partner"
	"quickcommerce/internal/pkg/errs"
)

func newPartner(t *testing.T, id int64) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(id, "Ravi", "+91-98100-00001", "DL-01-AB-1234")
	require.NoError(t, err)
	return p
}

func TestRepository_AddAndGet(t *testing.T) {
	repo := partnerrepo.NewRepository()
	p := newPartner(t, 1)

	require.NoError(t, repo.Add(t.Context(), p))

	got, err := repo.Get(t.Context(), 1)
	require.NoError(t, err)
	assert.True(t, p.IsEqual(got))
	assert.Equal(t, partner.Available, got.Status())
}

func TestRepository_Add_Duplicate(t *testing.T) {
	repo := partnerrepo.NewRepository()
	require.NoError(t, repo.Add(t.Context(), newPartner(t, 1)))

	err := repo.Add(t.Context(), newPartner(t, 1))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo := partnerrepo.NewRepository()

	_, err := repo.Get(t.Context(), 42)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetReturnsSnapshot(t *testing.T) {
	repo := partnerrepo.NewRepository()
	require.NoError(t, repo.Add(t.Context(), newPartner(t, 1)))

	first, err := repo.Get(t.Context(), 1)
	require.NoError(t, err)
	require.NoError(t, first.AssignOrder(1001))

	second, err := repo.Get(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, partner.Available, second.Status())
	assert.Nil(t, second.CurrentOrderID())

	require.NoError(t, repo.Update(t.Context(), first))

	third, err := repo.Get(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, partner.Busy, third.Status())
	require.NotNil(t, third.CurrentOrderID())
	assert.Equal(t, int64(1001), *third.CurrentOrderID())
}

func TestRepository_GetAll(t *testing.T) {
	repo := partnerrepo.NewRepository()
	require.NoError(t, repo.Add(t.Context(), newPartner(t, 2)))
	require.NoError(t, repo.Add(t.Context(), newPartner(t, 1)))

	all, err := repo.GetAll(t.Context())
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID())
	assert.Equal(t, int64(2), all[1].ID())
}

func TestRepository_GetAllAvailable(t *testing.T) {
	repo := partnerrepo.NewRepository()

	busy := newPartner(t, 1)
	require.NoError(t, busy.AssignOrder(1001))
	require.NoError(t, repo.Add(t.Context(), busy))

	offline := newPartner(t, 2)
	require.NoError(t, offline.ChangeStatus(partner.Offline))
	require.NoError(t, repo.Add(t.Context(), offline))

	require.NoError(t, repo.Add(t.Context(), newPartner(t, 3)))

	available, err := repo.GetAllAvailable(t.Context())
	require.NoError(t, err)

	require.Len(t, available, 1)
	assert.Equal(t, int64(3), available[0].ID())
}
