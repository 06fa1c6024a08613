package customerrepo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcommerce/internal/adapters/out/memory/customerrepo"
	"quickcommerce/internal/core/domain/model/customer"
	"quickcommerce/internal/pkg/errs"
)

func TestRepository_AddAndGet(t *testing.T) {
	repo := customerrepo.NewRepository()

	c, err := customer.NewCustomer(1, "Alice", "+1-555-0101")
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), c))

	got, err := repo.Get(t.Context(), 1)
	require.NoError(t, err)
	assert.True(t, c.IsEqual(got))
	assert.Equal(t, "Alice", got.Name())
}

func TestRepository_Add_Duplicate(t *testing.T) {
	repo := customerrepo.NewRepository()

	c, err := customer.NewCustomer(1, "Alice", "+1-555-0101")
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), c))

	dup, err := customer.NewCustomer(1, "Bob", "+1-555-0202")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Add(t.Context(), dup), errs.ErrValueIsInvalid)
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo := customerrepo.NewRepository()

	_, err := repo.Get(t.Context(), 42)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
