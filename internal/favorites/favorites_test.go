package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lisbeauty/storefront/pkg/store"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	svc := NewService(NewStoreRepository(store.NewMemory()))

	favorited, err := svc.Toggle("1")
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.True(t, svc.Contains("1"))

	favorited, err = svc.Toggle("1")
	require.NoError(t, err)
	assert.False(t, favorited)
	assert.False(t, svc.Contains("1"))
}

func TestListIsNeverNil(t *testing.T) {
	svc := NewService(NewStoreRepository(store.NewMemory()))
	assert.Equal(t, []string{}, svc.List())
}

func TestTogglePreservesOtherIDs(t *testing.T) {
	svc := NewService(NewStoreRepository(store.NewMemory()))

	_, err := svc.Toggle("1")
	require.NoError(t, err)
	_, err = svc.Toggle("2")
	require.NoError(t, err)
	_, err = svc.Toggle("1")
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, svc.List())
}
