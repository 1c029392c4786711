package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfdana/danashell/internal/store"
)

func TestServiceSingleton(t *testing.T) {
	// Manipulates package-level state; not parallel.
	require.NoError(t, SetServiceForTesting(nil))
	t.Cleanup(func() { _ = SetServiceForTesting(nil) })

	assert.False(t, IsInitialized())
	assert.Nil(t, GetService())

	svc := NewService(store.New(store.NewMemoryKV(), nil), NewTrackingNotifier(nil), NewWindowRegistry(), nil, nil)
	require.NoError(t, SetServiceForTesting(svc))
	assert.True(t, IsInitialized())
	assert.Same(t, svc, GetService())

	other := NewService(store.New(store.NewMemoryKV(), nil), NewTrackingNotifier(nil), NewWindowRegistry(), nil, nil)
	assert.Error(t, SetServiceForTesting(other), "replacing a live instance is rejected")
	assert.Same(t, svc, GetService())
}
