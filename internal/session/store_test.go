package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-web/internal/backend"
)

func setupStore(t *testing.T) *Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestNamespaceFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", NamespaceCustomer},
		{"/dashboard", NamespaceCustomer},
		{"/login", NamespaceCustomer},
		{"/appoint", NamespaceAppoint},
		{"/appoint/", NamespaceAppoint},
		{"/appoint/dashboard", NamespaceAppoint},
		{"/appointments/5/cancel", NamespaceCustomer}, // prefix, not substring
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NamespaceFromPath(tt.path), "path %s", tt.path)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	sess := &Session{
		Token: "tok-1",
		Actor: "customer",
		Profile: backend.Profile{
			ID:   5,
			Name: "Aysel",
		},
	}
	require.NoError(t, store.Put(ctx, NamespaceCustomer, "sid-1", sess))

	got, err := store.Get(ctx, NamespaceCustomer, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestNamespacesAreIsolated(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, NamespaceCustomer, "sid-1", &Session{Token: "customer-tok"}))
	require.NoError(t, store.Put(ctx, NamespaceAppoint, "sid-1", &Session{Token: "business-tok"}))

	customer, err := store.Get(ctx, NamespaceCustomer, "sid-1")
	require.NoError(t, err)
	business, err := store.Get(ctx, NamespaceAppoint, "sid-1")
	require.NoError(t, err)

	assert.Equal(t, "customer-tok", customer.Token)
	assert.Equal(t, "business-tok", business.Token)
}

func TestClearRemovesOnlyOneNamespace(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, NamespaceCustomer, "sid-1", &Session{Token: "customer-tok"}))
	require.NoError(t, store.Put(ctx, NamespaceAppoint, "sid-1", &Session{Token: "business-tok"}))

	require.NoError(t, store.Clear(ctx, NamespaceAppoint, "sid-1"))

	_, err := store.Get(ctx, NamespaceAppoint, "sid-1")
	assert.ErrorIs(t, err, ErrNoSession)

	customer, err := store.Get(ctx, NamespaceCustomer, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "customer-tok", customer.Token)
}

func TestGetMissing(t *testing.T) {
	store := setupStore(t)

	_, err := store.Get(context.Background(), NamespaceCustomer, "nope")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestVisitorIsStable(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first, err := store.Visitor(ctx, "sid-1")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := store.Visitor(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := store.Visitor(ctx, "sid-2")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
