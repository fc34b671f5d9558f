package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-web/internal/backend"
)

type fakeCatalog struct {
	failWorkers bool

	createCalls int
	lastRequest backend.BookingRequest
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]backend.Category, error) {
	return []backend.Category{{ID: 1, Name: "Barbers"}}, nil
}

func (f *fakeCatalog) ListBusinesses(ctx context.Context, categoryID uint) ([]backend.Business, error) {
	return []backend.Business{{ID: 10, Name: "Salon One", CategoryID: categoryID}}, nil
}

func (f *fakeCatalog) ListWorkers(ctx context.Context, businessID uint) ([]backend.Worker, error) {
	if f.failWorkers {
		return nil, errors.New("backend down")
	}
	return []backend.Worker{{ID: 100, BusinessID: businessID, Name: "Elvin"}}, nil
}

func (f *fakeCatalog) ListServices(ctx context.Context, workerID uint) ([]backend.Service, error) {
	return []backend.Service{{ID: 1000, WorkerID: workerID, Name: "Trim"}}, nil
}

func (f *fakeCatalog) CreateBooking(ctx context.Context, token string, req backend.BookingRequest) (*backend.Booking, error) {
	f.createCalls++
	f.lastRequest = req
	return &backend.Booking{ID: 777, Status: "pending"}, nil
}

func newTestSelector(catalog Catalog) *Selector {
	return NewSelector(catalog, zerolog.Nop())
}

func TestSetBusinessResetsDownstream(t *testing.T) {
	ctx := context.Background()
	sel := newTestSelector(&fakeCatalog{})

	sel.SetBusiness(ctx, 10)
	sel.SetWorker(ctx, 100)
	sel.SetService(1000)

	// Re-picking the business must drop worker and service, whatever they
	// were.
	sel.SetBusiness(ctx, 11)

	assert.Zero(t, sel.Worker)
	assert.Zero(t, sel.Service)
	assert.Nil(t, sel.Services)
}

func TestSetCategoryResetsEverythingBelow(t *testing.T) {
	ctx := context.Background()
	sel := newTestSelector(&fakeCatalog{})

	sel.SetCategory(ctx, 1)
	sel.SetBusiness(ctx, 10)
	sel.SetWorker(ctx, 100)
	sel.SetService(1000)

	sel.SetCategory(ctx, 2)

	assert.Zero(t, sel.Business)
	assert.Zero(t, sel.Worker)
	assert.Zero(t, sel.Service)
	assert.Nil(t, sel.Workers)
	assert.Nil(t, sel.Services)
	assert.NotEmpty(t, sel.Businesses)
}

func TestSubmitRequiresAllFields(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{}
	sel := newTestSelector(catalog)

	sel.SetBusiness(ctx, 10)
	sel.SetWorker(ctx, 100)
	sel.SetService(1000)
	sel.SetDate("2024-10-02")
	// Time missing.

	assert.False(t, sel.CanSubmit())

	_, err := sel.Submit(ctx, "tok", "Aysel", "+99450")
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Zero(t, catalog.createCalls, "no request may be issued while incomplete")
}

func TestSubmitWhenComplete(t *testing.T) {
	ctx := context.Background()
	catalog := &fakeCatalog{}
	sel := newTestSelector(catalog)

	sel.SetBusiness(ctx, 10)
	sel.SetWorker(ctx, 100)
	sel.SetService(1000)
	sel.SetDate("2024-10-02")
	sel.SetTime("14:30")

	require.True(t, sel.CanSubmit())

	booked, err := sel.Submit(ctx, "tok", "Aysel", "+99450")
	require.NoError(t, err)
	assert.Equal(t, uint(777), booked.ID)
	assert.Equal(t, 1, catalog.createCalls)
	assert.Equal(t, backend.BookingRequest{
		BusinessID:    10,
		WorkerID:      100,
		ServiceID:     1000,
		Date:          "2024-10-02",
		Time:          "14:30",
		CustomerName:  "Aysel",
		CustomerPhone: "+99450",
	}, catalog.lastRequest)
}

func TestFetchFailureDegradesToEmptyOptions(t *testing.T) {
	ctx := context.Background()
	sel := newTestSelector(&fakeCatalog{failWorkers: true})

	sel.SetBusiness(ctx, 10)

	assert.Equal(t, uint(10), sel.Business)
	assert.Empty(t, sel.Workers)
}

func TestCategoryNotRequiredForSubmit(t *testing.T) {
	ctx := context.Background()
	sel := newTestSelector(&fakeCatalog{})

	sel.SetBusiness(ctx, 10)
	sel.SetWorker(ctx, 100)
	sel.SetService(1000)
	sel.SetDate("2024-10-02")
	sel.SetTime("14:30")

	assert.True(t, sel.CanSubmit())
}
