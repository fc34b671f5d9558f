package booking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/backend"
)

// Selector drives the category → business → worker → service → date/time
// funnel on the home page. Each step's options are fetched only once the
// previous step is chosen, and choosing upstream always resets everything
// downstream.

var ErrIncomplete = errors.New("booking: selection incomplete")

// Catalog is the slice of the backend the selector needs.
type Catalog interface {
	ListCategories(ctx context.Context) ([]backend.Category, error)
	ListBusinesses(ctx context.Context, categoryID uint) ([]backend.Business, error)
	ListWorkers(ctx context.Context, businessID uint) ([]backend.Worker, error)
	ListServices(ctx context.Context, workerID uint) ([]backend.Service, error)
	CreateBooking(ctx context.Context, token string, req backend.BookingRequest) (*backend.Booking, error)
}

type Selector struct {
	catalog Catalog
	log     zerolog.Logger

	Category uint
	Business uint
	Worker   uint
	Service  uint
	Date     string
	Time     string

	Categories []backend.Category
	Businesses []backend.Business
	Workers    []backend.Worker
	Services   []backend.Service
}

func NewSelector(catalog Catalog, log zerolog.Logger) *Selector {
	return &Selector{catalog: catalog, log: log}
}

// LoadCategories primes the first dropdown.
func (s *Selector) LoadCategories(ctx context.Context) {
	cats, err := s.catalog.ListCategories(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("load categories failed")
		cats = nil
	}
	s.Categories = cats
}

func (s *Selector) SetCategory(ctx context.Context, id uint) {
	s.Category = id

	s.Business = 0
	s.Worker = 0
	s.Service = 0
	s.Workers = nil
	s.Services = nil

	businesses, err := s.catalog.ListBusinesses(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint("category_id", id).Msg("load businesses failed")
		businesses = nil
	}
	s.Businesses = businesses
}

func (s *Selector) SetBusiness(ctx context.Context, id uint) {
	s.Business = id

	s.Worker = 0
	s.Service = 0
	s.Services = nil

	workers, err := s.catalog.ListWorkers(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint("business_id", id).Msg("load workers failed")
		workers = nil
	}
	s.Workers = workers
}

func (s *Selector) SetWorker(ctx context.Context, id uint) {
	s.Worker = id

	s.Service = 0

	services, err := s.catalog.ListServices(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint("worker_id", id).Msg("load services failed")
		services = nil
	}
	s.Services = services
}

func (s *Selector) SetService(id uint) { s.Service = id }
func (s *Selector) SetDate(d string)   { s.Date = d }
func (s *Selector) SetTime(t string)   { s.Time = t }

// CanSubmit reports whether all five required fields are chosen. Category
// only narrows the business list and is not required for submission.
func (s *Selector) CanSubmit() bool {
	return s.Business != 0 &&
		s.Worker != 0 &&
		s.Service != 0 &&
		s.Date != "" &&
		s.Time != ""
}

// Submit posts the booking. No request is issued while the selection is
// incomplete.
func (s *Selector) Submit(ctx context.Context, token, customerName, customerPhone string) (*backend.Booking, error) {
	if !s.CanSubmit() {
		return nil, ErrIncomplete
	}

	return s.catalog.CreateBooking(ctx, token, backend.BookingRequest{
		BusinessID:    s.Business,
		WorkerID:      s.Worker,
		ServiceID:     s.Service,
		Date:          s.Date,
		Time:          s.Time,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
	})
}
