package payments

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/booking-web/internal/backend"
)

// Card details are tokenized with the processor first; only the resulting
// token is sent to the backend in the payment-completion request. Raw card
// data never reaches the backend.

type CardDetails struct {
	Number          string
	ExpirationMonth string
	ExpirationYear  string
	SecurityCode    string
	HolderName      string
}

// Completer is the backend slice that finalizes a paid booking.
type Completer interface {
	CompletePayment(ctx context.Context, token string, p backend.PaymentCompletion) error
}

type Service struct {
	tokens  cardtoken.Client
	backend Completer
	log     zerolog.Logger
}

func New(accessToken string, completer Completer, log zerolog.Logger) (*Service, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Service{
		tokens:  cardtoken.NewClient(cfg),
		backend: completer,
		log:     log,
	}, nil
}

// NewWithTokenizer wires an explicit tokenizer; tests use it.
func NewWithTokenizer(tokens cardtoken.Client, completer Completer, log zerolog.Logger) *Service {
	return &Service{tokens: tokens, backend: completer, log: log}
}

// Pay tokenizes the card and completes the booking payment. There is no
// retry; any failure degrades to a generic alert on the page.
func (s *Service) Pay(ctx context.Context, sessionToken string, bookingID uint, amount float64, card CardDetails) error {
	tok, err := s.tokens.Create(ctx, cardtoken.Request{
		CardNumber:      card.Number,
		ExpirationMonth: card.ExpirationMonth,
		ExpirationYear:  card.ExpirationYear,
		SecurityCode:    card.SecurityCode,
		Cardholder: &cardtoken.CardholderRequest{
			Name: card.HolderName,
		},
	})
	if err != nil {
		s.log.Warn().Err(err).Uint("booking_id", bookingID).Msg("card tokenization failed")
		return fmt.Errorf("tokenize card: %w", err)
	}

	if err := s.backend.CompletePayment(ctx, sessionToken, backend.PaymentCompletion{
		BookingID: bookingID,
		CardToken: tok.ID,
		Amount:    amount,
	}); err != nil {
		s.log.Warn().Err(err).Uint("booking_id", bookingID).Msg("payment completion failed")
		return err
	}

	return nil
}
