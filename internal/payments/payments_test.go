package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-web/internal/backend"
)

type fakeTokenizer struct {
	gotRequest cardtoken.Request
	tokenID    string
	err        error
}

func (f *fakeTokenizer) Create(ctx context.Context, req cardtoken.Request) (*cardtoken.Response, error) {
	f.gotRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &cardtoken.Response{ID: f.tokenID}, nil
}

func (f *fakeTokenizer) Get(ctx context.Context, token string) (*cardtoken.Response, error) {
	return &cardtoken.Response{ID: token}, nil
}

type fakeCompleter struct {
	gotToken   string
	gotPayment backend.PaymentCompletion
	calls      int
	err        error
}

func (f *fakeCompleter) CompletePayment(ctx context.Context, token string, p backend.PaymentCompletion) error {
	f.calls++
	f.gotToken = token
	f.gotPayment = p
	return f.err
}

var testCard = CardDetails{
	Number:          "5031433215406351",
	ExpirationMonth: "11",
	ExpirationYear:  "2030",
	SecurityCode:    "123",
	HolderName:      "APRO TEST",
}

func TestPaySendsCardTokenNotCardData(t *testing.T) {
	tok := &fakeTokenizer{tokenID: "tok-abc"}
	comp := &fakeCompleter{}
	svc := NewWithTokenizer(tok, comp, zerolog.Nop())

	err := svc.Pay(context.Background(), "session-token", 42, 25.0, testCard)
	require.NoError(t, err)

	assert.Equal(t, "5031433215406351", tok.gotRequest.CardNumber)
	assert.Equal(t, "APRO TEST", tok.gotRequest.Cardholder.Name)

	assert.Equal(t, 1, comp.calls)
	assert.Equal(t, "session-token", comp.gotToken)
	assert.Equal(t, backend.PaymentCompletion{
		BookingID: 42,
		CardToken: "tok-abc",
		Amount:    25.0,
	}, comp.gotPayment)
}

func TestPayTokenizationFailureSkipsBackend(t *testing.T) {
	tok := &fakeTokenizer{err: errors.New("invalid card")}
	comp := &fakeCompleter{}
	svc := NewWithTokenizer(tok, comp, zerolog.Nop())

	err := svc.Pay(context.Background(), "session-token", 42, 25.0, testCard)
	require.Error(t, err)
	assert.Zero(t, comp.calls)
}

func TestPayCompletionFailurePropagates(t *testing.T) {
	tok := &fakeTokenizer{tokenID: "tok-abc"}
	comp := &fakeCompleter{err: errors.New("declined")}
	svc := NewWithTokenizer(tok, comp, zerolog.Nop())

	err := svc.Pay(context.Background(), "session-token", 42, 25.0, testCard)
	assert.EqualError(t, err, "declined")
}
