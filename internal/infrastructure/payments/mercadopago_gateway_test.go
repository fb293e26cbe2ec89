package payments

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentClient struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakePaymentClient) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, quietLogger())
	require.NoError(t, err)
	g.now = func() time.Time { return time.Unix(1700000000, 0) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":500,"date_created":"2020-01-01"}`))
	require.NoError(t, err)
	assert.Equal(t, "1700000000000000000", id)
	assert.Equal(t, "approved", status)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 500.0, body["transaction_amount"])
	assert.Equal(t, "2020-01-01", body["date_created"])
	assert.Equal(t, "accredited", body["status_detail"])
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("forwards the request", func(t *testing.T) {
		client := &fakePaymentClient{resp: &payment.Response{ID: 42, Status: "pending"}}
		g := &MercadoPagoGateway{client: client, log: quietLogger(), now: time.Now}

		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":250,"payment_method_id":"pix"}`))
		require.NoError(t, err)
		assert.Equal(t, "42", id)
		assert.Equal(t, "pending", status)
		assert.NotEmpty(t, raw)
		assert.Equal(t, 250.0, client.got.TransactionAmount)
		assert.Equal(t, "pix", client.got.PaymentMethodID)
	})

	t.Run("sdk error", func(t *testing.T) {
		client := &fakePaymentClient{err: errors.New("bad_request")}
		g := &MercadoPagoGateway{client: client, log: quietLogger(), now: time.Now}

		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		assert.EqualError(t, err, "bad_request")
	})

	t.Run("invalid payload", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakePaymentClient{}, log: quietLogger(), now: time.Now}
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`))
		assert.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false, quietLogger())
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})
}
