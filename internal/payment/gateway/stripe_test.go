package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/polisure/polisure/internal/payment/domain"
	"github.com/polisure/polisure/internal/payment/gateway"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentSendsFormEncodedRequest(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotForm map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret","status":"requires_payment_method","amount":2500,"currency":"usd"}`))
	}))
	defer srv.Close()

	gw := gateway.NewStripeGateway("sk_test_abc", "", gateway.WithBaseURL(srv.URL))

	intent, err := gw.CreateIntent(context.Background(), domain.CreateIntentParams{
		AmountCents:   2500,
		Currency:      "USD",
		Description:   "Premium payment for application x",
		ApplicationID: "app-1",
		AmountUSD:     25,
		AmountBDT:     3000,
		Frequency:     "monthly",
	})
	require.NoError(t, err)

	require.Equal(t, "/v1/payment_intents", gotPath)
	require.Equal(t, "Bearer sk_test_abc", gotAuth)
	require.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	require.Equal(t, "2500", gotForm["amount"][0])
	require.Equal(t, "usd", gotForm["currency"][0])
	require.Equal(t, "app-1", gotForm["metadata[applicationId]"][0])
	require.Equal(t, "monthly", gotForm["metadata[frequency]"][0])

	require.Equal(t, "pi_123", intent.ID)
	require.Equal(t, "pi_123_secret", intent.ClientSecret)
	require.Equal(t, int64(2500), intent.Amount)
}

func TestRetrieveIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":2500,"currency":"usd"}`))
	}))
	defer srv.Close()

	gw := gateway.NewStripeGateway("sk_test_abc", "", gateway.WithBaseURL(srv.URL))

	intent, err := gw.RetrieveIntent(context.Background(), "pi_123")
	require.NoError(t, err)
	require.Equal(t, "succeeded", intent.Status)
}

func TestErrorResponseSurfacesStripeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	gw := gateway.NewStripeGateway("sk_test_abc", "", gateway.WithBaseURL(srv.URL))

	_, err := gw.RetrieveIntent(context.Background(), "pi_123")
	require.EqualError(t, err, "Your card was declined.")
}

func TestMissingAPIKeyFailsFast(t *testing.T) {
	gw := gateway.NewStripeGateway("", "")

	_, err := gw.RetrieveIntent(context.Background(), "pi_123")
	require.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestAccountHeaderForwarded(t *testing.T) {
	var gotAccount string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccount = r.Header.Get("Stripe-Account")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","status":"succeeded"}`))
	}))
	defer srv.Close()

	gw := gateway.NewStripeGateway("sk_test_abc", "acct_42", gateway.WithBaseURL(srv.URL))

	_, err := gw.RetrieveIntent(context.Background(), "pi_123")
	require.NoError(t, err)
	require.Equal(t, "acct_42", gotAccount)
}
