package oneplat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateOrder(t *testing.T) {
	var gotReq CreateOrderRequest
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/merchant/order/create/by-api", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"guid":"G1","payment":{"note":"card 1234"},"url":"https://pay/G1"}`))
	}))
	defer ts.Close()

	c := NewClient(Config{EntrypointURL: ts.URL, APIKey: "secret", UserID: 42})
	reply, err := c.CreateOrder(context.Background(), "inv-1", 500)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "inv-1", gotReq.MerchantOrderID)
	assert.EqualValues(t, 42, gotReq.UserID)
	assert.EqualValues(t, 500, gotReq.Amount)
	assert.Equal(t, DefaultMethod, gotReq.Method)
	assert.Equal(t, DefaultEmail, gotReq.Email)

	assert.Equal(t, "G1", reply.GUID)
	assert.Equal(t, "card 1234", reply.Payment.Note)
	assert.Equal(t, "https://pay/G1", reply.URL)
}

func TestClient_CreateOrder_NoAuthHeaderWithoutKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(Config{EntrypointURL: ts.URL})
	_, err := c.CreateOrder(context.Background(), "inv-1", 100)
	require.NoError(t, err)
}

func TestClient_OrderInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/merchant/order/info/G1/by-api", r.URL.Path)
		w.Write([]byte(`{"status":1}`))
	}))
	defer ts.Close()

	c := NewClient(Config{EntrypointURL: ts.URL})
	st, err := c.OrderInfo(context.Background(), "G1")
	require.NoError(t, err)
	assert.True(t, st.Paid())
}

func TestClient_OrderInfo_Errors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not a json`))
	}))
	defer ts.Close()

	c := NewClient(Config{EntrypointURL: ts.URL})
	_, err := c.OrderInfo(context.Background(), "G1")
	require.Error(t, err)

	ts.Close()
	_, err = c.OrderInfo(context.Background(), "G1")
	require.Error(t, err, "network error must propagate to the caller")
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultEntrypointURL, cfg.EntrypointURL)
	assert.Equal(t, DefaultMethod, cfg.Method)
	assert.Equal(t, DefaultEmail, cfg.Email)
	assert.EqualValues(t, 0, cfg.UserID)
}
