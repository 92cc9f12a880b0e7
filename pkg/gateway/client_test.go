package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/config"
)

type recorded struct {
	method, path, apiKey string
	body                 map[string]any
}

func newTestGateway(t *testing.T, status int, response string) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	var mu sync.Mutex
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, apiKey: r.Header.Get("apikey")}
		if r.Method == http.MethodPost {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&rec.body))
		}
		mu.Lock()
		calls = append(calls, rec)
		mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(ts.Close)

	c := New(config.GatewayConfig{URL: ts.URL + "/", APIKey: "evo-key", Instance: "shop", Timeout: time.Second}, "+55 11 98888-0000")
	return c, &calls
}

func TestClient_SendMessage(t *testing.T) {
	c, calls := newTestGateway(t, http.StatusCreated, `{"key":{"id":"ABC"}}`)
	err := c.SendMessage(context.Background(), "5511999990001", "Olá!")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/message/sendText/shop", call.path)
	assert.Equal(t, "evo-key", call.apiKey)
	assert.Equal(t, "5511999990001", call.body["number"])
	assert.Equal(t, "Olá!", call.body["text"])
}

func TestClient_SendAdminNotification(t *testing.T) {
	c, calls := newTestGateway(t, http.StatusOK, `{}`)
	require.NoError(t, c.SendAdminNotification(context.Background(), "🔔 novo atendimento"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "5511988880000", (*calls)[0].body["number"])

	noAdmin := New(config.GatewayConfig{URL: "http://localhost:1", Instance: "shop"}, "")
	require.Error(t, noAdmin.SendAdminNotification(context.Background(), "x"))
}

func TestClient_SendMessageFailure(t *testing.T) {
	c, _ := newTestGateway(t, http.StatusBadRequest, `{"error":"instance not connected"}`)
	err := c.SendMessage(context.Background(), "5511999990001", "Olá!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "instance not connected")
}

func TestClient_SetWebhook(t *testing.T) {
	c, calls := newTestGateway(t, http.StatusOK, `{}`)
	require.NoError(t, c.SetWebhook(context.Background(), "https://bot.example.com/webhook"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "/webhook/set/shop", (*calls)[0].path)
	assert.Equal(t, "https://bot.example.com/webhook", (*calls)[0].body["url"])
	assert.Equal(t, []any{"MESSAGES_UPSERT", "CONNECTION_UPDATE"}, (*calls)[0].body["events"])
}

func TestClient_ConnectionState(t *testing.T) {
	c, calls := newTestGateway(t, http.StatusOK, `{"instance":{"instanceName":"shop","state":"open"}}`)
	state, err := c.ConnectionState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "open", state)
	assert.Equal(t, "/instance/connectionState/shop", (*calls)[0].path)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)

	bad, _ := newTestGateway(t, http.StatusOK, `not json`)
	_, err = bad.ConnectionState(context.Background())
	require.Error(t, err)
}
