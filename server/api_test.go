package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/repository"
)

func TestServer_PausedEndpoints(t *testing.T) {
	until := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	d := newTestDeps()
	d.pauses.ListPausedFunc = func(context.Context) ([]domain.PauseRecord, error) {
		return []domain.PauseRecord{
			{SenderID: "5511999990001", PausedUntil: until},
			{SenderID: "5511999990002", PausedUntil: time.Now().Add(-time.Hour)},
		}, nil
	}
	d.pauses.PauseFunc = func(_ context.Context, sender string, days int) (domain.PauseRecord, error) {
		return domain.PauseRecord{SenderID: sender, PausedUntil: until}, nil
	}
	d.pauses.ResumeFunc = func(context.Context, string) error { return nil }
	srv := d.server()

	t.Run("list", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/paused", "")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[[]pauseJSON](t, rec)
		require.Len(t, resp, 2)
		assert.Equal(t, "5511999990001", resp[0].Number)
		assert.True(t, resp[0].Active)
		assert.True(t, resp[0].PausedUntil.Equal(until))
		assert.False(t, resp[1].Active)
	})

	t.Run("pause with default days", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/v1/paused", `{"number":"5511999990003"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		calls := d.pauses.PauseCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "5511999990003", calls[0].SenderID)
		assert.Equal(t, 3, calls[0].Days)
	})

	t.Run("pause with days", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/v1/paused", `{"number":"5511999990004","days":7}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, d.pauses.PauseCalls()[1].Days)
	})

	t.Run("pause invalid", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/v1/paused", `{"number":"abc"}`).Code)
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/v1/paused", `{"number":"5511999990004","days":-1}`).Code)
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/v1/paused", `not json`).Code)
		assert.Len(t, d.pauses.PauseCalls(), 2)
	})

	t.Run("resume", func(t *testing.T) {
		rec := do(t, srv, http.MethodDelete, "/api/v1/paused/5511999990001", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","number":"5511999990001"}`, rec.Body.String())
		require.Len(t, d.pauses.ResumeCalls(), 1)
	})

	t.Run("store failure", func(t *testing.T) {
		d.pauses.ListPausedFunc = func(context.Context) ([]domain.PauseRecord, error) { return nil, errors.New("db error") }
		rec := do(t, srv, http.MethodGet, "/api/v1/paused", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"db error"}`, rec.Body.String())
	})
}

func TestServer_GlobalPauseEndpoints(t *testing.T) {
	d := newTestDeps()
	paused := false
	d.pauses.IsGlobalPausedFunc = func(context.Context) (bool, error) { return paused, nil }
	d.pauses.SetGlobalPauseFunc = func(_ context.Context, p bool) error { paused = p; return nil }
	srv := d.server()

	rec := do(t, srv, http.MethodGet, "/api/v1/global-pause", "")
	assert.JSONEq(t, `{"paused":false}`, rec.Body.String())

	rec = do(t, srv, http.MethodPut, "/api/v1/global-pause", `{"paused":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"paused":true}`, rec.Body.String())

	rec = do(t, srv, http.MethodGet, "/api/v1/global-pause", "")
	assert.JSONEq(t, `{"paused":true}`, rec.Body.String())

	rec = do(t, srv, http.MethodPut, "/api/v1/global-pause", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, d.pauses.SetGlobalPauseCalls(), 1)
}

func TestServer_DebugEndpoints(t *testing.T) {
	d := newTestDeps()
	debug := ""
	d.settings.DebugSenderFunc = func(context.Context) (string, error) { return debug, nil }
	d.settings.SetDebugSenderFunc = func(_ context.Context, number string) error {
		if number == "bad" {
			return errors.New("invalid debug number")
		}
		debug = number
		return nil
	}
	srv := d.server()

	assert.JSONEq(t, `{"enabled":false,"number":""}`, do(t, srv, http.MethodGet, "/api/v1/settings/debug", "").Body.String())

	rec := do(t, srv, http.MethodPut, "/api/v1/settings/debug", `{"number":"5511999990001"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"enabled":true,"number":"5511999990001"}`, rec.Body.String())

	rec = do(t, srv, http.MethodPut, "/api/v1/settings/debug", `{"number":"bad"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPut, "/api/v1/settings/debug", `{"number":""}`)
	assert.JSONEq(t, `{"enabled":false,"number":""}`, rec.Body.String())
}

func TestServer_ItemEndpoints(t *testing.T) {
	stock := 4
	d := newTestDeps()
	d.catalog.ListItemsFunc = func(context.Context) ([]domain.Item, error) {
		return []domain.Item{{Name: "Frontal A13", Price: 250, Stock: &stock}}, nil
	}
	d.catalog.AddItemFunc = func(_ context.Context, item *domain.Item) error {
		if item.Name == "Frontal A13" {
			return repository.ErrDuplicate
		}
		item.ID = 2
		return nil
	}
	d.catalog.UpdatePriceFunc = func(_ context.Context, name string, _ float64) error {
		if name == "missing" {
			return repository.ErrNotFound
		}
		return nil
	}
	d.catalog.UpdateStockFunc = func(context.Context, string, *int) error { return nil }
	d.catalog.GetItemFunc = func(_ context.Context, name string) (domain.Item, error) {
		return domain.Item{Name: name, Price: 300}, nil
	}
	d.catalog.RemoveItemFunc = func(_ context.Context, name string) error {
		if name == "missing" {
			return repository.ErrNotFound
		}
		return nil
	}
	srv := d.server()

	t.Run("list", func(t *testing.T) {
		rec := do(t, srv, http.MethodGet, "/api/v1/items", "")
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[[]itemJSON](t, rec)
		require.Len(t, resp, 1)
		assert.Equal(t, "Frontal A13", resp[0].Name)
		require.NotNil(t, resp[0].Stock)
		assert.Equal(t, 4, *resp[0].Stock)
	})

	t.Run("add", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/v1/items", `{"name":"  <b>Bateria</b>  A10 ","price":90.5}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[itemJSON](t, rec)
		assert.Equal(t, "Bateria A10", resp.Name)
		assert.InDelta(t, 90.5, resp.Price, 0.001)
		assert.Nil(t, resp.Stock)
	})

	t.Run("add duplicate", func(t *testing.T) {
		rec := do(t, srv, http.MethodPost, "/api/v1/items", `{"name":"Frontal A13","price":250}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("add invalid", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/v1/items", `{"name":"X","price":0}`).Code)
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/v1/items", `{"name":"","price":10}`).Code)
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/v1/items", `{"name":"X","price":10,"stock":-1}`).Code)
	})

	t.Run("update price and stock", func(t *testing.T) {
		rec := do(t, srv, http.MethodPut, "/api/v1/items/Frontal%20A13", `{"price":300,"stock":2}`)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[itemJSON](t, rec)
		assert.Equal(t, "Frontal A13", resp.Name)
		calls := d.catalog.UpdatePriceCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "Frontal A13", calls[0].Name)
		require.Len(t, d.catalog.UpdateStockCalls(), 1)
		assert.Equal(t, 2, *d.catalog.UpdateStockCalls()[0].Stock)
	})

	t.Run("clear stock", func(t *testing.T) {
		rec := do(t, srv, http.MethodPut, "/api/v1/items/Frontal%20A13", `{"clear_stock":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, d.catalog.UpdateStockCalls(), 2)
		assert.Nil(t, d.catalog.UpdateStockCalls()[1].Stock)
	})

	t.Run("update missing", func(t *testing.T) {
		rec := do(t, srv, http.MethodPut, "/api/v1/items/missing", `{"price":10}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"item \"missing\" not found"}`, rec.Body.String())
	})

	t.Run("update nothing", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPut, "/api/v1/items/x", `{}`).Code)
	})

	t.Run("remove", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(t, srv, http.MethodDelete, "/api/v1/items/Frontal%20A13", "").Code)
		assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/api/v1/items/missing", "").Code)
	})
}

func TestServer_HistoryEndpoint(t *testing.T) {
	d := newTestDeps()
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	d.history.RecentTurnsFunc = func(context.Context, string, int) ([]domain.Turn, error) {
		return []domain.Turn{
			{Role: domain.RoleUser, Content: "oi", CreatedAt: at},
			{Role: domain.RoleAssistant, Content: "Olá!", CreatedAt: at},
		}, nil
	}
	srv := d.server()

	rec := do(t, srv, http.MethodGet, "/api/v1/history/5511999990001?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"number":"5511999990001","turns":[
		{"role":"user","content":"oi","created_at":"2025-06-10T12:00:00Z"},
		{"role":"assistant","content":"Olá!","created_at":"2025-06-10T12:00:00Z"}]}`, rec.Body.String())
	require.Len(t, d.history.RecentTurnsCalls(), 1)
	assert.Equal(t, 5, d.history.RecentTurnsCalls()[0].Limit)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/v1/history/5511999990001?limit=x", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/v1/history/abc", "").Code)
}

func TestServer_TestMessageEndpoint(t *testing.T) {
	d := newTestDeps()
	d.router.RouteFunc = func(context.Context, domain.InboundMessage) domain.Result {
		return domain.Result{Success: false, Action: domain.ActionFallbackResponse, Err: errors.New("llm down")}
	}
	srv := d.server()

	rec := do(t, srv, http.MethodPost, "/api/v1/test/message", `{"number":"5511999990001","text":"oi","push_name":"Ana"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"action":"fallback_response","error":"llm down"}`, rec.Body.String())
	require.Len(t, d.router.RouteCalls(), 1)
	assert.Equal(t, "Ana", d.router.RouteCalls()[0].Msg.PushName)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/v1/test/message", `{"number":"1"}`).Code)
}
