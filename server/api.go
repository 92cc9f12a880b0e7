package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/repairbot/pkg/command"
	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/repository"
)

const defaultPauseDays = 3

type pauseJSON struct {
	Number      string    `json:"number"`
	PausedUntil time.Time `json:"paused_until"`
	CreatedAt   time.Time `json:"created_at"`
	Active      bool      `json:"active"`
}

type itemJSON struct {
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     *int      `json:"stock,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type turnJSON struct {
	Role      domain.Role `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

func toPauseJSON(rec domain.PauseRecord, now time.Time) pauseJSON {
	return pauseJSON{Number: rec.SenderID, PausedUntil: rec.PausedUntil, CreatedAt: rec.CreatedAt, Active: rec.Active(now)}
}

func toItemJSON(it domain.Item) itemJSON {
	return itemJSON{Name: it.Name, Price: it.Price, Stock: it.Stock, UpdatedAt: it.UpdatedAt}
}

// GET /api/v1/paused
func (s *Server) listPausedHandler(w http.ResponseWriter, r *http.Request) {
	recs, err := s.pauses.ListPaused(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list paused numbers: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	now := time.Now()
	res := make([]pauseJSON, 0, len(recs))
	for _, rec := range recs {
		res = append(res, toPauseJSON(rec, now))
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// POST /api/v1/paused {"number": "...", "days": 3}
func (s *Server) pauseHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number string `json:"number"`
		Days   int    `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.Days == 0 {
		req.Days = defaultPauseDays
	}
	if s.pauses.Normalize(req.Number) == "" || req.Days < 0 {
		RenderError(w, r, errors.New("number and positive days are required"), http.StatusBadRequest)
		return
	}
	rec, err := s.pauses.Pause(r.Context(), req.Number, req.Days)
	if err != nil {
		log.Printf("[ERROR] failed to pause %s: %v", req.Number, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, toPauseJSON(rec, time.Now()))
}

// DELETE /api/v1/paused/{number}
func (s *Server) resumeHandler(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if s.pauses.Normalize(number) == "" {
		RenderError(w, r, errors.New("invalid number"), http.StatusBadRequest)
		return
	}
	if err := s.pauses.Resume(r.Context(), number); err != nil {
		log.Printf("[ERROR] failed to resume %s: %v", number, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "number": s.pauses.Normalize(number)})
}

// GET /api/v1/global-pause
func (s *Server) getGlobalPauseHandler(w http.ResponseWriter, r *http.Request) {
	paused, err := s.pauses.IsGlobalPaused(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]bool{"paused": paused})
}

// PUT /api/v1/global-pause {"paused": true}
func (s *Server) setGlobalPauseHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Paused *bool `json:"paused"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Paused == nil {
		RenderError(w, r, errors.New("invalid request, expected {\"paused\": bool}"), http.StatusBadRequest)
		return
	}
	if err := s.pauses.SetGlobalPause(r.Context(), *req.Paused); err != nil {
		log.Printf("[ERROR] failed to set global pause: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]bool{"paused": *req.Paused})
}

// GET /api/v1/settings/debug
func (s *Server) getDebugHandler(w http.ResponseWriter, r *http.Request) {
	number, err := s.settings.DebugSender(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"enabled": number != "", "number": number})
}

// PUT /api/v1/settings/debug {"number": "..."}, empty number disables debug mode
func (s *Server) setDebugHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number string `json:"number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if err := s.settings.SetDebugSender(r.Context(), req.Number); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	number, err := s.settings.DebugSender(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"enabled": number != "", "number": number})
}

// GET /api/v1/items
func (s *Server) listItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.ListItems(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list items: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	res := make([]itemJSON, 0, len(items))
	for _, it := range items {
		res = append(res, toItemJSON(it))
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// POST /api/v1/items {"name": "...", "price": 250, "stock": 3}
func (s *Server) addItemHandler(w http.ResponseWriter, r *http.Request) {
	var req itemJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	item := domain.Item{Name: command.CleanName(req.Name), Price: req.Price, Stock: req.Stock}
	if item.Name == "" || item.Price <= 0 {
		RenderError(w, r, errors.New("name and positive price are required"), http.StatusBadRequest)
		return
	}
	if item.Stock != nil && *item.Stock < 0 {
		RenderError(w, r, errors.New("stock can't be negative"), http.StatusBadRequest)
		return
	}
	err := s.catalog.AddItem(r.Context(), &item)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		RenderError(w, r, fmt.Errorf("item %q already exists", item.Name), http.StatusConflict)
		return
	case err != nil:
		log.Printf("[ERROR] failed to add item %q: %v", item.Name, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, toItemJSON(item))
}

// PUT /api/v1/items/{name} {"price": 300, "stock": 2}, "clear_stock": true stops stock tracking
func (s *Server) updateItemHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req struct {
		Price      *float64 `json:"price"`
		Stock      *int     `json:"stock"`
		ClearStock bool     `json:"clear_stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.Price == nil && req.Stock == nil && !req.ClearStock {
		RenderError(w, r, errors.New("nothing to update"), http.StatusBadRequest)
		return
	}
	if (req.Price != nil && *req.Price <= 0) || (req.Stock != nil && *req.Stock < 0) {
		RenderError(w, r, errors.New("price must be positive and stock non-negative"), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if req.Price != nil {
		if err := s.catalog.UpdatePrice(ctx, name, *req.Price); err != nil {
			s.renderCatalogError(w, r, name, err)
			return
		}
	}
	if req.Stock != nil || req.ClearStock {
		if err := s.catalog.UpdateStock(ctx, name, req.Stock); err != nil {
			s.renderCatalogError(w, r, name, err)
			return
		}
	}

	item, err := s.catalog.GetItem(ctx, name)
	if err != nil {
		s.renderCatalogError(w, r, name, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, toItemJSON(item))
}

// DELETE /api/v1/items/{name}
func (s *Server) removeItemHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.catalog.RemoveItem(r.Context(), name); err != nil {
		s.renderCatalogError(w, r, name, err)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) renderCatalogError(w http.ResponseWriter, r *http.Request, name string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		RenderError(w, r, fmt.Errorf("item %q not found", name), http.StatusNotFound)
		return
	}
	log.Printf("[ERROR] catalog operation on %q failed: %v", name, err)
	RenderError(w, r, err, http.StatusInternalServerError)
}

// GET /api/v1/history/{number}?limit=20
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	number := s.pauses.Normalize(r.PathValue("number"))
	if number == "" {
		RenderError(w, r, errors.New("invalid number"), http.StatusBadRequest)
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l <= 0 {
			RenderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = l
	}
	turns, err := s.history.RecentTurns(r.Context(), number, limit)
	if err != nil {
		log.Printf("[ERROR] failed to read history of %s: %v", number, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	res := make([]turnJSON, 0, len(turns))
	for _, t := range turns {
		res = append(res, turnJSON{Role: t.Role, Content: t.Content, CreatedAt: t.CreatedAt})
	}
	RenderJSON(w, r, http.StatusOK, map[string]any{"number": number, "turns": res})
}

// POST /api/v1/test/message {"number": "...", "text": "...", "push_name": "..."} routes a message
// as if it came from the gateway. Replies are really sent.
func (s *Server) testMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number   string `json:"number"`
		Text     string `json:"text"`
		PushName string `json:"push_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	if req.Number == "" || req.Text == "" {
		RenderError(w, r, errors.New("number and text are required"), http.StatusBadRequest)
		return
	}
	res := s.router.Route(r.Context(), domain.InboundMessage{
		SenderID:  req.Number,
		Text:      req.Text,
		PushName:  req.PushName,
		Timestamp: time.Now(),
	})
	RenderJSON(w, r, http.StatusOK, map[string]any{"success": res.Success, "action": res.Action, "error": res.Error()})
}
