package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/umputun/repairbot/pkg/gateway"
)

// webhookHandler accepts Evolution API events. Well-formed deliveries always get 200,
// so the gateway does not retry messages that were deliberately ignored.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	ev, err := gateway.ParseEvent(body)
	if err != nil {
		log.Printf("[WARN] malformed webhook payload: %v", err)
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	switch ev.Event {
	case gateway.EventMessagesUpsert:
		s.handleMessageEvent(w, r, ev)
	case gateway.EventConnectionUpdate:
		var st struct {
			State string `json:"state"`
		}
		if err := json.Unmarshal(ev.Data, &st); err != nil {
			log.Printf("[WARN] can't decode connection update: %v", err)
		}
		log.Printf("[INFO] whatsapp connection update for %s: %q", ev.Instance, st.State)
		RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	default:
		log.Printf("[DEBUG] ignoring webhook event %q", ev.Event)
		RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ignored"})
	}
}

func (s *Server) handleMessageEvent(w http.ResponseWriter, r *http.Request, ev gateway.Event) {
	msg, err := ev.Message()
	if err != nil {
		level := "[DEBUG]"
		if errors.Is(err, gateway.ErrInvalidMessage) {
			level = "[WARN]"
		}
		log.Printf("%s message event skipped: %v", level, err)
		RenderJSON(w, r, http.StatusOK, map[string]string{"status": "ignored", "reason": err.Error()})
		return
	}

	if !s.limiter.allow(msg.SenderID) {
		log.Printf("[WARN] rate limit exceeded for %s, message dropped", msg.SenderID)
		RenderJSON(w, r, http.StatusOK, map[string]string{"status": "dropped", "reason": "rate limit exceeded"})
		return
	}

	// routing outlives the request, the gateway may drop the connection while the reply is generated
	res := s.router.Route(context.WithoutCancel(r.Context()), msg)
	status := "processed"
	if !res.Success {
		status = "failed"
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": status, "action": string(res.Action)})
}

// senderLimiter keeps a token bucket per sender
type senderLimiter struct {
	limit rate.Limit
	burst int
	ttl   time.Duration

	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	lastSweep time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newSenderLimiter(limit rate.Limit, burst int) *senderLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &senderLimiter{limit: limit, burst: burst, ttl: 10 * time.Minute, limiters: map[string]*limiterEntry{}}
}

// allow reports whether a message from sender may be processed now. Non-positive limit disables limiting.
func (l *senderLimiter) allow(sender string) bool {
	if l.limit <= 0 {
		return true
	}
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.ttl {
		for k, e := range l.limiters {
			if now.Sub(e.lastSeen) > l.ttl {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}

	e, ok := l.limiters[sender]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[sender] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}
