// Package router decides what happens to every inbound message: whether it is
// answered at all, whether it is an admin command or a customer message, and
// which response strategy handles it.
package router

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/phone"
)

//go:generate moq -out mocks/capabilities.go -pkg mocks -skip-ensure -fmt goimports . Classifier ItemExtractor Generator Messenger
//go:generate moq -out mocks/stores.go -pkg mocks -skip-ensure -fmt goimports . Catalog History PauseStore SettingsProvider

// Classifier returns the intent of a customer message
type Classifier interface {
	ClassifyIntent(ctx context.Context, text string) (domain.Intent, error)
}

// ItemExtractor finds the item a price question is about
type ItemExtractor interface {
	ExtractItem(ctx context.Context, text string) (item string, ok bool, err error)
}

// Generator produces free-text replies
type Generator interface {
	GenerateReply(ctx context.Context, text string, rc domain.ReplyContext) (domain.Reply, error)
}

// Messenger delivers outbound messages
type Messenger interface {
	SendMessage(ctx context.Context, number, text string) error
	SendAdminNotification(ctx context.Context, text string) error
}

// Catalog is the product catalog
type Catalog interface {
	FindItem(ctx context.Context, query string) (domain.Item, error)
	SimilarItems(ctx context.Context, query string, limit int) ([]domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, name string) (domain.Item, error)
	AddItem(ctx context.Context, item *domain.Item) error
	UpdatePrice(ctx context.Context, name string, price float64) error
	RemoveItem(ctx context.Context, name string) error
}

// History is the per-sender conversation log
type History interface {
	AppendTurns(ctx context.Context, turns ...domain.Turn) error
	RecentTurns(ctx context.Context, senderID string, limit int) ([]domain.Turn, error)
}

// PauseStore manages per-sender pauses and the global flag
type PauseStore interface {
	IsPaused(ctx context.Context, senderID string) (bool, error)
	Pause(ctx context.Context, senderID string, days int) (domain.PauseRecord, error)
	Resume(ctx context.Context, senderID string) error
	ListPaused(ctx context.Context) ([]domain.PauseRecord, error)
	SetGlobalPause(ctx context.Context, paused bool) error
}

// SettingsProvider returns the runtime settings snapshot
type SettingsProvider interface {
	Snapshot(ctx context.Context) (domain.Settings, error)
}

// Deps are the collaborators of the engine
type Deps struct {
	Classifier Classifier
	Extractor  ItemExtractor
	Generator  Generator
	Catalog    Catalog
	History    History
	Pauses     PauseStore
	Messenger  Messenger
	Settings   SettingsProvider
}

// Config for the engine
type Config struct {
	BotName           string
	CountryCode       string
	HandoffPauseDays  int
	HistoryLimit      int
	NotFoundPolicy    string
	SimilarLimit      int
	CapabilityTimeout time.Duration
	Clock             func() time.Time // time.Now if nil
}

// Engine routes inbound messages
type Engine struct {
	Deps
	cfg   Config
	phone phone.Normalizer
	locks *stripedLock
	now   func() time.Time
}

// outcome is what a handler decided. The engine sends reply (if any) and records history.
type outcome struct {
	action domain.Action
	reply  string
	err    error
}

// New makes a routing engine
func New(deps Deps, cfg Config) *Engine {
	if cfg.BotName == "" {
		cfg.BotName = "Assistente"
	}
	if cfg.HandoffPauseDays <= 0 {
		cfg.HandoffPauseDays = 3
	}
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}
	if cfg.NotFoundPolicy == "" {
		cfg.NotFoundPolicy = domain.NotFoundBackorder
	}
	if cfg.SimilarLimit <= 0 {
		cfg.SimilarLimit = 3
	}
	if cfg.CapabilityTimeout <= 0 {
		cfg.CapabilityTimeout = 45 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Engine{
		Deps:  deps,
		cfg:   cfg,
		phone: phone.New(cfg.CountryCode),
		locks: newStripedLock(256),
		now:   cfg.Clock,
	}
}

// Route processes one inbound message. Gating rules run first, in order: global switch,
// debug allow-list, then per-sender pause for customers. Messages from the same sender
// are processed one at a time.
func (e *Engine) Route(ctx context.Context, msg domain.InboundMessage) domain.Result {
	sender := e.phone.Normalize(msg.SenderID)
	if sender == "" {
		return domain.Result{Action: domain.ActionProcessingFailed, Err: fmt.Errorf("invalid sender %q", msg.SenderID)}
	}

	unlock := e.locks.lock(sender)
	defer unlock()

	settings, err := e.Settings.Snapshot(ctx)
	if err != nil {
		log.Printf("[ERROR] can't read settings for message from %s: %v", sender, err)
		return domain.Result{Action: domain.ActionProcessingFailed, Err: err}
	}

	if !settings.AIActive {
		log.Printf("[DEBUG] ai globally disabled, ignoring message from %s", sender)
		return domain.Result{Success: true, Action: domain.ActionAIGloballyDisabled}
	}

	if settings.DebugMode() && !e.phone.Match(sender, settings.DebugSender) {
		log.Printf("[DEBUG] debug mode, ignoring message from %s", sender)
		return domain.Result{Success: true, Action: domain.ActionDebugModeIgnored}
	}

	isAdmin := e.phone.Match(sender, settings.AdminSender)

	if !isAdmin {
		paused, err := e.Pauses.IsPaused(ctx, sender)
		if err != nil {
			log.Printf("[ERROR] can't check pause for %s: %v", sender, err)
			return e.deliver(ctx, sender, msg, outcome{action: domain.ActionProcessingFailed, reply: msgGenericFailure, err: err})
		}
		if paused {
			log.Printf("[DEBUG] ai paused for %s, ignoring message", sender)
			return domain.Result{Success: true, Action: domain.ActionAIPaused}
		}
	}

	out := e.dispatch(ctx, sender, msg, isAdmin)
	return e.deliver(ctx, sender, msg, out)
}

// dispatch runs the admin or customer path, converting panics into a failed outcome
func (e *Engine) dispatch(ctx context.Context, sender string, msg domain.InboundMessage, isAdmin bool) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] panic while processing message from %s: %v\n%s", sender, r, debug.Stack())
			reply := msgGenericFailure
			if isAdmin {
				reply = msgAdminFailure
			}
			out = outcome{action: domain.ActionProcessingFailed, reply: reply, err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if isAdmin {
		return e.handleAdmin(ctx, sender, msg)
	}
	return e.handleCustomer(ctx, sender, msg)
}

// deliver sends the reply and appends conversational exchanges to history
func (e *Engine) deliver(ctx context.Context, sender string, msg domain.InboundMessage, out outcome) domain.Result {
	res := domain.Result{Success: out.err == nil, Action: out.action, Err: out.err}
	if out.err != nil {
		log.Printf("[WARN] %s for %s, message %q: %v", out.action, sender, msg.Text, out.err)
	}

	if out.reply != "" {
		sendCtx, cancel := e.capabilityCtx(ctx)
		err := e.Messenger.SendMessage(sendCtx, sender, out.reply)
		cancel()
		if err != nil {
			log.Printf("[WARN] can't deliver reply to %s: %v", sender, err)
			res.Success = false
			res.Err = errors.Join(res.Err, fmt.Errorf("send reply: %w", err))
		}
	}

	if out.action.Conversational() {
		err := e.History.AppendTurns(ctx,
			domain.Turn{SenderID: sender, Role: domain.RoleUser, Content: msg.Text},
			domain.Turn{SenderID: sender, Role: domain.RoleAssistant, Content: out.reply},
		)
		if err != nil {
			log.Printf("[WARN] can't save history for %s: %v", sender, err)
			res.Success = false
			res.Err = errors.Join(res.Err, fmt.Errorf("save history: %w", err))
		}
	}

	log.Printf("[INFO] message from %s handled: %s, success: %v", sender, res.Action, res.Success)
	return res
}

// capabilityCtx bounds a single LLM or gateway call
func (e *Engine) capabilityCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.CapabilityTimeout)
}

// generalReply asks the generator for a free-text answer with catalog and history as context
func (e *Engine) generalReply(ctx context.Context, sender, text string, isAdmin bool) (domain.Reply, error) {
	items, err := e.Catalog.ListItems(ctx)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("load catalog: %w", err)
	}

	var turns []domain.Turn
	if e.cfg.HistoryLimit > 0 {
		if turns, err = e.History.RecentTurns(ctx, sender, e.cfg.HistoryLimit); err != nil {
			log.Printf("[WARN] can't load history for %s, answering without it: %v", sender, err)
			turns = nil
		}
	}

	genCtx, cancel := e.capabilityCtx(ctx)
	defer cancel()
	reply, err := e.Generator.GenerateReply(genCtx, text, domain.ReplyContext{Catalog: items, History: turns, IsAdmin: isAdmin})
	if err != nil {
		return domain.Reply{}, err
	}
	return reply, nil
}

func newTicketID() string {
	return uuid.NewString()[:8]
}
