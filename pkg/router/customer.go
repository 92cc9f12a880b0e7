package router

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/repository"
)

// handleCustomer classifies the message and runs the matching strategy
func (e *Engine) handleCustomer(ctx context.Context, sender string, msg domain.InboundMessage) outcome {
	clsCtx, cancel := e.capabilityCtx(ctx)
	intent, err := e.Classifier.ClassifyIntent(clsCtx, msg.Text)
	cancel()
	if err != nil {
		return outcome{action: domain.ActionFallbackResponse, reply: msgFallback, err: fmt.Errorf("classify intent: %w", err)}
	}
	log.Printf("[DEBUG] intent for %s: %s", sender, intent)

	switch intent {
	case domain.IntentPriceQuery:
		return e.priceQuery(ctx, sender, msg)
	case domain.IntentHumanSupport:
		return e.humanSupport(ctx, sender, msg)
	case domain.IntentGreeting:
		return outcome{action: domain.ActionGreetingSent, reply: greetingMessage(e.cfg.BotName)}
	default:
		return e.generalQuery(ctx, sender, msg)
	}
}

func (e *Engine) priceQuery(ctx context.Context, sender string, msg domain.InboundMessage) outcome {
	exCtx, cancel := e.capabilityCtx(ctx)
	query, ok, err := e.Extractor.ExtractItem(exCtx, msg.Text)
	cancel()
	if err != nil {
		return outcome{action: domain.ActionProcessingFailed, reply: msgGenericFailure, err: fmt.Errorf("extract item: %w", err)}
	}
	if !ok {
		log.Printf("[DEBUG] no item identified in %q, answering as general query", msg.Text)
		return e.generalQuery(ctx, sender, msg)
	}

	item, err := e.Catalog.FindItem(ctx, query)
	if err == nil {
		return outcome{action: domain.ActionPriceFound, reply: priceMessage(item)}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return outcome{action: domain.ActionProcessingFailed, reply: msgGenericFailure, err: fmt.Errorf("find item %q: %w", query, err)}
	}

	if e.cfg.NotFoundPolicy == domain.NotFoundSimilar {
		similar, err := e.Catalog.SimilarItems(ctx, query, e.cfg.SimilarLimit)
		if err != nil {
			log.Printf("[WARN] can't look up items similar to %q: %v", query, err)
		}
		if len(similar) > 0 {
			return outcome{action: domain.ActionSimilarItemsFound, reply: similarItemsMessage(query, similar)}
		}
	}
	return outcome{action: domain.ActionItemNotFound, reply: backorderMessage(query)}
}

// humanSupport pauses the sender, notifies the shop owner and confirms to the customer.
// Notification and confirmation go out even if the pause could not be stored.
func (e *Engine) humanSupport(ctx context.Context, sender string, msg domain.InboundMessage) outcome {
	days := e.cfg.HandoffPauseDays
	var pauseErr error
	if _, err := e.Pauses.Pause(ctx, sender, days); err != nil {
		pauseErr = fmt.Errorf("pause %s: %w", sender, err)
		log.Printf("[ERROR] can't pause %s on handoff: %v", sender, err)
	}

	ticket := newTicketID()
	note := handoffNotification(ticket, sender, msg.PushName, msg.Text, e.now(), days)
	nCtx, cancel := e.capabilityCtx(ctx)
	if err := e.Messenger.SendAdminNotification(nCtx, note); err != nil {
		log.Printf("[WARN] can't notify admin about handoff #%s from %s: %v", ticket, sender, err)
	}
	cancel()

	log.Printf("[INFO] handoff #%s requested by %s, paused for %d days", ticket, sender, days)
	return outcome{action: domain.ActionHumanSupportRequested, reply: handoffConfirmation(days), err: pauseErr}
}

func (e *Engine) generalQuery(ctx context.Context, sender string, msg domain.InboundMessage) outcome {
	reply, err := e.generalReply(ctx, sender, msg.Text, false)
	if err != nil {
		return outcome{action: domain.ActionFallbackResponse, reply: msgFallback, err: fmt.Errorf("general reply: %w", err)}
	}
	return outcome{action: domain.ActionGeneralResponse, reply: reply.Text}
}
