package router

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/umputun/repairbot/pkg/command"
	"github.com/umputun/repairbot/pkg/domain"
	"github.com/umputun/repairbot/pkg/repository"
)

// handleAdmin parses the operator message and executes the command
func (e *Engine) handleAdmin(ctx context.Context, sender string, msg domain.InboundMessage) outcome {
	cmd := command.Parse(msg.Text)
	log.Printf("[DEBUG] admin command %T from %s", cmd, sender)

	switch c := cmd.(type) {
	case command.Add:
		return e.addItem(ctx, c)
	case command.Edit:
		return e.editItem(ctx, c)
	case command.Remove:
		return e.removeItem(ctx, c)
	case command.List:
		items, err := e.Catalog.ListItems(ctx)
		if err != nil {
			return adminFailure(domain.ActionItemsListed, fmt.Errorf("list items: %w", err))
		}
		return outcome{action: domain.ActionItemsListed, reply: itemsListMessage(items)}
	case command.Help:
		return outcome{action: domain.ActionHelpSent, reply: msgAdminHelp}
	case command.PauseNumber:
		return e.pauseNumber(ctx, c)
	case command.ResumeNumber:
		target := e.phone.Normalize(c.Target)
		if err := e.Pauses.Resume(ctx, target); err != nil {
			return adminFailure(domain.ActionNumberResumed, fmt.Errorf("resume %s: %w", target, err))
		}
		return outcome{action: domain.ActionNumberResumed, reply: fmt.Sprintf("IA retomada para o número +%s.", target)}
	case command.ListPaused:
		recs, err := e.Pauses.ListPaused(ctx)
		if err != nil {
			return adminFailure(domain.ActionPausedListed, fmt.Errorf("list paused: %w", err))
		}
		return outcome{action: domain.ActionPausedListed, reply: pausedListMessage(recs, e.now())}
	case command.PauseGlobal:
		if err := e.Pauses.SetGlobalPause(ctx, true); err != nil {
			return adminFailure(domain.ActionGlobalPaused, fmt.Errorf("set global pause: %w", err))
		}
		log.Printf("[INFO] ai globally paused by admin")
		return outcome{action: domain.ActionGlobalPaused,
			reply: "IA pausada para todos os números. Para reativar use a API de gerenciamento ou \"Retomar IA geral\"."}
	case command.ResumeGlobal:
		if err := e.Pauses.SetGlobalPause(ctx, false); err != nil {
			return adminFailure(domain.ActionGlobalResumed, fmt.Errorf("clear global pause: %w", err))
		}
		log.Printf("[INFO] ai globally resumed by admin")
		return outcome{action: domain.ActionGlobalResumed, reply: "IA reativada para todos os números."}
	case command.Invalid:
		return outcome{action: domain.ActionInvalidCommand, reply: usageHints[c.Usage],
			err: fmt.Errorf("invalid command %q", c.Original)}
	case command.RegularChat:
		reply, err := e.generalReply(ctx, sender, c.Text, true)
		if err != nil {
			return outcome{action: domain.ActionRegularMessage, reply: msgAdminFailure, err: fmt.Errorf("admin chat: %w", err)}
		}
		return outcome{action: domain.ActionRegularMessage, reply: reply.Text}
	default:
		return adminFailure(domain.ActionProcessingFailed, fmt.Errorf("unsupported command %T", cmd))
	}
}

func (e *Engine) addItem(ctx context.Context, c command.Add) outcome {
	item := domain.Item{Name: c.ItemName, Price: c.Price}
	err := e.Catalog.AddItem(ctx, &item)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return outcome{action: domain.ActionItemAdded, err: err,
			reply: fmt.Sprintf("O item %q já existe. Use \"Editar %s R$[preço]\" para alterar o preço.", c.ItemName, c.ItemName)}
	case err != nil:
		return adminFailure(domain.ActionItemAdded, fmt.Errorf("add item %q: %w", c.ItemName, err))
	}
	log.Printf("[INFO] item %q added with price %.2f", item.Name, item.Price)
	return outcome{action: domain.ActionItemAdded,
		reply: fmt.Sprintf("Item %q adicionado com preço R$%s.", item.Name, domain.FormatPrice(item.Price))}
}

func (e *Engine) editItem(ctx context.Context, c command.Edit) outcome {
	old, err := e.Catalog.GetItem(ctx, c.ItemName)
	if err == nil {
		err = e.Catalog.UpdatePrice(ctx, c.ItemName, c.Price)
	}
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return outcome{action: domain.ActionItemEdited, err: err,
			reply: fmt.Sprintf("Item %q não encontrado. Use \"Listar itens\" para ver os itens cadastrados.", c.ItemName)}
	case err != nil:
		return adminFailure(domain.ActionItemEdited, fmt.Errorf("edit item %q: %w", c.ItemName, err))
	}
	log.Printf("[INFO] item %q price changed %.2f -> %.2f", old.Name, old.Price, c.Price)
	return outcome{action: domain.ActionItemEdited,
		reply: fmt.Sprintf("Preço de %q atualizado de R$%s para R$%s.", old.Name, domain.FormatPrice(old.Price), domain.FormatPrice(c.Price))}
}

func (e *Engine) removeItem(ctx context.Context, c command.Remove) outcome {
	err := e.Catalog.RemoveItem(ctx, c.ItemName)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return outcome{action: domain.ActionItemRemoved, err: err,
			reply: fmt.Sprintf("Item %q não encontrado. Use \"Listar itens\" para ver os itens cadastrados.", c.ItemName)}
	case err != nil:
		return adminFailure(domain.ActionItemRemoved, fmt.Errorf("remove item %q: %w", c.ItemName, err))
	}
	log.Printf("[INFO] item %q removed", c.ItemName)
	return outcome{action: domain.ActionItemRemoved, reply: fmt.Sprintf("Item %q removido.", c.ItemName)}
}

func (e *Engine) pauseNumber(ctx context.Context, c command.PauseNumber) outcome {
	target := e.phone.Normalize(c.Target)
	rec, err := e.Pauses.Pause(ctx, target, e.cfg.HandoffPauseDays)
	if err != nil {
		return adminFailure(domain.ActionNumberPaused, fmt.Errorf("pause %s: %w", target, err))
	}
	log.Printf("[INFO] ai paused for %s until %s by admin", rec.SenderID, rec.PausedUntil.Format(timeLayout))
	return outcome{action: domain.ActionNumberPaused,
		reply: fmt.Sprintf("IA pausada para o número +%s até %s.", rec.SenderID, rec.PausedUntil.Format(timeLayout))}
}

// adminFailure is an unexpected error while executing a command
func adminFailure(action domain.Action, err error) outcome {
	return outcome{action: domain.ActionProcessingFailed, reply: msgAdminFailure, err: fmt.Errorf("%s: %w", action, err)}
}
