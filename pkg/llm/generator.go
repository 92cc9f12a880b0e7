package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/repairbot/pkg/domain"
)

const replyPrompt = `Você é %s, assistente virtual de uma assistência técnica de celulares que atende pelo WhatsApp.
Responda em português do Brasil, de forma curta, simpática e objetiva, como numa conversa de WhatsApp.
Use apenas os preços da lista abaixo. Nunca invente preços, prazos ou itens que não estejam na lista.
Se o cliente quiser falar com uma pessoa, diga para escrever "quero falar com atendente".

Itens e preços disponíveis:
%s`

const adminHints = `
Você está conversando com o dono da loja. Ele pode gerenciar o catálogo com comandos:
- Adicionar [nome do item] R$[preço]
- Editar [nome do item] R$[preço]
- Remover [nome do item]
- Listar
- Pausar IA [número] / Retomar IA [número]
- Pausar IA geral / Retomar IA geral
- Ajuda
Se ele parecer tentar um comando com formato errado, explique o formato correto.`

// GenerateReply produces a conversational answer using the catalog and recent history as context
func (c *Client) GenerateReply(ctx context.Context, text string, rc domain.ReplyContext) (domain.Reply, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(rc.History)+2)
	messages = append(messages, system(c.systemPrompt(rc)))
	for _, t := range rc.History {
		role := openai.ChatMessageRoleUser
		if t.Role == domain.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}
	messages = append(messages, user(text))

	raw, err := c.chat(ctx, chatParams{
		messages:    messages,
		temperature: float32(c.config.Temperature),
		maxTokens:   c.config.MaxTokens,
	})
	if err != nil {
		return domain.Reply{}, fmt.Errorf("generate reply: %w", err)
	}

	reply := domain.Reply{Text: cleanText(raw), Raw: raw}
	if reply.Text == "" {
		return domain.Reply{}, fmt.Errorf("generate reply: empty response")
	}
	return reply, nil
}

func (c *Client) systemPrompt(rc domain.ReplyContext) string {
	var items strings.Builder
	if len(rc.Catalog) == 0 {
		items.WriteString("(nenhum item cadastrado)\n")
	}
	for _, it := range rc.Catalog {
		fmt.Fprintf(&items, "- %s: R$%s", it.Name, domain.FormatPrice(it.Price))
		if it.Stock != nil {
			fmt.Fprintf(&items, " (estoque: %d)", *it.Stock)
		}
		items.WriteString("\n")
	}

	prompt := fmt.Sprintf(replyPrompt, c.botName, items.String())
	if rc.IsAdmin {
		prompt += adminHints
	}
	if extra := strings.TrimSpace(c.config.SystemPrompt); extra != "" {
		prompt += "\n\nInstruções adicionais:\n" + extra
	}
	return prompt
}
