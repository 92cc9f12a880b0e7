package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/repairbot/pkg/domain"
)

const intentPrompt = `Você classifica mensagens de clientes de uma assistência técnica de celulares.
Responda APENAS com uma destas palavras:
- price_query: o cliente pergunta preço, valor ou orçamento de uma peça ou serviço
- human_support: o cliente quer falar com um atendente, uma pessoa ou o dono
- greeting: apenas uma saudação (oi, olá, bom dia) sem outra pergunta
- other: qualquer outra coisa`

const extractPrompt = `Extraia da mensagem o nome da peça ou serviço cujo preço o cliente quer saber.
Inclua o modelo do aparelho quando houver (ex: "Frontal A13", "Bateria iPhone 11").
Responda APENAS com o nome, sem pontuação. Se não houver item identificável, responda: não identificado`

const notIdentified = "não identificado"

// ClassifyIntent returns the intent of a customer message
func (c *Client) ClassifyIntent(ctx context.Context, text string) (domain.Intent, error) {
	raw, err := c.chat(ctx, chatParams{
		messages:    []openai.ChatCompletionMessage{system(intentPrompt), user(text)},
		temperature: 0.1,
		maxTokens:   20,
	})
	if err != nil {
		return domain.IntentOther, fmt.Errorf("classify intent: %w", err)
	}
	return domain.ParseIntent(cleanText(raw)), nil
}

// ExtractItem returns the catalog item referenced by a price question, ok is false if none is identifiable
func (c *Client) ExtractItem(ctx context.Context, text string) (item string, ok bool, err error) {
	raw, err := c.chat(ctx, chatParams{
		messages:    []openai.ChatCompletionMessage{system(extractPrompt), user(text)},
		temperature: 0.1,
		maxTokens:   50,
	})
	if err != nil {
		return "", false, fmt.Errorf("extract item: %w", err)
	}
	item = strings.Trim(cleanText(raw), "\"'`.!?* ")
	if item == "" || strings.Contains(strings.ToLower(item), notIdentified) {
		return "", false, nil
	}
	return item, true, nil
}
