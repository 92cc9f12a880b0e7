package router

import (
	"fmt"
	"strings"
	"time"

	"github.com/umputun/repairbot/pkg/command"
	"github.com/umputun/repairbot/pkg/domain"
)

const (
	msgGenericFailure = "Desculpe, tive um problema técnico. Tente novamente ou solicite atendimento humano."

	msgFallback = "Desculpe, não consegui processar sua mensagem no momento. 😔\n\n" +
		"Você pode:\n" +
		"• Perguntar sobre preços de peças específicas\n" +
		"• Solicitar atendimento humano digitando \"quero falar com atendente\"\n\n" +
		"Como posso ajudar? 😊"

	msgAdminFailure = "Desculpe, tive um problema técnico. Tente novamente."

	msgNoItems  = "Nenhum item encontrado no banco de dados."
	msgNoPaused = "Nenhum número pausado no momento."

	msgAdminHelp = `*COMANDOS ADMINISTRATIVOS*

📝 *Adicionar item:*
Adicionar [nome] R$[preço]
Ex: Adicionar Frontal A13 R$250

✏️ *Editar preço:*
Editar [nome] R$[novo preço]
Ex: Editar Frontal A13 R$300

🗑️ *Remover item:*
Remover [nome do item]
Ex: Remover Frontal A13

📋 *Listar todos os itens:*
Listar itens

⏸️ *Pausar/retomar IA para um cliente:*
Pausar IA [número]
Retomar IA [número]
Listar pausados

🌐 *Pausar/retomar IA para todos:*
Pausar IA geral
Retomar IA geral

❓ *Ver esta ajuda:*
Ajuda ou Help

*Obs:* Você também pode conversar normalmente como um cliente para testar o sistema.`
)

var usageHints = map[command.Usage]string{
	command.UsageAdd:    "Formato inválido. Use: \"Adicionar [nome do item] R$[preço]\"\n\nExemplo: Adicionar Frontal A13 R$250",
	command.UsageEdit:   "Formato inválido. Use: \"Editar [nome do item] R$[novo preço]\"\n\nExemplo: Editar Frontal A13 R$300",
	command.UsageRemove: "Formato inválido. Use: \"Remover [nome do item]\"\n\nExemplo: Remover Frontal A13",
	command.UsagePause:  "Formato inválido. Use: \"Pausar IA [número]\"\n\nExemplo: Pausar IA 5511999998888",
	command.UsageResume: "Formato inválido. Use: \"Retomar IA [número]\"\n\nExemplo: Retomar IA 5511999998888",
}

const timeLayout = "02/01/2006 15:04"

func greetingMessage(botName string) string {
	return fmt.Sprintf("Olá! 👋 Bem-vindo à nossa assistência técnica!\n\n"+
		"Sou %s, seu assistente virtual, e posso ajudar você com:\n\n"+
		"🔍 *Consultar preços* de peças e serviços\n"+
		"👨‍💼 *Solicitar atendimento* humano\n"+
		"❓ *Tirar dúvidas* sobre reparos\n\n"+
		"Como posso ajudar você hoje? 😊", botName)
}

func priceMessage(item domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*: R$%s", item.Name, domain.FormatPrice(item.Price))
	if item.Stock != nil {
		if *item.Stock > 0 {
			fmt.Fprintf(&b, "\nEm estoque: %d", *item.Stock)
		} else {
			b.WriteString("\nNo momento está sem estoque, mas podemos encomendar.")
		}
	}
	b.WriteString("\n\nPosso ajudar com mais alguma coisa? 😊")
	return b.String()
}

func backorderMessage(query string) string {
	return fmt.Sprintf("No momento não tenho o preço de *%s* cadastrado. 😕\n\n"+
		"Mas podemos encomendar essa peça para você! "+
		"Se quiser, digite \"quero falar com atendente\" que um de nossos atendentes confirma o valor e o prazo.", query)
}

func similarItemsMessage(query string, items []domain.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Não tenho o preço exato para *\"%s\"*, mas tenho estas opções similares:\n\n", query)
	for _, it := range items {
		fmt.Fprintf(&b, "• *%s*: R$%s\n", it.Name, domain.FormatPrice(it.Price))
	}
	b.WriteString("\nGostaria que um atendente verifique o preço específico para você?")
	return b.String()
}

func handoffNotification(ticket, sender, pushName, text string, at time.Time, days int) string {
	client := "+" + sender
	if pushName != "" {
		client += " (" + pushName + ")"
	}
	return fmt.Sprintf("🔔 *SOLICITAÇÃO DE ATENDIMENTO HUMANO* #%s\n\n"+
		"📱 *Cliente:* %s\n"+
		"💬 *Mensagem:* %s\n"+
		"🕐 *Horário:* %s\n\n"+
		"A IA foi pausada para este número por %s.", ticket, client, text, at.Format(timeLayout), daysText(days))
}

func handoffConfirmation(days int) string {
	return fmt.Sprintf("Entendi! 👨‍💼\n\n"+
		"Um de nossos atendentes foi notificado e entrará em contato com você em breve.\n\n"+
		"Para garantir que você receba o atendimento necessário, pausei minhas respostas automáticas para você por %s.",
		daysText(days))
}

func daysText(days int) string {
	if days == 1 {
		return "1 dia"
	}
	return fmt.Sprintf("%d dias", days)
}

func itemsListMessage(items []domain.Item) string {
	if len(items) == 0 {
		return msgNoItems
	}
	var b strings.Builder
	b.WriteString("Itens disponíveis:\n\n")
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s: R$%s", i+1, it.Name, domain.FormatPrice(it.Price))
		if it.Stock != nil {
			fmt.Fprintf(&b, " (estoque: %d)", *it.Stock)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func pausedListMessage(recs []domain.PauseRecord, now time.Time) string {
	if len(recs) == 0 {
		return msgNoPaused
	}
	var b strings.Builder
	b.WriteString("Números pausados:\n\n")
	for i, r := range recs {
		fmt.Fprintf(&b, "%d. +%s até %s", i+1, r.SenderID, r.PausedUntil.Format(timeLayout))
		if !r.Active(now) {
			b.WriteString(" (expirado)")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
