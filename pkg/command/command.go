// Package command parses operator messages into structured admin commands.
// Rules are evaluated in order and the first match wins; anything that is not a
// recognized command is returned as RegularChat for the conversational path.
package command

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/repairbot/pkg/phone"
)

// Command is a parsed admin message. The set of implementations is closed.
type Command interface {
	command()
}

// Usage identifies which usage hint an invalid command should render
type Usage int

// usage hints for malformed commands
const (
	UsageAdd Usage = iota
	UsageEdit
	UsageRemove
	UsagePause
	UsageResume
)

// Add creates a catalog item
type Add struct {
	ItemName string
	Price    float64
}

// Edit changes the price of an existing catalog item
type Edit struct {
	ItemName string
	Price    float64
}

// Remove deletes a catalog item
type Remove struct {
	ItemName string
}

// List shows the catalog
type List struct{}

// Help shows the command reference
type Help struct{}

// PauseNumber suppresses automated replies to one sender
type PauseNumber struct {
	Target string
}

// ResumeNumber lifts a per-sender pause
type ResumeNumber struct {
	Target string
}

// ListPaused shows all paused senders
type ListPaused struct{}

// PauseGlobal turns automated replies off for everyone
type PauseGlobal struct{}

// ResumeGlobal turns automated replies back on
type ResumeGlobal struct{}

// Invalid is a recognized command with malformed parameters
type Invalid struct {
	Original string
	Usage    Usage
}

// RegularChat is free-form text from the admin
type RegularChat struct {
	Text string
}

func (Add) command()          {}
func (Edit) command()         {}
func (Remove) command()       {}
func (List) command()         {}
func (Help) command()         {}
func (PauseNumber) command()  {}
func (ResumeNumber) command() {}
func (ListPaused) command()   {}
func (PauseGlobal) command()  {}
func (ResumeGlobal) command() {}
func (Invalid) command()      {}
func (RegularChat) command()  {}

var (
	reItemPrice = regexp.MustCompile(`(?is)^\S+\s+(.+?)\s+r\$?\s*(\d+(?:[.,]\d+)?)\s*$`)
	rePause     = regexp.MustCompile(`(?i)^(?:pausar\s+ia|pause\s+ai)(?:\s+(.*))?$`)
	reResume    = regexp.MustCompile(`(?i)^(?:retomar\s+ia|resume\s+ai)(?:\s+(.*))?$`)
	reTarget    = regexp.MustCompile(`^[\d\s+\-().]+$`)
	reSpaces    = regexp.MustCompile(`\s+`)

	sanitizer = bluemonday.StrictPolicy()
)

var (
	addVerbs    = []string{"adicionar", "add"}
	editVerbs   = []string{"editar", "edit"}
	removeVerbs = []string{"remover", "remove", "deletar", "delete"}

	listPausedPhrases   = []string{"listar pausados", "list paused", "pausados"}
	pauseGlobalPhrases  = []string{"pausar ia geral", "pausar tudo", "pause all", "pause global"}
	resumeGlobalPhrases = []string{"retomar ia geral", "retomar tudo", "resume all", "resume global"}
	listWords           = []string{"listar", "list", "lista"}
	helpWords           = []string{"ajuda", "help", "comandos"}
)

type rule struct {
	match   func(lower string) bool
	extract func(text, lower string) Command
}

var rules = []rule{
	{match: firstWordIn(addVerbs), extract: func(text, _ string) Command { return parseItemPrice(text, UsageAdd) }},
	{match: firstWordIn(editVerbs), extract: func(text, _ string) Command { return parseItemPrice(text, UsageEdit) }},
	{match: firstWordIn(removeVerbs), extract: parseRemove},
	{match: exactIn(listPausedPhrases), extract: func(string, string) Command { return ListPaused{} }},
	{match: isList, extract: func(string, string) Command { return List{} }},
	{match: exactIn(pauseGlobalPhrases), extract: func(string, string) Command { return PauseGlobal{} }},
	{match: exactIn(resumeGlobalPhrases), extract: func(string, string) Command { return ResumeGlobal{} }},
	{match: rePause.MatchString, extract: func(text, _ string) Command { return parseTarget(text, rePause, UsagePause) }},
	{match: reResume.MatchString, extract: func(text, _ string) Command { return parseTarget(text, reResume, UsageResume) }},
	{match: containsAny(helpWords), extract: func(string, string) Command { return Help{} }},
}

// Parse classifies an admin message. It never fails: text that matches no rule is RegularChat.
func Parse(text string) Command {
	trimmed := strings.TrimSpace(text)
	lower := reSpaces.ReplaceAllString(strings.ToLower(trimmed), " ")
	for _, r := range rules {
		if r.match(lower) {
			return r.extract(trimmed, lower)
		}
	}
	return RegularChat{Text: text}
}

// ParsePrice converts "250", "250,50" or "250.50" to a positive amount
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// CleanName strips markup and collapses whitespace in an item name
func CleanName(s string) string {
	s = html.UnescapeString(sanitizer.Sanitize(s))
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

func parseItemPrice(text string, usage Usage) Command {
	m := reItemPrice.FindStringSubmatch(text)
	if m == nil {
		return Invalid{Original: text, Usage: usage}
	}
	name := CleanName(m[1])
	price, ok := ParsePrice(m[2])
	if name == "" || !ok {
		return Invalid{Original: text, Usage: usage}
	}
	if usage == UsageEdit {
		return Edit{ItemName: name, Price: price}
	}
	return Add{ItemName: name, Price: price}
}

func parseRemove(text, _ string) Command {
	fields := strings.Fields(text)
	name := CleanName(strings.Join(fields[1:], " "))
	if name == "" {
		return Invalid{Original: text, Usage: UsageRemove}
	}
	return Remove{ItemName: name}
}

func parseTarget(text string, re *regexp.Regexp, usage Usage) Command {
	m := re.FindStringSubmatch(text)
	target := ""
	if len(m) > 1 {
		target = strings.TrimSpace(m[1])
	}
	if target == "" || !reTarget.MatchString(target) || len(phone.Digits(target)) < 8 {
		return Invalid{Original: text, Usage: usage}
	}
	if usage == UsageResume {
		return ResumeNumber{Target: target}
	}
	return PauseNumber{Target: target}
}

func isList(lower string) bool {
	if lower == "itens" || lower == "items" {
		return true
	}
	return containsAny(listWords)(lower)
}

func firstWordIn(words []string) func(string) bool {
	return func(lower string) bool {
		fields := strings.Fields(lower)
		if len(fields) == 0 {
			return false
		}
		for _, w := range words {
			if fields[0] == w {
				return true
			}
		}
		return false
	}
}

func exactIn(phrases []string) func(string) bool {
	return func(lower string) bool {
		for _, p := range phrases {
			if lower == p {
				return true
			}
		}
		return false
	}
}

// containsAny matches when any whole word of the message is one of words
func containsAny(words []string) func(string) bool {
	return func(lower string) bool {
		for _, f := range strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) }) {
			for _, w := range words {
				if f == w {
					return true
				}
			}
		}
		return false
	}
}
