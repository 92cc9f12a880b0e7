package domain

import "strings"

// Intent is the classified purpose of a customer message
type Intent int

// closed set of intents; anything unrecognized maps to IntentOther
const (
	IntentOther Intent = iota
	IntentPriceQuery
	IntentHumanSupport
	IntentGreeting
)

var intentLabels = map[Intent]string{
	IntentOther:        "other",
	IntentPriceQuery:   "price_query",
	IntentHumanSupport: "human_support",
	IntentGreeting:     "greeting",
}

// String returns the wire label of the intent
func (i Intent) String() string {
	if s, ok := intentLabels[i]; ok {
		return s
	}
	return "other"
}

// ParseIntent converts a classifier label into an Intent.
// The label is matched leniently: surrounding quotes, punctuation and case are ignored
// and the first known label found in the text wins.
func ParseIntent(label string) Intent {
	l := strings.ToLower(strings.TrimSpace(label))
	l = strings.Trim(l, "\"'`.,;: ")
	switch l {
	case "price_query":
		return IntentPriceQuery
	case "human_support":
		return IntentHumanSupport
	case "greeting":
		return IntentGreeting
	case "other":
		return IntentOther
	}
	res, pos := IntentOther, -1
	for _, it := range []Intent{IntentPriceQuery, IntentHumanSupport, IntentGreeting} {
		if idx := strings.Index(l, it.String()); idx >= 0 && (pos < 0 || idx < pos) {
			res, pos = it, idx
		}
	}
	return res
}
