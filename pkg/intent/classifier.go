// Package intent maps free-text utterances about natural-hazard risk to
// structured intent records through an ordered rule cascade.
package intent

// Classifier tries rules in fixed priority order and returns the first
// match. Disaster keywords win over POI words, which win over global-hazard
// phrases; exact-match greetings sit above the substring help rule because
// the greeting table contains phrases like "how can you help".
type Classifier struct {
	rules []Rule
}

func NewClassifier() *Classifier {
	return &Classifier{
		rules: []Rule{
			DisasterRule{},
			PoiRule{},
			GlobalHazardRule{},
			GreetingRule{},
			HelpRule{},
			FallbackRule{},
		},
	}
}

// Classify is total: every utterance yields an intent record, with
// unrecognized input absorbed by the fallback rule.
func (c *Classifier) Classify(text string) Intent {
	u := NewUtterance(text)
	for _, rule := range c.rules {
		if it, ok := rule.TryMatch(u); ok {
			return *it
		}
	}
	// FallbackRule always matches; this is unreachable.
	return Intent{Kind: KindFallback, RawText: text}
}
