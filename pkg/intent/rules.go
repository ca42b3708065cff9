package intent

import (
	"regexp"
	"strings"
)

// Rule is one matcher in the priority cascade. Rules are tried in a fixed
// order and the first match wins; there is no scoring.
type Rule interface {
	TryMatch(u Utterance) (*Intent, bool)
}

// regionPattern captures the trailing region phrase: the literal word "in"
// followed by word tokens at the end of the utterance.
var regionPattern = regexp.MustCompile(`(?:^|\s)in\s+([a-z]+(?: [a-z]+)*)\s*$`)

// extractRegion pulls the trailing "... in <region>" phrase out of the
// punctuation-stripped utterance. The region is kept as free text; the
// geocoding collaborator validates it downstream.
func extractRegion(stripped string) (string, bool) {
	m := regionPattern.FindStringSubmatch(stripped)
	if m == nil {
		return "", false
	}
	region := strings.TrimSpace(m[1])
	if region == "" {
		return "", false
	}
	return region, true
}

func regionOrDefault(stripped string) string {
	if region, ok := extractRegion(stripped); ok {
		return region
	}
	return DefaultRegion
}

// DisasterRule matches hazard keywords and their morphological variants.
type DisasterRule struct{}

var disasterPatterns = []struct {
	disaster DisasterType
	pattern  *regexp.Regexp
}{
	{DisasterFlood, regexp.MustCompile(`\b(?:floods?|flooding)\b`)},
	{DisasterLandslide, regexp.MustCompile(`\b(?:landslides?|land slides?|mudslides?)\b`)},
	{DisasterFire, regexp.MustCompile(`\b(?:forest fires?|wildfires?|fires?)\b`)},
}

func (DisasterRule) TryMatch(u Utterance) (*Intent, bool) {
	for _, dp := range disasterPatterns {
		if dp.pattern.MatchString(u.Stripped) {
			return &Intent{
				Kind:         KindDisasterQuery,
				DisasterType: dp.disaster,
				Region:       regionOrDefault(u.Stripped),
				RawText:      u.Raw,
			}, true
		}
	}
	return nil, false
}

// PoiRule matches the fixed point-of-interest vocabulary, singular or plural.
type PoiRule struct{}

var poiPatterns = []struct {
	category PoiCategory
	pattern  *regexp.Regexp
}{
	{PoiHospital, regexp.MustCompile(`\bhospitals?\b`)},
	{PoiClinic, regexp.MustCompile(`\bclinics?\b`)},
	{PoiATM, regexp.MustCompile(`\batms?\b`)},
	{PoiRestaurant, regexp.MustCompile(`\brestaurants?\b`)},
	{PoiBusStop, regexp.MustCompile(`\bbus stops?\b`)},
	{PoiSchool, regexp.MustCompile(`\bschools?\b`)},
}

func (PoiRule) TryMatch(u Utterance) (*Intent, bool) {
	for _, pp := range poiPatterns {
		if pp.pattern.MatchString(u.Stripped) {
			return &Intent{
				Kind:        KindPoiQuery,
				PoiCategory: pp.category,
				Region:      regionOrDefault(u.Stripped),
				RawText:     u.Raw,
			}, true
		}
	}
	return nil, false
}

// GlobalHazardRule matches requests for the worldwide hazard dashboard.
type GlobalHazardRule struct{}

func (GlobalHazardRule) TryMatch(u Utterance) (*Intent, bool) {
	s := u.Stripped
	global := strings.Contains(s, "all hazards") ||
		strings.Contains(s, "overall risk") ||
		(strings.Contains(s, "global") && strings.Contains(s, "hazard"))
	if !global {
		return nil, false
	}

	return &Intent{
		Kind:         KindGlobalHazardQuery,
		HazardFilter: detectHazardFilter(s),
		RawText:      u.Raw,
	}, true
}

// detectHazardFilter looks for a secondary keyword narrowing the dashboard
// to one layer group. No keyword means every layer.
func detectHazardFilter(stripped string) HazardFilter {
	switch {
	case strings.Contains(stripped, "flood"):
		return FilterFlood
	case strings.Contains(stripped, "landslide") || strings.Contains(stripped, "mudslide"):
		return FilterLandslide
	case strings.Contains(stripped, "fire") || strings.Contains(stripped, "forest"):
		return FilterFire
	case strings.Contains(stripped, "traffic"):
		return FilterTraffic
	default:
		return FilterAll
	}
}

// GreetingRule matches the whole utterance against a fixed table of
// small-talk phrases. Whole-utterance matching keeps greetings from firing
// on longer sentences that merely contain one of the phrases.
type GreetingRule struct{}

func (GreetingRule) TryMatch(u Utterance) (*Intent, bool) {
	if _, ok := greetingResponses[u.Stripped]; !ok {
		return nil, false
	}
	return &Intent{
		Kind:    KindGreeting,
		RawText: u.Raw,
	}, true
}

// HelpRule matches requests for the capability summary.
type HelpRule struct{}

var helpPattern = regexp.MustCompile(`\b(?:help|questions?)\b`)

func (HelpRule) TryMatch(u Utterance) (*Intent, bool) {
	if !helpPattern.MatchString(u.Stripped) {
		return nil, false
	}
	return &Intent{
		Kind:    KindHelp,
		RawText: u.Raw,
	}, true
}

// FallbackRule absorbs everything else so classification stays total.
type FallbackRule struct{}

func (FallbackRule) TryMatch(u Utterance) (*Intent, bool) {
	return &Intent{
		Kind:    KindFallback,
		RawText: u.Raw,
	}, true
}
