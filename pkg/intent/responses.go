package intent

// greetingResponses maps whole normalized utterances to canned replies.
var greetingResponses = map[string]string{
	"hi":               "Hello! I'm your GIS assistant. Ask me about rainfall, landslides, floods, clinics, or schools.",
	"hey":              "Hi there! I'm here to help with hazard zones and local planning maps.",
	"hello":            "Hi there! I'm here to help with hazard zones and local planning maps.",
	"how are you":      "I'm running smoothly! Ask about geographic risks or features.",
	"how can you help": "You can ask things like 'Where are floods in Assam?' or 'Landslide risk in Himachal?'.",
	"what can you do":  "I show hazard maps, rainfall patterns, school and clinic locations, and more!",
	"thanks":           "You're welcome! Let me know if you need anything else.",
	"thank you":        "You're welcome! Let me know if you need anything else.",
}

// FallbackMessage is the canonical reply for unrecognized input.
const FallbackMessage = "Hello! I'm your GIS assistant. Ask about floods, landslides, fires, rainfall, or POIs like schools or hospitals."

// HelpMessage introduces the example question list.
const HelpMessage = "Here are some things you can ask me:"

// HelpQuestions are the example follow-up questions shown with the
// capability summary.
var HelpQuestions = []string{
	"Show global hazard map",
	"Show flood risk areas",
	"Where are forest fires?",
	"Landslide-prone regions in Himachal?",
	"Show schools in Kathmandu",
}

// GreetingResponse returns the canned reply for a greeting utterance. The
// lookup uses the same whole-utterance normalization as GreetingRule.
func GreetingResponse(text string) (string, bool) {
	reply, ok := greetingResponses[NewUtterance(text).Stripped]
	return reply, ok
}
