package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_DisasterQueries(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name         string
		text         string
		wantDisaster DisasterType
		wantRegion   string
	}{
		{"flood singular", "show flood in Assam", DisasterFlood, "assam"},
		{"flood plural", "show floods in Assam", DisasterFlood, "assam"},
		{"flooding", "is there flooding in Assam", DisasterFlood, "assam"},
		{"flood with punctuation", "Where are the floods in Assam?", DisasterFlood, "assam"},
		{"landslide no region", "landslides", DisasterLandslide, DefaultRegion},
		{"landslide spaced variant", "land slide risk in Himachal", DisasterLandslide, "himachal"},
		{"mudslide", "mudslides in Nepal", DisasterLandslide, "nepal"},
		{"fire", "fires in Himachal", DisasterFire, "himachal"},
		{"wildfire", "wildfires in Pakistan", DisasterFire, "pakistan"},
		{"forest fire", "forest fires in Himachal", DisasterFire, "himachal"},
		{"multi-word region", "floods in south india", DisasterFlood, "south india"},
		{"default region", "show flood risk areas", DisasterFlood, DefaultRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.text)

			assert.Equal(t, KindDisasterQuery, got.Kind)
			assert.Equal(t, tt.wantDisaster, got.DisasterType)
			assert.Equal(t, tt.wantRegion, got.Region)
			assert.Empty(t, got.PoiCategory, "disaster intents never carry a POI category")
			assert.Equal(t, tt.text, got.RawText)
		})
	}
}

func TestClassify_PoiQueries(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name         string
		text         string
		wantCategory PoiCategory
		wantRegion   string
	}{
		{"hospitals", "hospitals in Kathmandu", PoiHospital, "kathmandu"},
		{"hospital singular", "nearest hospital in Kochi", PoiHospital, "kochi"},
		{"clinics", "clinics in Guwahati", PoiClinic, "guwahati"},
		{"atms", "atms in Delhi", PoiATM, "delhi"},
		{"restaurants", "restaurants in Mumbai", PoiRestaurant, "mumbai"},
		{"bus stops", "bus stops in Shimla", PoiBusStop, "shimla"},
		{"schools", "show schools in Kathmandu", PoiSchool, "kathmandu"},
		{"no region", "schools", PoiSchool, DefaultRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.text)

			assert.Equal(t, KindPoiQuery, got.Kind)
			assert.Equal(t, tt.wantCategory, got.PoiCategory)
			assert.Equal(t, tt.wantRegion, got.Region)
			assert.Empty(t, got.DisasterType, "POI intents never carry a disaster type")
		})
	}
}

func TestClassify_GlobalHazardQueries(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name       string
		text       string
		wantFilter HazardFilter
	}{
		{"global hazard map", "global hazard map", FilterAll},
		{"all hazards", "show all hazards", FilterAll},
		{"overall risk", "overall risk", FilterAll},
		{"traffic narrowing", "global hazard view for traffic", FilterTraffic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.text)

			assert.Equal(t, KindGlobalHazardQuery, got.Kind)
			assert.Equal(t, tt.wantFilter, got.HazardFilter)
		})
	}
}

func TestClassify_Greetings(t *testing.T) {
	classifier := NewClassifier()

	for phrase, canned := range greetingResponses {
		t.Run(phrase, func(t *testing.T) {
			got := classifier.Classify(phrase)
			require.Equal(t, KindGreeting, got.Kind)

			reply, ok := GreetingResponse(phrase)
			require.True(t, ok)
			assert.Equal(t, canned, reply)
		})
	}

	// Punctuation and case do not break whole-utterance matching.
	assert.Equal(t, KindGreeting, classifier.Classify("  Hello!  ").Kind)
	assert.Equal(t, KindGreeting, classifier.Classify("How are you?").Kind)
}

func TestClassify_GreetingNeverFiresOnSubstring(t *testing.T) {
	classifier := NewClassifier()

	got := classifier.Classify("hi, where are the floods in Assam")
	assert.Equal(t, KindDisasterQuery, got.Kind)
	assert.Equal(t, DisasterFlood, got.DisasterType)
	assert.Equal(t, "assam", got.Region)

	// A greeting word buried in an unrelated sentence is not a greeting.
	got = classifier.Classify("hello there my friend how is it going")
	assert.NotEqual(t, KindGreeting, got.Kind)
}

func TestClassify_Help(t *testing.T) {
	classifier := NewClassifier()

	assert.Equal(t, KindHelp, classifier.Classify("help").Kind)
	assert.Equal(t, KindHelp, classifier.Classify("what questions can I ask").Kind)

	// "how can you help" is in the greeting table and wins over the help rule.
	assert.Equal(t, KindGreeting, classifier.Classify("how can you help").Kind)
}

func TestClassify_Fallback(t *testing.T) {
	classifier := NewClassifier()

	got := classifier.Classify("asdkfj random text")
	assert.Equal(t, KindFallback, got.Kind)
	assert.Empty(t, got.DisasterType)
	assert.Empty(t, got.PoiCategory)
	assert.Equal(t, "asdkfj random text", got.RawText)
}

func TestClassify_PriorityOrder(t *testing.T) {
	classifier := NewClassifier()

	// Disaster keywords beat POI keywords in the same sentence.
	got := classifier.Classify("is the school near the flood in Assam")
	assert.Equal(t, KindDisasterQuery, got.Kind)
	assert.Equal(t, DisasterFlood, got.DisasterType)

	// POI keywords beat global-hazard phrases.
	got = classifier.Classify("hospitals near the global hazard zone in Nepal")
	assert.Equal(t, KindPoiQuery, got.Kind)

	// Disaster keywords beat the help rule.
	got = classifier.Classify("help me find floods in Assam")
	assert.Equal(t, KindDisasterQuery, got.Kind)
}

func TestClassify_Idempotent(t *testing.T) {
	classifier := NewClassifier()

	inputs := []string{
		"show floods in Assam",
		"hospitals in Kathmandu",
		"global hazard map",
		"asdkfj random text",
		"hi",
	}

	for _, text := range inputs {
		first := classifier.Classify(text)
		second := classifier.Classify(text)
		assert.Equal(t, first, second, "classification of %q must be deterministic", text)
	}
}

func TestExtractRegion(t *testing.T) {
	tests := []struct {
		text       string
		wantRegion string
		wantOK     bool
	}{
		{"floods in assam", "assam", true},
		{"schools in sri lanka", "sri lanka", true},
		{"floods", "", false},
		{"in", "", false},
		{"flooding everywhere", "", false},
	}

	for _, tt := range tests {
		region, ok := extractRegion(tt.text)
		assert.Equal(t, tt.wantOK, ok, tt.text)
		assert.Equal(t, tt.wantRegion, region, tt.text)
	}
}

func TestPoiCategory_OSMTag(t *testing.T) {
	key, value := PoiHospital.OSMTag()
	assert.Equal(t, "amenity", key)
	assert.Equal(t, "hospital", value)

	key, value = PoiBusStop.OSMTag()
	assert.Equal(t, "highway", key)
	assert.Equal(t, "bus_stop", value)
}
