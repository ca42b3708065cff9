package intent

// Kind is the classified purpose of a user utterance.
type Kind string

const (
	KindGreeting          Kind = "greeting"
	KindPoiQuery          Kind = "poi_query"
	KindDisasterQuery     Kind = "disaster_query"
	KindGlobalHazardQuery Kind = "global_hazard_query"
	KindHelp              Kind = "help"
	KindFallback          Kind = "fallback"
)

type DisasterType string

const (
	DisasterFlood     DisasterType = "flood"
	DisasterLandslide DisasterType = "landslide"
	DisasterFire      DisasterType = "fire"
)

type PoiCategory string

const (
	PoiHospital   PoiCategory = "hospital"
	PoiClinic     PoiCategory = "clinic"
	PoiATM        PoiCategory = "atm"
	PoiRestaurant PoiCategory = "restaurant"
	PoiBusStop    PoiCategory = "bus_stop"
	PoiSchool     PoiCategory = "school"
)

// HazardFilter narrows the global hazard dashboard to one layer group.
type HazardFilter string

const (
	FilterAll       HazardFilter = "all"
	FilterFlood     HazardFilter = "flood"
	FilterLandslide HazardFilter = "landslide"
	FilterFire      HazardFilter = "fire"
	FilterTraffic   HazardFilter = "traffic"
)

// DefaultRegion is substituted whenever no region phrase is detected.
// The policy is a fixed constant so classification stays deterministic.
const DefaultRegion = "india"

// Intent is the classifier output. Exactly one of DisasterType/PoiCategory
// is ever set, and Region is always non-empty for map-producing kinds.
type Intent struct {
	Kind         Kind         `json:"kind"`
	DisasterType DisasterType `json:"disaster_type,omitempty"`
	PoiCategory  PoiCategory  `json:"poi_category,omitempty"`
	HazardFilter HazardFilter `json:"hazard_filter,omitempty"`
	Region       string       `json:"region,omitempty"`
	RawText      string       `json:"raw_text"`
}

// OSMTag returns the OpenStreetMap feature tag pair a POI category queries.
func (c PoiCategory) OSMTag() (key, value string) {
	switch c {
	case PoiBusStop:
		return "highway", "bus_stop"
	default:
		return "amenity", string(c)
	}
}

// Keyword is the spoken form of the category, e.g. "bus stop" for bus_stop.
func (c PoiCategory) Keyword() string {
	if c == PoiBusStop {
		return "bus stop"
	}
	return string(c)
}
