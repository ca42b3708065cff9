// Package hazard holds the static hazard-summary datasets served alongside
// disaster and global-hazard maps.
package hazard

import "gis-assistant/pkg/intent"

type Column struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Table is a columnar hazard summary, renderable as-is by clients.
type Table struct {
	Hazard  intent.HazardFilter `json:"hazard"`
	Columns []Column            `json:"columns"`
}

var summaryTables = map[intent.HazardFilter]Table{
	intent.FilterLandslide: {
		Hazard: intent.FilterLandslide,
		Columns: []Column{
			{Name: "Location", Values: []string{"Bharmour", "Manikaran", "Kufri", "Rajgarh", "Jogindernagar"}},
			{Name: "Slope (deg)", Values: []string{"35", "42", "28", "39", "25"}},
			{Name: "Soil Type", Values: []string{"Sandy Loam", "Silty Clay", "Loam", "Gravel", "Sandy Clay"}},
			{Name: "Rainfall (mm)", Values: []string{"1950", "2300", "1650", "2100", "1750"}},
			{Name: "Frequency/Year", Values: []string{"4", "6", "2", "5", "1"}},
			{Name: "Risk Level", Values: []string{"High", "Very High", "Medium", "High", "Low"}},
		},
	},
	intent.FilterFlood: {
		Hazard: intent.FilterFlood,
		Columns: []Column{
			{Name: "District", Values: []string{"Barpeta", "Dhemaji", "Kochi", "Patna", "Guwahati"}},
			{Name: "Flood Level", Values: []string{"Severe", "High", "Moderate", "Severe", "Moderate"}},
			{Name: "Displaced", Values: []string{"23000", "15000", "8000", "12000", "9000"}},
			{Name: "Rainfall (mm)", Values: []string{"2200", "2100", "1800", "2400", "1900"}},
			{Name: "Relief Camps", Values: []string{"25", "18", "12", "22", "15"}},
		},
	},
	intent.FilterFire: {
		Hazard: intent.FilterFire,
		Columns: []Column{
			{Name: "Region", Values: []string{"Shimla", "Chamba", "Sirmaur", "Kullu", "Mandi"}},
			{Name: "Avg Temp (C)", Values: []string{"35", "34", "36", "33", "32"}},
			{Name: "Incidents", Values: []string{"45", "30", "25", "40", "38"}},
			{Name: "High Risk Zones", Values: []string{"Yes", "Yes", "No", "Yes", "Yes"}},
		},
	},
	intent.FilterTraffic: {
		Hazard: intent.FilterTraffic,
		Columns: []Column{
			{Name: "City", Values: []string{"Delhi", "Mumbai", "Chennai", "Bengaluru", "Hyderabad"}},
			{Name: "Peak Congestion (%)", Values: []string{"78", "72", "65", "80", "69"}},
			{Name: "Delay (min/km)", Values: []string{"6.5", "5.8", "5.2", "7.0", "6.0"}},
			{Name: "Traffic Zones", Values: []string{"Ring Rd", "Western Exp", "Anna Salai", "Outer Ring Rd", "Hitec City"}},
		},
	},
}

// Summary returns the summary table for one hazard category. FilterAll has
// no single table and reports false, as does any unknown filter.
func Summary(filter intent.HazardFilter) (Table, bool) {
	table, ok := summaryTables[filter]
	return table, ok
}

// SummaryForDisaster maps a disaster type to its summary table.
func SummaryForDisaster(d intent.DisasterType) (Table, bool) {
	switch d {
	case intent.DisasterFlood:
		return Summary(intent.FilterFlood)
	case intent.DisasterLandslide:
		return Summary(intent.FilterLandslide)
	case intent.DisasterFire:
		return Summary(intent.FilterFire)
	default:
		return Table{}, false
	}
}

var infoTexts = map[intent.DisasterType]string{
	intent.DisasterFire:      "Forest Fire Risk Zones: areas in red are highly susceptible due to vegetation and dry climate.",
	intent.DisasterLandslide: "Landslide Hazard Map: sloped regions vulnerable during monsoon are marked.",
	intent.DisasterFlood:     "Flood Hazard Zones: frequently affected low-lying areas.",
}

// GlobalInfo describes the live global dashboard.
const GlobalInfo = "Live Hazard Intelligence: real-time global view of wildfire, flood, landslide, and population data."

// Info returns the informational blurb shown with a disaster map.
func Info(d intent.DisasterType) string {
	return infoTexts[d]
}
