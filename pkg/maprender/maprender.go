// Package maprender builds renderable map specifications for the chat
// responses. The specs are opaque to the core: clients resolve basemaps,
// WMS layers and overlays themselves.
package maprender

import (
	"fmt"

	"gis-assistant/pkg/intent"
)

const (
	defaultBasemap = "CartoDB.Positron"

	gibsWMS4326 = "https://gibs.earthdata.nasa.gov/wms/epsg4326/best/wms.cgi"
	gibsWMS3857 = "https://gibs.earthdata.nasa.gov/wms/epsg3857/best/wms.cgi"
	sedacWMS    = "https://sedac.ciesin.columbia.edu/geoserver/wms"
)

type WMSLayer struct {
	URL         string `json:"url"`
	Layers      string `json:"layers"`
	Name        string `json:"name"`
	Format      string `json:"format"`
	Transparent bool   `json:"transparent"`
}

// RiskZone is one polygon of a local hazard overlay, as a closed ring of
// lon/lat pairs.
type RiskZone struct {
	Ring      [][2]float64 `json:"ring"`
	RiskLevel string       `json:"risk_level"`
}

type Overlay struct {
	Name  string     `json:"name"`
	Zones []RiskZone `json:"zones"`
}

type Marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

// MapSpec parameterizes one renderable map.
type MapSpec struct {
	CenterLat float64    `json:"center_lat"`
	CenterLon float64    `json:"center_lon"`
	Zoom      int        `json:"zoom"`
	Basemap   string     `json:"basemap"`
	WMSLayers []WMSLayer `json:"wms_layers,omitempty"`
	Overlays  []Overlay  `json:"overlays,omitempty"`
	Markers   []Marker   `json:"markers,omitempty"`
	FitBounds bool       `json:"fit_bounds,omitempty"`
}

// regionBBox holds [minLat, minLon, maxLat, maxLon] per known region.
// Unknown regions fall back to the india extent.
var regionBBox = map[string][4]float64{
	"india":      {8.0, 68.0, 37.0, 97.0},
	"assam":      {26.2, 89.7, 27.2, 93.6},
	"himachal":   {31.0, 76.5, 32.7, 78.7},
	"nepal":      {26.3, 80.0, 30.5, 88.2},
	"bangladesh": {20.5, 88.0, 26.5, 92.5},
	"pakistan":   {23.6, 60.9, 36.8, 77.0},
	"sri lanka":  {5.9, 79.3, 9.8, 82.0},
}

func regionCenter(region string) (lat, lon float64, zoom int) {
	bounds, ok := regionBBox[region]
	if !ok {
		bounds = regionBBox["india"]
	}
	lat = (bounds[0] + bounds[2]) / 2
	lon = (bounds[1] + bounds[3]) / 2
	zoom = 6
	if region == "india" || !ok {
		zoom = 4
	}
	return lat, lon, zoom
}

var floodZones = []RiskZone{
	{Ring: [][2]float64{{76.25, 9.95}, {76.30, 9.95}, {76.30, 10.05}, {76.25, 10.05}, {76.25, 9.95}}, RiskLevel: "High"},
	{Ring: [][2]float64{{76.35, 9.85}, {76.40, 9.85}, {76.40, 9.95}, {76.35, 9.95}, {76.35, 9.85}}, RiskLevel: "Medium"},
	{Ring: [][2]float64{{76.45, 9.75}, {76.50, 9.75}, {76.50, 9.85}, {76.45, 9.85}, {76.45, 9.75}}, RiskLevel: "Low"},
	{Ring: [][2]float64{{76.22, 10.02}, {76.28, 10.02}, {76.28, 10.08}, {76.22, 10.08}, {76.22, 10.02}}, RiskLevel: "High"},
	{Ring: [][2]float64{{76.42, 9.78}, {76.48, 9.78}, {76.48, 9.88}, {76.42, 9.88}, {76.42, 9.78}}, RiskLevel: "Low"},
}

var landslideZones = []RiskZone{
	{Ring: [][2]float64{{93.7, 25.8}, {93.8, 25.8}, {93.8, 25.9}, {93.7, 25.9}, {93.7, 25.8}}, RiskLevel: "High"},
	{Ring: [][2]float64{{93.6, 25.7}, {93.7, 25.7}, {93.7, 25.8}, {93.6, 25.8}, {93.6, 25.7}}, RiskLevel: "Medium"},
	{Ring: [][2]float64{{93.72, 25.85}, {93.78, 25.85}, {93.78, 25.95}, {93.72, 25.95}, {93.72, 25.85}}, RiskLevel: "High"},
}

var fireLayer = WMSLayer{
	URL:         gibsWMS4326,
	Layers:      "MODIS_Terra_Thermal_Anomalies_Day",
	Name:        "Forest Fires (NASA MODIS)",
	Format:      "image/png",
	Transparent: true,
}

// DisasterMap builds the hazard-overlay map for one disaster type and
// region. The disaster vocabulary is fixed upstream; an unknown type is
// still checked defensively.
func DisasterMap(disaster intent.DisasterType, region string) (MapSpec, error) {
	lat, lon, zoom := regionCenter(region)
	spec := MapSpec{
		CenterLat: lat,
		CenterLon: lon,
		Zoom:      zoom,
		Basemap:   defaultBasemap,
	}

	switch disaster {
	case intent.DisasterFlood:
		spec.Overlays = []Overlay{{Name: "Flood Risk", Zones: floodZones}}
		spec.FitBounds = true
	case intent.DisasterLandslide:
		spec.Overlays = []Overlay{{Name: "Landslide Risk", Zones: landslideZones}}
		spec.FitBounds = true
	case intent.DisasterFire:
		spec.WMSLayers = []WMSLayer{fireLayer}
	default:
		return MapSpec{}, fmt.Errorf("unknown disaster type %q", disaster)
	}

	return spec, nil
}

// GlobalHazardMap builds the worldwide dashboard, optionally narrowed to
// one hazard layer group. Population density only joins the unfiltered view.
func GlobalHazardMap(filter intent.HazardFilter) MapSpec {
	spec := MapSpec{
		CenterLat: 20.0,
		CenterLon: 80.0,
		Zoom:      2,
		Basemap:   defaultBasemap,
	}

	if filter == intent.FilterAll || filter == intent.FilterFire {
		spec.WMSLayers = append(spec.WMSLayers, WMSLayer{
			URL:         gibsWMS3857,
			Layers:      "MODIS_Terra_Thermal_Anomalies_Day",
			Name:        "Fire Risk (MODIS)",
			Format:      "image/png",
			Transparent: true,
		})
	}
	if filter == intent.FilterAll || filter == intent.FilterFlood {
		spec.WMSLayers = append(spec.WMSLayers, WMSLayer{
			URL:         sedacWMS,
			Layers:      "ndh:ndh-flood-hazard-frequency-distribution",
			Name:        "Flood Risk",
			Format:      "image/png",
			Transparent: true,
		})
	}
	if filter == intent.FilterAll || filter == intent.FilterLandslide {
		spec.WMSLayers = append(spec.WMSLayers, WMSLayer{
			URL:         gibsWMS4326,
			Layers:      "Global_Landslide_Hazard_Map",
			Name:        "Landslide Susceptibility",
			Format:      "image/png",
			Transparent: true,
		})
	}
	if filter == intent.FilterAll {
		spec.WMSLayers = append(spec.WMSLayers, WMSLayer{
			URL:         sedacWMS,
			Layers:      "gpw-v4:gpw-v4-population-density_2020",
			Name:        "Population Density",
			Format:      "image/png",
			Transparent: true,
		})
	}

	return spec
}

// MarkerMap builds a simple marker map centered on the mean of the points.
func MarkerMap(markers []Marker) MapSpec {
	spec := MapSpec{
		Zoom:    13,
		Basemap: defaultBasemap,
		Markers: markers,
	}
	if len(markers) == 0 {
		return spec
	}

	var sumLat, sumLon float64
	for _, m := range markers {
		sumLat += m.Lat
		sumLon += m.Lon
	}
	spec.CenterLat = sumLat / float64(len(markers))
	spec.CenterLon = sumLon / float64(len(markers))
	return spec
}

// KnownRegions lists the regions with a curated bounding box.
func KnownRegions() []string {
	regions := make([]string, 0, len(regionBBox))
	for r := range regionBBox {
		regions = append(regions, r)
	}
	return regions
}
