package maprender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gis-assistant/pkg/intent"
)

func TestDisasterMap(t *testing.T) {
	t.Run("flood uses polygon overlay", func(t *testing.T) {
		spec, err := DisasterMap(intent.DisasterFlood, "assam")
		require.NoError(t, err)

		require.Len(t, spec.Overlays, 1)
		assert.Equal(t, "Flood Risk", spec.Overlays[0].Name)
		assert.Len(t, spec.Overlays[0].Zones, 5)
		assert.True(t, spec.FitBounds)
		assert.Empty(t, spec.WMSLayers)
		assert.Equal(t, 6, spec.Zoom)
	})

	t.Run("landslide uses polygon overlay", func(t *testing.T) {
		spec, err := DisasterMap(intent.DisasterLandslide, "himachal")
		require.NoError(t, err)

		require.Len(t, spec.Overlays, 1)
		assert.Equal(t, "Landslide Risk", spec.Overlays[0].Name)
		assert.Len(t, spec.Overlays[0].Zones, 3)
		assert.True(t, spec.FitBounds)
	})

	t.Run("fire uses satellite WMS layer", func(t *testing.T) {
		spec, err := DisasterMap(intent.DisasterFire, "himachal")
		require.NoError(t, err)

		require.Len(t, spec.WMSLayers, 1)
		assert.Equal(t, "MODIS_Terra_Thermal_Anomalies_Day", spec.WMSLayers[0].Layers)
		assert.Empty(t, spec.Overlays)
		assert.False(t, spec.FitBounds)
	})

	t.Run("unknown disaster type fails", func(t *testing.T) {
		_, err := DisasterMap(intent.DisasterType("earthquake"), "india")
		assert.Error(t, err)
	})
}

func TestRegionCenter(t *testing.T) {
	t.Run("known region", func(t *testing.T) {
		lat, lon, zoom := regionCenter("assam")
		assert.InDelta(t, 26.7, lat, 0.01)
		assert.InDelta(t, 91.65, lon, 0.01)
		assert.Equal(t, 6, zoom)
	})

	t.Run("country-scale default region", func(t *testing.T) {
		lat, lon, zoom := regionCenter("india")
		assert.InDelta(t, 22.5, lat, 0.01)
		assert.InDelta(t, 82.5, lon, 0.01)
		assert.Equal(t, 4, zoom)
	})

	t.Run("unknown region falls back to india extent", func(t *testing.T) {
		lat, lon, zoom := regionCenter("atlantis")
		knownLat, knownLon, _ := regionCenter("india")
		assert.Equal(t, knownLat, lat)
		assert.Equal(t, knownLon, lon)
		assert.Equal(t, 4, zoom)
	})
}

func TestGlobalHazardMap(t *testing.T) {
	tests := []struct {
		filter     intent.HazardFilter
		wantLayers int
	}{
		{intent.FilterAll, 4},
		{intent.FilterFire, 1},
		{intent.FilterFlood, 1},
		{intent.FilterLandslide, 1},
		{intent.FilterTraffic, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			spec := GlobalHazardMap(tt.filter)
			assert.Len(t, spec.WMSLayers, tt.wantLayers)
			assert.Equal(t, 2, spec.Zoom)
		})
	}

	t.Run("population density only on the unfiltered view", func(t *testing.T) {
		hasPopulation := func(spec MapSpec) bool {
			for _, l := range spec.WMSLayers {
				if l.Name == "Population Density" {
					return true
				}
			}
			return false
		}

		assert.True(t, hasPopulation(GlobalHazardMap(intent.FilterAll)))
		assert.False(t, hasPopulation(GlobalHazardMap(intent.FilterFlood)))
	})
}

func TestMarkerMap(t *testing.T) {
	t.Run("centers on the mean of the points", func(t *testing.T) {
		spec := MarkerMap([]Marker{
			{Lat: 27.7, Lon: 85.3, Label: "A"},
			{Lat: 27.9, Lon: 85.5, Label: "B"},
		})

		assert.InDelta(t, 27.8, spec.CenterLat, 0.0001)
		assert.InDelta(t, 85.4, spec.CenterLon, 0.0001)
		assert.Equal(t, 13, spec.Zoom)
		assert.Len(t, spec.Markers, 2)
	})

	t.Run("empty marker list is safe", func(t *testing.T) {
		spec := MarkerMap(nil)
		assert.Empty(t, spec.Markers)
		assert.Zero(t, spec.CenterLat)
	})
}

func TestKnownRegions(t *testing.T) {
	regions := KnownRegions()
	assert.Contains(t, regions, "india")
	assert.Contains(t, regions, "assam")
	assert.Contains(t, regions, "sri lanka")
}
