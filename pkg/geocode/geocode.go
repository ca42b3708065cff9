// Package geocode resolves place names and point-of-interest categories to
// coordinates through the Google Maps APIs, with a redis cache in front.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"gis-assistant/pkg/intent"
	redisPkg "gis-assistant/pkg/redis"
)

// ErrPlaceNotFound signals that the region could not be resolved at all.
// An empty POI result is NOT an error; it comes back as an empty slice.
var ErrPlaceNotFound = errors.New("place not found")

const (
	searchRadiusMeters = 5000
	cacheTTL           = 15 * time.Minute
)

type Point struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

type ILookup interface {
	// FindPOI resolves the region to a center point and searches nearby
	// places for the category. An empty slice is a valid outcome.
	FindPOI(ctx context.Context, category intent.PoiCategory, region string) ([]Point, error)
}

// mapsAPI is the subset of *maps.Client the lookup uses.
type mapsAPI interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

type lookup struct {
	client mapsAPI
	cache  redisPkg.IRedis
	log    *logrus.Logger
}

func New(log *logrus.Logger, cache redisPkg.IRedis) (ILookup, error) {
	apiKey := os.Getenv("MAPS_CREDENTIALS")
	if apiKey == "" {
		return nil, fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &lookup{client: client, cache: cache, log: log}, nil
}

// NewWithClient injects the maps API, used by tests.
func NewWithClient(log *logrus.Logger, cache redisPkg.IRedis, client mapsAPI) ILookup {
	return &lookup{client: client, cache: cache, log: log}
}

func (l *lookup) FindPOI(ctx context.Context, category intent.PoiCategory, region string) ([]Point, error) {
	cacheKey := fmt.Sprintf("poi:%s:%s", category, region)

	if l.cache != nil {
		if cached, err := l.cache.GetCache(ctx, cacheKey); err == nil {
			var points []Point
			if err := json.Unmarshal([]byte(cached), &points); err == nil {
				return points, nil
			} else {
				l.log.WithFields(logrus.Fields{
					"key":   cacheKey,
					"error": err.Error(),
				}).Warn("Discarding malformed cache entry")
			}
		}
	}

	center, err := l.geocodeRegion(ctx, region)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: center,
		Radius:   searchRadiusMeters,
		Keyword:  category.Keyword(),
	})
	if err != nil {
		return nil, fmt.Errorf("nearby search for %s in %s: %w", category, region, err)
	}

	points := make([]Point, 0, len(resp.Results))
	for _, result := range resp.Results {
		label := result.Name
		if label == "" {
			label = "Unnamed"
		}
		points = append(points, Point{
			Lat:   result.Geometry.Location.Lat,
			Lon:   result.Geometry.Location.Lng,
			Label: label,
		})
	}

	if l.cache != nil {
		if encoded, err := json.Marshal(points); err == nil {
			if err := l.cache.SetCache(ctx, cacheKey, string(encoded), cacheTTL); err != nil {
				l.log.WithFields(logrus.Fields{
					"key":   cacheKey,
					"error": err.Error(),
				}).Warn("Failed to cache POI result")
			}
		}
	}

	return points, nil
}

func (l *lookup) geocodeRegion(ctx context.Context, region string) (*maps.LatLng, error) {
	results, err := l.client.Geocode(ctx, &maps.GeocodingRequest{Address: region})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", region, err)
	}
	if len(results) == 0 {
		return nil, ErrPlaceNotFound
	}

	loc := results[0].Geometry.Location
	return &maps.LatLng{Lat: loc.Lat, Lng: loc.Lng}, nil
}
