package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const yandexGeocoderURL = "https://geocode-maps.yandex.ru/1.x"

// ErrGeocodingFailed covers every upstream failure: unreachable provider,
// non-2xx status, empty candidate list, malformed payload.
var ErrGeocodingFailed = errors.New("geocoding failed")

// Point is a geographic coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// YandexGeocoder resolves free-text addresses through the Yandex geocoder API.
type YandexGeocoder struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewYandexGeocoder(apiKey string) *YandexGeocoder {
	return &YandexGeocoder{
		APIKey:  apiKey,
		BaseURL: yandexGeocoderURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// geocoderResponse mirrors the nested feature collection the API returns.
// Point.pos is a "longitude latitude" space-separated string.
type geocoderResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

func (g *YandexGeocoder) Resolve(ctx context.Context, address string) (Point, error) {
	params := url.Values{}
	params.Set("geocode", address)
	params.Set("apikey", g.APIKey)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Point{}, fmt.Errorf("%w: geocoder returned status %d for %q", ErrGeocodingFailed, resp.StatusCode, address)
	}

	var parsed geocoderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrGeocodingFailed, err)
	}

	candidates := parsed.Response.GeoObjectCollection.FeatureMember
	if len(candidates) == 0 {
		return Point{}, fmt.Errorf("%w: no locations found for %q", ErrGeocodingFailed, address)
	}

	// Candidates arrive ranked by relevance, the first one wins.
	fields := strings.Fields(candidates[0].GeoObject.Point.Pos)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: malformed pos %q", ErrGeocodingFailed, candidates[0].GeoObject.Point.Pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: malformed longitude %q", ErrGeocodingFailed, fields[0])
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: malformed latitude %q", ErrGeocodingFailed, fields[1])
	}

	return Point{Lat: lat, Lon: lon}, nil
}
