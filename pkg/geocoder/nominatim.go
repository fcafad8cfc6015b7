package geocoder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lintang/wayfinder/domain"

	"github.com/gojek/heimdall/v7/httpclient"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimClient geocoder buat resolve free-text address jadi koordinat.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *httpclient.Client
}

func NewNominatimClient(userAgent string) *NominatimClient {
	return NewNominatimClientWithBaseURL(defaultNominatimURL, userAgent)
}

func NewNominatimClientWithBaseURL(baseURL, userAgent string) *NominatimClient {
	timeout := 5000 * time.Millisecond
	return &NominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    httpclient.NewClient(httpclient.WithHTTPTimeout(timeout)),
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolve "address, place" jadi (lat, lon). domain.ErrNotFound
// kalau nominatim gak nemu hasil.
func (c *NominatimClient) Geocode(address, place string) (float64, float64, error) {
	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s, %s", address, place))
	query.Set("format", "json")
	query.Set("limit", "1")

	header := http.Header{}
	header.Set("User-Agent", c.userAgent)

	res, err := c.client.Get(c.baseURL+"/search?"+query.Encode(), header)
	if err != nil {
		return 0, 0, domain.WrapErrorf(err, domain.ErrInternalServerError, "geocoding request failed for %s", address)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, 0, domain.WrapErrorf(nil, domain.ErrInternalServerError, "nominatim status %d", res.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		return 0, 0, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	if len(results) == 0 {
		return 0, 0, domain.WrapErrorf(nil, domain.ErrNotFound, "no geocoding result for %s, %s", address, place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	return lat, lon, nil
}
