package traffic

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gojek/heimdall/v7/httpclient"
)

const tomtomFlowURL = "https://api.tomtom.com/traffic/services/4/flowSegmentData/absolute/10/json"

type FlowCoordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type FlowSegment struct {
	CurrentSpeed  float64 `json:"currentSpeed"`
	FreeFlowSpeed float64 `json:"freeFlowSpeed"`
	Coordinates   struct {
		Coordinate []FlowCoordinate `json:"coordinate"`
	} `json:"coordinates"`
}

type flowSegmentResponse struct {
	FlowSegmentData *FlowSegment `json:"flowSegmentData"`
}

// TomTomClient client buat tomtom traffic flow API.
type TomTomClient struct {
	apiKey string
	client *httpclient.Client
}

func NewTomTomClient(apiKey string) *TomTomClient {
	timeout := 5000 * time.Millisecond
	return &TomTomClient{
		apiKey: apiKey,
		client: httpclient.NewClient(httpclient.WithHTTPTimeout(timeout)),
	}
}

// FlowSegments fetch flow segment data di sekitar 1 titik. Return nil tanpa
// error kalau api key gak di-set (caller fallback ke simulasi).
func (c *TomTomClient) FlowSegments(lat, lon float64) ([]FlowSegment, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s?key=%s&point=%f,%f&unit=kmh", tomtomFlowURL, c.apiKey, lat, lon)
	res, err := c.client.Get(url, http.Header{})
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tomtom flow segment api status %d", res.StatusCode)
	}

	var body flowSegmentResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.FlowSegmentData == nil {
		return nil, nil
	}
	return []FlowSegment{*body.FlowSegmentData}, nil
}
