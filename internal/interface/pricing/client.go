// Package pricing implements the HTTP client for the airline's public
// reward pricing calendars.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rewardfare-service/internal/domain"
	"rewardfare-service/internal/domain/entity"
	"rewardfare-service/internal/domain/repository"
	"rewardfare-service/pkg/logger"
)

const (
	marketCalendarPath = "/market-pricing/mpp/v1/calendar"
	liveCalendarPath   = "/live-pricing/lpp/v1/calendar"
)

// The remote service rejects requests that do not look like a browser,
// so every request carries a Chrome-equivalent fingerprint.
var browserHeaders = map[string]string{
	"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-AU,en;q=0.9",
	"sec-ch-ua":          `"Chromium";v="124", "Google Chrome";v="124", "Not-A.Brand";v="99"`,
	"sec-ch-ua-mobile":   "?0",
	"sec-ch-ua-platform": `"Windows"`,
}

// CalendarClient fetches per-day reward prices from one of the two
// calendar endpoints. The strategy is fixed for the client's lifetime:
// a run is either entirely market pricing or entirely live pricing.
type CalendarClient struct {
	baseURL  string
	strategy entity.Strategy
	client   *http.Client
	logger   logger.Logger
}

// NewCalendarClient constructs a client with a shared HTTP client
func NewCalendarClient(baseURL string, strategy entity.Strategy, timeout time.Duration, logger logger.Logger) repository.PricingRepository {
	return &CalendarClient{
		baseURL:  baseURL,
		strategy: strategy,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// calendarResponse mirrors the top-level calendar JSON response
type calendarResponse struct {
	Days []entity.PriceDay `json:"days"`
}

// FetchCalendar issues one GET for a (route, fare) pair and returns the
// days collection. Non-200 statuses and transport errors are reported as
// domain.ErrRemoteFetch with an empty result; they never abort a run and
// there is no retry.
func (c *CalendarClient) FetchCalendar(ctx context.Context, departingCode, arrivingCode, fareCode string, window entity.DateWindow) ([]entity.PriceDay, error) {
	reqURL := c.buildURL(departingCode, arrivingCode, fareCode, window)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrRemoteFetch, err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Pricing request failed",
			"departing", departingCode, "arriving", arrivingCode, "fare", fareCode, "error", err)
		return nil, fmt.Errorf("%w: http GET: %v", domain.ErrRemoteFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Pricing API returned non-OK status",
			"status", resp.StatusCode, "departing", departingCode, "arriving", arrivingCode, "fare", fareCode)
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", domain.ErrRemoteFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrRemoteFetch, err)
	}

	var calendar calendarResponse
	if err := json.Unmarshal(body, &calendar); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", domain.ErrRemoteFetch, err)
	}

	return calendar.Days, nil
}

func (c *CalendarClient) buildURL(departingCode, arrivingCode, fareCode string, window entity.DateWindow) string {
	params := url.Values{}
	params.Set("origin", departingCode)
	params.Set("destination", arrivingCode)
	params.Set("tripType", "O")
	params.Set("travelClass", fareCode)
	params.Set("isClassic", "true")
	params.Set("startDate", window.Start)
	if c.strategy == entity.StrategyLive {
		params.Set("endDate", window.End)
	}
	params.Set("language", "en")

	path := marketCalendarPath
	if c.strategy == entity.StrategyLive {
		path = liveCalendarPath
	}

	return c.baseURL + path + "?" + params.Encode()
}
