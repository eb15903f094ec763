package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"product-manager/pkg/logging"
)

// FallbackRate is the fixed EUR→USD multiplier used whenever the HNB rate
// lookup fails for any reason.
const FallbackRate = 1.10

const usdCurrency = "USD"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type hnbRate struct {
	Valuta       string `json:"valuta"`
	SrednjiTecaj string `json:"srednji_tecaj"`
}

// UsdPrice converts an EUR price to USD using the latest HNB rate, rounded
// half-up to 2 decimals. The lookup failure is absorbed here: the fallback
// rate is substituted and the caller never sees an error.
func (c *Client) UsdPrice(ctx context.Context, priceEur float64) float64 {
	rate, err := c.eurToCurrencyRate(ctx, usdCurrency)
	if err != nil {
		logging.FromContext(ctx).Warn("currency_service_unavailable",
			"error", err, "fallback_rate", FallbackRate)
		rate = FallbackRate
	}
	return Round2(priceEur * rate)
}

func (c *Client) eurToCurrencyRate(ctx context.Context, cur string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+cur, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate endpoint returned %s", resp.Status)
	}

	var rates []hnbRate
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return 0, err
	}
	if len(rates) == 0 {
		return 0, fmt.Errorf("no exchange rate data returned")
	}

	// HNB uses a comma as the decimal separator.
	rateStr := strings.ReplaceAll(rates[0].SrednjiTecaj, ",", ".")
	return strconv.ParseFloat(rateStr, 64)
}

// Round2 rounds to 2 decimal places, half up.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
