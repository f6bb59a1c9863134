// Package checkout creates hosted payment pages through the Stripe
// Checkout Sessions API.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"paybyphone/session"
)

// ErrProvider wraps every failure of the payment provider so the boundary
// can surface it on the summary page without touching the session.
var ErrProvider = errors.New("checkout creation failed")

// DefaultAPIURL is Stripe's live API host.
const DefaultAPIURL = "https://api.stripe.com"

// Client talks to the payment provider. A zero timeout defaults to 10s.
type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
}

// NewClient returns a checkout client. apiURL is overridable for tests;
// pass "" for the live host.
func NewClient(apiURL, secretKey string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type checkoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Begin creates a checkout session for a parking session and returns the
// provider's hosted-page URL. The success and cancel callbacks embed the
// session identifier under baseURL. Pure read of the session plus the
// external call; nothing is mutated on any path.
func (c *Client) Begin(ctx context.Context, sess session.Session, baseURL string) (string, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", "eur")
	form.Set("line_items[0][price_data][product_data][name]",
		fmt.Sprintf("Stationnement - %s", sess.ZoneName))
	form.Set("line_items[0][price_data][product_data][description]",
		fmt.Sprintf("Plaque: %s | Durée: %d min", sess.Plate, sess.DurationMinutes))
	form.Set("line_items[0][price_data][unit_amount]", strconv.Itoa(Cents(sess.Price)))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", fmt.Sprintf("%s/success/%s", baseURL, sess.ID))
	form.Set("cancel_url", fmt.Sprintf("%s/summary/%s?cancelled=true", baseURL, sess.ID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: %s - %s", ErrProvider, resp.Status, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: %s", ErrProvider, resp.Status)
	}

	var cs checkoutSession
	if err := json.NewDecoder(resp.Body).Decode(&cs); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	if cs.URL == "" {
		return "", fmt.Errorf("%w: provider returned no redirect url", ErrProvider)
	}

	return cs.URL, nil
}

// Cents converts a euro amount to the smallest currency unit.
func Cents(euros float64) int {
	return int(math.Round(euros * 100))
}
