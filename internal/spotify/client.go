// Package spotify is a minimal Spotify Web API client covering what genre
// enrichment needs: the client-credentials token flow and artist search.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	baseURL  = "https://api.spotify.com/v1"
	tokenURL = "https://accounts.spotify.com/api/token"
)

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient performs the OAuth2 client-credentials flow and returns a
// rate-limited client. Token refresh is handled by the underlying oauth2
// transport.
func NewClient(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	if _, err := cfg.Token(ctx); err != nil {
		return nil, fmt.Errorf("getting access token: %w", err)
	}

	return &Client{
		httpClient: cfg.Client(ctx),
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}, nil
}

// GetArtistGenres searches for an artist by name and returns the genre list
// of the best hit. Prefers an exact case-insensitive name match among the
// top results, falling back to the first result. Returns nil (not an error)
// when the artist cannot be found.
func (c *Client) GetArtistGenres(ctx context.Context, name string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("type", "artist")
	query.Set("limit", "5")
	query.Set("q", name)
	requestURL := baseURL + "/search?" + query.Encode()

	var response searchResponse
	err := retry.Do(
		func() error {
			return c.makeRequest(ctx, requestURL, &response)
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("searching artist %q: %w", name, err)
	}

	items := response.Artists.Items
	if len(items) == 0 {
		return nil, nil
	}
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item.Genres, nil
		}
	}
	return items[0].Genres, nil
}

func (c *Client) makeRequest(ctx context.Context, requestURL string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type searchResponse struct {
	Artists struct {
		Items []artist `json:"items"`
	} `json:"artists"`
}

type artist struct {
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}
