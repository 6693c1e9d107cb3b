package champions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient reads the champion catalog from Riot's Data Dragon CDN.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
	Locale     string
}

// Ensure APIClient implements the ChampionClient interface.
var _ ChampionClient = (*APIClient)(nil)

// NewClient creates a Data Dragon client.
func NewClient(baseURL, locale string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		Locale:     locale,
	}
}

// GetChampions fetches the champions of the latest game version, sorted by name.
func (c *APIClient) GetChampions(ctx context.Context) ([]Champion, error) {
	version, err := c.latestVersion(ctx)
	if err != nil {
		return nil, err
	}

	var resp championResponse
	url := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.BaseURL, version, c.Locale)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("error fetching champions: %w", err)
	}

	champs := make([]Champion, 0, len(resp.Data))
	for _, ch := range resp.Data {
		champs = append(champs, Champion{ID: ch.ID, Name: ch.Name, Title: ch.Title})
	}
	sort.Slice(champs, func(i, j int) bool {
		return strings.ToLower(champs[i].Name) < strings.ToLower(champs[j].Name)
	})
	log.Debug("Fetched champion catalog", "version", version, "count", len(champs))
	return champs, nil
}

// IsChampion reports whether name matches a champion id or display name,
// ignoring case.
func (c *APIClient) IsChampion(ctx context.Context, name string) (bool, error) {
	known, err := c.AreChampions(ctx, name)
	if err != nil {
		return false, err
	}
	return known[0], nil
}

// AreChampions checks every name against a single fetch of the catalog.
func (c *APIClient) AreChampions(ctx context.Context, names ...string) ([]bool, error) {
	champs, err := c.GetChampions(ctx)
	if err != nil {
		return nil, err
	}
	known := make([]bool, len(names))
	for i, name := range names {
		known[i] = contains(champs, name)
	}
	return known, nil
}

func contains(champs []Champion, name string) bool {
	name = strings.TrimSpace(name)
	for _, ch := range champs {
		if strings.EqualFold(ch.Name, name) || strings.EqualFold(ch.ID, name) {
			return true
		}
	}
	return false
}

func (c *APIClient) latestVersion(ctx context.Context) (string, error) {
	var versions []string
	if err := c.getJSON(ctx, c.BaseURL+"/api/versions.json", &versions); err != nil {
		return "", fmt.Errorf("error fetching versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no game versions published")
	}
	return versions[0], nil
}

func (c *APIClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "X1RankingGoClient/1.0")

	log.Debug("Requesting Data Dragon", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("Received non-OK HTTP status from Data Dragon", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
