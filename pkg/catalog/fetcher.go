package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/pkg/styling/vibe"
)

// Fetcher loads the full content library from the remote source. The Source
// replaces its item set wholesale with whatever comes back.
type Fetcher interface {
	FetchCatalog(ctx context.Context) ([]entity.LibraryItem, error)
}

// HTTPFetcher pulls the published catalog JSON from the content CDN.
type HTTPFetcher struct {
	BaseURL string
	client  *http.Client
}

func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	if baseURL == "" {
		baseURL = "https://content.ai-stylist.app"
	}
	return &HTTPFetcher{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// catalogItemPayload is the wire shape of one published item. Vibe tags and
// categories arrive as raw strings and are validated here, at ingestion.
type catalogItemPayload struct {
	Id          string   `json:"id"`
	Label       string   `json:"label"`
	Category    string   `json:"category"`
	StyleTags   []string `json:"style_tags"`
	ColorFamily string   `json:"color_family"`
	Formality   string   `json:"formality"`
	ImageURL    string   `json:"image_url"`
}

type catalogPayload struct {
	Items []catalogItemPayload `json:"items"`
}

func (f *HTTPFetcher) FetchCatalog(ctx context.Context) ([]entity.LibraryItem, error) {
	endpoint := fmt.Sprintf("%s/v1/catalog.json", f.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch error: status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var payload catalogPayload
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, fmt.Errorf("catalog decode error: %w", err)
	}

	items := make([]entity.LibraryItem, 0, len(payload.Items))
	for _, p := range payload.Items {
		cat, ok := entity.ParseCategory(p.Category)
		if !ok {
			// Unknown categories are authoring mistakes; skip rather than
			// poison the closed enum downstream.
			continue
		}
		items = append(items, entity.LibraryItem{
			Id:       p.Id,
			Label:    p.Label,
			Category: cat,
			Attributes: entity.ItemAttributes{
				Vibes:       vibe.Normalize(p.StyleTags),
				ColorFamily: entity.ColorFamily(p.ColorFamily),
				Formality:   entity.Formality(p.Formality),
			},
			ImageURL: p.ImageURL,
		})
	}
	return items, nil
}
