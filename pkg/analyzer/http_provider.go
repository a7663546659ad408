package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-stylist-be/internal/entity"
)

// HTTPProvider calls the hosted analysis API.
type HTTPProvider struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type analyzeRequest struct {
	ImageRef string `json:"image_ref"`
}

type analyzeResponse struct {
	Category    string   `json:"category"`
	StyleTags   []string `json:"style_tags"`
	ColorFamily string   `json:"color_family"`
	Formality   string   `json:"formality"`
}

func (p *HTTPProvider) Analyze(ctx context.Context, imageRef string) (*entity.ScannedItem, error) {
	jsonBody, err := json.Marshal(analyzeRequest{ImageRef: imageRef})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/analyze", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer error: status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var out analyzeResponse
	if err := json.Unmarshal(bodyBytes, &out); err != nil {
		return nil, fmt.Errorf("analyzer decode error: %w", err)
	}

	cat, ok := entity.ParseCategory(out.Category)
	if !ok {
		return nil, fmt.Errorf("analyzer returned unknown category %q", out.Category)
	}

	return &entity.ScannedItem{
		Category:    cat,
		StyleTags:   out.StyleTags,
		ColorFamily: entity.ColorFamily(out.ColorFamily),
		Formality:   entity.Formality(out.Formality),
	}, nil
}
