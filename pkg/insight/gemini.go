// Package insight calls an external text-generation service to turn the
// current business collections into a narrative coaching report.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Snapshot carries the serialized collections handed to the provider
type Snapshot struct {
	Products json.RawMessage
	Sales    json.RawMessage
	Ads      json.RawMessage
}

// Provider generates a narrative business report from a snapshot of the
// three collections. The returned text is opaque markdown-flavored prose
// and is passed through to the caller verbatim, unparsed.
type Provider interface {
	GenerateInsight(ctx context.Context, snap Snapshot) (string, error)
}

const promptTemplate = `Act as a world-class CFO and Business Strategy Consultant. Analyze the following business performance data:

Current Inventory: %s
Historical Sales: %s
Ad Spending Logs: %s

Provide a comprehensive analysis covering:
1. **Profitability Deep Dive**: Identify which products have the best margins vs. volume.
2. **Burn Rate & ROI**: Evaluate ad spend effectiveness (ROAS). Are we spending too much relative to revenue?
3. **Inventory Efficiency**: Flag "dead stock" (low sales/high inventory) and "stockout risks" (high sales/low inventory).
4. **30-Day Growth Plan**: Provide 3 specific, data-driven actions to increase Net Profit.

Format the response in clean Markdown with professional headers and clear sections.`

// GeminiConfig holds configuration for the Gemini client
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// GeminiClient calls the Gemini generateContent REST API
type GeminiClient struct {
	config     GeminiConfig
	httpClient *http.Client
}

// NewGeminiClient creates a new Gemini insight provider
func NewGeminiClient(config GeminiConfig) *GeminiClient {
	return &GeminiClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateInsight embeds the snapshot into the fixed prompt template and
// returns the model's text verbatim
func (c *GeminiClient) GenerateInsight(ctx context.Context, snap Snapshot) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, snap.Products, snap.Sales, snap.Ads)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode insight request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build insight request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read insight response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight provider returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.Unmarshal(payload, &result); err != nil {
		return "", fmt.Errorf("failed to decode insight response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("insight provider error %d: %s", result.Error.Code, result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("insight provider returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
