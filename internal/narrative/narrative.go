// Package narrative generates the official-style Thai ED01 narrative from a
// draft declaration using an OpenAI-compatible Chat Completions backend.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/siamtrade/thai-customs-mcp/internal/declaration"
)

// systemPrompt instructs the model to act as a senior Thai customs officer
// and to write formal Thai grounded strictly in the draft JSON.
const systemPrompt = "คุณเป็นเจ้าหน้าที่ศุลกากรไทยระดับเชี่ยวชาญ " +
	"ทำหน้าที่จัดทำคำอธิบายประกอบใบขนสินค้านำเข้า (ED01) " +
	"ให้เขียนเป็นภาษาไทยทางการ แบ่งหัวข้อชัดเจน " +
	"และยึดข้อมูลจาก JSON เท่านั้น ห้ามดัดแปลง."

// DemoModePrefix marks narratives produced without a configured API key.
const DemoModePrefix = "[DEMO MODE]"

const defaultTimeout = 60 * time.Second

// APIError describes a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("narrative backend returned status %d: %s", e.StatusCode, e.Message)
}

// Generator produces Thai narratives for ED01 drafts. The zero API key puts
// the generator in demo mode: it returns the pretty-printed draft instead of
// calling the backend.
type Generator struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewGenerator creates a Generator against an OpenAI-compatible backend.
func NewGenerator(baseURL, apiKey, model string, timeout time.Duration) *Generator {
	// Normalize: remove trailing slash from base URL.
	baseURL = strings.TrimRight(baseURL, "/")

	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Generator{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// DemoMode reports whether the generator will answer locally without
// calling the backend.
func (g *Generator) DemoMode() bool {
	return g.apiKey == ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate returns the Thai narrative for the draft declaration.
func (g *Generator) Generate(ctx context.Context, draft declaration.ED01) (string, error) {
	draftJSON, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal draft: %w", err)
	}

	if g.DemoMode() {
		return DemoModePrefix + "\n\n" + string(draftJSON), nil
	}

	body, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(draftJSON)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := g.baseURL + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("narrative request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", mapHTTPError(httpResp)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to parse backend response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("narrative backend returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// mapHTTPError converts a non-2xx response into an APIError, preferring the
// backend's own error message when the body carries one.
func mapHTTPError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    resp.Status,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8192))
	if err != nil {
		return apiErr
	}

	var parsed chatErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		apiErr.Message = parsed.Error.Message
	}

	return apiErr
}
