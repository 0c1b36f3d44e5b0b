package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type GeminiClient struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  os.Getenv("GEMINI_MODEL"),
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// InterpretOrder sends the order text to Gemini and parses the
// guaranteed-JSON reply into order items.
func (g *GeminiClient) InterpretOrder(
	ctx context.Context,
	orderText string,
) ([]ParsedOrderItem, error) {

	if strings.TrimSpace(orderText) == "" {
		return nil, errors.New("empty order text")
	}

	raw, err := g.generate(ctx, []map[string]any{
		{"text": BuildOrderInterpretPrompt(orderText)},
	})
	if err != nil {
		return nil, err
	}

	return ParseOrderItems(raw)
}

// ExtractMenu sends a menu photo (data URI) to Gemini and parses the
// guaranteed-JSON reply into candidate products.
func (g *GeminiClient) ExtractMenu(
	ctx context.Context,
	imageDataURI string,
	contextPrompt string,
) ([]ExtractedProduct, error) {

	mimeType, payload, err := SplitDataURI(imageDataURI)
	if err != nil {
		return nil, err
	}

	raw, err := g.generate(ctx, []map[string]any{
		{"text": BuildMenuExtractPrompt(contextPrompt)},
		{
			"inline_data": map[string]string{
				"mime_type": mimeType,
				"data":      payload,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return ParseExtractedProducts(raw)
}

// generate posts one generateContent request and returns the JSON-only
// text of the first candidate.
func (g *GeminiClient) generate(
	ctx context.Context,
	parts []map[string]any,
) (string, error) {

	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing GEMINI_MODEL")
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			FinishReason string `json:"finishReason"`
			Content      struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		PromptFeedback struct {
			BlockReason string `json:"blockReason"`
		} `json:"promptFeedback"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf(
			"gemini safety block: %s",
			result.PromptFeedback.BlockReason,
		)
	}

	if len(result.Candidates) == 0 {
		return "", errors.New("empty gemini response")
	}

	if result.Candidates[0].FinishReason == "SAFETY" {
		return "", errors.New("gemini safety block: candidate blocked")
	}

	if len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	output := result.Candidates[0].Content.Parts[0].Text

	if !json.Valid([]byte(output)) {
		return "", errors.New("gemini returned non-json output")
	}

	return output, nil
}

// SplitDataURI breaks "data:<mime>;base64,<payload>" into its parts.
func SplitDataURI(uri string) (mimeType string, payload string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", errors.New("image must be a data URI")
	}

	rest := strings.TrimPrefix(uri, "data:")

	header, payload, found := strings.Cut(rest, ",")
	if !found || payload == "" {
		return "", "", errors.New("data URI missing payload")
	}

	mimeType, encoding, found := strings.Cut(header, ";")
	if !found || encoding != "base64" {
		return "", "", errors.New("data URI must be base64 encoded")
	}
	if mimeType == "" {
		return "", "", errors.New("data URI missing MIME type")
	}

	return mimeType, payload, nil
}

// IsSafetyBlocked reports whether an extraction failure came from a
// content-safety rejection rather than a transport or model error.
func IsSafetyBlocked(err error) bool {
	return err != nil && strings.Contains(err.Error(), "safety block")
}
