package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultHFBaseURL = "https://api-inference.huggingface.co"
	defaultHFModel   = "mistralai/Mistral-7B-Instruct-v0.2"
	hfTimeout        = 30 * time.Second
)

// HFClient calls the Hugging Face Inference API text-generation endpoint.
type HFClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// NewHFClient constructs the text-generation backend.
func NewHFClient(apiKey, model, baseURL string) *HFClient {
	if strings.TrimSpace(model) == "" {
		model = defaultHFModel
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultHFBaseURL
	}
	return &HFClient{
		APIKey:     strings.TrimSpace(apiKey),
		Model:      model,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: hfTimeout},
	}
}

// Name implements Generator.
func (c *HFClient) Name() string { return "huggingface" }

// Generate implements Generator via a single text-generation call.
func (c *HFClient) Generate(ctx context.Context, prompt string) (string, error) {
	apiKey := strings.TrimSpace(c.APIKey)
	if apiKey == "" {
		return "", &ProviderError{Code: "HF_AUTH", Message: "missing Hugging Face API token", Retryable: false}
	}

	payload, err := json.Marshal(hfRequest{
		Inputs: SystemInstruction + "\n\n" + prompt,
		Parameters: hfParameters{
			MaxNewTokens:   400,
			Temperature:    0.8,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", &ProviderError{Code: "HF_FAILED", Message: "failed to marshal generation request", Retryable: false, Cause: err}
	}

	// Model ids contain a slash (owner/repo) that must survive in the path.
	segments := strings.Split(c.Model, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	reqURL := c.BaseURL + "/models/" + strings.Join(segments, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Code: "HF_FAILED", Message: "failed to build generation request", Retryable: false, Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: hfTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Code: "HF_FAILED", Message: "generation request failed", Retryable: true, Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Code: "HF_FAILED", Message: "failed to read generation response", Retryable: true, StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = fmt.Sprintf("hugging face returned status %d", resp.StatusCode)
		}
		return "", mapStatusError("HF", resp.StatusCode, message)
	}

	var generations []hfGeneration
	if err := json.Unmarshal(body, &generations); err != nil {
		return "", &ProviderError{Code: "HF_FAILED", Message: "failed to decode generation response", Retryable: false, Cause: err}
	}
	if len(generations) == 0 {
		return "", &ProviderError{Code: "HF_FAILED", Message: "generation response had no candidates", Retryable: false}
	}
	text := strings.TrimSpace(generations[0].GeneratedText)
	if text == "" {
		return "", &ProviderError{Code: "HF_FAILED", Message: "generation response had no text content", Retryable: false}
	}
	return text, nil
}
