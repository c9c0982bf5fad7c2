package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/pkg/retry"
)

// OpenAICompatible speaks the /v1/chat/completions dialect most providers
// expose. Transient failures are retried with backoff; the pipeline above
// never retries on its own.
type OpenAICompatible struct {
	baseProvider
	authHeader   string
	authPrefix   string
	extraHeaders map[string]string
	retrier      *retry.Retrier
}

type OpenAICompatibleConfig struct {
	BaseURL      string
	APIKey       string
	Model        string
	AuthHeader   string // e.g., "Authorization"
	AuthPrefix   string // e.g., "Bearer "
	ExtraHeaders map[string]string
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	retryCfg := retry.NewDefaultConfig()
	retryCfg.Retryable = isRetryable

	return &OpenAICompatible{
		baseProvider: newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model),
		authHeader:   cfg.AuthHeader,
		authPrefix:   cfg.AuthPrefix,
		extraHeaders: cfg.ExtraHeaders,
		retrier:      retry.NewRetrier(retryCfg),
	}
}

func (o *OpenAICompatible) Chat(ctx context.Context, messages []core.Message, opts core.GenerateOptions) (core.Message, error) {
	payload := map[string]any{
		"model":    o.model,
		"messages": messages,
	}
	if opts.Temperature > 0 {
		payload["temperature"] = opts.Temperature
	}
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}

	headers := make(map[string]string)
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}

	var msg core.Message
	err := o.retrier.Do(ctx, func() error {
		resp, err := o.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload, headers)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		msg, err = parseOpenAIResponse(resp)
		return err
	})
	if err != nil {
		return core.Message{}, err
	}
	return msg, nil
}

func parseOpenAIResponse(resp *http.Response) (core.Message, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Message{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return core.Message{}, &httpError{status: resp.StatusCode, body: string(data)}
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return core.Message{}, fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return core.Message{}, fmt.Errorf("empty choices: %s", string(data))
	}
	return result.Choices[0].Message, nil
}
