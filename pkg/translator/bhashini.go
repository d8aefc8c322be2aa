// Package translator calls a Bhashini-style inference pipeline for text translation.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned by every call when no API key was supplied.
var ErrNotConfigured = errors.New("translator: api key not configured")

type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

func NewClient(url, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		apiKey:     apiKey,
	}
}

type languageConfig struct {
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type pipelineTask struct {
	TaskType string `json:"taskType"`
	Config   struct {
		Language languageConfig `json:"language"`
	} `json:"config"`
}

type inputItem struct {
	Source string `json:"source"`
}

type pipelineRequest struct {
	PipelineTasks []pipelineTask `json:"pipelineTasks"`
	InputData     struct {
		Input []inputItem `json:"input"`
	} `json:"inputData"`
}

type pipelineResponse struct {
	PipelineResponse []struct {
		Output []struct {
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"output"`
	} `json:"pipelineResponse"`
}

// Translate makes one request and returns the first pipeline output.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	task := pipelineTask{TaskType: "translation"}
	task.Config.Language = languageConfig{SourceLanguage: sourceLang, TargetLanguage: targetLang}

	var payload pipelineRequest
	payload.PipelineTasks = []pipelineTask{task}
	payload.InputData.Input = []inputItem{{Source: text}}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal translation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build translation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translation api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read translation response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translation api returned %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))
	}

	var out pipelineResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}

	if len(out.PipelineResponse) == 0 || len(out.PipelineResponse[0].Output) == 0 {
		return "", errors.New("translation api returned no output")
	}

	return out.PipelineResponse[0].Output[0].Target, nil
}
