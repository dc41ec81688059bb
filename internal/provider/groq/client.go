// Package groq estimates meal macros from a free-text description using
// the Groq chat-completions API. Failures are classified so callers can
// fall back to manual macro entry without aborting a completion flow.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.groq.com"
	completionPath = "/openai/v1/chat/completions"
	defaultModel   = "llama-3.1-8b-instant"
)

const systemPrompt = `You are a nutrition expert. Given a meal description, return ONLY a JSON object with this exact structure (no markdown, no explanation):
{"calories": number, "protein": number, "carbs": number, "fats": number}

Use grams for protein, carbs, and fats. Estimate based on typical serving sizes. Be accurate and realistic.`

// FailureKind classifies a lookup failure.
type FailureKind string

const (
	FailureRateLimited       FailureKind = "rate_limited"
	FailureInvalidCredential FailureKind = "invalid_credential"
	FailureTimeout           FailureKind = "timeout"
	FailureNetwork           FailureKind = "network"
	FailureNoData            FailureKind = "no_data"
)

// LookupError carries the failure classification alongside the message.
type LookupError struct {
	Kind    FailureKind
	Message string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("nutrition lookup failed (%s): %s", e.Kind, e.Message)
}

// KindOf extracts the failure kind from an error chain, defaulting to
// FailureNetwork for unclassified errors.
func KindOf(err error) FailureKind {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}
	return FailureNetwork
}

// NutritionResult is the estimate for a query.
type NutritionResult struct {
	Label    string `json:"label"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
}

type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat responseFmt   `json:"response_format"`
	Temperature    float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFmt struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Lookup estimates macros for query.
func (c *Client) Lookup(ctx context.Context, query string) (NutritionResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return NutritionResult{}, &LookupError{Kind: FailureNoData, Message: "empty query"}
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return NutritionResult{}, &LookupError{Kind: FailureInvalidCredential, Message: "missing Groq API key"}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	payload, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Estimate macros for: " + query},
		},
		ResponseFormat: responseFmt{Type: "json_object"},
		Temperature:    0.3,
	})
	if err != nil {
		return NutritionResult{}, fmt.Errorf("marshal lookup payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+completionPath, bytes.NewReader(payload))
	if err != nil {
		return NutritionResult{}, fmt.Errorf("create lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		kind := FailureNetwork
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			kind = FailureTimeout
		}
		return NutritionResult{}, &LookupError{Kind: kind, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NutritionResult{}, &LookupError{Kind: FailureNetwork, Message: "read response: " + err.Error()}
	}

	var parsed chatResponse
	_ = json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(http.StatusText(resp.StatusCode))
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		switch {
		case resp.StatusCode == http.StatusTooManyRequests || rateLimitRe.MatchString(msg):
			return NutritionResult{}, &LookupError{Kind: FailureRateLimited, Message: msg}
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden || credentialRe.MatchString(msg):
			return NutritionResult{}, &LookupError{Kind: FailureInvalidCredential, Message: msg}
		default:
			return NutritionResult{}, &LookupError{Kind: FailureNetwork, Message: fmt.Sprintf("status %d: %s", resp.StatusCode, msg)}
		}
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return NutritionResult{}, &LookupError{Kind: FailureNoData, Message: "empty completion"}
	}

	macros, err := parseMacroContent(parsed.Choices[0].Message.Content)
	if err != nil {
		return NutritionResult{}, &LookupError{Kind: FailureNoData, Message: err.Error()}
	}

	result := NutritionResult{
		Label:    query,
		Calories: macros["calories"],
		Protein:  macros["protein"],
		Carbs:    macros["carbs"],
		Fats:     macros["fats"],
	}
	if result.Calories == 0 && result.Protein == 0 && result.Carbs == 0 && result.Fats == 0 {
		return NutritionResult{}, &LookupError{Kind: FailureNoData, Message: "no estimate for query"}
	}
	if result.Calories == 0 {
		result.Calories = 4*result.Protein + 4*result.Carbs + 9*result.Fats
	}
	return result, nil
}

var (
	rateLimitRe  = regexp.MustCompile(`(?i)limit|rate|quota|exceed`)
	credentialRe = regexp.MustCompile(`(?i)invalid.*key|incorrect.*key|authentication`)
	fenceRe      = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	objectRe     = regexp.MustCompile(`(?s)\{.*\}`)
)

// parseMacroContent tolerates fenced or prose-wrapped JSON and the macro
// field aliases the model sometimes uses.
func parseMacroContent(content string) (map[string]int, error) {
	cleaned := strings.TrimSpace(content)
	if m := fenceRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = strings.TrimSpace(m[1])
	}
	var raw map[string]json.Number
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		obj := objectRe.FindString(cleaned)
		if obj == "" {
			return nil, fmt.Errorf("response is not a macro object")
		}
		if err := json.Unmarshal([]byte(obj), &raw); err != nil {
			return nil, fmt.Errorf("response is not a macro object")
		}
	}

	value := func(keys ...string) int {
		for _, k := range keys {
			if n, ok := raw[k]; ok {
				if f, err := n.Float64(); err == nil {
					return int(math.Round(f))
				}
			}
		}
		return 0
	}
	return map[string]int{
		"calories": value("calories", "cal"),
		"protein":  value("protein", "protein_g"),
		"carbs":    value("carbs", "carbs_g"),
		"fats":     value("fats", "fat", "fats_g"),
	}, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
