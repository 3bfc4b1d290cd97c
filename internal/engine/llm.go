package engine

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/time/rate"
)

// ErrLLMDisabled is returned when no LLM client is configured.
var ErrLLMDisabled = errors.New("llm client not configured")

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
// lim is a caller-owned limiter pacing calls against the provider quota;
// pass nil to skip pacing (tests). Each tool owns its limiter — there is no
// package-level one to contend on.
func CallLLM(ctx context.Context, lim *rate.Limiter, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", ErrLLMDisabled
	}
	if lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return "", err
		}
	}

	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}
