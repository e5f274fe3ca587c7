package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/posener/complete"

	"github.com/lightwave-leds/lightwave/internal/client"
	"github.com/lightwave-leds/lightwave/internal/config"
	"github.com/lightwave-leds/lightwave/internal/protocol"
)

// completionTimeout bounds the effect lookup so a dead server does not hang the shell.
const completionTimeout = 2 * time.Second

// newEffectPredictor returns a predictor that completes effect names from the server.
func newEffectPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		baseURL, err := completionBaseURL(args.All)
		if err != nil {
			return nil
		}

		// complete.Predictor doesn't provide a context.
		ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
		defer cancel()
		return completeEffects(ctx, baseURL, args.Last)
	})
}

// completionBaseURL resolves the server URL from a --base-url/-u flag
// already typed on the command line, then the environment and config file.
func completionBaseURL(words []string) (string, error) {
	flag := flagValue(words, "--base-url", "-u")

	path, err := config.ConfigPath(flagValue(words, "--config"))
	if err != nil {
		return "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		cfg = nil
	}
	return config.ResolveBaseURL(flag, cfg)
}

// flagValue returns the value of the first matching flag in words,
// accepting both "--flag value" and "--flag=value".
func flagValue(words []string, names ...string) string {
	for i, w := range words {
		for _, name := range names {
			if v, ok := strings.CutPrefix(w, name+"="); ok {
				return v
			}
			if w == name && i+1 < len(words) {
				return words[i+1]
			}
		}
	}
	return ""
}

// completeEffects returns effect names starting with partial.
func completeEffects(ctx context.Context, baseURL, partial string) []string {
	cl := client.New(baseURL,
		client.WithHTTPClient(&http.Client{Timeout: completionTimeout}),
	)
	resp, err := cl.Do(ctx, protocol.ListEffects())
	if err != nil {
		return nil
	}

	var list protocol.EffectList
	if err := resp.Decode(&list); err != nil {
		return nil
	}

	results := make([]string, 0, len(list.Effects))
	for _, e := range list.Effects {
		if strings.HasPrefix(e.Name, partial) {
			results = append(results, e.Name)
		}
	}
	return results
}
