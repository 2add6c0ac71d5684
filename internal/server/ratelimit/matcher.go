package ratelimit

import "strings"

// MatchEndpoint finds the config for the given endpoint and method.
// Exact path matches win over prefix matches; among prefix matches the
// longest prefix wins. Returns nil when nothing matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never rate limited
	if path == "/health" {
		return &EndpointConfig{Path: "/health", Limit: -1}
	}

	var best *EndpointConfig
	bestLen := -1

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != "" && cfg.Method != method {
			continue
		}
		if path == cfg.Path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			if len(cfg.Path) > bestLen {
				best = cfg
				bestLen = len(cfg.Path)
			}
		}
	}

	return best
}
