package ratelimit

import "strings"

// MatchEndpoint resolves the rate rule for a request path and method. Exact
// path rules win; rules whose path ends in "/" act as prefixes so one rule
// covers parameterized routes like /resumes/{id}/analyze and
// /analysis/{resume_id}/{job_id}. GET /health is always unlimited so load
// balancer checks are never throttled.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		rule := &configs[i]
		if rule.Path == path && rule.Method == method {
			return rule
		}
	}

	for i := range configs {
		rule := &configs[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}

	return nil
}
