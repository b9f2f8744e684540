// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics defines the Prometheus collectors exported on GET /metrics.

	m := metrics.New()
	mux.Handle("GET /metrics", m.Handler())

Collectors (namespace vote_api):

  - http_requests_total{method,route,status}
  - http_request_duration_seconds{method,route}
  - db_connect_attempts_total{result}
  - votes_cast_total

Choices are free-form client strings, so they are never used as labels.
*/
package metrics
