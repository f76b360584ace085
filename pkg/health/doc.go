// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs every registered check in parallel under a shared
// timeout and answers 503 when any of them fails:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "db": db.Healthcheck(pool),
//	}))
//
// Responses are plain text ("OK", or "Service Unavailable: " followed by the failing check names) unless the client
// sends Accept: application/json or ?format=json:
//
//	{"status":"unhealthy","checks":{"db":{"status":"unhealthy","error":"..."}}}
package health
