// Package health serves liveness and readiness probes for the intlfmt
// server.
//
// [LivenessHandler] answers as long as the process runs. [ReadinessHandler]
// runs a set of named [Checks] in parallel and reports 503 when any of them
// fails. The connection checks of pkg/db and pkg/redis fit [CheckFunc]
// directly; [CatalogAge] reports a catalog that stopped reloading.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "postgres": db.Healthcheck(pool),
//	    "redis":    redis.Healthcheck(client),
//	    "catalog":  health.CatalogAge(store.LoadedAt, time.Hour),
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// asks for JSON with an Accept header or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "catalog": {"status": "healthy"},
//	    "redis": {"status": "unhealthy", "error": "connection refused"}
//	  }
//	}
package health
