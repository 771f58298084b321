// Package metrics exposes the client's operation events as Prometheus series.
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "mdm-sync"})
//	apiClient := api.New(cfg).WithObserver(metrics.NewOperationObserver(m))
//	go m.Server.ListenAndServe()
//
// Every API route call and every transport exchange produces one
// operations_total increment labelled with its outcome (success, auth_error,
// permission_error, api_error, request_error, schema_error, validation_error)
// and one latency observation.
package metrics
