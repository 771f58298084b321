// Package tracer wraps OpenTelemetry for the client's outbound calls.
//
// The transport starts one client span per HTTP request and injects the
// trace context into the request headers, so a trace started by the caller
// continues into the remote device-management service:
//
//	tr, err := tracer.NewClient(tracer.Config{ServiceName: "mdm-sync", EnableExport: true})
//	if err != nil {
//	    return err
//	}
//	defer tr.Shutdown(context.Background())
//
//	t := transport.New(cfg).WithTracer(tr)
package tracer
