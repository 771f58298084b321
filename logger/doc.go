// Package logger is the module's structured logging layer, a thin wrapper
// over go.uber.org/zap.
//
// Entries are JSON on stderr. Fields are passed as maps so call sites do not
// depend on zap types:
//
//	log, err := logger.New(logger.Config{Level: logger.Info, ServiceName: "mdm-sync"})
//	if err != nil {
//	    return err
//	}
//	log.Info("device restarted", nil, map[string]interface{}{"udid": udid})
//
// With EnableTracing set, the ...WithContext methods add trace_id and span_id
// taken from the OpenTelemetry span stored in the context.
package logger
