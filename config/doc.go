// Package config loads the client configuration.
//
// Values come from, in increasing precedence: built-in defaults, a YAML
// file, optional .env files and the process environment. Environment
// variables use the MDM_ prefix:
//
//	MDM_API_ID, MDM_API_TOKEN, MDM_API_URL, MDM_API_TIMEOUT
//	MDM_SERVICE_NAME, MDM_LOG_LEVEL, MDM_LOG_TRACING
//	MDM_APP_ENV, MDM_TRACING_EXPORT, MDM_OTLP_ENDPOINT, MDM_OTLP_INSECURE
//	MDM_METRICS_ADDRESS
//	MDM_AUDIT_ENABLED, MDM_AUDIT_BROKERS, MDM_AUDIT_TOPIC,
//	MDM_AUDIT_SASL_USERNAME, MDM_AUDIT_SASL_PASSWORD
//
// Example file:
//
//	api:
//	  id: "12345"
//	  url: https://school.example.com/api
//	  timeout: 20s
//	logger:
//	  level: debug
//	audit:
//	  enabled: true
//	  brokers: [kafka-1:9092, kafka-2:9092]
package config
