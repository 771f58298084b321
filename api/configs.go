package api

import "github.com/aalemi-dev/mdm-client/transport"

// Config holds the connection settings of the API surface.
type Config struct {
	transport.Config `yaml:",inline"`
}

// MaxSafeInteger is the largest id the remote service can represent exactly.
const MaxSafeInteger int64 = 1<<53 - 1

// MaxBulkMove bounds the number of UDIDs in one MoveDevices call.
const MaxBulkMove = 20
