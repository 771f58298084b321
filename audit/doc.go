// Package audit publishes an audit trail of remote mutations to Kafka.
//
// A Publisher is an observability.Observer. Attached to the api client
// (directly with WithObserver, or through the "observers" fx value group)
// it turns every write operation (owner changes, moves, restarts, wipes,
// detail and group updates) into a JSON Event keyed by the target UDID or
// id. Reads are ignored. Delivery failures are logged and never fail the
// API call that triggered them.
package audit
