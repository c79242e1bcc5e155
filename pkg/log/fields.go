package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Identifier operations
	FieldPrefix = "prefix"
	FieldCount  = "count"
	FieldUnique = "unique"
	FieldCode   = "code"

	// Service
	FieldService = "service"
)
