// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// RequestIDKey is the context key for the request ID set by the logging middleware
	RequestIDKey = "requestID"
	// LoggerKey is the context key for the request-scoped logger
	LoggerKey = "logger"
	// AdminUIDKey is the context key for the authenticated admin's Firebase UID
	AdminUIDKey = "adminUID"
	// AdminEmailKey is the context key for the authenticated admin's email
	AdminEmailKey = "adminEmail"
)
