package middleware

type contextKey string

// RequestIDKey holds the per-request correlation id.
const RequestIDKey contextKey = "request_id"

// UserIDKey holds the user id resolved by the auth gate.
const UserIDKey contextKey = "user_id"
