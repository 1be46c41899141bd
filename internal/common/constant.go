package common

// RequestIDHeaderName is the HTTP header carrying the per-request correlation
// id on outbound API calls.
const RequestIDHeaderName = "X-Request-ID"

// MonthLayout is the time layout of the canonical YYYY-MM month string.
const MonthLayout = "2006-01"
