package apierror

// Problem type URIs for the "type" field of RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:thrivetrack:error:validation"

	// TypeInvalidRange indicates an unknown insights time range (400)
	TypeInvalidRange = "urn:thrivetrack:error:invalid_range"

	// TypeBadRequest indicates a malformed request body or query (400)
	TypeBadRequest = "urn:thrivetrack:error:bad_request"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:thrivetrack:error:not_found"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:thrivetrack:error:rate_limit"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:thrivetrack:error:internal"

	// TypeSnapshotUnavailable indicates mood history could not be loaded (503)
	TypeSnapshotUnavailable = "urn:thrivetrack:error:snapshot_unavailable"
)

const (
	TitleValidation          = "Validation Error"
	TitleInvalidRange        = "Invalid Time Range"
	TitleBadRequest          = "Bad Request"
	TitleNotFound            = "Resource Not Found"
	TitleRateLimit           = "Rate Limit Exceeded"
	TitleInternal            = "Internal Server Error"
	TitleSnapshotUnavailable = "Mood History Unavailable"
)

// Client hints for the "action" field.
const (
	// ActionRetry tells the client it may offer a retry button.
	ActionRetry = "retry"

	// ActionStartVisit tells the client to open a new insights visit.
	ActionStartVisit = "start_visit"
)
