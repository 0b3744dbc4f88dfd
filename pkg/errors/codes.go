package errors

import "net/http"

// ErrorCode is the typed identifier of a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer of the service.
const (
	CodeUnknown            ErrorCode = "COMMON_000"
	CodeInternal           ErrorCode = "COMMON_001"
	CodeInvalidParam       ErrorCode = "COMMON_002"
	CodeNotFound           ErrorCode = "COMMON_003"
	CodeTimeout            ErrorCode = "COMMON_004"
	CodeRateLimit          ErrorCode = "COMMON_005"
	CodeServiceUnavailable ErrorCode = "COMMON_006"

	// CodeOK is the sentinel returned by GetCode for a nil error.
	CodeOK ErrorCode = "OK"
)

// Discovery pipeline error codes.
const (
	CodeMoleculeNameRequired ErrorCode = "DISC_001"
	CodeEnrichmentFailed     ErrorCode = "DISC_002"
	CodeDiscoveryFailed      ErrorCode = "DISC_003"
	CodeResolutionFailed     ErrorCode = "DISC_004"
	CodeRegistrySearchFailed ErrorCode = "DISC_005"
)

// External data source error codes.
const (
	CodeSourceUnavailable ErrorCode = "SRC_001"
	CodeSourceRateLimited ErrorCode = "SRC_002"
	CodeSourceParseError  ErrorCode = "SRC_003"
	CodeExternalService   ErrorCode = "SRC_004"
)

// errorCodeHTTPStatus maps ErrorCodes to the HTTP status returned at the
// API boundary.  Codes absent from the map fall back to 500.
var errorCodeHTTPStatus = map[ErrorCode]int{
	CodeInternal:           http.StatusInternalServerError,
	CodeInvalidParam:       http.StatusBadRequest,
	CodeNotFound:           http.StatusNotFound,
	CodeTimeout:            http.StatusGatewayTimeout,
	CodeRateLimit:          http.StatusTooManyRequests,
	CodeServiceUnavailable: http.StatusServiceUnavailable,

	CodeMoleculeNameRequired: http.StatusBadRequest,
	CodeEnrichmentFailed:     http.StatusBadGateway,
	CodeDiscoveryFailed:      http.StatusBadGateway,
	CodeResolutionFailed:     http.StatusBadGateway,
	CodeRegistrySearchFailed: http.StatusBadGateway,

	CodeSourceUnavailable: http.StatusBadGateway,
	CodeSourceRateLimited: http.StatusBadGateway,
	CodeSourceParseError:  http.StatusBadGateway,
	CodeExternalService:   http.StatusBadGateway,
}

// HTTPStatus returns the HTTP status code associated with err.  Non-AppError
// values and nil map to 500 and 200 respectively.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	code := GetCode(err)
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
