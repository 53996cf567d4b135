package errors

import "fmt"

type ErrorCode string

const (
	// Generic codes
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrForbidden          ErrorCode = "FORBIDDEN"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"

	// Booking query validation codes
	ErrInvalidDate     ErrorCode = "INVALID_DATE"
	ErrInvalidTimezone ErrorCode = "INVALID_TIMEZONE"
	ErrInvalidInterval ErrorCode = "INVALID_INTERVAL"
	ErrInvalidTimespan ErrorCode = "INVALID_TIMESPAN"

	// Reservation state codes
	ErrSlotAlreadyReserved ErrorCode = "SLOT_ALREADY_RESERVED"
	ErrReservationExpired  ErrorCode = "RESERVATION_EXPIRED"
	ErrNoHostAvailable     ErrorCode = "NO_HOST_AVAILABLE"
)

// AppError is the application-level error carried between services and controllers
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
