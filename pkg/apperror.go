package pkg

// AppError is the boundary error shape handlers translate usecase failures
// into. Code is a stable machine-readable identifier ("bad_request",
// "not_found", ...), Message is human-readable, HTTPStatus the response code.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON body emitted for failed requests.
type HTTPError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ToHTTPError flattens the AppError into its wire representation. The wrapped
// cause never reaches the wire.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Code, Message: e.Message}
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
