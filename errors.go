package daikinhttp

import "fmt"

type DaikinError struct {
	Message string
	Err     error
}

func (e *DaikinError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("daikin error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("daikin error: %s", e.Message)
}

func (e *DaikinError) Unwrap() error {
	return e.Err
}

func NewDaikinError(message string, err error) *DaikinError {
	return &DaikinError{
		Message: message,
		Err:     err,
	}
}

// ConfigurationError is returned before any network attempt when the client
// is missing required settings such as the appliance host.
type ConfigurationError struct {
	*DaikinError
}

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{
		DaikinError: NewDaikinError(message, nil),
	}
}

// UnsupportedMethodError signals a programming error: the protocol only knows GET.
type UnsupportedMethodError struct {
	*DaikinError
	Method string
}

func NewUnsupportedMethodError(method string) *UnsupportedMethodError {
	return &UnsupportedMethodError{
		DaikinError: NewDaikinError(fmt.Sprintf("unsupported HTTP method %q", method), nil),
		Method:      method,
	}
}

// ConnectionError wraps transport failures. They are never retried.
type ConnectionError struct {
	*DaikinError
}

func NewConnectionError(message string, err error) *ConnectionError {
	return &ConnectionError{
		DaikinError: NewDaikinError(message, err),
	}
}

type AuthenticationError struct {
	*DaikinError
}

func NewAuthenticationError(message string, err error) *AuthenticationError {
	return &AuthenticationError{
		DaikinError: NewDaikinError(message, err),
	}
}

// ParseError means the body did not start with the "ret=" status prefix.
type ParseError struct {
	*DaikinError
}

func NewParseError(message string, err error) *ParseError {
	return &ParseError{
		DaikinError: NewDaikinError(message, err),
	}
}

// ParameterError is the appliance's "PARAM NG" answer.
type ParameterError struct {
	*DaikinError
}

func NewParameterError() *ParameterError {
	return &ParameterError{
		DaikinError: NewDaikinError("appliance rejected parameters (PARAM NG)", nil),
	}
}

// AdvancedError is the appliance's "ADV_NG" answer.
type AdvancedError struct {
	*DaikinError
}

func NewAdvancedError() *AdvancedError {
	return &AdvancedError{
		DaikinError: NewDaikinError("appliance reported advanced error (ADV_NG)", nil),
	}
}

// StatusError carries any status token other than OK, PARAM NG and ADV_NG.
type StatusError struct {
	*DaikinError
	Status string
}

func NewStatusError(status string) *StatusError {
	return &StatusError{
		DaikinError: NewDaikinError(fmt.Sprintf("unknown response status %q", status), nil),
		Status:      status,
	}
}
