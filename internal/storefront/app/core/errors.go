package core

import "errors"

var (
	ErrParseCmd       = errors.New("cannot parse arguments")
	ErrHelp           = errors.New("")
	ErrModeFlag       = errors.New("mode flag is required")
	ErrUnknownService = errors.New("unknown service, write --help command to see valid services")

	ErrDBConn  = errors.New("db connection failure")
	ErrRMQConn = errors.New("rabbitmq connection failure")

	ErrUnknownItem        = errors.New("item is not in the catalog")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrAlreadyConfirmed   = errors.New("order already confirmed")
	ErrGatewayFailed      = errors.New("payment gateway failure")
)

// ValidationError reports the checkout fields that failed validation, keyed
// by field name. User-correctable and never fatal.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "checkout validation failed"
}

func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = reason
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}
