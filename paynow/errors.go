package paynow

import "fmt"

var (
	ErrInvalidAmount        = fmt.Errorf("invalid amount")
	ErrInvalidProxyValue    = fmt.Errorf("invalid proxy value")
	ErrMissingConfiguration = fmt.Errorf("missing configuration")
	ErrFieldTooLong         = fmt.Errorf("field value too long")
)
