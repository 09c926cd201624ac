package util

const (
	ERROR_BAD_SCRIPT_PATH   = 201
	ERROR_BAD_REPORT_PATH   = 202
	ERROR_BAD_ARGUMENT      = 203
	ERROR_BAD_PATTERN       = 204
	ERROR_MALFORMED_SCRIPT  = 205
	ERROR_SCENARIO_FAILED   = 206
	ERROR_LEAK_DETECTED     = 207
	ERROR_NO_SCENARIO_FOUND = 208
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}
