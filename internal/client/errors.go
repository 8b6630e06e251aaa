package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a live-data fetch failed.
type ErrorKind int

const (
	KindNetwork    ErrorKind = iota // transport failure, timeout or cancellation
	KindHTTPStatus                  // server answered with a non-2xx status
	KindParse                       // body could not be decoded
)

// String returns the kind's short name.
func (k ErrorKind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindParse:
		return "parse"
	default:
		return "network"
	}
}

// FetchError is returned by GetLiveData for every failure.
// StatusCode is only set when Kind is KindHTTPStatus.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("fetch failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch failed (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind of err and true when err wraps a *FetchError.
func KindOf(err error) (ErrorKind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
