package provider

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOffline is returned instead of attempting network access while offline.
var ErrOffline = errors.New("offline")

// StatusError is a non-200 answer from the provider.
type StatusError struct {
	Code int
	URL  string
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d for %s", e.Code, e.URL)
}
