package services

import "errors"

var (
	// ErrUnreadableDocument marks input that could not be parsed as a PDF.
	ErrUnreadableDocument = errors.New("unreadable document")

	ErrProviderCall  = errors.New("provider call failed")
	ErrEmptyResponse = errors.New("provider returned an empty response")
	ErrMissingUsage  = errors.New("provider response is missing usage metadata")
)
