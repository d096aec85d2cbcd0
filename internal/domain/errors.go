package domain

import "errors"

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	ErrFeedsDirCleanup = errors.New("feeds directory cleanup failed")
	ErrNoFeedData      = errors.New("no feed data to convert")
)
