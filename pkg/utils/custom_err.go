package utils

import "errors"

var (
	ErrLocationNotFound   = errors.New("location not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrInvalidSearchType  = errors.New("invalid search type")
	ErrUpstreamError      = errors.New("upstream travel api error")
	ErrDatabaseError      = errors.New("database error")
)
