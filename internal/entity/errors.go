package entity

import "errors"

// Domain errors
var (
	// Input errors, detected before any request is sent
	ErrEmptyUserID   = errors.New("user ID cannot be empty")
	ErrEmptySource   = errors.New("source name cannot be empty")
	ErrEmptyFilename = errors.New("filename cannot be empty")
	ErrInvalidFolder = errors.New("invalid folder path")
	ErrNoPDFFiles    = errors.New("no PDF files found in the folder")
	ErrNoValidFiles  = errors.New("no valid PDF files provided")

	// Response errors
	ErrMissingResponse = errors.New("response field is missing")
)
