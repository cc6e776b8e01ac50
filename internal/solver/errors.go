package solver

import "errors"

// Common errors returned by solver engines. Every failure mode an engine can
// produce maps to exactly one of these sentinels; callers classify with
// errors.Is and must never need to inspect error strings.
var (
	// ErrNoInput is returned when a solve request carries neither problem
	// text nor image data.
	ErrNoInput = errors.New("no input provided")

	// ErrInvalidImage is returned when submitted image data cannot be
	// decoded from its base64 encoding.
	ErrInvalidImage = errors.New("invalid image data")

	// ErrImageProcessing is returned when decoded image bytes cannot be
	// interpreted as an image.
	ErrImageProcessing = errors.New("image processing error")

	// ErrModelUninitialized is returned when a solve is attempted before a
	// solver engine is available.
	ErrModelUninitialized = errors.New("model not initialized")

	// ErrBlockedResponse is returned when the language model refuses to
	// answer because its safety filters blocked the request.
	ErrBlockedResponse = errors.New("response blocked by safety filters")

	// ErrAPIFailure is returned when the call to the language model API
	// fails or yields unusable content.
	ErrAPIFailure = errors.New("language model API error")

	// ErrUnexpected is returned for failures that do not fit any other
	// category.
	ErrUnexpected = errors.New("unexpected solver error")

	// ErrInvalidConfig is returned when a solver engine is constructed with
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid solver configuration")
)
