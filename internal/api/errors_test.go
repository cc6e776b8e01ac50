package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThisisBizness/Study-Buddy/internal/solver"
	"github.com/ThisisBizness/Study-Buddy/internal/solver/mock"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError, // Default to 500 for nil error
		},
		{
			name:           "no input error",
			err:            solver.ErrNoInput,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrapped no input error",
			err:            fmt.Errorf("please provide either text or image input: %w", solver.ErrNoInput),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid image error",
			err:            solver.ErrInvalidImage,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "image processing error",
			err:            solver.ErrImageProcessing,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "model uninitialized error",
			err:            solver.ErrModelUninitialized,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "blocked response error",
			err:            solver.ErrBlockedResponse,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "api failure error",
			err:            solver.ErrAPIFailure,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "simulated mock error",
			err:            mock.ErrSimulated,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unknown error",
			err:            errors.New("some unknown error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status := MapErrorToStatusCode(tc.err)
			assert.Equal(t, tc.expectedStatus, status)
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedLabel string
	}{
		{
			name:          "nil error",
			err:           nil,
			expectedLabel: "Unexpected error",
		},
		{
			name:          "no input error",
			err:           solver.ErrNoInput,
			expectedLabel: "No input provided",
		},
		{
			name:          "wrapped invalid image error",
			err:           fmt.Errorf("failed to decode base64 image: %w", solver.ErrInvalidImage),
			expectedLabel: "Invalid image data",
		},
		{
			name:          "image processing error",
			err:           solver.ErrImageProcessing,
			expectedLabel: "Image processing error",
		},
		{
			name:          "model uninitialized error",
			err:           solver.ErrModelUninitialized,
			expectedLabel: "Model not initialized",
		},
		{
			name:          "blocked response error",
			err:           solver.ErrBlockedResponse,
			expectedLabel: "Blocked Response",
		},
		{
			name:          "api failure error",
			err:           solver.ErrAPIFailure,
			expectedLabel: "Google API error",
		},
		{
			name:          "simulated mock error",
			err:           mock.ErrSimulated,
			expectedLabel: "Mock Error",
		},
		{
			name:          "unknown error",
			err:           errors.New("some unknown error"),
			expectedLabel: "Unexpected error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label := GetSafeErrorMessage(tc.err)
			assert.Equal(t, tc.expectedLabel, label)
		})
	}
}
