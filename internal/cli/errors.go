package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/user/daylily/internal/model"
)

// Error codes for structured error responses
const (
	ErrCodeVarietyNotFound  = "VARIETY_NOT_FOUND"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeDataset          = "DATASET_ERROR"
	ErrCodeConfig           = "CONFIG_ERROR"
	ErrCodeAlreadyPublished = "ALREADY_PUBLISHED"
	ErrCodeNotPublished     = "NOT_PUBLISHED"
	ErrCodeCuration         = "CURATION_ERROR"
)

// JSONError represents a structured error response for --json output
type JSONError struct {
	Error   bool                   `json:"error"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ExitWithError outputs an error message and exits.
// If --json flag is set, outputs structured JSON error to stdout.
// Otherwise outputs plain text to stderr.
func ExitWithError(code int, errCode, message string, details map[string]interface{}) {
	if GetJSONOutput() {
		errResp := JSONError{
			Error:   true,
			Code:    errCode,
			Message: message,
			Details: details,
		}
		data, _ := json.Marshal(errResp)
		fmt.Println(string(data))
	} else {
		fmt.Fprintln(os.Stderr, "Error:", message)
	}
	Exit(code)
}

// ExitVarietyNotFound outputs a variety not found error, listing similar
// names when there are any.
func ExitVarietyNotFound(name string, similar []string) {
	message := fmt.Sprintf("variety '%s' not found", name)
	details := map[string]interface{}{"name": name}
	if len(similar) == 0 {
		ExitWithError(1, ErrCodeVarietyNotFound, message, details)
		return
	}

	details["similar"] = similar
	if GetJSONOutput() {
		ExitWithError(1, ErrCodeVarietyNotFound, message, details)
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", message)
	fmt.Fprintln(os.Stderr, "Similar varieties:")
	for _, s := range similar {
		fmt.Fprintf(os.Stderr, "  - %s\n", s)
	}
	Exit(1)
}

// ExitValidationError outputs a validation error
func ExitValidationError(message string, details map[string]interface{}) {
	ExitWithError(2, ErrCodeValidation, message, details)
}

// ExitDatasetError outputs an error reading or writing a dataset
func ExitDatasetError(err error, path string) {
	message := err.Error()
	if errors.Is(err, model.ErrNoDataset) {
		message = fmt.Sprintf("no dataset found at %s (use --data or set DAYLILY_DATA)", path)
	}
	ExitWithError(1, ErrCodeDataset, message,
		map[string]interface{}{"path": path})
}

// errorCode maps a domain error to its structured error code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, model.ErrVarietyNotFound):
		return ErrCodeVarietyNotFound
	case errors.Is(err, model.ErrAlreadyPublished):
		return ErrCodeAlreadyPublished
	case errors.Is(err, model.ErrNotPublished):
		return ErrCodeNotPublished
	case errors.Is(err, model.ErrMissingField),
		errors.Is(err, model.ErrInvalidBound),
		errors.Is(err, model.ErrInvalidExpression):
		return ErrCodeValidation
	case errors.Is(err, model.ErrNoDataset):
		return ErrCodeDataset
	}
	return ErrCodeCuration
}
