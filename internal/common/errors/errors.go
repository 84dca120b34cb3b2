// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input
	ErrCodeParseError            ErrorCode = "PARSE_ERROR"
	ErrCodeInputSchemaInvalid    ErrorCode = "INPUT_SCHEMA_INVALID"
	ErrCodeUnknownAssessmentType ErrorCode = "UNKNOWN_ASSESSMENT_TYPE"

	// Scoring
	ErrCodeResponsesInvalid ErrorCode = "RESPONSES_INVALID"

	// Lookups
	ErrCodeSubmissionNotFound ErrorCode = "SUBMISSION_NOT_FOUND"
	ErrCodeResultNotFound     ErrorCode = "RESULT_NOT_FOUND"

	// Persistence
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"
	ErrCodeResultStoreFailed        ErrorCode = "RESULT_STORE_FAILED"
	ErrCodeResultIndexFailed        ErrorCode = "RESULT_INDEX_FAILED"

	// Delivery
	ErrCodeReminderSendFailed ErrorCode = "REMINDER_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a key to the error and returns it.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// AsStandardError unwraps err into a StandardError when one is in the chain.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// CodeOf returns the code of err, or INTERNAL_ERROR for foreign errors.
func CodeOf(err error) ErrorCode {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code
	}
	return ErrCodeInternal
}

func newError(code ErrorCode, message, details string, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: GetRetryCount(code) > 0,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewParseError is returned when job variables are not valid JSON for the task.
func NewParseError(err error) *StandardError {
	return newError(ErrCodeParseError, "Failed to parse job variables", err.Error(), err)
}

// NewInputSchemaInvalidError lists the schema violations of a job payload.
func NewInputSchemaInvalidError(taskType string, violations []string) *StandardError {
	return newError(ErrCodeInputSchemaInvalid, "Job variables do not match the input schema",
		fmt.Sprintf("taskType: %s, violations: %s", taskType, strings.Join(violations, "; ")), nil).
		WithMetadata("violations", violations)
}

func NewUnknownAssessmentTypeError(assessmentType string) *StandardError {
	return newError(ErrCodeUnknownAssessmentType, "Unsupported assessment type",
		fmt.Sprintf("assessmentType: %s", assessmentType), nil)
}

// NewResponsesInvalidError carries the validator messages as metadata.
func NewResponsesInvalidError(messages []string) *StandardError {
	return newError(ErrCodeResponsesInvalid, "Assessment responses failed validation",
		strings.Join(messages, "; "), nil).
		WithMetadata("validationErrors", messages)
}

func NewSubmissionNotFoundError(submissionID string) *StandardError {
	return newError(ErrCodeSubmissionNotFound, "Assessment submission not found",
		fmt.Sprintf("submissionId: %s", submissionID), nil)
}

func NewResultNotFoundError(personID, assessmentType string) *StandardError {
	return newError(ErrCodeResultNotFound, "No assessment result on record",
		fmt.Sprintf("personId: %s, assessmentType: %s", personID, assessmentType), nil)
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return newError(ErrCodeDatabaseConnectionFailed, "Database connection error", err.Error(), err)
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryType string, err error) *StandardError {
	return newError(ErrCodeQueryExecutionFailed, "Database query execution error",
		fmt.Sprintf("queryType: %s, error: %s", queryType, err.Error()), err)
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(queryType string) *StandardError {
	return newError(ErrCodeQueryTimeout, "Database query timeout",
		fmt.Sprintf("queryType: %s", queryType), nil)
}

func NewResultStoreFailedError(err error) *StandardError {
	return newError(ErrCodeResultStoreFailed, "Failed to persist assessment result", err.Error(), err)
}

func NewResultIndexFailedError(index string, err error) *StandardError {
	return newError(ErrCodeResultIndexFailed, "Failed to index assessment result",
		fmt.Sprintf("index: %s, error: %s", index, err.Error()), err)
}

func NewReminderSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeReminderSendFailed, "Reassessment reminder delivery failed",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), err)
}

// Generic constructors

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewAuthenticationError(details string) *StandardError {
	return &StandardError{
		Code:      "AUTHENTICATION_ERROR",
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal codes to the error codes caught by boundary
// events. Codes not listed are thrown unchanged.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeParseError:               "INVALID_INPUT",
	ErrCodeInputSchemaInvalid:       "INVALID_INPUT",
	ErrCodeUnknownAssessmentType:    "INVALID_INPUT",
	ErrCodeResponsesInvalid:         "RESPONSES_INVALID",
	ErrCodeSubmissionNotFound:       "SUBMISSION_NOT_FOUND",
	ErrCodeResultNotFound:           "RESULT_NOT_FOUND",
	ErrCodeDatabaseConnectionFailed: "DATABASE_ERROR",
	ErrCodeQueryExecutionFailed:     "DATABASE_ERROR",
	ErrCodeQueryTimeout:             "DATABASE_ERROR",
	ErrCodeResultStoreFailed:        "RESULT_STORE_FAILED",
	ErrCodeResultIndexFailed:        "RESULT_INDEX_FAILED",
	ErrCodeReminderSendFailed:       "REMINDER_SEND_FAILED",
}

// GetRetryCount returns the number of retries a code earns before the error
// is thrown to the process.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeResultStoreFailed,
		ErrCodeReminderSendFailed,
		"EXTERNAL_SERVICE_ERROR":
		return 3

	case ErrCodeQueryTimeout,
		"TIMEOUT_ERROR":
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY") || strings.Contains(codeStr, "STORE"):
		return "DATABASE"
	case strings.Contains(codeStr, "INDEX"):
		return "SEARCH"
	case strings.Contains(codeStr, "REMINDER"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "NOT_FOUND"):
		return "LOOKUP"
	case strings.Contains(codeStr, "RESPONSES") || strings.Contains(codeStr, "ASSESSMENT"):
		return "SCORING"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "PARSE"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
