package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrProjectNotFound is returned when a project is missing or not owned by the caller.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound is returned when a task is missing or belongs to another manager's project.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAssigneeNotFound is returned when a task is assigned to an unknown user.
	ErrAssigneeNotFound = errors.New("assignee not found")
	// ErrInvalidDate is returned when a calendar date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidDateRange is returned when a project ends before it starts.
	ErrInvalidDateRange = errors.New("end date is before start date")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrTaskNotFound) ||
		errors.Is(err, ErrAssigneeNotFound)
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors never leak their text.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, "Project not found", "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, "Task not found", "TASK_NOT_FOUND")
	case errors.Is(err, ErrAssigneeNotFound):
		return NewHTTPError(http.StatusBadRequest, "Assignee not found", "ASSIGNEE_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, "User already exists with this email", "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidDateRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Something went wrong", "INTERNAL_ERROR")
	}
}
