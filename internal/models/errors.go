// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the local error taxonomy every failure is mapped into.
type ErrorKind string

const (
	ErrorKindConfiguration  ErrorKind = "ConfigurationError"
	ErrorKindAuthentication ErrorKind = "AuthenticationError"
	ErrorKindRateLimit      ErrorKind = "RateLimitError"
	ErrorKindUpstream       ErrorKind = "UpstreamError"
	ErrorKindTransform      ErrorKind = "TransformError"
	ErrorKindBadRequest     ErrorKind = "BadRequestError"
	ErrorKindInternal       ErrorKind = "InternalError"
)

// Machine-readable codes carried in the envelope.
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeConfigurationError  = "CONFIGURATION_ERROR"
	ErrCodeTransformFailed     = "TRANSFORM_FAILED"
	ErrCodeExternalServiceFail = "EXTERNAL_SERVICE_FAILED"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// AppError is a classified failure. Status is the HTTP status the envelope is
// written with; the Upstream* fields echo the provider error when one parsed.
type AppError struct {
	Kind            ErrorKind
	Status          int
	Message         string
	UpstreamCode    int
	UpstreamSubcode int
	UpstreamType    string
	Details         any
	Err             error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Code returns the envelope code for the error.
func (e *AppError) Code() string {
	switch e.Kind {
	case ErrorKindConfiguration:
		return ErrCodeConfigurationError
	case ErrorKindAuthentication:
		return ErrCodeUnauthorized
	case ErrorKindRateLimit:
		return ErrCodeTooManyRequests
	case ErrorKindTransform:
		return ErrCodeTransformFailed
	case ErrorKindBadRequest:
		return ErrCodeBadRequest
	case ErrorKindUpstream:
		if e.Status == http.StatusServiceUnavailable {
			return ErrCodeServiceUnavailable
		}
		return ErrCodeExternalServiceFail
	default:
		return ErrCodeInternalError
	}
}

// Body renders the error for the wire. Details are only copied when
// includeDetails is set (non-production environments).
func (e *AppError) Body(includeDetails bool, requestID string) ErrorBody {
	b := ErrorBody{
		Kind:            e.Kind,
		Code:            e.Code(),
		Message:         e.Message,
		UpstreamCode:    e.UpstreamCode,
		UpstreamSubcode: e.UpstreamSubcode,
		UpstreamType:    e.UpstreamType,
		RequestID:       requestID,
	}
	if includeDetails {
		b.Details = e.Details
		if b.Details == nil && e.Err != nil {
			b.Details = e.Err.Error()
		}
	}
	return b
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody is the wire form of an AppError.
type ErrorBody struct {
	Kind            ErrorKind `json:"kind"`
	Code            string    `json:"code"`
	Message         string    `json:"message"`
	UpstreamCode    int       `json:"upstream_code,omitempty"`
	UpstreamSubcode int       `json:"upstream_subcode,omitempty"`
	UpstreamType    string    `json:"upstream_type,omitempty"`
	Details         any       `json:"details,omitempty"`
	RequestID       string    `json:"request_id,omitempty"`
}

// NewConfigurationError reports missing or invalid local configuration.
func NewConfigurationError(message string) *AppError {
	return &AppError{Kind: ErrorKindConfiguration, Status: http.StatusInternalServerError, Message: message}
}

// NewAuthenticationError reports credentials rejected by a provider.
func NewAuthenticationError(message string) *AppError {
	return &AppError{Kind: ErrorKindAuthentication, Status: http.StatusUnauthorized, Message: message}
}

// NewRateLimitError reports provider throttling.
func NewRateLimitError(message string) *AppError {
	return &AppError{Kind: ErrorKindRateLimit, Status: http.StatusTooManyRequests, Message: message}
}

// NewUpstreamError reports any other provider failure. A status outside the
// 4xx/5xx range is replaced with 500.
func NewUpstreamError(status int, message string, err error) *AppError {
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	return &AppError{Kind: ErrorKindUpstream, Status: status, Message: message, Err: err}
}

// NewTransformError reports a provider payload that could not be normalized.
func NewTransformError(message string, err error) *AppError {
	return &AppError{Kind: ErrorKindTransform, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// NewBadRequestError reports invalid caller input.
func NewBadRequestError(message string, details any) *AppError {
	return &AppError{Kind: ErrorKindBadRequest, Status: http.StatusBadRequest, Message: message, Details: details}
}

// AsAppError returns err as an *AppError, classifying anything unknown as an
// internal error.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    ErrorKindInternal,
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}
