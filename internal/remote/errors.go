// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport indicates the request failed before a reply was read.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedReply indicates the reply body was not a valid envelope.
	ErrMalformedReply = errors.New("malformed reply")

	// ErrReplyTooLarge indicates the reply exceeded the size limit.
	ErrReplyTooLarge = errors.New("reply exceeded maximum size")

	// ErrRejected indicates the backend answered with success=false.
	ErrRejected = errors.New("request rejected by backend")
)

// EnvelopeError carries the message of a success=false envelope.
type EnvelopeError struct {
	// Op is "chat" or "upload".
	Op      string
	Message string
	// Status is the HTTP status code the envelope arrived with.
	Status int
}

// Error implements the error interface.
func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("%s failed (HTTP %d): %s", e.Op, e.Status, e.Message)
}

// Is makes errors.Is(err, ErrRejected) true for envelope errors.
func (e *EnvelopeError) Is(target error) bool {
	return target == ErrRejected
}
