package domain

import "errors"

// ErrNotFound is returned by repositories when the referenced record does
// not exist. Services and handlers test for it with errors.Is.
var ErrNotFound = errors.New("record not found")

// ErrRequestNotPending is returned when an approve/reject targets a request
// whose status has already reached a terminal state. The stored status is
// left unchanged.
var ErrRequestNotPending = errors.New("rental request is not pending")
