package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. An empty
// candidate pool is a valid result and is never represented as an error;
// ErrPoolUnavailable means the fetch itself failed, which is a different fact.
var (
	ErrNeedNotFound    = errors.New("learning need not found")
	ErrNotNeedOwner    = errors.New("learning need belongs to another user")
	ErrNeedInactive    = errors.New("learning need is inactive or expired")
	ErrPoolUnavailable = errors.New("candidate pool unavailable")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrInvalidResponse = errors.New("response must be interested or declined")
)
