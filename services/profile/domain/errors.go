package domain

import "errors"

// Sentinel errors for the profile domain. Use errors.Is() to check these.
var (
	// ErrProfileNotFound is returned when the tenant has not saved a profile yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidProfile indicates profile data that violates profile rules.
	ErrInvalidProfile = errors.New("invalid profile")
)
