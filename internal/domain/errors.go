package domain

import "errors"

var (
	ErrNoRides       = errors.New("no rides available")
	ErrRideNotFound  = errors.New("ride not found")
	ErrDuplicateRide = errors.New("ride already exists")
	ErrInvalidRide   = errors.New("invalid ride")
)
