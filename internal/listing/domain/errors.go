package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrDealerNotFound  = errors.New("dealer not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidListing  = errors.New("invalid listing data")
)
