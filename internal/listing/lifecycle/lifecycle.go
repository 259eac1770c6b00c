// Package lifecycle centralizes the listing status state machine and
// the public visibility rule. Every status change in the service goes
// through Next so no call site can invent its own transition logic.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/autogy/listing-service/internal/listing/domain"
)

// Action is a dealer- or admin-initiated lifecycle operation.
type Action string

const (
	// ActionSubmit is the general-purpose "submit listing" action. On a
	// draft it publishes the listing; on any other status it preserves
	// the current status.
	ActionSubmit Action = "submit"
	// ActionSaveDraft moves the listing (back) to draft.
	ActionSaveDraft Action = "save_draft"
	ActionMarkSold  Action = "mark_sold"
	// ActionRestore reactivates a sold or archived listing and clears
	// its sold timestamp.
	ActionRestore Action = "restore"
	ActionArchive Action = "archive"
)

// SoldVisibilityWindow is how long a sold listing remains publicly
// visible after being marked sold.
const SoldVisibilityWindow = 24 * time.Hour

// PlaceholderImage is substituted when a listing goes active with no
// images, so the gallery never renders empty.
const PlaceholderImage = "https://picsum.photos/800/600"

var ErrInvalidTransition = errors.New("invalid status transition")

// Next resolves the status resulting from applying action to a listing
// currently in status current. It returns the new status and the new
// sold timestamp (the zero time means "not sold").
func Next(current domain.ListingStatus, action Action, soldAt time.Time, now time.Time) (domain.ListingStatus, time.Time, error) {
	switch action {
	case ActionSubmit:
		if current == domain.StatusDraft || current == "" {
			return domain.StatusActive, time.Time{}, nil
		}
		// Edits to live, sold or archived listings keep their status.
		return current, soldAt, nil

	case ActionSaveDraft:
		return domain.StatusDraft, time.Time{}, nil

	case ActionMarkSold:
		if current != domain.StatusActive && current != domain.StatusReserved {
			return current, soldAt, fmt.Errorf("%w: cannot mark %s listing as sold", ErrInvalidTransition, current)
		}
		return domain.StatusSold, now, nil

	case ActionRestore:
		if current != domain.StatusSold && current != domain.StatusArchived {
			return current, soldAt, fmt.Errorf("%w: cannot restore %s listing", ErrInvalidTransition, current)
		}
		return domain.StatusActive, time.Time{}, nil

	case ActionArchive:
		if current == domain.StatusDraft {
			return current, soldAt, fmt.Errorf("%w: cannot archive a draft", ErrInvalidTransition)
		}
		// Archiving keeps the sold timestamp so a later restore is a
		// deliberate reactivation, not a data repair.
		return domain.StatusArchived, soldAt, nil
	}
	return current, soldAt, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
}

// EnsureCoverImage guarantees an active listing has at least one image.
// Drafts may stay imageless.
func EnsureCoverImage(images []string, status domain.ListingStatus) []string {
	if status == domain.StatusActive && len(images) == 0 {
		return []string{PlaceholderImage}
	}
	return images
}

// IsVisible reports whether a listing may appear in public views.
// Active listings are always visible; sold listings stay visible for
// SoldVisibilityWindow after their sold timestamp. A sold listing
// without a timestamp is legacy data and stays hidden.
func IsVisible(l *domain.Listing, now time.Time) bool {
	switch l.Status {
	case domain.StatusActive:
		return true
	case domain.StatusSold:
		if l.SoldAt.IsZero() {
			return false
		}
		return now.Sub(l.SoldAt) < SoldVisibilityWindow
	default:
		return false
	}
}

// Visible filters listings down to the publicly visible ones. The
// input slice is not mutated.
func Visible(listings []*domain.Listing, now time.Time) []*domain.Listing {
	out := make([]*domain.Listing, 0, len(listings))
	for _, l := range listings {
		if IsVisible(l, now) {
			out = append(out, l)
		}
	}
	return out
}
