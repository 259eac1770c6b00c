// Package nats publishes listing lifecycle events.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/autogy/listing-service/internal/listing/domain"
)

const (
	SubjectListingCreated       = "listing.created"
	SubjectListingUpdated       = "listing.updated"
	SubjectListingDeleted       = "listing.deleted"
	SubjectListingStatusChanged = "listing.status_changed"
)

type Publisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// NewPublisher connects to NATS with reconnect handlers that log
// connectivity changes.
func NewPublisher(url string, logger *zap.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats: failed to connect to %s: %w", url, err)
	}
	return &Publisher{conn: conn, logger: logger}, nil
}

// listingEvent is the wire shape shared by all listing subjects.
type listingEvent struct {
	ListingID      string    `json:"listing_id"`
	DealerID       string    `json:"dealer_id,omitempty"`
	Status         string    `json:"status,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (p *Publisher) ListingCreated(ctx context.Context, listing *domain.Listing) error {
	return p.publish(ctx, SubjectListingCreated, listingEvent{
		ListingID:  listing.ID,
		DealerID:   listing.DealerID,
		Status:     string(listing.Status),
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) ListingUpdated(ctx context.Context, listing *domain.Listing) error {
	return p.publish(ctx, SubjectListingUpdated, listingEvent{
		ListingID:  listing.ID,
		DealerID:   listing.DealerID,
		Status:     string(listing.Status),
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) ListingDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, SubjectListingDeleted, listingEvent{
		ListingID:  id,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) ListingStatusChanged(ctx context.Context, listing *domain.Listing, previous domain.ListingStatus) error {
	return p.publish(ctx, SubjectListingStatusChanged, listingEvent{
		ListingID:      listing.ID,
		DealerID:       listing.DealerID,
		Status:         string(listing.Status),
		PreviousStatus: string(previous),
		OccurredAt:     time.Now().UTC(),
	})
}

func (p *Publisher) publish(_ context.Context, subject string, event listingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("nats: failed to marshal event for %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("nats: failed to publish to %s: %w", subject, err)
	}
	p.logger.Debug("event published",
		zap.String("subject", subject),
		zap.String("listing_id", event.ListingID))
	return nil
}

// Close drains the connection so queued messages flush before exit.
func (p *Publisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("nats drain failed", zap.Error(err))
	}
}
