// internal/domain/newsletter/dispatcher.go
package newsletter

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Dispatcher periodically marks due sequence emails as sent. Delivery is
// simulated: each email is only logged.
type Dispatcher struct {
	service  *Service
	interval time.Duration
	log      *logrus.Logger
}

// NewDispatcher creates a dispatcher ticking every interval
func NewDispatcher(service *Service, interval time.Duration, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		service:  service,
		interval: interval,
		log:      log,
	}
}

// Run dispatches until ctx is cancelled
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.log.WithField("interval", d.interval).Info("Email dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.log.Info("Email dispatcher stopped")
			return
		case now := <-ticker.C:
			d.Tick(ctx, now)
		}
	}
}

// Tick runs one dispatch pass and returns how many emails were sent
func (d *Dispatcher) Tick(ctx context.Context, now time.Time) int {
	sent, err := d.service.DispatchDue(ctx, now)
	if err != nil {
		d.log.WithError(err).Error("Email dispatch pass failed to persist")
	}

	for _, e := range sent {
		d.log.WithFields(logrus.Fields{
			"email_id":      e.ID,
			"subscriber_id": e.SubscriberID,
			"type":          e.Type,
			"subject":       e.Subject,
		}).Info("Sequence email delivered (simulated)")
	}

	return len(sent)
}
