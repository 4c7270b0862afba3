// internal/domain/newsletter/service.go
package newsletter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/pkg/persistence"
)

// Service records newsletter subscribers and drives their email sequence.
// Both collections are mirrored to the persistence adapter after every
// mutation; the in-memory state stays authoritative when a save fails.
type Service struct {
	mu          sync.Mutex
	subscribers []Subscriber
	emails      []ScheduledEmail
	store       persistence.Adapter
	log         *logrus.Logger
	now         func() time.Time
}

// NewService creates the newsletter service and rehydrates both collections.
// A missing or malformed blob starts that collection empty, and emails whose
// subscriber did not survive are dropped.
func NewService(ctx context.Context, store persistence.Adapter, log *logrus.Logger) (*Service, error) {
	s := &Service{
		subscribers: []Subscriber{},
		emails:      []ScheduledEmail{},
		store:       store,
		log:         log,
		now:         time.Now,
	}

	var subscribers []Subscriber
	if ok, err := s.load(ctx, SubscribersKey, &subscribers); err != nil {
		return nil, err
	} else if ok && subscribers != nil {
		s.subscribers = subscribers
	}

	var emails []ScheduledEmail
	if ok, err := s.load(ctx, SequencesKey, &emails); err != nil {
		return nil, err
	} else if ok && emails != nil {
		s.emails = s.prune(normalize(emails))
	}

	log.WithFields(logrus.Fields{
		"subscribers": len(s.subscribers),
		"emails":      len(s.emails),
	}).Debug("Newsletter store rehydrated")

	return s, nil
}

// AddSubscriber records a signup and schedules one email per template.
// Duplicate addresses are accepted.
func (s *Service) AddSubscriber(ctx context.Context, email, name string) (Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	signedUp := s.timestamp()
	subscriber := Subscriber{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Email:        email,
		Name:         name,
		SubscribedAt: signedUp,
		Status:       SubscriberStatusActive,
	}
	s.subscribers = append(s.subscribers, subscriber)

	for _, tmpl := range templates {
		s.emails = append(s.emails, ScheduledEmail{
			ID:           fmt.Sprintf("%s_%d", subscriber.ID, tmpl.ID),
			SubscriberID: subscriber.ID,
			TemplateID:   tmpl.ID,
			Subject:      tmpl.Subject,
			Content:      tmpl.Content,
			ScheduledFor: signedUp.Add(tmpl.Delay()),
			Status:       EmailStatusScheduled,
			Type:         tmpl.Type,
		})
	}

	s.log.WithFields(logrus.Fields{
		"subscriber_id": subscriber.ID,
		"emails":        len(templates),
	}).Info("Subscriber added")

	return subscriber, s.sync(ctx)
}

// GetSubscriberEmails returns the subscriber's emails in template order
func (s *Service) GetSubscriberEmails(subscriberID string) []ScheduledEmail {
	s.mu.Lock()
	defer s.mu.Unlock()

	emails := []ScheduledEmail{}
	for _, e := range s.emails {
		if e.SubscriberID == subscriberID {
			emails = append(emails, copyEmail(e))
		}
	}
	return emails
}

// MarkEmailAsSent moves a scheduled email to sent and stamps SentAt.
// Unknown ids and already-sent emails are left untouched; the first call wins.
// The returned bool reports whether a transition happened.
func (s *Service) MarkEmailAsSent(ctx context.Context, emailID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(emailID)
	if i < 0 || s.emails[i].Status != EmailStatusScheduled {
		return false, nil
	}

	s.markSent(i, s.timestamp())
	return true, s.sync(ctx)
}

// DispatchDue marks every scheduled email due at or before now as sent,
// persisting once, and returns the emails that moved.
func (s *Service) DispatchDue(ctx context.Context, now time.Time) ([]ScheduledEmail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sent := []ScheduledEmail{}
	stamp := s.timestamp()
	for i := range s.emails {
		e := &s.emails[i]
		if e.Status == EmailStatusScheduled && !e.ScheduledFor.After(now) {
			s.markSent(i, stamp)
			sent = append(sent, copyEmail(*e))
		}
	}

	if len(sent) == 0 {
		return sent, nil
	}
	return sent, s.sync(ctx)
}

// GetEmailStats returns the current counters
func (s *Service) GetEmailStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TotalSubscribers: len(s.subscribers),
		TotalEmails:      len(s.emails),
	}
	for _, e := range s.emails {
		switch e.Status {
		case EmailStatusSent:
			stats.SentEmails++
		case EmailStatusScheduled:
			stats.ScheduledEmails++
		}
	}
	return stats
}

// Subscribers returns all subscribers in signup order
func (s *Service) Subscribers() []Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Subscriber, len(s.subscribers))
	copy(out, s.subscribers)
	return out
}

// Emails returns the sequence emails with the given status; an empty status
// returns every email.
func (s *Service) Emails(status EmailStatus) []ScheduledEmail {
	s.mu.Lock()
	defer s.mu.Unlock()

	emails := []ScheduledEmail{}
	for _, e := range s.emails {
		if status == "" || e.Status == status {
			emails = append(emails, copyEmail(e))
		}
	}
	return emails
}

func (s *Service) markSent(i int, at time.Time) {
	s.emails[i].Status = EmailStatusSent
	s.emails[i].SentAt = &at
}

func (s *Service) indexOf(emailID string) int {
	for i := range s.emails {
		if s.emails[i].ID == emailID {
			return i
		}
	}
	return -1
}

// timestamp returns the current time at the millisecond precision the
// browser layout stores
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// load decodes key into dst and reports whether dst now holds usable state.
// A missing or malformed blob leaves the collection empty; dst may have been
// partly written by a failed decode and must then be ignored.
func (s *Service) load(ctx context.Context, key string, dst interface{}) (bool, error) {
	err := persistence.LoadJSON(ctx, s.store, key, dst)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, persistence.ErrNotFound):
		return false, nil
	case errors.Is(err, persistence.ErrMalformed):
		s.log.WithError(err).WithField("key", key).Warn("Discarding unreadable persisted collection")
		return false, nil
	default:
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
}

// sync mirrors both collections to the adapter; callers hold s.mu.
// Sequences are written first: if the subscriber write then fails, the
// extra emails are orphans that prune drops on the next start.
func (s *Service) sync(ctx context.Context) error {
	if err := persistence.SaveJSON(ctx, s.store, SequencesKey, s.emails); err != nil {
		s.log.WithError(err).Error("Failed to persist email sequences")
		return err
	}
	if err := persistence.SaveJSON(ctx, s.store, SubscribersKey, s.subscribers); err != nil {
		s.log.WithError(err).Error("Failed to persist subscribers")
		return err
	}
	return nil
}

// prune drops emails whose subscriber is not known
func (s *Service) prune(emails []ScheduledEmail) []ScheduledEmail {
	known := make(map[string]bool, len(s.subscribers))
	for _, sub := range s.subscribers {
		known[sub.ID] = true
	}

	kept := emails[:0]
	for _, e := range emails {
		if known[e.SubscriberID] {
			kept = append(kept, e)
		}
	}

	if dropped := len(emails) - len(kept); dropped > 0 {
		s.log.WithField("dropped", dropped).Warn("Discarding emails without a subscriber")
	}
	return kept
}

// normalize folds unknown statuses back to scheduled so the counters add up
func normalize(emails []ScheduledEmail) []ScheduledEmail {
	for i := range emails {
		if emails[i].Status != EmailStatusSent {
			emails[i].Status = EmailStatusScheduled
			emails[i].SentAt = nil
		}
	}
	return emails
}

func copyEmail(e ScheduledEmail) ScheduledEmail {
	if e.SentAt != nil {
		at := *e.SentAt
		e.SentAt = &at
	}
	return e
}
