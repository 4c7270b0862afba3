// internal/domain/newsletter/entity.go
package newsletter

import "time"

// Persistence keys
const (
	SubscribersKey = "email_subscribers"
	SequencesKey   = "email_sequences"
)

// SubscriberStatus represents the state of a subscriber
type SubscriberStatus string

const (
	SubscriberStatusActive SubscriberStatus = "active"
)

// EmailStatus represents the lifecycle state of a scheduled email.
// scheduled -> sent is the only transition.
type EmailStatus string

const (
	EmailStatusScheduled EmailStatus = "scheduled"
	EmailStatusSent      EmailStatus = "sent"
)

// EmailType tags the purpose of a sequence email
type EmailType string

const (
	EmailTypeWelcome         EmailType = "welcome"
	EmailTypeDiscount        EmailType = "discount"
	EmailTypeProductShowcase EmailType = "product_showcase"
	EmailTypeTips            EmailType = "tips"
	EmailTypeFlashSale       EmailType = "flash_sale"
	EmailTypeCartReminder    EmailType = "cart_reminder"
	EmailTypeSocialProof     EmailType = "social_proof"
	EmailTypeLoyaltyGift     EmailType = "loyalty_gift"
	EmailTypeRecommendations EmailType = "recommendations"
	EmailTypeVIPAccess       EmailType = "vip_access"
)

// Subscriber is a newsletter signup
type Subscriber struct {
	ID           string           `json:"id"`
	Email        string           `json:"email"`
	Name         string           `json:"name"`
	SubscribedAt time.Time        `json:"subscribedAt"`
	Status       SubscriberStatus `json:"status"`
}

// Template is the static definition of one sequence email
type Template struct {
	ID        int       `json:"id"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	DelayDays int       `json:"delay"`
	Type      EmailType `json:"type"`
}

// Delay returns the template's offset from signup
func (t Template) Delay() time.Duration {
	return time.Duration(t.DelayDays) * 24 * time.Hour
}

// ScheduledEmail is one template instance bound to a subscriber
type ScheduledEmail struct {
	ID           string      `json:"id"`
	SubscriberID string      `json:"subscriberId"`
	TemplateID   int         `json:"templateId"`
	Subject      string      `json:"subject"`
	Content      string      `json:"content"`
	ScheduledFor time.Time   `json:"scheduledFor"`
	Status       EmailStatus `json:"status"`
	SentAt       *time.Time  `json:"sentAt,omitempty"`
	Type         EmailType   `json:"type"`
}

// Stats is a snapshot of the sequence counters.
// SentEmails + ScheduledEmails == TotalEmails.
type Stats struct {
	TotalSubscribers int `json:"totalSubscribers"`
	TotalEmails      int `json:"totalEmails"`
	SentEmails       int `json:"sentEmails"`
	ScheduledEmails  int `json:"scheduledEmails"`
}
