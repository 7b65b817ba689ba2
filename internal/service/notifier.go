package service

// Events pushed to the outbound notification sink. Delivery is best-effort:
// implementations dispatch asynchronously, contain their own failures and
// never block or fail the calling request.

type AccountCreatedEvent struct {
	Name         string
	Email        string
	Phone        string
	ReferralCode string
	Role         string
}

type LeadReferredEvent struct {
	LeadName        string
	LeadPhone       string
	LeadEmail       string
	ReferrerName    string
	ReferrerCode    string
	PromotionName   string
	DiscountPercent int
}

type LeadStatusChangedEvent struct {
	LeadName      string
	ReferrerName  string
	OldStatus     string
	NewStatus     string
	PromotionName string
}

type Notifier interface {
	AccountCreated(ev AccountCreatedEvent)
	LeadReferred(ev LeadReferredEvent)
	LeadStatusChanged(ev LeadStatusChangedEvent)
}

type noopNotifier struct{}

// NewNoopNotifier returns a Notifier that drops all events, for deployments
// without a configured sink and for tests.
func NewNoopNotifier() Notifier { return noopNotifier{} }

func (noopNotifier) AccountCreated(AccountCreatedEvent)       {}
func (noopNotifier) LeadReferred(LeadReferredEvent)           {}
func (noopNotifier) LeadStatusChanged(LeadStatusChangedEvent) {}
