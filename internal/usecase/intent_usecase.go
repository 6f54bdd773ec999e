package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"govbr_pagamentos/internal/domain/entities"
	"govbr_pagamentos/internal/usecase/interfaces"
	"govbr_pagamentos/pkg"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrMissingPayerEmail = errors.New("missing payer email")
	ErrIntentNotFound    = errors.New("payment intent not found")
	ErrIntentIDExhausted = errors.New("payment id space exhausted")
	ErrPixGatewayFailed  = errors.New("pix gateway failed")
)

// Bounded retry on duplicate ids. With 16-char A-Z0-9 ids this never fires
// in practice; the bound only keeps the contract total.
const maxIDAttempts = 5

// DefaultIntentTTL is the fixed validity window of a PIX charge.
const DefaultIntentTTL = 15 * time.Minute

// CreateIntentCommand carries the validated creation parameters.
type CreateIntentCommand struct {
	Amount        float64
	PayerEmail    string
	PayerName     string
	PayerDocument string
}

// IIntentUseCase exposes the payment intent lifecycle.
//
//   - CreateIntent: validate, charge the gateway, persist a pending record.
//   - GetStatus: poll-driven reconciliation (expiry first, then policy).
//   - ApplyCallback: webhook-driven reconciliation, idempotent.
//   - HealthCheck: liveness info for the health route.
type IIntentUseCase interface {
	CreateIntent(ctx context.Context, cmd CreateIntentCommand) (entities.PaymentIntent, error)
	GetStatus(ctx context.Context, id string) (entities.PaymentIntent, error)
	ApplyCallback(ctx context.Context, id string, reportedStatus string) (entities.PaymentIntent, error)
	HealthCheck(ctx context.Context) (storeNonEmpty bool, err error)
}

type IntentUseCase struct {
	repo    interfaces.IIntentRepository
	gateway interfaces.IPixGateway
	policy  interfaces.IReconciliationPolicy
	ttl     time.Duration
}

var _ IIntentUseCase = (*IntentUseCase)(nil)

func NewIntentUseCase(repo interfaces.IIntentRepository, gateway interfaces.IPixGateway, policy interfaces.IReconciliationPolicy, ttl time.Duration) *IntentUseCase {
	if ttl <= 0 {
		ttl = DefaultIntentTTL
	}
	return &IntentUseCase{repo: repo, gateway: gateway, policy: policy, ttl: ttl}
}

func (u *IntentUseCase) CreateIntent(ctx context.Context, cmd CreateIntentCommand) (entities.PaymentIntent, error) {
	log.Printf("[pix][usecase] create start amount=%.2f", cmd.Amount)
	if cmd.Amount <= 0 {
		log.Printf("[pix][usecase] invalid amount amount=%.2f", cmd.Amount)
		return entities.PaymentIntent{}, ErrInvalidAmount
	}
	email := strings.TrimSpace(cmd.PayerEmail)
	if email == "" {
		log.Printf("[pix][usecase] missing payer email")
		return entities.PaymentIntent{}, ErrMissingPayerEmail
	}
	if u.gateway == nil {
		log.Printf("[pix][usecase] gateway not configured")
		return entities.PaymentIntent{}, errors.New("pix gateway not configured")
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := pkg.NewPaymentID()

		// Gateway call happens before any store mutation and without holding
		// store resources; a failure here aborts with nothing persisted.
		ref, err := u.gateway.CreateCharge(ctx, interfaces.ChargeRequest{
			PaymentID:     id,
			Amount:        cmd.Amount,
			PayerEmail:    email,
			PayerName:     strings.TrimSpace(cmd.PayerName),
			PayerDocument: strings.TrimSpace(cmd.PayerDocument),
		})
		if err != nil {
			log.Printf("[pix][usecase] gateway failed payment_id=%s err=%v", id, err)
			return entities.PaymentIntent{}, errors.Join(ErrPixGatewayFailed, err)
		}

		now := time.Now().UTC()
		p := entities.PaymentIntent{
			ID:            id,
			Amount:        cmd.Amount,
			PayerEmail:    email,
			PayerName:     strings.TrimSpace(cmd.PayerName),
			PayerDocument: strings.TrimSpace(cmd.PayerDocument),
			Status:        entities.IntentStatusPending,
			CreatedAt:     now,
			ExpiresAt:     now.Add(u.ttl),
			Gateway:       ref,
		}

		created, err := u.repo.Put(ctx, p)
		if errors.Is(err, interfaces.ErrDuplicateIntentID) {
			log.Printf("[pix][usecase] duplicate payment id payment_id=%s attempt=%d", id, attempt)
			continue
		}
		if err != nil {
			log.Printf("[pix][usecase] repository put failed payment_id=%s err=%v", id, err)
			return entities.PaymentIntent{}, err
		}
		log.Printf("[pix][usecase] create success payment_id=%s expires_at=%s", created.ID, created.ExpiresAt.Format(time.RFC3339))
		return created, nil
	}

	log.Printf("[pix][usecase] exhausted id generation attempts")
	return entities.PaymentIntent{}, ErrIntentIDExhausted
}

func (u *IntentUseCase) GetStatus(ctx context.Context, id string) (entities.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if p.ID == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}

	now := time.Now().UTC()

	// Expiration first. Only a pending intent can expire; terminal states
	// are never overridden. The CAS resolves races against webhooks: if a
	// webhook landed a terminal transition first, we return that result.
	if p.Status == entities.IntentStatusPending && p.ExpiredBy(now) {
		p, err = u.repo.CompareAndTransition(ctx, id, entities.IntentStatusPending, entities.IntentStatusExpired, nil)
		if err != nil {
			return entities.PaymentIntent{}, err
		}
		log.Printf("[pix][usecase] status observed payment_id=%s status=%s", id, p.Status)
		return p, nil
	}

	if p.Status == entities.IntentStatusPending && u.policy != nil {
		if next := u.policy.Reconcile(p, now); next != entities.IntentStatusPending && next.Terminal() {
			p, err = u.repo.CompareAndTransition(ctx, id, entities.IntentStatusPending, next, approvalStamp(next, now))
			if err != nil {
				return entities.PaymentIntent{}, err
			}
		}
	}

	log.Printf("[pix][usecase] status observed payment_id=%s status=%s", id, p.Status)
	return p, nil
}

func (u *IntentUseCase) ApplyCallback(ctx context.Context, id string, reportedStatus string) (entities.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}
	log.Printf("[pix][usecase] callback start payment_id=%s reported_status=%q", id, reportedStatus)

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if p.ID == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}

	next, ok := mapReportedStatus(reportedStatus)
	if !ok || p.Status.Terminal() {
		// Unrecognized status or redelivery after a terminal transition:
		// acknowledge without changing anything.
		log.Printf("[pix][usecase] callback no-op payment_id=%s status=%s", id, p.Status)
		return p, nil
	}

	now := time.Now().UTC()
	p, err = u.repo.CompareAndTransition(ctx, id, entities.IntentStatusPending, next, approvalStamp(next, now))
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	log.Printf("[pix][usecase] callback applied payment_id=%s status=%s", id, p.Status)
	return p, nil
}

func (u *IntentUseCase) HealthCheck(ctx context.Context) (bool, error) {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// approvalStamp sets approved_at exactly once, and only when the transition
// target is approved.
func approvalStamp(next entities.IntentStatus, now time.Time) interfaces.IntentMutator {
	if next != entities.IntentStatusApproved {
		return nil
	}
	return func(p *entities.PaymentIntent) {
		if p.ApprovedAt == nil {
			at := now
			p.ApprovedAt = &at
		}
	}
}

func mapReportedStatus(reported string) (entities.IntentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(reported)) {
	case "approved", "paid":
		return entities.IntentStatusApproved, true
	case "rejected", "cancelled", "canceled":
		return entities.IntentStatusRejected, true
	default:
		return entities.IntentStatusPending, false
	}
}
