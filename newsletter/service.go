// Package newsletter handles footer newsletter signups.
package newsletter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"branchsite/models"
	"branchsite/utils"
)

// ErrUnsubscribeDisabled is returned when no signing secret is configured.
var ErrUnsubscribeDisabled = errors.New("unsubscribe links are not configured")

// Receipt is what a successful signup returns to the caller.
type Receipt struct {
	Subscriber       models.Subscriber `json:"subscriber"`
	UnsubscribeToken string            `json:"unsubscribeToken,omitempty"`
}

// DefaultForwardTimeout bounds one upstream delivery.
const DefaultForwardTimeout = 10 * time.Second

type Service struct {
	repo           models.SubscriberRepository
	forwarder      Forwarder
	forwardTimeout time.Duration
	secret         string
	tokenTTL       time.Duration
	log            logrus.FieldLogger
	now            func() time.Time

	inflight sync.WaitGroup
}

type Option func(*Service)

// WithForwarder enables best-effort delivery to an upstream list.
func WithForwarder(f Forwarder) Option { return func(s *Service) { s.forwarder = f } }

// WithForwardTimeout bounds each delivery; zero or less keeps the default.
func WithForwardTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.forwardTimeout = d
		}
	}
}

// WithSecret enables signed unsubscribe tokens.
func WithSecret(secret string, ttl time.Duration) Option {
	return func(s *Service) { s.secret, s.tokenTTL = secret, ttl }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo models.SubscriberRepository, opts ...Option) *Service {
	s := &Service{
		repo:           repo,
		forwardTimeout: DefaultForwardTimeout,
		log:            logrus.StandardLogger(),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe validates and stores email. Delivery to the upstream list
// starts after the subscriber is stored and runs in the background: it
// outlives ctx, and a failure is only logged. Wait blocks until pending
// deliveries finish.
func (s *Service) Subscribe(ctx context.Context, email string) (Receipt, error) {
	email, err := Validate(email)
	if err != nil {
		return Receipt{}, err
	}

	sub := models.Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &sub); err != nil {
		if errors.Is(err, models.ErrAlreadySubscribed) {
			return Receipt{}, err
		}
		return Receipt{}, fmt.Errorf("save subscriber: %w", err)
	}

	if s.forwarder != nil {
		s.forward(context.WithoutCancel(ctx), sub)
	}

	r := Receipt{Subscriber: sub}
	if s.secret != "" {
		tok, err := utils.GenerateUnsubscribeToken(s.secret, email, s.tokenTTL)
		if err != nil {
			s.log.WithError(err).Error("could not sign unsubscribe token")
		} else {
			r.UnsubscribeToken = tok
		}
	}
	return r, nil
}

func (s *Service) forward(ctx context.Context, sub models.Subscriber) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(ctx, s.forwardTimeout)
		defer cancel()
		if err := s.forwarder.Forward(ctx, sub.Email); err != nil {
			s.log.WithError(err).WithField("subscriber", sub.ID).Warn("newsletter forward failed")
			return
		}
		s.log.WithField("subscriber", sub.ID).Debug("newsletter forwarded")
	}()
}

// Wait blocks until every background delivery started so far has finished.
func (s *Service) Wait() {
	s.inflight.Wait()
}

// Unsubscribe removes the subscriber named by a signed token.
func (s *Service) Unsubscribe(ctx context.Context, token string) error {
	if s.secret == "" {
		return ErrUnsubscribeDisabled
	}
	email, err := utils.VerifyUnsubscribeToken(s.secret, token)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, email); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}

// Count reports how many addresses are subscribed.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
