// Package intake sequences the form pipeline: validate, persist, respond,
// then notify. Persistence is synchronous and gates the response;
// notification is a detached best-effort side channel that can never fail
// a request that already wrote its row.
package intake

import (
	"context"
	"strings"

	"github.com/pairline/pairline/internal/metrics"
	"github.com/pairline/pairline/internal/model"
	"github.com/pairline/pairline/internal/repository"
	"github.com/pairline/pairline/internal/validate"
	"go.uber.org/zap"
)

// Notifier is the slice of the dispatcher the pipeline needs.
type Notifier interface {
	SendConfirmation(c model.Consultation) error
	SendAdminAlert(c model.Consultation) error
	SendWelcome(email string) error
}

type Service struct {
	consultations repository.ConsultationsRepository
	subscribers   repository.SubscribersRepository
	numbers       repository.NumbersRepository
	notifier      Notifier
	log           *zap.Logger
}

// New constructs the intake service. All dependencies are injected once at
// startup; the service holds no other state.
func New(
	consultationsRepo repository.ConsultationsRepository,
	subscribersRepo repository.SubscribersRepository,
	numbersRepo repository.NumbersRepository,
	notifier Notifier,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		consultations: consultationsRepo,
		subscribers:   subscribersRepo,
		numbers:       numbersRepo,
		notifier:      notifier,
		log:           log,
	}
}

// SubmitConsultation validates and persists one consultation. On success it
// returns the generated identifier and spawns the customer confirmation and
// admin alert without waiting for either. A persistence failure returns the
// error and no notification is ever attempted.
func (s *Service) SubmitConsultation(ctx context.Context, in model.ConsultationInput) (int64, []validate.Violation, error) {
	if vs := validate.Consultation(validate.ConsultationFields{
		RelationshipType: in.RelationshipType,
		Names:            in.Names,
		Email:            in.Email,
		Phone:            in.Phone,
		Budget:           in.Budget,
	}); len(vs) > 0 {
		metrics.SubmissionsTotal.WithLabelValues("consultation", "rejected").Inc()
		return 0, vs, nil
	}

	c := model.Consultation{
		RelationshipType: strings.TrimSpace(in.RelationshipType),
		Names:            strings.TrimSpace(in.Names),
		Email:            strings.TrimSpace(in.Email),
		Phone:            strings.TrimSpace(in.Phone),
		Anniversary:      in.Anniversary, // stays NULL when absent
		Preferences:      strings.TrimSpace(in.Preferences),
		Budget:           strings.TrimSpace(in.Budget),
		Status:           model.ConsultationPending.String(),
	}

	id, err := s.consultations.Insert(ctx, c)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("consultation", "failed").Inc()
		return 0, nil, err
	}
	c.ID = id

	metrics.SubmissionsTotal.WithLabelValues("consultation", "accepted").Inc()

	// Detached: the row is the source of truth, mail is best-effort.
	go s.notifyConsultation(c)

	return id, nil, nil
}

func (s *Service) notifyConsultation(c model.Consultation) {
	if err := s.notifier.SendConfirmation(c); err != nil {
		s.log.Warn("confirmation mail failed",
			zap.Int64("consultation_id", c.ID), zap.Error(err))
	}
	if err := s.notifier.SendAdminAlert(c); err != nil {
		s.log.Warn("admin alert mail failed",
			zap.Int64("consultation_id", c.ID), zap.Error(err))
	}
}

// Subscribe validates and persists a newsletter signup. Duplicate emails
// are silently idempotent: the signup still succeeds and still triggers a
// welcome mail, but no second row is written.
func (s *Service) Subscribe(ctx context.Context, email, source string) ([]validate.Violation, error) {
	if vs := validate.Newsletter(email); len(vs) > 0 {
		metrics.SubmissionsTotal.WithLabelValues("newsletter", "rejected").Inc()
		return vs, nil
	}

	src, ok := model.ParseSubscriberSource(source)
	if !ok {
		metrics.SubmissionsTotal.WithLabelValues("newsletter", "rejected").Inc()
		return []validate.Violation{{Field: "source", Message: "unknown source"}}, nil
	}

	email = strings.TrimSpace(email)

	inserted, err := s.subscribers.InsertIgnore(ctx, model.Subscriber{Email: email, Source: src})
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("newsletter", "failed").Inc()
		return nil, err
	}
	if !inserted {
		s.log.Debug("duplicate newsletter signup", zap.String("email", email))
	}

	metrics.SubmissionsTotal.WithLabelValues("newsletter", "accepted").Inc()

	go func() {
		if err := s.notifier.SendWelcome(email); err != nil {
			s.log.Warn("welcome mail failed", zap.String("email", email), zap.Error(err))
		}
	}()

	return nil, nil
}

// SearchNumbers lists available inventory. Empty results are success.
func (s *Service) SearchNumbers(ctx context.Context, pattern, areaCode string, limit int) ([]model.PhoneNumber, error) {
	return s.numbers.SearchAvailable(ctx, strings.TrimSpace(pattern), strings.TrimSpace(areaCode), limit)
}

// ListConsultations pages stored consultations newest-first, optionally
// filtered by status. Unknown status values are ignored rather than failed:
// the admin panel sends free-form filters.
func (s *Service) ListConsultations(ctx context.Context, status string, limit, offset int) ([]model.Consultation, error) {
	var st model.ConsultationStatus
	if raw := strings.TrimSpace(status); raw != "" {
		tmp := model.ConsultationStatus(raw)
		if tmp.Valid() {
			st = tmp
		}
	}
	return s.consultations.List(ctx, st, limit, offset)
}
