package calculator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"promptcalc/internal/domain"
)

// Service coordinates the credential store, the remote client and the
// history store. All operations are synchronous; a failed attempt is
// terminal for that user action, never retried.
type Service struct {
	creds   domain.CredentialStore
	client  domain.CalculationClient
	history domain.HistoryStore
	log     *slog.Logger
}

func New(creds domain.CredentialStore, client domain.CalculationClient, history domain.HistoryStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{creds: creds, client: client, history: history, log: log}
}

// Calculate evaluates the request via the remote model and records the
// result. Division by zero is rejected here, before any network I/O happens.
func (s *Service) Calculate(ctx context.Context, req domain.CalculationRequest) (float64, error) {
	if req.Op == domain.OpDivide && req.Operand2 == 0 {
		return 0, domain.ErrDivideByZero
	}

	cred, ok, err := s.creds.Load()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.ErrNoCredential
	}

	result, err := s.client.Compute(ctx, req.Operand1, req.Operand2, req.Op, cred)
	if err != nil {
		return 0, err
	}

	if s.history != nil {
		entry := domain.HistoryEntry{
			Operand1: req.Operand1,
			Op:       req.Op,
			Operand2: req.Operand2,
			Result:   result,
			At:       time.Now(),
		}
		if err := s.history.Append(ctx, entry); err != nil {
			// The answer is still good; history is best effort.
			s.log.Warn("recording history entry", "error", err)
		}
	}
	return result, nil
}

// SetCredential validates the key against the live endpoint and saves it
// only on success, replacing any previous key.
func (s *Service) SetCredential(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: empty API key", domain.ErrInvalidInput)
	}
	if err := s.client.Validate(ctx, key); err != nil {
		return fmt.Errorf("API key validation failed: %w", err)
	}
	return s.creds.Save(key)
}

// CredentialConfigured reports whether a usable key is stored, without
// revealing it.
func (s *Service) CredentialConfigured() (bool, error) {
	_, ok, err := s.creds.Load()
	return ok, err
}

// DeleteCredential removes the stored key; a no-op when absent.
func (s *Service) DeleteCredential() error {
	return s.creds.Delete()
}

// History returns all recorded calculations, oldest first.
func (s *Service) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx)
}

// ClearHistory removes every recorded calculation.
func (s *Service) ClearHistory(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear(ctx)
}
