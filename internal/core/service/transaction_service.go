package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lokeshec23/Track-Me/internal/api/metrics"
	"github.com/lokeshec23/Track-Me/internal/core/domain"
	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// TransactionService implements owner-scoped transaction CRUD plus the batch
// sync used by offline clients.
type TransactionService struct {
	repo   ports.TransactionRepository
	guard  ports.SyncGuard
	logger zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, guard ports.SyncGuard, logger zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, guard: guard, logger: logger}
}

func (s *TransactionService) List(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create stamps the owner from the authenticated session; any client-supplied
// owner value never reaches this layer.
func (s *TransactionService) Create(ctx context.Context, ownerID string, draft domain.TransactionDraft) (*domain.Transaction, error) {
	created, err := s.repo.Insert(ctx, newTransaction(ownerID, draft))
	if err != nil {
		return nil, err
	}
	metrics.ResourcesCreatedTotal.WithLabelValues("transaction").Inc()
	return created, nil
}

// Update replaces every editable field of the transaction. Unlike budgets,
// goals and recurring rules, transaction updates are a full replace rather
// than a merge.
func (s *TransactionService) Update(ctx context.Context, ownerID, id string, draft domain.TransactionDraft) (*domain.Transaction, error) {
	if draft.PaymentMode == "" {
		draft.PaymentMode = domain.DefaultPaymentMode
	}
	return s.repo.Replace(ctx, ownerID, id, draft)
}

func (s *TransactionService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.DeleteByOwner(ctx, ownerID, id)
}

// Sync inserts a batch of transactions one at a time; a failed item is
// logged and skipped, already-inserted items are not rolled back. When an
// idempotency key is supplied, a replayed batch returns the previously
// stored transactions instead of inserting again.
func (s *TransactionService) Sync(ctx context.Context, ownerID string, drafts []domain.TransactionDraft, idempotencyKey string) (*ports.SyncResult, error) {
	if idempotencyKey != "" && s.guard != nil {
		seen, err := s.guard.Seen(ctx, ownerID, idempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("sync guard unavailable, proceeding without replay check")
		} else if seen {
			existing, err := s.repo.FindBySyncKey(ctx, ownerID, idempotencyKey)
			if err != nil {
				return nil, err
			}
			ids := make([]string, len(existing))
			for i, t := range existing {
				ids[i] = t.ID
			}
			metrics.TransactionsSyncedTotal.WithLabelValues("replayed").Add(float64(len(ids)))
			return &ports.SyncResult{IDs: ids, Replayed: true}, nil
		}
	}

	ids := make([]string, 0, len(drafts))
	for _, draft := range drafts {
		t := newTransaction(ownerID, draft)
		t.SyncKey = idempotencyKey
		created, err := s.repo.Insert(ctx, t)
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", ownerID).Msg("sync: failed to insert transaction")
			metrics.TransactionsSyncedTotal.WithLabelValues("failed").Inc()
			continue
		}
		ids = append(ids, created.ID)
	}

	if idempotencyKey != "" && s.guard != nil {
		if err := s.guard.Mark(ctx, ownerID, idempotencyKey); err != nil {
			s.logger.Warn().Err(err).Msg("sync guard mark failed")
		}
	}

	metrics.TransactionsSyncedTotal.WithLabelValues("synced").Add(float64(len(ids)))
	return &ports.SyncResult{IDs: ids}, nil
}

func newTransaction(ownerID string, draft domain.TransactionDraft) *domain.Transaction {
	paymentMode := draft.PaymentMode
	if paymentMode == "" {
		paymentMode = domain.DefaultPaymentMode
	}
	return &domain.Transaction{
		UserID:      ownerID,
		Amount:      draft.Amount,
		Description: draft.Description,
		CategoryID:  draft.CategoryID,
		Date:        draft.Date,
		Type:        draft.Type,
		PaymentMode: paymentMode,
	}
}
