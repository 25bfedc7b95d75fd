package service

import (
	"context"
	"errors"
	"fmt"

	"create2earn/internal/core/domain"
	"create2earn/internal/core/ports"
	"create2earn/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TaxEntryEvent is the payload of tax registry events.
type TaxEntryEvent struct {
	Identifier   uint32 `json:"identifier"`
	Percentage   uint8  `json:"percentage"`
	Recipient    string `json:"recipient"`
	OldRecipient string `json:"old_recipient,omitempty"`
}

// ExclusionEvent is the payload of FEE_EXCLUSION_CHANGED.
type ExclusionEvent struct {
	Account  string `json:"account"`
	Excluded bool   `json:"excluded"`
}

// RegistryObserver is notified of committed registry changes.
type RegistryObserver interface {
	ObserveRegistryChange(op string, totalPercentage uint)
}

// TaxServiceImpl implements ports.TaxService.
type TaxServiceImpl struct {
	taxRepo       ports.TaxRepository
	exclusionRepo ports.ExclusionRepository
	access        ports.AccessControlService
	transactor    ports.DBTransactor
	events        ports.EventPublisher
	observer      RegistryObserver
	policy        domain.TaxPolicy
	log           zerolog.Logger
}

// NewTaxService creates a new TaxServiceImpl.
func NewTaxService(
	taxRepo ports.TaxRepository,
	exclusionRepo ports.ExclusionRepository,
	access ports.AccessControlService,
	transactor ports.DBTransactor,
	events ports.EventPublisher,
	policy domain.TaxPolicy,
	log zerolog.Logger,
) *TaxServiceImpl {
	if events == nil {
		events = noopPublisher{}
	}
	return &TaxServiceImpl{
		taxRepo:       taxRepo,
		exclusionRepo: exclusionRepo,
		access:        access,
		transactor:    transactor,
		events:        events,
		policy:        policy,
		log:           log,
	}
}

// WithObserver attaches a registry observer (metrics).
func (s *TaxServiceImpl) WithObserver(o RegistryObserver) *TaxServiceImpl {
	s.observer = o
	return s
}

// ---- Fee exclusion ----

// ExcludeFromFee adds account to the fee-exclusion set.
func (s *TaxServiceImpl) ExcludeFromFee(ctx context.Context, caller, account common.Address) error {
	return s.setExcluded(ctx, caller, account, true)
}

// IncludeInFee removes account from the fee-exclusion set.
func (s *TaxServiceImpl) IncludeInFee(ctx context.Context, caller, account common.Address) error {
	return s.setExcluded(ctx, caller, account, false)
}

func (s *TaxServiceImpl) setExcluded(ctx context.Context, caller, account common.Address, excluded bool) error {
	if err := requireRole(ctx, s.access, caller, domain.TokenControlRole); err != nil {
		return err
	}
	if domain.IsZero(account) {
		return apperror.ErrInvalidAddress()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	var changed bool
	if excluded {
		changed, err = s.exclusionRepo.Add(ctx, dbTx, account, caller)
	} else {
		changed, err = s.exclusionRepo.Remove(ctx, dbTx, account)
	}
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update exclusion: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if changed {
		s.log.Info().Str("account", account.Hex()).Bool("excluded", excluded).Msg("fee exclusion changed")
		s.events.Publish(ctx, domain.EventFeeExclusionChanged, ExclusionEvent{Account: account.Hex(), Excluded: excluded})
	}
	return nil
}

// ExcludedFromFee reports whether account is in the exclusion set.
func (s *TaxServiceImpl) ExcludedFromFee(ctx context.Context, account common.Address) (bool, error) {
	excluded, err := s.exclusionRepo.IsExcluded(ctx, account)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check exclusion: %w", err))
	}
	return excluded, nil
}

// ---- Tax registry mutations ----

// AddTaxRecipient appends a new entry at identifier = current count.
func (s *TaxServiceImpl) AddTaxRecipient(ctx context.Context, caller common.Address, percentage uint8, recipient common.Address) (domain.TaxEntry, error) {
	var added domain.TaxEntry
	err := s.mutate(ctx, caller, "add", func(dbTx pgx.Tx, reg *domain.TaxRegistry) error {
		e, err := reg.Add(percentage, recipient)
		if err != nil {
			return err
		}
		if err := s.taxRepo.Insert(ctx, dbTx, e); err != nil {
			return fmt.Errorf("insert tax entry: %w", err)
		}
		added = e
		return nil
	})
	if err != nil {
		return domain.TaxEntry{}, err
	}

	s.log.Info().
		Uint32("identifier", added.Identifier).
		Uint8("percentage", added.Percentage).
		Str("recipient", added.Recipient.Hex()).
		Msg("tax recipient added")
	s.events.Publish(ctx, domain.EventTaxRecipientAdded, TaxEntryEvent{
		Identifier: added.Identifier,
		Percentage: added.Percentage,
		Recipient:  added.Recipient.Hex(),
	})
	return added, nil
}

// RemoveTaxRecipient deletes the entry at identifier if it belongs to
// recipient, then compacts identifiers.
func (s *TaxServiceImpl) RemoveTaxRecipient(ctx context.Context, caller common.Address, identifier uint32, recipient common.Address) error {
	var removal domain.Removal
	err := s.mutate(ctx, caller, "remove", func(dbTx pgx.Tx, reg *domain.TaxRegistry) error {
		r, err := reg.Remove(identifier, recipient)
		if err != nil {
			return err
		}
		if err := s.taxRepo.Delete(ctx, dbTx, r.Removed.Identifier); err != nil {
			return fmt.Errorf("delete tax entry: %w", err)
		}
		for _, mv := range r.Moves {
			if err := s.taxRepo.Renumber(ctx, dbTx, mv.From, mv.To); err != nil {
				return fmt.Errorf("renumber tax entry %d: %w", mv.From, err)
			}
		}
		removal = r
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Uint32("identifier", identifier).
		Str("recipient", recipient.Hex()).
		Int("moved", len(removal.Moves)).
		Msg("tax recipient removed")
	s.events.Publish(ctx, domain.EventTaxRecipientRemoved, TaxEntryEvent{
		Identifier: removal.Removed.Identifier,
		Percentage: removal.Removed.Percentage,
		Recipient:  removal.Removed.Recipient.Hex(),
	})
	return nil
}

// SetNewTaxValue changes the percentage of the entry at identifier.
func (s *TaxServiceImpl) SetNewTaxValue(ctx context.Context, caller common.Address, identifier uint32, recipient common.Address, percentage uint8) (domain.TaxEntry, error) {
	var updated domain.TaxEntry
	err := s.mutate(ctx, caller, "set_value", func(dbTx pgx.Tx, reg *domain.TaxRegistry) error {
		e, err := reg.SetPercentage(identifier, recipient, percentage)
		if err != nil {
			return err
		}
		if err := s.taxRepo.Update(ctx, dbTx, e); err != nil {
			return fmt.Errorf("update tax entry: %w", err)
		}
		updated = e
		return nil
	})
	if err != nil {
		return domain.TaxEntry{}, err
	}

	s.log.Info().Uint32("identifier", identifier).Uint8("percentage", percentage).Msg("tax value changed")
	s.events.Publish(ctx, domain.EventTaxValueChanged, TaxEntryEvent{
		Identifier: updated.Identifier,
		Percentage: updated.Percentage,
		Recipient:  updated.Recipient.Hex(),
	})
	return updated, nil
}

// SetNewRecipient moves the entry at identifier from oldRecipient to newRecipient.
func (s *TaxServiceImpl) SetNewRecipient(ctx context.Context, caller common.Address, identifier uint32, oldRecipient, newRecipient common.Address) (domain.TaxEntry, error) {
	var updated domain.TaxEntry
	err := s.mutate(ctx, caller, "set_recipient", func(dbTx pgx.Tx, reg *domain.TaxRegistry) error {
		e, err := reg.SetRecipient(identifier, oldRecipient, newRecipient)
		if err != nil {
			return err
		}
		if err := s.taxRepo.Update(ctx, dbTx, e); err != nil {
			return fmt.Errorf("update tax entry: %w", err)
		}
		updated = e
		return nil
	})
	if err != nil {
		return domain.TaxEntry{}, err
	}

	s.log.Info().
		Uint32("identifier", identifier).
		Str("old_recipient", oldRecipient.Hex()).
		Str("new_recipient", newRecipient.Hex()).
		Msg("tax recipient changed")
	s.events.Publish(ctx, domain.EventTaxRecipientChanged, TaxEntryEvent{
		Identifier:   updated.Identifier,
		Percentage:   updated.Percentage,
		Recipient:    updated.Recipient.Hex(),
		OldRecipient: oldRecipient.Hex(),
	})
	return updated, nil
}

// mutate runs fn against the locked registry inside one transaction.
// The role check happens before anything is read.
func (s *TaxServiceImpl) mutate(ctx context.Context, caller common.Address, op string, fn func(pgx.Tx, *domain.TaxRegistry) error) error {
	if err := requireRole(ctx, s.access, caller, domain.TokenControlRole); err != nil {
		return err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	entries, err := s.taxRepo.ListForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock tax registry: %w", err))
	}
	reg, err := domain.NewTaxRegistry(entries, s.policy)
	if err != nil {
		return apperror.InternalError(err)
	}

	if err := fn(dbTx, reg); err != nil {
		return s.mapTaxError(err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if s.observer != nil {
		s.observer.ObserveRegistryChange(op, reg.TotalPercentage())
	}
	return nil
}

func (s *TaxServiceImpl) mapTaxError(err error) error {
	switch {
	case errors.Is(err, domain.ErrTaxIdentifierNotFound):
		return apperror.ErrIdentifierNotFound()
	case errors.Is(err, domain.ErrTaxInvalidRecipient):
		return apperror.ErrInvalidRecipient()
	case errors.Is(err, domain.ErrTaxInvalidPercentage):
		return apperror.ErrInvalidPercentage()
	case errors.Is(err, domain.ErrTaxCapExceeded):
		return apperror.ErrTaxCapExceeded(s.policy.MaxTotalPercentage)
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.InternalError(err)
}

// ---- Tax registry views ----

func (s *TaxServiceImpl) load(ctx context.Context) (*domain.TaxRegistry, error) {
	entries, err := s.taxRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list tax entries: %w", err))
	}
	reg, err := domain.NewTaxRegistry(entries, s.policy)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return reg, nil
}

// LastTaxIdentifier returns count-1, or 0 flagged empty.
func (s *TaxServiceImpl) LastTaxIdentifier(ctx context.Context) (ports.LastTaxIdentifier, error) {
	reg, err := s.load(ctx)
	if err != nil {
		return ports.LastTaxIdentifier{}, err
	}
	id, empty := reg.LastIdentifier()
	return ports.LastTaxIdentifier{Identifier: id, Count: reg.Count(), Empty: empty}, nil
}

// Tax returns the entry at identifier.
func (s *TaxServiceImpl) Tax(ctx context.Context, identifier uint32) (domain.TaxEntry, error) {
	reg, err := s.load(ctx)
	if err != nil {
		return domain.TaxEntry{}, err
	}
	e, err := reg.Entry(identifier)
	if err != nil {
		return domain.TaxEntry{}, s.mapTaxError(err)
	}
	return e, nil
}

// Taxes returns every live entry in identifier order.
func (s *TaxServiceImpl) Taxes(ctx context.Context) ([]domain.TaxEntry, error) {
	reg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return reg.Entries(), nil
}
