// Package economy implements the case-opening, sell and deposit transactions
// on top of the ledger and inventory store.
package economy

import (
	"context"
	"fmt"
	"sync"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/event"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/lootbox"
	"github.com/kabachok/lootcase/internal/repository"
)

// OpenResult is the outcome of a committed case opening
type OpenResult struct {
	Reward     domain.Item `json:"reward"`
	NewBalance int64       `json:"new_balance"`
	CaseID     int64       `json:"case_id"`
	CaseName   string      `json:"case_name"`
	Price      int64       `json:"price"`
	Message    string      `json:"message"`
}

// SellResult is the outcome of selling one unit of an inventory entry
type SellResult struct {
	Item       domain.Item `json:"item"`
	NewBalance int64       `json:"new_balance"`
	Remaining  int         `json:"remaining"`
	Message    string      `json:"message"`
}

// CaseOdds pairs a case with the draw probability of each of its items
type CaseOdds struct {
	Case *domain.Case   `json:"case"`
	Odds []lootbox.Odds `json:"odds"`
}

// Service defines the interface for economy operations
type Service interface {
	OpenCase(ctx context.Context, userID string, caseID int64) (*OpenResult, error)
	SellEntry(ctx context.Context, userID string, entryID int64) (*SellResult, error)
	Deposit(ctx context.Context, userID string, amount int64) (int64, error)

	ListCases(ctx context.Context) ([]domain.Case, error)
	GetCase(ctx context.Context, caseID int64) (*domain.Case, error)
	GetCaseOdds(ctx context.Context, caseID int64) (*CaseOdds, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)

	Shutdown(ctx context.Context) error
}

// EventPublisher is satisfied by *event.ResilientPublisher
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

type service struct {
	repo      repository.Economy
	catalog   repository.Catalog
	drawer    lootbox.Drawer
	publisher EventPublisher
	wg        sync.WaitGroup
}

// NewService creates a new economy service. catalog is usually a cached view
// of repo; when nil, repo serves catalog reads directly. publisher may be nil.
func NewService(repo repository.Economy, catalog repository.Catalog, drawer lootbox.Drawer, publisher EventPublisher) Service {
	if catalog == nil {
		catalog = repo
	}
	if drawer == nil {
		drawer = lootbox.NewDrawer(nil)
	}
	return &service{
		repo:      repo,
		catalog:   catalog,
		drawer:    drawer,
		publisher: publisher,
	}
}

func (s *service) ListCases(ctx context.Context) ([]domain.Case, error) {
	cases, err := s.catalog.ListActiveCases(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCasesFailed, err)
	}
	return cases, nil
}

// GetCase returns an active case. Inactive cases look missing.
func (s *service) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	c, err := s.catalog.GetCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCaseFailed, err)
	}
	if c == nil || !c.IsActive {
		return nil, fmt.Errorf(ErrMsgCaseUnavailableFmt, caseID, domain.ErrCaseUnavailable)
	}
	return c, nil
}

func (s *service) GetCaseOdds(ctx context.Context, caseID int64) (*CaseOdds, error) {
	c, err := s.catalog.GetCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCaseFailed, err)
	}
	if c, err = resolveOpenable(caseID, c); err != nil {
		return nil, err
	}

	odds, err := s.drawer.Odds(c.Items)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOddsFailed, err)
	}
	return &CaseOdds{Case: c, Odds: odds}, nil
}

// GetProfile returns the committed balance and inventory. Unknown users
// read as an empty profile; nothing is created.
func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetAccountFailed, err)
	}
	inventory, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if inventory == nil {
		inventory = []domain.InventoryEntry{}
	}

	return &domain.Profile{UserID: userID, Balance: account.Balance, Inventory: inventory}, nil
}

// publish hands evt to the publisher off the request path.
// The context is detached so a finished request does not cancel delivery.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.publisher.PublishWithRetry(context.WithoutCancel(ctx), evt)
	}()
}

// Shutdown waits for in-flight event publishing to finish
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgEconomyShuttingDown)
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgShutdownTimedOut, ctx.Err())
	}
}
