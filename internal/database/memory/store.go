// Package memory is an in-process store for local development and tests.
// It honours the same transaction contract as the Postgres store: a user's
// account lock is held from GetOrCreateAccountForUpdate until Commit or
// Rollback, and writes become visible only on Commit.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/kabachok/lootcase/internal/concurrency"
	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/repository"
)

// Errors returned for misuse of a transaction
var (
	ErrAccountNotLocked = errors.New("account not locked in this transaction")
	ErrForeignAccount   = errors.New("transaction holds a different account")
)

type caseRecord struct {
	c       domain.Case
	itemIDs []int64
}

type entryKey struct {
	userID string
	itemID int64
}

// Store implements repository.Economy and repository.CatalogWriter in memory
type Store struct {
	mu    sync.RWMutex
	locks *concurrency.LockManager

	items      map[int64]domain.Item
	itemByName map[string]int64
	cases      map[int64]*caseRecord
	caseByName map[string]int64

	accounts   map[string]int64
	entries    map[int64]domain.InventoryEntry
	entryByKey map[entryKey]int64

	nextItemID  int64
	nextCaseID  int64
	nextEntryID int64
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		locks:      concurrency.NewLockManager(),
		items:      make(map[int64]domain.Item),
		itemByName: make(map[string]int64),
		cases:      make(map[int64]*caseRecord),
		caseByName: make(map[string]int64),
		accounts:   make(map[string]int64),
		entries:    make(map[int64]domain.InventoryEntry),
		entryByKey: make(map[entryKey]int64),
	}
}

var (
	_ repository.Economy       = (*Store)(nil)
	_ repository.CatalogWriter = (*Store)(nil)
)

// ---- Catalog ----

// GetCase returns a copy of the case with its items, or nil if missing
func (s *Store) GetCase(_ context.Context, caseID int64) (*domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cases[caseID]
	if !ok {
		return nil, nil
	}
	c := s.materialize(rec)
	return &c, nil
}

// ListActiveCases returns active cases ordered by id
func (s *Store) ListActiveCases(_ context.Context) ([]domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Case{}
	for _, rec := range s.cases {
		if rec.c.IsActive {
			out = append(out, s.materialize(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetItem returns the item or nil if missing
func (s *Store) GetItem(_ context.Context, itemID int64) (*domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// materialize must be called with s.mu held
func (s *Store) materialize(rec *caseRecord) domain.Case {
	c := rec.c
	c.Items = make([]domain.Item, 0, len(rec.itemIDs))
	for _, id := range rec.itemIDs {
		if item, ok := s.items[id]; ok {
			c.Items = append(c.Items, item)
		}
	}
	return c
}

// UpsertItem inserts or updates an item by name
func (s *Store) UpsertItem(_ context.Context, item domain.Item) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.itemByName[item.Name]
	if !ok {
		s.nextItemID++
		id = s.nextItemID
		s.itemByName[item.Name] = id
	}
	item.ID = id
	s.items[id] = item
	return id, nil
}

// UpsertCase inserts or updates a case by name, keeping its current items
func (s *Store) UpsertCase(_ context.Context, c domain.Case) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.Items = nil
	if id, ok := s.caseByName[c.Name]; ok {
		c.ID = id
		s.cases[id].c = c
		return id, nil
	}

	s.nextCaseID++
	c.ID = s.nextCaseID
	s.caseByName[c.Name] = c.ID
	s.cases[c.ID] = &caseRecord{c: c}
	return c.ID, nil
}

// SetCaseItems replaces a case's item membership
func (s *Store) SetCaseItems(_ context.Context, caseID int64, itemIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.cases[caseID]
	if !ok {
		return domain.ErrCaseUnavailable
	}

	seen := make(map[int64]bool, len(itemIDs))
	ids := make([]int64, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, exists := s.items[id]; !exists || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	rec.itemIDs = ids
	return nil
}

// ---- Ledger and inventory reads ----

// GetAccount returns the committed balance; unknown users read as zero
func (s *Store) GetAccount(_ context.Context, userID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &domain.Account{UserID: userID, Balance: s.accounts[userID]}, nil
}

// GetInventory returns the user's committed stacks ordered by entry id
func (s *Store) GetInventory(_ context.Context, userID string) ([]domain.InventoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.InventoryEntry{}
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if item, ok := s.items[e.ItemID]; ok {
			e.Item = &item
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// BeginTx starts a transaction. No lock is taken until the account is.
func (s *Store) BeginTx(_ context.Context) (repository.EconomyTx, error) {
	return &storeTx{s: s, touched: make(map[int64]*domain.InventoryEntry)}, nil
}

// ---- Transaction ----

type storeTx struct {
	s      *Store
	userID string
	unlock func()
	closed bool

	balance int64
	// touched holds working copies; a nil value marks a deleted entry
	touched map[int64]*domain.InventoryEntry
}

func (t *storeTx) check(userID string) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	if t.unlock == nil {
		return ErrAccountNotLocked
	}
	if userID != t.userID {
		return ErrForeignAccount
	}
	return nil
}

// GetOrCreateAccountForUpdate blocks until the user's lock is free
func (t *storeTx) GetOrCreateAccountForUpdate(_ context.Context, userID string) (*domain.Account, error) {
	if t.closed {
		return nil, repository.ErrTxClosed
	}
	if t.unlock != nil {
		if userID != t.userID {
			return nil, ErrForeignAccount
		}
		return &domain.Account{UserID: userID, Balance: t.balance}, nil
	}

	t.unlock = t.s.locks.Lock(userID)
	t.userID = userID

	t.s.mu.RLock()
	t.balance = t.s.accounts[userID]
	t.s.mu.RUnlock()

	return &domain.Account{UserID: userID, Balance: t.balance}, nil
}

func (t *storeTx) DebitBalance(_ context.Context, userID string, amount int64) (int64, error) {
	if err := t.check(userID); err != nil {
		return 0, err
	}
	if t.balance < amount {
		return 0, domain.ErrInsufficientFunds
	}
	t.balance -= amount
	return t.balance, nil
}

func (t *storeTx) CreditBalance(_ context.Context, userID string, amount int64) (int64, error) {
	if err := t.check(userID); err != nil {
		return 0, err
	}
	t.balance += amount
	return t.balance, nil
}

// lookup returns the tx view of an entry, or nil when absent or deleted
func (t *storeTx) lookup(entryID int64) *domain.InventoryEntry {
	if e, ok := t.touched[entryID]; ok {
		return e
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	e, ok := t.s.entries[entryID]
	if !ok {
		return nil
	}
	return &e
}

func (t *storeTx) AddInventory(_ context.Context, userID string, itemID int64) (*domain.InventoryEntry, error) {
	if err := t.check(userID); err != nil {
		return nil, err
	}

	for id, e := range t.touched {
		if e != nil && e.ItemID == itemID {
			e.Quantity++
			out := *e
			out.ID = id
			return &out, nil
		}
	}

	t.s.mu.Lock()
	id, exists := t.s.entryByKey[entryKey{userID, itemID}]
	if !exists {
		t.s.nextEntryID++
		id = t.s.nextEntryID
	}
	t.s.mu.Unlock()

	e := t.lookup(id)
	if e == nil {
		e = &domain.InventoryEntry{ID: id, UserID: userID, ItemID: itemID}
	}
	e.Quantity++
	t.touched[id] = e

	out := *e
	return &out, nil
}

func (t *storeTx) GetInventoryEntryForUpdate(_ context.Context, userID string, entryID int64) (*domain.InventoryEntry, error) {
	if err := t.check(userID); err != nil {
		return nil, err
	}

	e := t.lookup(entryID)
	if e == nil || e.UserID != userID {
		return nil, nil
	}

	out := *e
	t.s.mu.RLock()
	if item, ok := t.s.items[e.ItemID]; ok {
		out.Item = &item
	}
	t.s.mu.RUnlock()
	return &out, nil
}

func (t *storeTx) RemoveOneFromEntry(_ context.Context, entryID int64) (int, error) {
	if err := t.check(t.userID); err != nil {
		return 0, err
	}

	e := t.lookup(entryID)
	if e == nil || e.UserID != t.userID {
		return 0, domain.ErrNotFound
	}

	e.Quantity--
	if e.Quantity <= 0 {
		t.touched[entryID] = nil
		return 0, nil
	}
	t.touched[entryID] = e
	return e.Quantity, nil
}

// Commit publishes the buffered writes and releases the account lock
func (t *storeTx) Commit(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	if t.unlock == nil {
		return nil
	}
	defer t.unlock()

	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	t.s.accounts[t.userID] = t.balance
	for id, e := range t.touched {
		if e == nil {
			if old, ok := t.s.entries[id]; ok {
				delete(t.s.entryByKey, entryKey{old.UserID, old.ItemID})
				delete(t.s.entries, id)
			}
			continue
		}
		stored := *e
		stored.Item = nil
		t.s.entries[id] = stored
		t.s.entryByKey[entryKey{stored.UserID, stored.ItemID}] = id
	}
	return nil
}

// Rollback discards the buffered writes and releases the account lock
func (t *storeTx) Rollback(_ context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	if t.unlock != nil {
		t.unlock()
	}
	return nil
}
