package reconcile

import (
	"context"
	"errors"
)

var (
	ErrLoadInFlight = errors.New("a load is already in flight")
	ErrSaveInFlight = errors.New("a save is already in flight")
)

// Session ties the store, the data source client, and the notifier
// into the per-tab editing flow: load populates the store wholesale,
// user events mutate it through the store's operations, and save
// persists a snapshot of it.
//
// Load and save each serialize against themselves through their own
// in-flight flag, never against each other. The flags are reset on
// every path out, success or failure, so the session can never be
// stuck in a loading or saving state.
type Session struct {
	store    *Store
	client   *Client
	notifier Notifier

	loading bool
	saving  bool
}

func NewSession(client *Client, notifier Notifier) *Session {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &Session{
		store:    NewStore(),
		client:   client,
		notifier: notifier,
	}
}

// Store exposes the session's assignment state. All mutation goes
// through its documented operations.
func (s *Session) Store() *Store {
	return s.store
}

func (s *Session) Loading() bool {
	return s.loading
}

func (s *Session) Saving() bool {
	return s.saving
}

// Load fetches a fresh data set and replaces the store's contents.
// Each call is a fresh attempt; an unreachable backend flips the store
// into fallback mode instead of failing, so Load only errors when a
// load is already in flight.
func (s *Session) Load(ctx context.Context) error {
	if s.loading {
		return ErrLoadInFlight
	}

	s.loading = true
	defer func() { s.loading = false }()

	res := s.client.Load(ctx)
	s.store.Replace(res.Skus, res.Warehouses, res.Fallback)

	return nil
}

// Save persists the store's current assignments as one atomic batch.
// On failure the store is left exactly as it was, an error notice is
// emitted, and the error is returned for the caller to surface.
func (s *Session) Save(ctx context.Context) error {
	if s.saving {
		return ErrSaveInFlight
	}

	s.saving = true
	defer func() { s.saving = false }()

	batch := s.store.Assignments()

	if err := s.client.SaveAssignments(ctx, batch, s.store.Fallback()); err != nil {
		s.notifier.Notify("Failed to save assignments. Please try again.", NoticeError)
		return err
	}

	if s.store.Fallback() {
		s.notifier.Notify("Demo: Assignments saved locally!", NoticeSuccess)
	} else {
		s.notifier.Notify("Warehouse assignments saved successfully!", NoticeSuccess)
	}

	return nil
}

// Reset clears every SKU's warehouse set and reports it to the user.
func (s *Session) Reset() {
	s.store.Reset()
	s.notifier.Notify("All selections cleared!", NoticeInfo)
}

// Project derives the current table view from the live store state.
func (s *Session) Project() Projection {
	return Project(s.store.Skus(), s.store.SearchTerm(), s.store.ActiveWarehouseID())
}
