// Package store owns the persisted transaction and reminder lists. It
// loads each list from a keyed blob on the KV surface, keeps it in memory,
// and overwrites the whole blob after every mutation.
package store

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/dubemjesse/Coinflow/internal/core"
	"github.com/dubemjesse/Coinflow/internal/log"
)

const (
	// TransactionsKey and RemindersKey are the two independent blobs.
	TransactionsKey = "coinflow-transactions"
	RemindersKey    = "coinflow-reminders"

	envelopeVersion = 1
)

// envelope is the versioned wrapper around each persisted list, so future
// structural changes can be detected instead of silently misparsed.
type envelope struct {
	Version int             `json:"version"`
	Records json.RawMessage `json:"records"`
}

// Store is the single owner of the in-memory record lists. Methods are
// safe for concurrent use; every mutation persists before returning unless
// a save debounce is configured.
type Store struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger

	transactions []core.Transaction
	reminders    []core.Reminder
	lastID       int64

	debounce   time.Duration
	dirty      map[string]bool
	flushTimer *time.Timer
}

// Option configures a Store.
type Option func(*Store)

// WithSaveDebounce delays persistence after a mutation by d, coalescing
// bursts of edits into one write. Zero keeps the immediate save.
func WithSaveDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// New loads both blobs. Malformed or missing persisted data is treated as
// "no data": transactions fall back to the seed set, reminders to empty.
// Loading never fails the caller; KV read errors are logged and degrade to
// the same fallback.
func New(ctx context.Context, kv KV, logger *log.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: logger,
		dirty:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.transactions = loadList(ctx, s, TransactionsKey, seedTransactions)
	s.reminders = loadList(ctx, s, RemindersKey, func() []core.Reminder { return nil })

	for _, t := range s.transactions {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return s
}

func loadList[T any](ctx context.Context, s *Store, key string, fallback func() []T) []T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("blob read failed, using fallback", "key", key, "error", err)
		return fallback()
	}
	if !ok {
		return fallback()
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Version == envelopeVersion && len(env.Records) > 0 {
		var records []T
		if err := json.Unmarshal(env.Records, &records); err == nil {
			return records
		}
	}

	// Legacy snapshot: a bare JSON array with no envelope.
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err == nil {
		return records
	}

	s.logger.Warn("blob is not parseable, using fallback", "key", key)
	return fallback()
}

// Transactions returns a copy of the in-memory transaction list in store
// order (most recent insertion first).
func (s *Store) Transactions() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// CreateParams carries the user-supplied fields of a new transaction.
type CreateParams struct {
	Title    string
	Amount   core.Amount
	Category core.Category
	Date     string
	Time     string
}

// AddTransaction validates params, assigns a fresh id and inserts the
// record at the front of the list. On validation failure the store is
// unchanged and nothing is persisted.
func (s *Store) AddTransaction(ctx context.Context, params CreateParams) (core.Transaction, error) {
	tx := core.Transaction{
		Title:    params.Title,
		Amount:   params.Amount,
		Category: params.Category,
		Date:     params.Date,
		Time:     params.Time,
	}
	if tx.Time == "" {
		tx.Time = time.Now().Format(core.TimeLayout)
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID()
	s.transactions = append([]core.Transaction{tx}, s.transactions...)
	s.saveTransactions(ctx)

	s.logger.Info("transaction added", "id", tx.ID, "title", tx.Title, "amount", int64(tx.Amount), "category", tx.Category)
	return tx, nil
}

// UpdateParams carries the replaceable fields of an edit. Nil fields are
// left untouched.
type UpdateParams struct {
	Title    *string
	Amount   *core.Amount
	Category *core.Category
	Date     *string
	Time     *string
}

// UpdateTransaction replaces the matching record's fields. It reports
// found=false (and changes nothing) when the id is unknown; callers must
// check. The merged record is re-validated before the list is touched.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, params UpdateParams) (core.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.transactions {
		if tx.ID != id {
			continue
		}
		updated := tx
		if params.Title != nil {
			updated.Title = *params.Title
		}
		if params.Amount != nil {
			updated.Amount = *params.Amount
		}
		if params.Category != nil {
			updated.Category = *params.Category
		}
		if params.Date != nil {
			updated.Date = *params.Date
		}
		if params.Time != nil {
			updated.Time = *params.Time
		}
		if err := updated.Validate(); err != nil {
			return core.Transaction{}, true, err
		}
		s.transactions[i] = updated
		s.saveTransactions(ctx)
		s.logger.Info("transaction updated", "id", id)
		return updated, true, nil
	}
	return core.Transaction{}, false, nil
}

// RemoveTransaction deletes the matching record; unknown ids are a no-op.
// The snapshot is persisted either way, so a miss still produces an
// idempotent save.
func (s *Store) RemoveTransaction(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	s.transactions = kept
	s.saveTransactions(ctx)
	if found {
		s.logger.Info("transaction removed", "id", id)
	}
	return found
}

// Reminders returns a copy of the reminder list.
func (s *Store) Reminders() []core.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// AddReminder validates and appends a reminder, assigning a fresh id and
// creation timestamp.
func (s *Store) AddReminder(ctx context.Context, r core.Reminder) (core.Reminder, error) {
	if r.Category == "" {
		r.Category = "other"
	}
	if r.Repeat == "" {
		r.Repeat = core.RepeatNone
	}
	if err := r.Validate(); err != nil {
		return core.Reminder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = strconv.FormatInt(s.nextID(), 10)
	r.Completed = false
	r.CreatedAt = time.Now().Format(time.RFC3339)
	s.reminders = append(s.reminders, r)
	s.saveReminders(ctx)

	s.logger.Info("reminder added", "id", r.ID, "title", r.Title)
	return r, nil
}

// UpdateReminder replaces the stored reminder's user-editable fields.
func (s *Store) UpdateReminder(ctx context.Context, id string, r core.Reminder) (core.Reminder, bool, error) {
	if r.Category == "" {
		r.Category = "other"
	}
	if err := r.Validate(); err != nil {
		return core.Reminder{}, true, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.reminders {
		if existing.ID != id {
			continue
		}
		existing.Title = r.Title
		existing.Description = r.Description
		existing.Category = r.Category
		existing.Date = r.Date
		existing.Time = r.Time
		existing.Repeat = r.Repeat
		existing.UpdatedAt = time.Now().Format(time.RFC3339)
		s.reminders[i] = existing
		s.saveReminders(ctx)
		return existing, true, nil
	}
	return core.Reminder{}, false, nil
}

// CompleteReminder marks the reminder done; unknown ids are a no-op.
func (s *Store) CompleteReminder(ctx context.Context, id string) (core.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.reminders {
		if existing.ID != id {
			continue
		}
		existing.Completed = true
		existing.CompletedAt = time.Now().Format(time.RFC3339)
		s.reminders[i] = existing
		s.saveReminders(ctx)
		return existing, true
	}
	return core.Reminder{}, false
}

// RemoveReminder deletes the matching reminder; unknown ids are a no-op,
// and the snapshot is persisted either way.
func (s *Store) RemoveReminder(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.reminders[:0]
	for _, r := range s.reminders {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	s.reminders = kept
	s.saveReminders(ctx)
	return found
}

// Flush forces any debounced saves out immediately. With no debounce
// configured it is a no-op.
func (s *Store) Flush(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flushTimer != nil {
		s.flushTimer.Stop()
		s.flushTimer = nil
	}
	for key := range s.dirty {
		s.persist(ctx, key)
	}
	s.dirty = make(map[string]bool)
}

// nextID is a current-time-based monotonic counter: ids never repeat even
// when two records land in the same millisecond. Callers hold s.mu.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// saveTransactions and saveReminders are called with s.mu held.
func (s *Store) saveTransactions(ctx context.Context) { s.scheduleSave(ctx, TransactionsKey) }
func (s *Store) saveReminders(ctx context.Context)    { s.scheduleSave(ctx, RemindersKey) }

func (s *Store) scheduleSave(ctx context.Context, key string) {
	if s.debounce <= 0 {
		s.persist(ctx, key)
		return
	}
	s.dirty[key] = true
	if s.flushTimer != nil {
		s.flushTimer.Stop()
	}
	s.flushTimer = time.AfterFunc(s.debounce, func() {
		s.Flush(context.Background())
	})
}

func (s *Store) persist(ctx context.Context, key string) {
	var records any
	switch key {
	case TransactionsKey:
		records = s.transactions
	case RemindersKey:
		records = s.reminders
	default:
		return
	}

	raw, err := json.Marshal(records)
	if err != nil {
		s.logger.Error("snapshot marshal failed", "key", key, "error", err)
		return
	}
	payload, err := json.Marshal(envelope{Version: envelopeVersion, Records: raw})
	if err != nil {
		s.logger.Error("envelope marshal failed", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(ctx, key, string(payload)); err != nil {
		s.logger.Error("snapshot write failed", "key", key, "error", err)
	}
}
