package services

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"bills/internal/core"
	"bills/internal/log"
	"bills/internal/observability"
	"bills/internal/storage"
)

// Notifier is told about paid/unpaid flips, e.g. to show a confirmation.
type Notifier interface {
	PaidStatusChanged(ctx context.Context, b core.Bill)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, b core.Bill)

func (f NotifierFunc) PaidStatusChanged(ctx context.Context, b core.Bill) {
	f(ctx, b)
}

// SeedFunc builds the collection used when no snapshot exists yet.
type SeedFunc func(today core.Date, newID func() string) []core.Bill

// BillService owns the canonical, insertion-ordered bill collection. Every
// mutation writes a full snapshot through the store. It has a single writer
// and is not safe for concurrent use.
type BillService struct {
	store    storage.SnapshotStore
	logger   *log.Logger
	metrics  *observability.Metrics
	notifier Notifier
	newID    func() string
	seed     SeedFunc

	bills   []core.Bill
	version uint64
}

// Option configures a BillService.
type Option func(*BillService)

func WithLogger(logger *log.Logger) Option {
	return func(s *BillService) {
		if logger != nil {
			s.logger = logger.WithComponent(log.ComponentStore)
		}
	}
}

func WithMetrics(m *observability.Metrics) Option {
	return func(s *BillService) { s.metrics = m }
}

func WithNotifier(n Notifier) Option {
	return func(s *BillService) { s.notifier = n }
}

// WithIDGenerator replaces uuid.NewString, mostly for deterministic tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *BillService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithSeed sets the first-run collection; nil starts empty.
func WithSeed(seed SeedFunc) Option {
	return func(s *BillService) { s.seed = seed }
}

func NewBillService(store storage.SnapshotStore, opts ...Option) *BillService {
	s := &BillService{
		store:  store,
		logger: log.Discard().WithComponent(log.ComponentStore),
		newID:  uuid.NewString,
		seed:   DemoBills,
		bills:  []core.Bill{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the collection from the store. A missing snapshot seeds the
// first-run collection and saves it. A failing or malformed snapshot also
// falls back to the seed, without overwriting what is stored; the failure is
// returned as a *core.PersistenceError but the service stays usable.
func (s *BillService) Load(ctx context.Context, today core.Date) error {
	bills, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		s.replace(s.seedFor(today))
		s.logger.InfoContext(ctx, "No saved bills, starting from seed",
			log.FieldCount, len(s.bills))
		s.metrics.IncOperation(log.OpSeed, observability.ResultOK)
		return s.persist(ctx)

	case err != nil:
		s.replace(s.seedFor(today))
		s.metrics.IncPersistenceFailure(log.OpLoad)
		s.metrics.IncOperation(log.OpLoad, observability.ResultError)
		s.logger.ErrorContext(ctx, "Failed to load saved bills, falling back to seed",
			log.FieldError, err,
			log.FieldErrorType, log.ErrorTypePersistence,
			log.FieldCount, len(s.bills))
		return &core.PersistenceError{Op: log.OpLoad, Err: err}
	}

	s.replace(s.sanitize(ctx, bills))
	s.metrics.IncOperation(log.OpLoad, observability.ResultOK)
	s.logger.InfoContext(ctx, "Bills loaded", log.FieldCount, len(s.bills))
	return nil
}

// Add validates draft, appends it under a fresh id and persists. A validation
// failure leaves the collection untouched. A persistence failure still returns
// the created bill: the mutation stands in memory.
func (s *BillService) Add(ctx context.Context, draft core.Draft) (core.Bill, error) {
	if err := draft.Validate(); err != nil {
		s.rejected(ctx, log.OpCreate, "", err)
		return core.Bill{}, err
	}

	b := draft.ToBill(s.newID())
	s.bills = append(s.bills, b)
	s.changed(ctx, log.OpCreate, b)
	return b, s.persist(ctx)
}

// Update replaces every editable field of the bill with id. The patch is held
// to the same rules as Add; the id never changes.
func (s *BillService) Update(ctx context.Context, id string, patch core.Draft) (core.Bill, error) {
	i, err := s.indexOf(id)
	if err != nil {
		s.rejected(ctx, log.OpUpdate, id, err)
		return core.Bill{}, err
	}
	if err := patch.Validate(); err != nil {
		s.rejected(ctx, log.OpUpdate, id, err)
		return core.Bill{}, err
	}

	b := patch.ToBill(id)
	s.bills[i] = b
	s.changed(ctx, log.OpUpdate, b)
	return b, s.persist(ctx)
}

// TogglePaid flips the paid flag of the bill with id.
func (s *BillService) TogglePaid(ctx context.Context, id string) (core.Bill, error) {
	i, err := s.indexOf(id)
	if err != nil {
		s.rejected(ctx, log.OpToggle, id, err)
		return core.Bill{}, err
	}

	s.bills[i].IsPaid = !s.bills[i].IsPaid
	b := s.bills[i]
	s.changed(ctx, log.OpToggle, b)
	if s.notifier != nil {
		s.notifier.PaidStatusChanged(ctx, b)
	}
	return b, s.persist(ctx)
}

// Remove deletes the bill with id. There is no undo.
func (s *BillService) Remove(ctx context.Context, id string) error {
	i, err := s.indexOf(id)
	if err != nil {
		s.rejected(ctx, log.OpDelete, id, err)
		return err
	}

	b := s.bills[i]
	s.bills = slices.Delete(s.bills, i, i+1)
	s.changed(ctx, log.OpDelete, b)
	return s.persist(ctx)
}

// Bills returns a copy of the collection in insertion order.
func (s *BillService) Bills() []core.Bill {
	return slices.Clone(s.bills)
}

// Get returns the bill with id.
func (s *BillService) Get(id string) (core.Bill, error) {
	i, err := s.indexOf(id)
	if err != nil {
		return core.Bill{}, err
	}
	return s.bills[i], nil
}

// Len returns the number of bills held.
func (s *BillService) Len() int {
	return len(s.bills)
}

// Version increases on every change of the collection.
func (s *BillService) Version() uint64 {
	return s.version
}

func (s *BillService) indexOf(id string) (int, error) {
	i := slices.IndexFunc(s.bills, func(b core.Bill) bool { return b.ID == id })
	if i < 0 {
		return -1, &core.NotFoundError{ID: id}
	}
	return i, nil
}

func (s *BillService) seedFor(today core.Date) []core.Bill {
	if s.seed == nil {
		return []core.Bill{}
	}
	return s.seed(today, s.newID)
}

func (s *BillService) replace(bills []core.Bill) {
	s.bills = bills
	s.version++
	s.metrics.SetCollectionSize(len(s.bills))
}

// sanitize normalizes enums of restored bills and gives a fresh id to any
// bill whose id is empty or already taken.
func (s *BillService) sanitize(ctx context.Context, bills []core.Bill) []core.Bill {
	seen := make(map[string]bool, len(bills))
	out := make([]core.Bill, 0, len(bills))
	for _, b := range bills {
		n := b.Normalize()
		if n.Category != b.Category {
			s.logger.WarnContext(ctx, "Saved bill category normalized",
				log.FieldBillID, b.ID,
				log.FieldCategory, string(b.Category),
				"normalized", string(n.Category))
		}
		if n.ID == "" || seen[n.ID] {
			n.ID = s.newID()
			s.logger.WarnContext(ctx, "Saved bill had a missing or duplicate id, reassigned",
				log.FieldBillID, n.ID,
				log.FieldBillName, n.Name)
		}
		seen[n.ID] = true
		out = append(out, n)
	}
	return out
}

func (s *BillService) changed(ctx context.Context, op string, b core.Bill) {
	s.version++
	s.metrics.SetCollectionSize(len(s.bills))
	s.metrics.IncOperation(op, observability.ResultOK)
	fields := log.NewFields().WithBill(b).WithOperation(op)
	s.logger.InfoContext(ctx, "Bill "+op, fields.ToSlice()...)
}

func (s *BillService) rejected(ctx context.Context, op, id string, err error) {
	result, errorType := observability.ResultError, log.ErrorTypeInternal
	switch {
	case core.IsValidation(err):
		result, errorType = observability.ResultInvalid, log.ErrorTypeValidation
	case errors.Is(err, core.ErrNotFound):
		result, errorType = observability.ResultNotFound, log.ErrorTypeNotFound
	}
	s.metrics.IncOperation(op, result)
	s.logger.WarnContext(ctx, "Bill "+op+" rejected",
		log.FieldBillID, id,
		log.FieldError, err,
		log.FieldErrorType, errorType)
}

func (s *BillService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.bills); err != nil {
		s.metrics.IncPersistenceFailure(log.OpSave)
		s.logger.ErrorContext(ctx, "Failed to save bills, change kept in memory only",
			log.FieldError, err,
			log.FieldErrorType, log.ErrorTypePersistence,
			log.FieldCount, len(s.bills))
		return &core.PersistenceError{Op: log.OpSave, Err: err}
	}
	return nil
}
