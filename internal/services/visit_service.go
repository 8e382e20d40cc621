// Package services orchestrates one logical operation end to end: mutate
// the store, persist the snapshot, then mirror the written records. The
// local store is the source of truth; mirroring is advisory and its
// outcome only shapes the acknowledgment shown to the user.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"warsha/internal/amqp"
	"warsha/internal/core"
	"warsha/internal/sheets"
	"warsha/internal/storage"
	"warsha/internal/store"
)

// VisitService owns the store and serializes all access to it. The store
// itself is lock-free; this mutex is the one mutual-exclusion point, so
// concurrent HTTP handlers cannot race on the collections or allocate
// duplicate ids.
type VisitService struct {
	mu        sync.RWMutex
	store     *store.Store
	persister storage.Persister
	appender  sheets.Appender // direct mirror, may be nil
	queue     *amqp.Client    // queued mirror, may be nil
}

func NewVisitService(st *store.Store, persister storage.Persister, appender sheets.Appender, queue *amqp.Client) *VisitService {
	return &VisitService{
		store:     st,
		persister: persister,
		appender:  appender,
		queue:     queue,
	}
}

// Read runs fn with the store under a shared lock. Readers derive their
// view inside fn and must not retain the store or its slices beyond it.
func (s *VisitService) Read(fn func(st *store.Store)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.store)
}

// Ack tells the caller what happened beyond the committed local write.
type Ack struct {
	// MirrorQueued is set when records went to the outbound queue instead
	// of being sent inline.
	MirrorQueued bool `json:"mirrorQueued"`
	// MirrorAttempted is set when inline mirroring ran at all.
	MirrorAttempted bool `json:"mirrorAttempted"`
	// MirrorOK is set when every attempted inline mirror write succeeded.
	MirrorOK bool `json:"mirrorOk"`
}

// RecordVisit runs the composite upsert, persists, and mirrors the
// client, car, maintenance and (when priced) revenue records. A
// validation error aborts before any mutation; mirror failures never
// undo the local write.
func (s *VisitService) RecordVisit(ctx context.Context, ev core.ServiceEvent) (store.ServiceResult, Ack, error) {
	s.mu.Lock()
	res, err := s.store.RecordServiceEvent(ev)
	if err != nil {
		s.mu.Unlock()
		return store.ServiceResult{}, Ack{}, err
	}
	s.persist(ctx)
	s.mu.Unlock()

	records := visitRecords(res)
	ack := s.mirror(ctx, records)
	return res, ack, nil
}

// RecordExpense appends a standalone expense, persists, and mirrors it.
func (s *VisitService) RecordExpense(ctx context.Context, entry core.ExpenseEntry) (core.Expense, Ack, error) {
	s.mu.Lock()
	exp, err := s.store.RecordExpense(entry)
	if err != nil {
		s.mu.Unlock()
		return core.Expense{}, Ack{}, err
	}
	s.persist(ctx)
	s.mu.Unlock()

	records := []targetRecord{
		{sheets.TargetExpenses, sheets.ExpenseRecord(exp.Amount, exp.Date, exp.Type, exp.Notes)},
	}
	ack := s.mirror(ctx, records)
	return exp, ack, nil
}

// Restore replaces the store contents from a validated backup and
// persists the result. Nothing is mirrored; a restore is not new data.
func (s *VisitService) Restore(ctx context.Context, restored *store.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.store = *restored
	s.persist(ctx)
}

// SeedDemo loads the demo data set and persists it.
func (s *VisitService) SeedDemo(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Seed(core.Today())
	s.persist(ctx)
}

func (s *VisitService) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	// The in-memory write already committed; a failed save loses
	// durability, not correctness, so it is logged rather than returned.
	if err := s.persister.Save(ctx, s.store); err != nil {
		slog.ErrorContext(ctx, "Failed to persist store", "error", err)
	}
}

type targetRecord struct {
	target string
	record sheets.Record
}

func visitRecords(res store.ServiceResult) []targetRecord {
	records := []targetRecord{
		{sheets.TargetClients, sheets.ClientRecord(res.Client.Name, res.Client.Phone, res.Maintenance.Date)},
		{sheets.TargetCars, sheets.CarRecord(res.Car.Plate, res.Car.Model, res.Client.Name, res.Client.Phone, res.Maintenance.Date)},
		{sheets.TargetMaintenance, sheets.MaintenanceRecord(res.Maintenance.Type, res.Maintenance.Notes, res.Car.Plate, res.Car.Model, res.Client.Name, res.Maintenance.Date)},
	}
	if res.Revenue != nil {
		records = append(records, targetRecord{
			sheets.TargetRevenue,
			sheets.RevenueRecord(res.Revenue.Amount, res.Revenue.Date, res.Revenue.Desc, res.Client.Name, res.Car.Plate, res.Car.Model),
		})
	}
	return records
}

// mirror sends the records for one logical operation. With a queue
// configured they are published and forgotten; otherwise they are sent
// inline as independent concurrent tasks whose results only decide the
// acknowledgment.
func (s *VisitService) mirror(ctx context.Context, records []targetRecord) Ack {
	if s.queue != nil {
		for _, tr := range records {
			if err := s.queue.PublishMirror(ctx, amqp.NewMirrorMessage(tr.target, tr.record)); err != nil {
				slog.ErrorContext(ctx, "Failed to enqueue mirror record",
					"target", tr.target, "error", err)
			}
		}
		return Ack{MirrorQueued: true}
	}

	if s.appender == nil {
		return Ack{}
	}

	ok := make([]bool, len(records))
	var g errgroup.Group
	for i, tr := range records {
		g.Go(func() error {
			if err := s.appender.Append(ctx, tr.target, tr.record); err != nil {
				slog.WarnContext(ctx, "Mirror write failed",
					"target", tr.target, "error", err)
				return nil
			}
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; failures are per-slot

	ack := Ack{MirrorAttempted: true, MirrorOK: true}
	for _, o := range ok {
		if !o {
			ack.MirrorOK = false
		}
	}
	return ack
}

// Close releases the queue connection if one is attached.
func (s *VisitService) Close() error {
	if s.queue != nil {
		if err := s.queue.Close(); err != nil {
			return fmt.Errorf("close queue: %w", err)
		}
	}
	return nil
}
