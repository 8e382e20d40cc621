// Package store implements the in-memory entity store: five collections of
// records, the upsert protocol for service visits, period-based filtering
// and the derived summary views. All mutation is synchronous and
// single-writer; the store holds the authoritative state and adapters
// persist or mirror it after the fact.
package store

import (
	"warsha/internal/core"
)

// Store owns the five record collections. Entities are created only
// through RecordServiceEvent and RecordExpense and are never deleted.
type Store struct {
	Clients     []core.Client      `json:"clients"`
	Cars        []core.Car         `json:"cars"`
	Maintenance []core.Maintenance `json:"maintenance"`
	Revenue     []core.Revenue     `json:"revenue"`
	Expenses    []core.Expense     `json:"expenses"`
}

// New returns an empty store with all collections allocated, so the JSON
// snapshot always serializes five arrays rather than nulls.
func New() *Store {
	s := &Store{}
	s.Init()
	return s
}

// Init replaces nil collections with empty ones. Called after decoding a
// snapshot that may omit fields.
func (s *Store) Init() {
	if s.Clients == nil {
		s.Clients = []core.Client{}
	}
	if s.Cars == nil {
		s.Cars = []core.Car{}
	}
	if s.Maintenance == nil {
		s.Maintenance = []core.Maintenance{}
	}
	if s.Revenue == nil {
		s.Revenue = []core.Revenue{}
	}
	if s.Expenses == nil {
		s.Expenses = []core.Expense{}
	}
}

type identified interface {
	EntityID() int64
}

// NextID allocates the next identifier for a collection: one greater than
// the largest id present, 1 when empty. Ids are unique per collection
// only. Callers must insert in the same synchronous step; there is no
// locking against concurrent allocation.
func NextID[T identified](items []T) int64 {
	var max int64
	for _, it := range items {
		if id := it.EntityID(); id > max {
			max = id
		}
	}
	return max + 1
}

// ServiceResult reports what one recorded visit produced. Revenue is nil
// when the visit had no price.
type ServiceResult struct {
	Client      core.Client
	Car         core.Car
	Maintenance core.Maintenance
	Revenue     *core.Revenue
}

// RecordServiceEvent runs the composite upsert for one visit:
//
//  1. upsert the client by phone, the natural key; the name is overwritten
//     only when the new one differs and carries at least two characters
//  2. upsert the car by plate; a differing non-empty model wins, and
//     ownership always re-points to the step-1 client
//  3. append the maintenance record
//  4. append a revenue record iff the price is positive, denormalizing the
//     client and car ids fixed in steps 1-2
//
// Validation happens up front; a failing event leaves the store untouched.
// All four steps complete before any reader can observe the store, but
// durability is the caller's concern.
func (s *Store) RecordServiceEvent(ev core.ServiceEvent) (ServiceResult, error) {
	ev = ev.Normalize()
	if err := ev.Validate(); err != nil {
		return ServiceResult{}, err
	}

	ci := s.findClientByPhone(ev.Phone)
	if ci < 0 {
		s.Clients = append(s.Clients, core.Client{
			ID:    NextID(s.Clients),
			Name:  ev.Name,
			Phone: ev.Phone,
		})
		ci = len(s.Clients) - 1
	} else if s.Clients[ci].Name != ev.Name && len([]rune(ev.Name)) >= 2 {
		// Last write with sufficient confidence wins; too-short names are
		// assumed to be typos and ignored.
		s.Clients[ci].Name = ev.Name
	}
	client := s.Clients[ci]

	ki := s.findCarByPlate(ev.Plate)
	if ki < 0 {
		s.Cars = append(s.Cars, core.Car{
			ID:       NextID(s.Cars),
			ClientID: client.ID,
			Plate:    ev.Plate,
			Model:    ev.Model,
		})
		ki = len(s.Cars) - 1
	} else {
		if ev.Model != "" && s.Cars[ki].Model != ev.Model {
			s.Cars[ki].Model = ev.Model
		}
		// Ownership transfer is always accepted, never rejected.
		if s.Cars[ki].ClientID != client.ID {
			s.Cars[ki].ClientID = client.ID
		}
	}
	car := s.Cars[ki]

	maint := core.Maintenance{
		ID:    NextID(s.Maintenance),
		CarID: car.ID,
		Date:  ev.Date,
		Type:  ev.Type,
		Notes: ev.Notes,
	}
	s.Maintenance = append(s.Maintenance, maint)

	res := ServiceResult{Client: client, Car: car, Maintenance: maint}
	if ev.Price.Cents > 0 {
		rev := core.Revenue{
			ID:       NextID(s.Revenue),
			ClientID: client.ID,
			CarID:    car.ID,
			Amount:   ev.Price,
			Date:     ev.Date,
			Desc:     ev.Notes,
		}
		s.Revenue = append(s.Revenue, rev)
		res.Revenue = &rev
	}
	return res, nil
}

// RecordExpense appends a standalone expense. No client or car linkage.
func (s *Store) RecordExpense(entry core.ExpenseEntry) (core.Expense, error) {
	entry = entry.Normalize()
	if err := entry.Validate(); err != nil {
		return core.Expense{}, err
	}
	exp := core.Expense{
		ID:     NextID(s.Expenses),
		Amount: entry.Amount,
		Date:   entry.Date,
		Type:   entry.Type,
		Notes:  entry.Notes,
	}
	s.Expenses = append(s.Expenses, exp)
	return exp, nil
}

// ClientByID returns the client with the given id, or false.
func (s *Store) ClientByID(id int64) (core.Client, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return core.Client{}, false
}

// CarByID returns the car with the given id, or false.
func (s *Store) CarByID(id int64) (core.Car, bool) {
	for _, c := range s.Cars {
		if c.ID == id {
			return c, true
		}
	}
	return core.Car{}, false
}

// CarsOfClient returns all cars owned by the client.
func (s *Store) CarsOfClient(clientID int64) []core.Car {
	var out []core.Car
	for _, c := range s.Cars {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out
}

// MaintenanceOfCar returns the car's full maintenance history.
func (s *Store) MaintenanceOfCar(carID int64) []core.Maintenance {
	var out []core.Maintenance
	for _, m := range s.Maintenance {
		if m.CarID == carID {
			out = append(out, m)
		}
	}
	return out
}

// RevenueForVisit finds the revenue row recorded for a car on a date, used
// when flattening the client report. There is no stronger link between a
// maintenance row and its revenue than this pair.
func (s *Store) RevenueForVisit(carID int64, date core.Date) (core.Revenue, bool) {
	for _, r := range s.Revenue {
		if r.CarID == carID && r.Date.SameDay(date) {
			return r, true
		}
	}
	return core.Revenue{}, false
}

func (s *Store) findClientByPhone(phone string) int {
	for i, c := range s.Clients {
		if c.Phone == phone {
			return i
		}
	}
	return -1
}

func (s *Store) findCarByPlate(plate string) int {
	for i, c := range s.Cars {
		if c.Plate == plate {
			return i
		}
	}
	return -1
}
