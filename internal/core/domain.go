package core

import (
	"errors"
	"strings"
)

type (
	// Client is a shop customer, deduplicated by phone number.
	Client struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	// Car belongs to exactly one client and is deduplicated by plate.
	Car struct {
		ID       int64  `json:"id"`
		ClientID int64  `json:"clientId"`
		Plate    string `json:"plate"`
		Model    string `json:"model"`
	}

	// Maintenance is one service performed on a car.
	Maintenance struct {
		ID    int64  `json:"id"`
		CarID int64  `json:"carId"`
		Date  Date   `json:"date"`
		Type  string `json:"type"`
		Notes string `json:"notes,omitempty"`
	}

	// Revenue is income from a priced maintenance visit. ClientID and
	// CarID are copied from the triggering visit at creation time, not
	// derived by join at read time.
	Revenue struct {
		ID       int64  `json:"id"`
		ClientID int64  `json:"clientId"`
		CarID    int64  `json:"carId"`
		Amount   Money  `json:"amount"`
		Date     Date   `json:"date"`
		Desc     string `json:"desc,omitempty"`
	}

	// Expense is an outgoing cost, independent of clients and cars.
	Expense struct {
		ID     int64  `json:"id"`
		Amount Money  `json:"amount"`
		Date   Date   `json:"date"`
		Type   string `json:"type"`
		Notes  string `json:"notes,omitempty"`
	}
)

// EntityID implementations let the store allocate identifiers generically.
func (c Client) EntityID() int64      { return c.ID }
func (c Car) EntityID() int64         { return c.ID }
func (m Maintenance) EntityID() int64 { return m.ID }
func (r Revenue) EntityID() int64     { return r.ID }
func (e Expense) EntityID() int64     { return e.ID }

var (
	ErrEmptyName     = errors.New("empty client name")
	ErrEmptyPhone    = errors.New("empty phone number")
	ErrEmptyPlate    = errors.New("empty plate number")
	ErrEmptyModel    = errors.New("empty car model")
	ErrEmptyType     = errors.New("empty maintenance type")
	ErrEmptyDate     = errors.New("missing date")
	ErrInvalidAmount = errors.New("invalid amount")
)

// ServiceEvent is the raw input for recording one visit: who came, with
// which car, what was done and for how much. A zero price means unpaid
// work and produces no revenue record.
type ServiceEvent struct {
	Name  string
	Phone string
	Plate string
	Model string
	Date  Date
	Type  string
	Notes string
	Price Money
}

// Normalize trims whitespace from all free-text fields.
func (e ServiceEvent) Normalize() ServiceEvent {
	e.Name = strings.TrimSpace(e.Name)
	e.Phone = strings.TrimSpace(e.Phone)
	e.Plate = strings.TrimSpace(e.Plate)
	e.Model = strings.TrimSpace(e.Model)
	e.Type = strings.TrimSpace(e.Type)
	e.Notes = strings.TrimSpace(e.Notes)
	return e
}

func (e ServiceEvent) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.Phone == "" {
		return ErrEmptyPhone
	}
	if e.Plate == "" {
		return ErrEmptyPlate
	}
	if e.Model == "" {
		return ErrEmptyModel
	}
	if e.Type == "" {
		return ErrEmptyType
	}
	if e.Date.IsZero() {
		return ErrEmptyDate
	}
	if e.Price.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ExpenseEntry is the raw input for recording a standalone expense.
type ExpenseEntry struct {
	Amount Money
	Date   Date
	Type   string
	Notes  string
}

func (e ExpenseEntry) Normalize() ExpenseEntry {
	e.Type = strings.TrimSpace(e.Type)
	e.Notes = strings.TrimSpace(e.Notes)
	return e
}

func (e ExpenseEntry) Validate() error {
	if e.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if e.Date.IsZero() {
		return ErrEmptyDate
	}
	return nil
}
