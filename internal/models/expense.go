// Package models defines the expense ledger's client-side data model:
// payloads staged for submission, records returned by the service, and the
// enumerations both sides agree on.
package models

import (
	"errors"
	"time"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyINR Currency = "INR"
	CurrencyEUR Currency = "EUR"
)

// Currencies lists the accepted currencies in display order.
var Currencies = []Currency{CurrencyUSD, CurrencyINR, CurrencyEUR}

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyINR, CurrencyEUR:
		return true
	}
	return false
}

type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories lists the accepted categories in display order.
var Categories = []Category{
	CategoryFood, CategoryTransport, CategoryUtilities,
	CategoryShopping, CategoryEntertainment, CategoryOther,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryUtilities,
		CategoryShopping, CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}

var (
	ErrAmountRequired  = errors.New("amount is required and must be positive")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrCategoryMissing = errors.New("category is required")
	ErrInvalidCategory = errors.New("invalid category")
	ErrDateMissing     = errors.New("spent_at date is required")
)

// ExpensePayload is one expense as sent to the create/replace endpoints.
// Description is a pointer so an absent description serializes as null,
// never as an empty string.
type ExpensePayload struct {
	Amount      float64  `json:"amount"`
	Currency    Currency `json:"currency"`
	Category    Category `json:"category"`
	Description *string  `json:"description"`
	SpentAt     Date     `json:"spent_at"`
}

// Validate enforces the create contract client-side: amount, category and
// spent_at are required; description is optional.
func (p ExpensePayload) Validate() error {
	if p.Amount <= 0 {
		return ErrAmountRequired
	}
	if !p.Currency.Valid() {
		return ErrInvalidCurrency
	}
	if p.Category == "" {
		return ErrCategoryMissing
	}
	if !p.Category.Valid() {
		return ErrInvalidCategory
	}
	if p.SpentAt.IsZero() {
		return ErrDateMissing
	}
	return nil
}

// Describe sets the optional description, storing empty input as absent.
func (p *ExpensePayload) Describe(s string) {
	if s == "" {
		p.Description = nil
		return
	}
	p.Description = &s
}

// ExpenseRecord is an expense as the service returns it.
type ExpenseRecord struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Amount      float64   `json:"amount"`
	Currency    Currency  `json:"currency"`
	Category    Category  `json:"category"`
	Description *string   `json:"description"`
	SpentAt     Date      `json:"spent_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseUpdate is a partial payload for PATCH requests. Nil fields are
// omitted and left untouched by the service.
type ExpenseUpdate struct {
	Amount      *float64  `json:"amount,omitempty"`
	Currency    *Currency `json:"currency,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	SpentAt     *Date     `json:"spent_at,omitempty"`
}

// User is the authenticated profile returned by the auth service.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}
