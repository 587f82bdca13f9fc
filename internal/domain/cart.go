package domain

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrCurrencyMismatch = errors.New("currency mismatch")

// Cart is a customer's in-progress order for one checkout session.
// It is not safe for concurrent use; the owner of the session synchronizes access.
type Cart struct {
	ID uuid.UUID

	Name           string
	StoreID        string
	ChannelID      string
	CustomerID     string
	CustomerName   string
	OrganizationID string
	LanguageCode   string
	Comment        string

	IsAnonymous bool
	TaxIncluded bool
	IsRecurring bool

	VolumetricWeight decimal.Decimal
	Weight           decimal.Decimal
	WeightUnit       string
	MeasureUnit      string
	Height           decimal.Decimal
	Length           decimal.Decimal
	Width            decimal.Decimal

	Coupon *Coupon

	Addresses  []Address
	Items      []LineItem
	Payments   []Payment
	Shipments  []Shipment
	Discounts  []Discount
	TaxDetails []TaxDetail

	currency Currency
	totals   Totals
	errors   []string
}

type Totals struct {
	Total         Money
	SubTotal      Money
	ShippingTotal Money
	HandlingTotal Money
	DiscountTotal Money
	TaxTotal      Money
}

func zeroTotals(unit currency.Unit) Totals {
	return Totals{
		Total:         ZeroMoney(unit),
		SubTotal:      ZeroMoney(unit),
		ShippingTotal: ZeroMoney(unit),
		HandlingTotal: ZeroMoney(unit),
		DiscountTotal: ZeroMoney(unit),
		TaxTotal:      ZeroMoney(unit),
	}
}

func (t Totals) all() []Money {
	return []Money{t.Total, t.SubTotal, t.ShippingTotal, t.HandlingTotal, t.DiscountTotal, t.TaxTotal}
}

func (t Totals) redenominate(unit currency.Unit) Totals {
	return Totals{
		Total:         NewMoney(t.Total.Amount, unit),
		SubTotal:      NewMoney(t.SubTotal.Amount, unit),
		ShippingTotal: NewMoney(t.ShippingTotal.Amount, unit),
		HandlingTotal: NewMoney(t.HandlingTotal.Amount, unit),
		DiscountTotal: NewMoney(t.DiscountTotal.Amount, unit),
		TaxTotal:      NewMoney(t.TaxTotal.Amount, unit),
	}
}

// NewCart creates an empty cart with all totals at zero.
// An unknown currencyCode falls back to DefaultCurrency; the returned resolution reports it.
func NewCart(storeID, customerID, customerName, name, currencyCode string) (*Cart, CurrencyResolution) {
	resolution := ResolveCurrency(currencyCode)

	cart := &Cart{
		ID:           uuid.New(),
		Name:         name,
		StoreID:      storeID,
		CustomerID:   customerID,
		CustomerName: customerName,

		Addresses:  []Address{},
		Items:      []LineItem{},
		Payments:   []Payment{},
		Shipments:  []Shipment{},
		Discounts:  []Discount{},
		TaxDetails: []TaxDetail{},

		currency: resolution.Currency,
		totals:   zeroTotals(resolution.Currency.Unit),
		errors:   []string{},
	}

	return cart, resolution
}

// RestoreCart rebuilds a cart from stored state. Totals must already be in cur.
func RestoreCart(cart Cart, cur Currency, totals Totals, errs []string) (*Cart, error) {
	cart.currency = cur
	cart.totals = zeroTotals(cur.Unit)
	cart.errors = append([]string{}, errs...)

	if err := cart.SetTotals(totals); err != nil {
		return nil, fmt.Errorf("cart.SetTotals: %w", err)
	}

	return &cart, nil
}

func (c *Cart) Currency() Currency {
	return c.currency
}

// SetCurrency switches the working currency and re-denominates every total to it in one step.
// Amounts are kept as they are; repricing is left to the pricing collaborator.
func (c *Cart) SetCurrency(unit currency.Unit) {
	c.currency = NewCurrency(unit)
	c.totals = c.totals.redenominate(unit)
}

func (c *Cart) Totals() Totals {
	return c.totals
}

// SetTotals replaces all totals at once. Every amount must be in the cart's currency.
func (c *Cart) SetTotals(t Totals) error {
	for _, m := range t.all() {
		if !m.SameCurrency(c.currency.Unit) {
			return fmt.Errorf("%w: total in %s, cart in %s", ErrCurrencyMismatch, m.Currency, c.currency.Code())
		}
	}

	c.totals = t
	return nil
}

func (c *Cart) HasPhysicalProducts() bool {
	for _, item := range c.Items {
		if item.IsPhysical() {
			return true
		}
	}
	return false
}

func (c *Cart) ItemsCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// DefaultShippingAddress returns false only when the cart has nothing to ship.
// Otherwise it prefers a shipping address, then any address, then a blank shipping placeholder
// which is not added to Addresses.
func (c *Cart) DefaultShippingAddress() (Address, bool) {
	if !c.HasPhysicalProducts() {
		return Address{}, false
	}

	return c.defaultAddress(AddressTypeShipping), true
}

// DefaultBillingAddress follows the same fallback as DefaultShippingAddress without the
// physical products check, so it always returns an address.
func (c *Cart) DefaultBillingAddress() (Address, bool) {
	return c.defaultAddress(AddressTypeBilling), true
}

// StoredShippingAddress is DefaultShippingAddress without the placeholder.
func (c *Cart) StoredShippingAddress() (Address, bool) {
	if !c.HasPhysicalProducts() {
		return Address{}, false
	}
	return c.storedAddress(AddressTypeShipping)
}

func (c *Cart) StoredBillingAddress() (Address, bool) {
	return c.storedAddress(AddressTypeBilling)
}

func (c *Cart) defaultAddress(t AddressType) Address {
	if address, ok := c.storedAddress(t); ok {
		return address
	}
	return NewBlankAddress(t)
}

func (c *Cart) storedAddress(t AddressType) (Address, bool) {
	for _, address := range c.Addresses {
		if address.Type == t {
			return address, true
		}
	}

	if len(c.Addresses) > 0 {
		return c.Addresses[0], true
	}

	return Address{}, false
}

func (c *Cart) AddError(msg string) {
	c.errors = append(c.errors, msg)
}

func (c *Cart) Errors() []string {
	return append([]string{}, c.errors...)
}

func (c *Cart) HasErrors() bool {
	return len(c.errors) > 0
}

func (c *Cart) ClearErrors() {
	c.errors = []string{}
}

func (c *Cart) AddItem(item LineItem) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	c.Items = append(c.Items, item)
}

func (c *Cart) RemoveItem(id uuid.UUID) bool {
	for i, item := range c.Items {
		if item.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) AddAddress(address Address) {
	c.Addresses = append(c.Addresses, address)
}

func (c *Cart) AddPayment(payment Payment) {
	c.Payments = append(c.Payments, payment)
}

func (c *Cart) AddShipment(shipment Shipment) {
	c.Shipments = append(c.Shipments, shipment)
}

func (c *Cart) AddDiscount(discount Discount) {
	c.Discounts = append(c.Discounts, discount)
}

func (c *Cart) AddTaxDetail(detail TaxDetail) {
	c.TaxDetails = append(c.TaxDetails, detail)
}

func (c *Cart) ApplyCoupon(coupon Coupon) {
	c.Coupon = &coupon
}
