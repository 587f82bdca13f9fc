package db

import "github.com/shopspring/decimal"

// Documents stored in the jsonb columns of carts. Money is flattened to amount plus ISO code.

type CouponDoc struct {
	Code                string `json:"code"`
	Description         string `json:"description,omitempty"`
	AppliedSuccessfully bool   `json:"appliedSuccessfully"`
	ErrorCode           string `json:"errorCode,omitempty"`
}

type CartDetails struct {
	Payments   []PaymentDoc   `json:"payments"`
	Shipments  []ShipmentDoc  `json:"shipments"`
	Discounts  []DiscountDoc  `json:"discounts"`
	TaxDetails []TaxDetailDoc `json:"taxDetails"`
	Errors     []string       `json:"errors"`
}

type MoneyDoc struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type AddressDoc struct {
	Type         string `json:"type"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Organization string `json:"organization,omitempty"`
	Line1        string `json:"line1,omitempty"`
	Line2        string `json:"line2,omitempty"`
	City         string `json:"city,omitempty"`
	RegionName   string `json:"regionName,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

type PaymentDoc struct {
	ID             string      `json:"id"`
	OuterID        string      `json:"outerId,omitempty"`
	GatewayCode    string      `json:"gatewayCode"`
	Amount         MoneyDoc    `json:"amount"`
	BillingAddress *AddressDoc `json:"billingAddress,omitempty"`
}

type ShipmentDoc struct {
	ID                   string          `json:"id"`
	ShipmentMethodCode   string          `json:"shipmentMethodCode"`
	ShipmentMethodOption string          `json:"shipmentMethodOption,omitempty"`
	Price                MoneyDoc        `json:"price"`
	DiscountAmount       MoneyDoc        `json:"discountAmount"`
	TaxTotal             MoneyDoc        `json:"taxTotal"`
	DeliveryAddress      *AddressDoc     `json:"deliveryAddress,omitempty"`
	WeightUnit           string          `json:"weightUnit,omitempty"`
	Weight               decimal.Decimal `json:"weight"`
	MeasureUnit          string          `json:"measureUnit,omitempty"`
	Height               decimal.Decimal `json:"height"`
	Length               decimal.Decimal `json:"length"`
	Width                decimal.Decimal `json:"width"`
}

type DiscountDoc struct {
	PromotionID string   `json:"promotionId"`
	Coupon      string   `json:"coupon,omitempty"`
	Description string   `json:"description,omitempty"`
	Amount      MoneyDoc `json:"amount"`
}

type TaxDetailDoc struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Amount MoneyDoc        `json:"amount"`
}
