package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID             uuid.UUID
	OuterID        string
	GatewayCode    string
	Amount         Money
	BillingAddress *Address
}

type Shipment struct {
	ID                   uuid.UUID
	ShipmentMethodCode   string
	ShipmentMethodOption string
	Price                Money
	DiscountAmount       Money
	TaxTotal             Money
	DeliveryAddress      *Address

	WeightUnit  string
	Weight      decimal.Decimal
	MeasureUnit string
	Height      decimal.Decimal
	Length      decimal.Decimal
	Width       decimal.Decimal
}

type Discount struct {
	PromotionID string
	Coupon      string
	Description string
	Amount      Money
}

type TaxDetail struct {
	Name   string
	Rate   decimal.Decimal
	Amount Money
}

type Coupon struct {
	Code                string
	Description         string
	AppliedSuccessfully bool
	ErrorCode           string
}
