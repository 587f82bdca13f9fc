package domain

import (
	"github.com/google/uuid"
	"strings"
	"time"
)

const ProductTypePhysical = "Physical"

type LineItem struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	SKU         string
	Name        string
	ProductType string
	Quantity    int
	IsGift      bool

	ListPrice     Money
	SalePrice     Money
	ExtendedPrice Money

	CreatedAt time.Time
}

func (i LineItem) IsPhysical() bool {
	return strings.EqualFold(i.ProductType, ProductTypePhysical)
}
