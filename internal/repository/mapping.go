package repository

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-cart/internal/db"
	"github.com/nikolayk812/checkout-cart/internal/domain"
	"golang.org/x/text/currency"
	"math"
	"time"
)

func mapCartToUpsertParams(cart *domain.Cart) db.UpsertCartParams {
	totals := cart.Totals()

	return db.UpsertCartParams{
		ID:               cart.ID,
		Name:             cart.Name,
		StoreID:          cart.StoreID,
		ChannelID:        cart.ChannelID,
		CustomerID:       cart.CustomerID,
		CustomerName:     cart.CustomerName,
		OrganizationID:   cart.OrganizationID,
		LanguageCode:     cart.LanguageCode,
		Comment:          cart.Comment,
		IsAnonymous:      cart.IsAnonymous,
		TaxIncluded:      cart.TaxIncluded,
		IsRecurring:      cart.IsRecurring,
		VolumetricWeight: cart.VolumetricWeight,
		Weight:           cart.Weight,
		WeightUnit:       cart.WeightUnit,
		MeasureUnit:      cart.MeasureUnit,
		Height:           cart.Height,
		Length:           cart.Length,
		Width:            cart.Width,
		Currency:         cart.Currency().Code(),
		Total:            totals.Total.Amount,
		SubTotal:         totals.SubTotal.Amount,
		ShippingTotal:    totals.ShippingTotal.Amount,
		HandlingTotal:    totals.HandlingTotal.Amount,
		DiscountTotal:    totals.DiscountTotal.Amount,
		TaxTotal:         totals.TaxTotal.Amount,
		Coupon:           mapCouponToDoc(cart.Coupon),
		Details:          mapDetailsToDoc(cart),
	}
}

// mapLineItemsToParams assigns an ID to every item that has none, writing it back to the cart,
// so items appended to Items directly get stable ids across saves.
func mapLineItemsToParams(cart *domain.Cart) ([]db.AddCartLineItemParams, error) {
	params := make([]db.AddCartLineItemParams, 0, len(cart.Items))

	for i := range cart.Items {
		if cart.Items[i].ID == uuid.Nil {
			cart.Items[i].ID = uuid.New()
		}

		p, err := mapLineItemToParams(cart.ID, i, cart.Items[i])
		if err != nil {
			return nil, fmt.Errorf("mapLineItemToParams[%d]: %w", i, err)
		}
		params = append(params, p)
	}

	return params, nil
}

func mapLineItemToParams(cartID uuid.UUID, position int, item domain.LineItem) (db.AddCartLineItemParams, error) {
	if item.Quantity < math.MinInt32 || item.Quantity > math.MaxInt32 {
		return db.AddCartLineItemParams{}, fmt.Errorf("quantity[%d] is out of range", item.Quantity)
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return db.AddCartLineItemParams{
		CartID:                cartID,
		Position:              int32(position),
		ID:                    item.ID,
		ProductID:             item.ProductID,
		Sku:                   item.SKU,
		Name:                  item.Name,
		ProductType:           item.ProductType,
		Quantity:              int32(item.Quantity),
		IsGift:                item.IsGift,
		ListPrice:             item.ListPrice.Amount,
		ListPriceCurrency:     item.ListPrice.Currency.String(),
		SalePrice:             item.SalePrice.Amount,
		SalePriceCurrency:     item.SalePrice.Currency.String(),
		ExtendedPrice:         item.ExtendedPrice.Amount,
		ExtendedPriceCurrency: item.ExtendedPrice.Currency.String(),
		CreatedAt:             createdAt,
	}, nil
}

func mapAddressToParams(cartID uuid.UUID, position int, a domain.Address) db.AddCartAddressParams {
	return db.AddCartAddressParams{
		CartID:       cartID,
		Position:     int32(position),
		Type:         addressTypeToDB(a.Type),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Organization: a.Organization,
		Line1:        a.Line1,
		Line2:        a.Line2,
		City:         a.City,
		RegionName:   a.RegionName,
		PostalCode:   a.PostalCode,
		CountryCode:  a.CountryCode,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}

func mapCouponToDoc(c *domain.Coupon) *db.CouponDoc {
	if c == nil {
		return nil
	}

	return &db.CouponDoc{
		Code:                c.Code,
		Description:         c.Description,
		AppliedSuccessfully: c.AppliedSuccessfully,
		ErrorCode:           c.ErrorCode,
	}
}

func mapDetailsToDoc(cart *domain.Cart) db.CartDetails {
	details := db.CartDetails{
		Payments:   make([]db.PaymentDoc, 0, len(cart.Payments)),
		Shipments:  make([]db.ShipmentDoc, 0, len(cart.Shipments)),
		Discounts:  make([]db.DiscountDoc, 0, len(cart.Discounts)),
		TaxDetails: make([]db.TaxDetailDoc, 0, len(cart.TaxDetails)),
		Errors:     cart.Errors(),
	}

	for _, p := range cart.Payments {
		details.Payments = append(details.Payments, db.PaymentDoc{
			ID:             p.ID.String(),
			OuterID:        p.OuterID,
			GatewayCode:    p.GatewayCode,
			Amount:         mapMoneyToDoc(p.Amount),
			BillingAddress: mapAddressPtrToDoc(p.BillingAddress),
		})
	}

	for _, s := range cart.Shipments {
		details.Shipments = append(details.Shipments, db.ShipmentDoc{
			ID:                   s.ID.String(),
			ShipmentMethodCode:   s.ShipmentMethodCode,
			ShipmentMethodOption: s.ShipmentMethodOption,
			Price:                mapMoneyToDoc(s.Price),
			DiscountAmount:       mapMoneyToDoc(s.DiscountAmount),
			TaxTotal:             mapMoneyToDoc(s.TaxTotal),
			DeliveryAddress:      mapAddressPtrToDoc(s.DeliveryAddress),
			WeightUnit:           s.WeightUnit,
			Weight:               s.Weight,
			MeasureUnit:          s.MeasureUnit,
			Height:               s.Height,
			Length:               s.Length,
			Width:                s.Width,
		})
	}

	for _, d := range cart.Discounts {
		details.Discounts = append(details.Discounts, db.DiscountDoc{
			PromotionID: d.PromotionID,
			Coupon:      d.Coupon,
			Description: d.Description,
			Amount:      mapMoneyToDoc(d.Amount),
		})
	}

	for _, t := range cart.TaxDetails {
		details.TaxDetails = append(details.TaxDetails, db.TaxDetailDoc{
			Name:   t.Name,
			Rate:   t.Rate,
			Amount: mapMoneyToDoc(t.Amount),
		})
	}

	return details
}

func mapMoneyToDoc(m domain.Money) db.MoneyDoc {
	return db.MoneyDoc{Amount: m.Amount, Currency: m.Currency.String()}
}

func mapAddressPtrToDoc(a *domain.Address) *db.AddressDoc {
	if a == nil {
		return nil
	}

	return &db.AddressDoc{
		Type:         addressTypeToDB(a.Type),
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Organization: a.Organization,
		Line1:        a.Line1,
		Line2:        a.Line2,
		City:         a.City,
		RegionName:   a.RegionName,
		PostalCode:   a.PostalCode,
		CountryCode:  a.CountryCode,
		Phone:        a.Phone,
		Email:        a.Email,
	}
}

func mapCartToDomain(row db.Cart, itemRows []db.ListCartLineItemsRow, addressRows []db.ListCartAddressesRow) (*domain.Cart, error) {
	unit, err := parseCurrency(row.Currency)
	if err != nil {
		return nil, err
	}

	items, err := mapLineItemRowsToDomain(itemRows)
	if err != nil {
		return nil, fmt.Errorf("mapLineItemRowsToDomain: %w", err)
	}

	addresses, err := mapAddressRowsToDomain(addressRows)
	if err != nil {
		return nil, fmt.Errorf("mapAddressRowsToDomain: %w", err)
	}

	payments, shipments, discounts, taxDetails, err := mapDetailsToDomain(row.Details)
	if err != nil {
		return nil, fmt.Errorf("mapDetailsToDomain: %w", err)
	}

	cart := domain.Cart{
		ID:               row.ID,
		Name:             row.Name,
		StoreID:          row.StoreID,
		ChannelID:        row.ChannelID,
		CustomerID:       row.CustomerID,
		CustomerName:     row.CustomerName,
		OrganizationID:   row.OrganizationID,
		LanguageCode:     row.LanguageCode,
		Comment:          row.Comment,
		IsAnonymous:      row.IsAnonymous,
		TaxIncluded:      row.TaxIncluded,
		IsRecurring:      row.IsRecurring,
		VolumetricWeight: row.VolumetricWeight,
		Weight:           row.Weight,
		WeightUnit:       row.WeightUnit,
		MeasureUnit:      row.MeasureUnit,
		Height:           row.Height,
		Length:           row.Length,
		Width:            row.Width,
		Coupon:           mapCouponToDomain(row.Coupon),
		Addresses:        addresses,
		Items:            items,
		Payments:         payments,
		Shipments:        shipments,
		Discounts:        discounts,
		TaxDetails:       taxDetails,
	}

	totals := domain.Totals{
		Total:         domain.NewMoney(row.Total, unit),
		SubTotal:      domain.NewMoney(row.SubTotal, unit),
		ShippingTotal: domain.NewMoney(row.ShippingTotal, unit),
		HandlingTotal: domain.NewMoney(row.HandlingTotal, unit),
		DiscountTotal: domain.NewMoney(row.DiscountTotal, unit),
		TaxTotal:      domain.NewMoney(row.TaxTotal, unit),
	}

	return domain.RestoreCart(cart, domain.NewCurrency(unit), totals, row.Details.Errors)
}

func mapLineItemRowsToDomain(rows []db.ListCartLineItemsRow) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(rows))

	for _, row := range rows {
		listPrice, err := mapMoneyDocToDomain(db.MoneyDoc{Amount: row.ListPrice, Currency: row.ListPriceCurrency})
		if err != nil {
			return nil, err
		}
		salePrice, err := mapMoneyDocToDomain(db.MoneyDoc{Amount: row.SalePrice, Currency: row.SalePriceCurrency})
		if err != nil {
			return nil, err
		}
		extendedPrice, err := mapMoneyDocToDomain(db.MoneyDoc{Amount: row.ExtendedPrice, Currency: row.ExtendedPriceCurrency})
		if err != nil {
			return nil, err
		}

		items = append(items, domain.LineItem{
			ID:            row.ID,
			ProductID:     row.ProductID,
			SKU:           row.Sku,
			Name:          row.Name,
			ProductType:   row.ProductType,
			Quantity:      int(row.Quantity),
			IsGift:        row.IsGift,
			ListPrice:     listPrice,
			SalePrice:     salePrice,
			ExtendedPrice: extendedPrice,
			CreatedAt:     row.CreatedAt,
		})
	}

	return items, nil
}

func mapAddressRowsToDomain(rows []db.ListCartAddressesRow) ([]domain.Address, error) {
	addresses := make([]domain.Address, 0, len(rows))

	for _, row := range rows {
		address, err := mapAddressDocToDomain(db.AddressDoc(row))
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}

func mapAddressDocToDomain(doc db.AddressDoc) (domain.Address, error) {
	t, err := addressTypeFromDB(doc.Type)
	if err != nil {
		return domain.Address{}, err
	}

	return domain.Address{
		Type:         t,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Organization: doc.Organization,
		Line1:        doc.Line1,
		Line2:        doc.Line2,
		City:         doc.City,
		RegionName:   doc.RegionName,
		PostalCode:   doc.PostalCode,
		CountryCode:  doc.CountryCode,
		Phone:        doc.Phone,
		Email:        doc.Email,
	}, nil
}

func mapAddressPtrDocToDomain(doc *db.AddressDoc) (*domain.Address, error) {
	if doc == nil {
		return nil, nil
	}

	address, err := mapAddressDocToDomain(*doc)
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func mapCouponToDomain(doc *db.CouponDoc) *domain.Coupon {
	if doc == nil {
		return nil
	}

	return &domain.Coupon{
		Code:                doc.Code,
		Description:         doc.Description,
		AppliedSuccessfully: doc.AppliedSuccessfully,
		ErrorCode:           doc.ErrorCode,
	}
}

func mapDetailsToDomain(doc db.CartDetails) ([]domain.Payment, []domain.Shipment, []domain.Discount, []domain.TaxDetail, error) {
	payments := make([]domain.Payment, 0, len(doc.Payments))
	for _, p := range doc.Payments {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("payment id[%s] is not valid: %w", p.ID, err)
		}
		amount, err := mapMoneyDocToDomain(p.Amount)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		billing, err := mapAddressPtrDocToDomain(p.BillingAddress)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		payments = append(payments, domain.Payment{
			ID:             id,
			OuterID:        p.OuterID,
			GatewayCode:    p.GatewayCode,
			Amount:         amount,
			BillingAddress: billing,
		})
	}

	shipments := make([]domain.Shipment, 0, len(doc.Shipments))
	for _, s := range doc.Shipments {
		shipment, err := mapShipmentDocToDomain(s)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		shipments = append(shipments, shipment)
	}

	discounts := make([]domain.Discount, 0, len(doc.Discounts))
	for _, d := range doc.Discounts {
		amount, err := mapMoneyDocToDomain(d.Amount)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		discounts = append(discounts, domain.Discount{
			PromotionID: d.PromotionID,
			Coupon:      d.Coupon,
			Description: d.Description,
			Amount:      amount,
		})
	}

	taxDetails := make([]domain.TaxDetail, 0, len(doc.TaxDetails))
	for _, t := range doc.TaxDetails {
		amount, err := mapMoneyDocToDomain(t.Amount)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		taxDetails = append(taxDetails, domain.TaxDetail{
			Name:   t.Name,
			Rate:   t.Rate,
			Amount: amount,
		})
	}

	return payments, shipments, discounts, taxDetails, nil
}

func mapShipmentDocToDomain(doc db.ShipmentDoc) (domain.Shipment, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("shipment id[%s] is not valid: %w", doc.ID, err)
	}

	price, err := mapMoneyDocToDomain(doc.Price)
	if err != nil {
		return domain.Shipment{}, err
	}
	discount, err := mapMoneyDocToDomain(doc.DiscountAmount)
	if err != nil {
		return domain.Shipment{}, err
	}
	tax, err := mapMoneyDocToDomain(doc.TaxTotal)
	if err != nil {
		return domain.Shipment{}, err
	}
	delivery, err := mapAddressPtrDocToDomain(doc.DeliveryAddress)
	if err != nil {
		return domain.Shipment{}, err
	}

	return domain.Shipment{
		ID:                   id,
		ShipmentMethodCode:   doc.ShipmentMethodCode,
		ShipmentMethodOption: doc.ShipmentMethodOption,
		Price:                price,
		DiscountAmount:       discount,
		TaxTotal:             tax,
		DeliveryAddress:      delivery,
		WeightUnit:           doc.WeightUnit,
		Weight:               doc.Weight,
		MeasureUnit:          doc.MeasureUnit,
		Height:               doc.Height,
		Length:               doc.Length,
		Width:                doc.Width,
	}, nil
}

func mapMoneyDocToDomain(doc db.MoneyDoc) (domain.Money, error) {
	unit, err := parseCurrency(doc.Currency)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoney(doc.Amount, unit), nil
}

// Stored currencies are not resolved with a fallback: a bad code in the database is corruption.
func parseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}
	return unit, nil
}

func addressTypeToDB(t domain.AddressType) string {
	if t == 0 {
		return ""
	}
	return t.String()
}

func addressTypeFromDB(s string) (domain.AddressType, error) {
	if s == "" {
		return 0, nil
	}
	return domain.ParseAddressType(s)
}
