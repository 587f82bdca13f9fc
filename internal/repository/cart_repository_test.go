package repository_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-cart/internal/domain"
	"github.com/nikolayk812/checkout-cart/internal/port"
	"github.com/nikolayk812/checkout-cart/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

type cartRepositorySuite struct {
	suite.Suite

	repo      port.CartRepository
	pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *cartRepositorySuite) TestSaveCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		cart      func() *domain.Cart
		wantError string
	}{
		{
			name: "save empty cart: ok",
			cart: func() *domain.Cart {
				cart, _ := domain.NewCart(gofakeit.Word(), gofakeit.UUID(), gofakeit.Name(), gofakeit.Word(), "EUR")
				return cart
			},
		},
		{
			name: "save full cart: ok",
			cart: randomFullCart,
		},
		{
			name: "save nil cart: error",
			cart: func() *domain.Cart {
				return nil
			},
			wantError: "cart is nil",
		},
		{
			name: "save cart without id: error",
			cart: func() *domain.Cart {
				cart, _ := domain.NewCart(gofakeit.Word(), gofakeit.UUID(), gofakeit.Name(), gofakeit.Word(), "EUR")
				cart.ID = uuid.Nil
				return cart
			},
			wantError: "cartID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart := tt.cart()

			err := suite.repo.SaveCart(ctx, cart)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			actual, err := suite.repo.GetCart(ctx, cart.ID)
			require.NoError(t, err)

			assertCart(t, cart, actual)
		})
	}
}

func (suite *cartRepositorySuite) TestSaveCart_ReplacesChildren() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	cart := randomFullCart()
	require.NoError(t, suite.repo.SaveCart(ctx, cart))

	removed := cart.Items[0]
	require.True(t, cart.RemoveItem(removed.ID))
	cart.Addresses = cart.Addresses[:1]
	cart.AddError("price changed")
	cart.SetCurrency(currency.GBP)
	require.NoError(t, suite.repo.SaveCart(ctx, cart))

	actual, err := suite.repo.GetCart(ctx, cart.ID)
	require.NoError(t, err)

	assertCart(t, cart, actual)
	assert.Equal(t, "GBP", actual.Currency().Code())
}

func (suite *cartRepositorySuite) TestSaveCart_ItemsWithoutID() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	cart, _ := domain.NewCart(gofakeit.Word(), gofakeit.UUID(), gofakeit.Name(), gofakeit.Word(), "EUR")

	for range 2 {
		item := randomLineItem("Physical", 1, currency.EUR)
		item.ID = uuid.Nil
		cart.Items = append(cart.Items, item)
	}

	require.NoError(t, suite.repo.SaveCart(ctx, cart))

	require.Len(t, cart.Items, 2)
	assert.NotEqual(t, uuid.Nil, cart.Items[0].ID)
	assert.NotEqual(t, uuid.Nil, cart.Items[1].ID)
	assert.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)

	actual, err := suite.repo.GetCart(ctx, cart.ID)
	require.NoError(t, err)

	assertCart(t, cart, actual)

	// ids are stable across saves
	require.NoError(t, suite.repo.SaveCart(ctx, actual))

	again, err := suite.repo.GetCart(ctx, cart.ID)
	require.NoError(t, err)

	assertCart(t, cart, again)
}

func (suite *cartRepositorySuite) TestSaveCart_AmountPrecision() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	cart, _ := domain.NewCart(gofakeit.Word(), gofakeit.UUID(), gofakeit.Name(), gofakeit.Word(), "EUR")
	cart.Weight = decimal.RequireFromString("0.123456789")

	item := randomLineItem("Digital", 3, currency.EUR)
	item.ListPrice = domain.NewMoney(decimal.RequireFromString("12.345678"), currency.EUR)
	item.ExtendedPrice = domain.NewMoney(decimal.RequireFromString("37.037034"), currency.EUR)
	cart.AddItem(item)

	totals := cart.Totals()
	totals.Total = domain.NewMoney(decimal.RequireFromString("37.037034"), currency.EUR)
	require.NoError(t, cart.SetTotals(totals))

	require.NoError(t, suite.repo.SaveCart(ctx, cart))

	actual, err := suite.repo.GetCart(ctx, cart.ID)
	require.NoError(t, err)

	assertCart(t, cart, actual)
	assert.Equal(t, "12.345678", actual.Items[0].ListPrice.Amount.String())
	assert.Equal(t, "0.123456789", actual.Weight.String())
	assert.Equal(t, "37.037034", actual.Totals().Total.Amount.String())
}

func (suite *cartRepositorySuite) TestSaveCart_QuantityOutOfRange() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	cart, _ := domain.NewCart(gofakeit.Word(), gofakeit.UUID(), gofakeit.Name(), gofakeit.Word(), "EUR")
	cart.AddItem(randomLineItem("Physical", math.MaxInt32+1, currency.EUR))

	err := suite.repo.SaveCart(ctx, cart)
	require.ErrorContains(t, err, "is out of range")

	_, err = suite.repo.GetCart(ctx, cart.ID)
	require.ErrorIs(t, err, port.ErrCartNotFound)
}

func (suite *cartRepositorySuite) TestGetCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		cartID    uuid.UUID
		wantErrIs error
		wantError string
	}{
		{
			name:      "get missing cart: not found",
			cartID:    uuid.New(),
			wantErrIs: port.ErrCartNotFound,
		},
		{
			name:      "get cart with empty id: error",
			cartID:    uuid.Nil,
			wantError: "cartID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			_, err := suite.repo.GetCart(t.Context(), tt.cartID)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.EqualError(t, err, tt.wantError)
		})
	}
}

func (suite *cartRepositorySuite) TestGetCart_DerivedAttributes() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	cart, _ := domain.NewCart(gofakeit.Word(), gofakeit.UUID(), gofakeit.Name(), gofakeit.Word(), "EUR")
	cart.AddItem(randomLineItem("Physical", 2, currency.EUR))
	cart.AddItem(randomLineItem("Digital", 3, currency.EUR))
	require.NoError(t, suite.repo.SaveCart(ctx, cart))

	actual, err := suite.repo.GetCart(ctx, cart.ID)
	require.NoError(t, err)

	assert.Equal(t, 5, actual.ItemsCount())
	assert.True(t, actual.HasPhysicalProducts())

	shipping, ok := actual.DefaultShippingAddress()
	require.True(t, ok)
	assert.True(t, shipping.IsBlank())
	assert.Empty(t, actual.Addresses)
}

func (suite *cartRepositorySuite) TestDeleteCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	cart := randomFullCart()
	require.NoError(t, suite.repo.SaveCart(ctx, cart))

	deleted, err := suite.repo.DeleteCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.repo.DeleteCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = suite.repo.GetCart(ctx, cart.ID)
	require.ErrorIs(t, err, port.ErrCartNotFound)

	_, err = suite.repo.DeleteCart(ctx, uuid.Nil)
	require.EqualError(t, err, "cartID is empty")
}

func (suite *cartRepositorySuite) TestFindByCustomer() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	storeID := gofakeit.Word()
	customerID := gofakeit.UUID()

	first, _ := domain.NewCart(storeID, customerID, gofakeit.Name(), "default", "USD")
	second, _ := domain.NewCart(storeID, customerID, gofakeit.Name(), "wishlist", "USD")
	other, _ := domain.NewCart(storeID, gofakeit.UUID(), gofakeit.Name(), "default", "USD")

	for _, c := range []*domain.Cart{first, second, other} {
		require.NoError(t, suite.repo.SaveCart(ctx, c))
	}

	ids, err := suite.repo.FindByCustomer(ctx, storeID, customerID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)

	ids, err = suite.repo.FindByCustomer(ctx, gofakeit.Word(), customerID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = suite.repo.FindByCustomer(ctx, storeID, "")
	require.EqualError(t, err, "customerID is empty")
}

func (suite *cartRepositorySuite) TestNewCartWithTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	cart := randomFullCart()
	require.NoError(t, repository.NewCartWithTx(tx).SaveCart(ctx, cart))
	require.NoError(t, tx.Rollback(ctx))

	_, err = suite.repo.GetCart(ctx, cart.ID)
	require.ErrorIs(t, err, port.ErrCartNotFound)
}

func (suite *cartRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE carts CASCADE")
	suite.NoError(err)
}

func randomFullCart() *domain.Cart {
	unit := randomCurrency()

	cart, _ := domain.NewCart(gofakeit.Word(), gofakeit.UUID(), gofakeit.Name(), gofakeit.Word(), unit.String())
	cart.ChannelID = gofakeit.Word()
	cart.OrganizationID = gofakeit.UUID()
	cart.LanguageCode = gofakeit.LanguageAbbreviation()
	cart.Comment = gofakeit.Sentence(5)
	cart.IsAnonymous = gofakeit.Bool()
	cart.TaxIncluded = gofakeit.Bool()
	cart.IsRecurring = gofakeit.Bool()
	cart.Weight = decimal.NewFromFloat(gofakeit.Float64Range(0.1, 10)).Round(4)
	cart.WeightUnit = "kg"
	cart.MeasureUnit = "cm"
	cart.Height = decimal.NewFromInt(int64(gofakeit.IntRange(1, 50)))
	cart.Length = decimal.NewFromInt(int64(gofakeit.IntRange(1, 50)))
	cart.Width = decimal.NewFromInt(int64(gofakeit.IntRange(1, 50)))

	cart.AddItem(randomLineItem("Physical", gofakeit.IntRange(1, 5), unit))
	cart.AddItem(randomLineItem("Digital", gofakeit.IntRange(1, 5), unit))

	// sale price settled in another currency than the list price
	mixed := randomLineItem("Physical", 1, currency.USD)
	mixed.SalePrice = randomMoney(currency.EUR)
	cart.AddItem(mixed)

	shipping := randomAddress(domain.AddressTypeShipping)
	billing := randomAddress(domain.AddressTypeBilling)
	cart.AddAddress(shipping)
	cart.AddAddress(billing)

	cart.AddPayment(domain.Payment{
		ID:             uuid.New(),
		GatewayCode:    "DefaultManualPaymentMethod",
		Amount:         randomMoney(unit),
		BillingAddress: &billing,
	})
	cart.AddShipment(domain.Shipment{
		ID:                 uuid.New(),
		ShipmentMethodCode: "FixedRate",
		Price:              randomMoney(unit),
		DiscountAmount:     domain.ZeroMoney(unit),
		TaxTotal:           domain.ZeroMoney(unit),
		DeliveryAddress:    &shipping,
		Weight:             decimal.NewFromInt(2),
	})
	cart.AddDiscount(domain.Discount{
		PromotionID: gofakeit.UUID(),
		Coupon:      gofakeit.LetterN(6),
		Description: gofakeit.Sentence(3),
		Amount:      randomMoney(unit),
	})
	cart.AddTaxDetail(domain.TaxDetail{
		Name:   "VAT",
		Rate:   decimal.RequireFromString("0.2"),
		Amount: randomMoney(unit),
	})
	cart.ApplyCoupon(domain.Coupon{Code: gofakeit.LetterN(6), AppliedSuccessfully: true})
	cart.AddError("shipping method is not available")

	totals := cart.Totals()
	totals.SubTotal = randomMoney(unit)
	totals.Total = randomMoney(unit)
	if err := cart.SetTotals(totals); err != nil {
		panic(err)
	}

	return cart
}

func randomLineItem(productType string, quantity int, unit currency.Unit) domain.LineItem {
	price := randomMoney(unit)

	return domain.LineItem{
		ID:            uuid.New(),
		ProductID:     uuid.MustParse(gofakeit.UUID()),
		SKU:           gofakeit.LetterN(8),
		Name:          gofakeit.ProductName(),
		ProductType:   productType,
		Quantity:      quantity,
		ListPrice:     price,
		SalePrice:     price,
		ExtendedPrice: domain.NewMoney(price.Amount.Mul(decimal.NewFromInt(int64(quantity))), unit),
	}
}

func randomAddress(t domain.AddressType) domain.Address {
	address := gofakeit.Address()

	return domain.Address{
		Type:        t,
		FirstName:   gofakeit.FirstName(),
		LastName:    gofakeit.LastName(),
		Line1:       address.Street,
		City:        address.City,
		RegionName:  address.State,
		PostalCode:  address.Zip,
		CountryCode: gofakeit.CountryAbr(),
		Phone:       gofakeit.Phone(),
		Email:       gofakeit.Email(),
	}
}

func randomMoney(unit currency.Unit) domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: unit,
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func assertCart(t *testing.T, expected, actual *domain.Cart) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	// CreatedAt is truncated to microseconds by postgres
	opts := cmp.Options{
		cmpopts.IgnoreUnexported(domain.Cart{}),
		cmpopts.IgnoreFields(domain.LineItem{}, "CreatedAt"),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.Equal(t, expected.Currency().Code(), actual.Currency().Code())
	assert.Empty(t, cmp.Diff(expected.Totals(), actual.Totals(), currencyComparer))
	assert.Equal(t, expected.Errors(), actual.Errors())

	for _, item := range actual.Items {
		assert.False(t, item.CreatedAt.IsZero())
	}
}
