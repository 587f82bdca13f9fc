package domain

import (
	"fmt"
	"strings"
)

type AddressType int

const (
	AddressTypeBilling AddressType = iota + 1
	AddressTypeShipping
	AddressTypeBillingAndShipping
	AddressTypePickup
)

var addressTypeNames = map[AddressType]string{
	AddressTypeBilling:            "Billing",
	AddressTypeShipping:           "Shipping",
	AddressTypeBillingAndShipping: "BillingAndShipping",
	AddressTypePickup:             "Pickup",
}

func (t AddressType) String() string {
	if name, ok := addressTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AddressType(%d)", int(t))
}

func ParseAddressType(s string) (AddressType, error) {
	for t, name := range addressTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("address type[%s] is not valid", s)
}

// Address is a postal address tagged with the role it plays in the checkout.
type Address struct {
	Type AddressType

	FirstName    string
	LastName     string
	Organization string
	Line1        string
	Line2        string
	City         string
	RegionName   string
	PostalCode   string
	CountryCode  string
	Phone        string
	Email        string
}

// NewBlankAddress returns an empty address of the given role. It is a suggestion for the caller
// to fill in and is not part of any cart until added explicitly.
func NewBlankAddress(t AddressType) Address {
	return Address{Type: t}
}

func (a Address) IsBlank() bool {
	return a == Address{Type: a.Type}
}
