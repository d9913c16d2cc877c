package travel

import (
	"fmt"
	"time"
)

// CabinClass is the travel cabin selected for the search.
type CabinClass string

const (
	CabinEconomy        CabinClass = "Economy"
	CabinPremiumEconomy CabinClass = "Premium Economy"
	CabinBusiness       CabinClass = "Business"
	CabinFirst          CabinClass = "First"
)

// CabinClasses lists all selectable cabins in UI order.
var CabinClasses = []CabinClass{
	CabinEconomy,
	CabinPremiumEconomy,
	CabinBusiness,
	CabinFirst,
}

func (c CabinClass) String() string {
	return string(c)
}

// ParseCabinClass maps a user-supplied string to a CabinClass.
func ParseCabinClass(s string) (CabinClass, error) {
	for _, c := range CabinClasses {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown cabin class: %s", s)
}

// Query describes one flight search as entered by the user.
// It is built once at submission time and not mutated afterwards.
type Query struct {
	DepartureDate time.Time
	ReturnDate    time.Time
	From          string // departure airport code, free text
	To            string // return airport code, free text
	Passengers    int    // >= 1, enforced by the input widget
	Airline       string // preferred airline, empty means no preference
	Cabin         CabinClass
}
