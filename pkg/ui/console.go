package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/farescout/farescout/pkg/travel"
)

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validatePax(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("must be a number of at least 1")
	}
	return nil
}

// ReadQuery collects a travel query interactively using a huh form. Defaults
// mirror the web form: a one-night trip starting a week out.
func ReadQuery() (travel.Query, error) {
	today := time.Now()
	departure := today.AddDate(0, 0, 7).Format("2006-01-02")
	ret := today.AddDate(0, 0, 8).Format("2006-01-02")
	from := "SIN"
	to := "KUL"
	pax := "1"
	airline := ""
	cabin := travel.CabinEconomy.String()

	cabinOptions := make([]huh.Option[string], len(travel.CabinClasses))
	for i, c := range travel.CabinClasses {
		cabinOptions[i] = huh.NewOption(c.String(), c.String())
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Departure Date").Value(&departure).Validate(validateDate),
			huh.NewInput().Title("Return Date").Value(&ret).Validate(validateDate),
			huh.NewInput().Title("Departure Airport").Value(&from),
			huh.NewInput().Title("Return Airport").Value(&to),
			huh.NewInput().Title("No. of Pax").Value(&pax).Validate(validatePax),
			huh.NewInput().Title("Preferred Airline (blank for any)").Value(&airline),
			huh.NewSelect[string]().Title("Class").Options(cabinOptions...).Value(&cabin),
		),
	)

	if err := form.Run(); err != nil {
		return travel.Query{}, err
	}

	departureDate, _ := time.Parse("2006-01-02", departure)
	returnDate, _ := time.Parse("2006-01-02", ret)
	passengers, _ := strconv.Atoi(pax)
	cabinClass, err := travel.ParseCabinClass(cabin)
	if err != nil {
		return travel.Query{}, err
	}

	return travel.Query{
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		From:          from,
		To:            to,
		Passengers:    passengers,
		Airline:       airline,
		Cabin:         cabinClass,
	}, nil
}

// ReadSelection prompts the user to select from a list of options using huh
func ReadSelection(options []string, title string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	var selected string

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}
