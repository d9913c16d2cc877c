package farescout

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/farescout/farescout/pkg/launcher"
	"github.com/farescout/farescout/pkg/travel"
	"github.com/farescout/farescout/pkg/ui"
)

func handleRunCommand(args []string) error {
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	providerName := runCmd.String("provider", "", "Provider to use (azure_openai, openai)")
	modelName := runCmd.String("model", "", "Model name")
	departure := runCmd.String("departure", "", "Departure date (YYYY-MM-DD)")
	returnDate := runCmd.String("return", "", "Return date (YYYY-MM-DD)")
	from := runCmd.String("from", "", "Departure airport code")
	to := runCmd.String("to", "", "Return airport code")
	pax := runCmd.Int("pax", 1, "Number of passengers")
	airline := runCmd.String("airline", "", "Preferred airline (blank for any)")
	cabin := runCmd.String("class", "Economy", "Cabin class")

	if err := runCmd.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	var query travel.Query
	if *departure == "" {
		// No query flags given, collect the search interactively.
		q, err := ui.ReadQuery()
		if err != nil {
			return err
		}
		query = q
	} else {
		departureDate, err := time.Parse("2006-01-02", *departure)
		if err != nil {
			return fmt.Errorf("invalid departure date: %w", err)
		}
		ret, err := time.Parse("2006-01-02", *returnDate)
		if err != nil {
			return fmt.Errorf("invalid return date: %w", err)
		}
		if *pax < 1 {
			return fmt.Errorf("passenger count must be at least 1")
		}
		cabinClass, err := travel.ParseCabinClass(*cabin)
		if err != nil {
			return err
		}
		query = travel.Query{
			DepartureDate: departureDate,
			ReturnDate:    ret,
			From:          *from,
			To:            *to,
			Passengers:    *pax,
			Airline:       *airline,
			Cabin:         cabinClass,
		}
	}

	return launcher.RunConsole(context.Background(), &launcher.ConsoleConfig{
		Query:        query,
		ProviderName: *providerName,
		ModelName:    *modelName,
	})
}
