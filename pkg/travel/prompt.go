package travel

import "fmt"

// sampleURL shows the target site's query-parameter grammar. The agent derives
// the real URL from it rather than us encoding the parameters ourselves.
const sampleURL = `https://www.pricebreaker.travel/flights?source=webconnect&od1.origin_airport.code=SIN&od1.origin_datetime=2026-03-08&od2.origin_datetime=2026-03-11&ptc_adt=1&ptc_cnn=0&ptc_inf=0&cabin=Y&od2.origin_airport.code=ICN`

// BuildPrompt renders a Query into the natural-language task handed to the
// fare runtime. Pure string formatting, no validation beyond what the input
// widgets already guarantee.
func BuildPrompt(q Query) string {
	airline := q.Airline
	if airline == "" {
		airline = "Any"
	}
	return fmt.Sprintf(`Here's a sample of pricebreaker.travel website url, read the url query and make changes accordingly.
Sample url: %q
Now, help me craft the full url where the travel date is from %s to %s, from %s to %s.
Passengers: %d. Preferred Airline: %s. Class: %s.
Then, use websurfer to browse the site where the url is created above, and list down the price for each option.
Ensure you scroll through the entire page by scrolling down too. Tell me which option is the best based on the list.`,
		sampleURL,
		q.DepartureDate.Format("2006-01-02"),
		q.ReturnDate.Format("2006-01-02"),
		q.From,
		q.To,
		q.Passengers,
		airline,
		q.Cabin,
	)
}
