package extract

import (
	"strings"

	"wayfare/internal/models/db_models"
)

const (
	defaultCurrency   = "AED"
	defaultCabinClass = "ECONOMY"
)

// BuildFlight maps one upstream flight offer to its canonical form. Carrier
// and flight number come from the first leg of the first segment, the arrival
// side from the last segment; every link of those paths may be absent.
// Stop count is derived from the segment count, a single-segment offer is
// direct. fallbackArrivalCode is the airport code the search resolved, used
// when the offer omits its own.
func BuildFlight(offer Record, fallbackArrivalCode string) db_models.Flight {
	segments := offer.Records("segments")
	first := First(segments)
	last := Last(segments)

	firstLeg := First(first.Records("legs"))
	carrier := First(firstLeg.Records("carriersData"))

	airline := carrier.StringOr("Unknown", "name")
	number := firstLeg.Record("flightInfo").String("flightNumber")

	return db_models.Flight{
		FlightToken:          offer.StringOr(SyntheticID("flight"), "token"),
		FlightName:           strings.TrimSpace(airline + " " + number),
		FlightNumber:         number,
		AirlineName:          airline,
		AirlineLogo:          carrier.String("logo"),
		DepartureAirport:     first.Record("departureAirport").StringOr("Unknown", "name"),
		DepartureAirportCode: first.Record("departureAirport").StringOr("JFK", "code"),
		ArrivalAirport:       last.Record("arrivalAirport").StringOr("Unknown", "name"),
		ArrivalAirportCode:   last.Record("arrivalAirport").StringOr(fallbackArrivalCode, "code"),
		DepartureTime:        first.String("departureTime"),
		ArrivalTime:          last.String("arrivalTime"),
		Duration:             offer.String("totalDuration"),
		Stops:                len(segments) - 1,
		Fare:                 offer.Record("priceBreakdown").Record("total").Float("units"),
		Currency:             defaultCurrency,
		CabinClass:           defaultCabinClass,
	}
}
