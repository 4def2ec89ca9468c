// Package airports holds the static table of Canadian airports that gates
// APPR applicability: the regulation covers flights departing from any of
// these codes.
package airports

import "strings"

// canadianAirports maps IATA code to airport name.
var canadianAirports = map[string]string{
	// Major international airports
	"YYZ": "Toronto Pearson International Airport",
	"YVR": "Vancouver International Airport",
	"YUL": "Montreal-Pierre Elliott Trudeau International Airport",
	"YYC": "Calgary International Airport",
	"YWG": "Winnipeg James Armstrong Richardson International Airport",
	"YOW": "Ottawa Macdonald-Cartier International Airport",
	"YHZ": "Halifax Stanfield International Airport",
	"YEG": "Edmonton International Airport",
	"YQB": "Quebec City Jean Lesage International Airport",
	"YXE": "Saskatoon John G. Diefenbaker International Airport",

	// Regional airports
	"YYJ": "Victoria International Airport",
	"YKF": "Kitchener/Waterloo Regional Airport",
	"YHM": "John C. Munro Hamilton International Airport",
	"YXY": "Whitehorse International Airport",
	"YZF": "Yellowknife Airport",
	"YQR": "Regina International Airport",
	"YQT": "Thunder Bay International Airport",
	"YSJ": "Saint John Airport",
	"YFC": "Fredericton International Airport",
	"YQM": "Greater Moncton Roméo LeBlanc International Airport",
	"YQX": "Gander International Airport",
	"YYT": "St. John's International Airport",
	"YXU": "London International Airport",
	"YKA": "Kamloops Airport",
	"YPG": "Prince George Airport",
	"YQU": "Grande Prairie Airport",
	"YMM": "Fort McMurray Airport",
	"YLW": "Kelowna International Airport",
	"YXS": "Prince Albert Glass Field",
	"YBR": "Brandon Municipal Airport",
	"YTS": "Timmins Victor M. Power Airport",
	"YSB": "Sudbury Airport",
	"YAM": "Sault Ste. Marie Airport",
	"YQK": "Kenora Airport",
	"YZP": "Sandspit Airport",
	"YCD": "Nanaimo Airport",
	"YCA": "Courtenay Airfield",
	"YPW": "Powell River Airport",
	"YXJ": "Fort St. John Airport",
	"YDQ": "Dawson Creek Regional Airport",
	"YFO": "Flin Flon Airport",
	"YTH": "Thompson Airport",
	"YCG": "Castlegar/West Kootenay Regional Airport",
	"YXC": "Cranbrook Airport",

	// Northern and remote airports
	"YUX": "Hall Beach Airport",
	"YFB": "Iqaluit Airport",
	"YRT": "Rankin Inlet Airport",
	"YBK": "Baker Lake Airport",
	"YGZ": "Grise Fiord Airport",
	"YEV": "Inuvik Mike Zubko Airport",
	"YAT": "Attawapiskat Airport",
	"YMO": "Moosonee Airport",
	"YPH": "Inukjuak Airport",
	"YWP": "Webequie Airport",
	"YHO": "Hopedale Airport",
	"YHR": "Happy Valley-Goose Bay Airport",
	"YER": "Fort Severn Airport",
	"YZS": "Coral Harbour Airport",
}

// Registry answers jurisdiction questions about airport codes. The table is
// immutable after construction, so lookups are safe for concurrent use.
type Registry struct {
	airports map[string]string
}

// NewRegistry builds a registry over the built-in Canadian airport table.
func NewRegistry() *Registry {
	return &Registry{airports: canadianAirports}
}

// IsCanadian reports whether the airport code belongs to a Canadian airport.
// Lookup is case-insensitive.
func (r *Registry) IsCanadian(code string) bool {
	_, ok := r.airports[strings.ToUpper(code)]
	return ok
}

// Name returns the full airport name for a Canadian airport code.
func (r *Registry) Name(code string) (string, bool) {
	name, ok := r.airports[strings.ToUpper(code)]
	return name, ok
}

// Count returns the number of covered airports.
func (r *Registry) Count() int {
	return len(r.airports)
}

// All returns a copy of the covered airport table, keyed by IATA code.
func (r *Registry) All() map[string]string {
	out := make(map[string]string, len(r.airports))
	for code, name := range r.airports {
		out[code] = name
	}
	return out
}
