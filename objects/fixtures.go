package objects

import "fmt"

// The fixture generators below are pure functions of the record index, so
// every ExtractMock call yields the same records in the same order.

func seqID(prefix string, width, i int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, i)
}

func pick(values []string, i int) string {
	if len(values) == 0 {
		return ""
	}
	return values[i%len(values)]
}

// dateYYYYMMDD walks forward from the start of startYear, one or more days
// per index, staying inside the safe 28-day month window.
func dateYYYYMMDD(startYear, i int) string {
	year := startYear + i/336
	month := 1 + (i/28)%12
	day := 1 + i%28
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

// cents keeps generated decimals at two digits.
func cents(base, step float64, i int) float64 {
	value := base + step*float64(i)
	return float64(int64(value*100)) / 100
}

func boolAlternating(i, period int) bool {
	if period <= 0 {
		period = 2
	}
	return i%period == 0
}

var (
	countryCodes  = []string{"US", "DE", "GB", "NL", "SE", "JP", "SG", "MY", "FR", "IT"}
	currencyCodes = []string{"USD", "EUR", "GBP", "SEK", "JPY", "SGD"}
	cityNames     = []string{"Chicago", "Hamburg", "Leeds", "Rotterdam", "Uppsala", "Osaka", "Jurong", "Penang", "Lyon", "Torino"}
	unitCodes     = []string{"PCS", "KG", "L", "M", "EA", "BOX"}
	plantCodes    = []string{"1000", "1100", "2000", "2100"}
	companyCodes  = []string{"1000", "2000"}
	regionCodes   = []string{"IL", "HH", "YK", "ZH", "UP", "OS", "SG", "PG", "RA", "TO"}
	paymentCodes  = []string{"NT30", "NT60", "NT00", "NT45", "NT90"}
)
