package domain

// HomeCurrency is the currency the rate feed quotes everything against.
const HomeCurrency = "RUB"

// currencyToCountry maps currency codes to ISO country codes for flag
// rendering. Currencies not listed here render without a flag.
var currencyToCountry = map[string]string{
	"USD": "US",
	"EUR": "EU",
	"RUB": "RU",
	"CNY": "CN",
	"GBP": "GB",
	"JPY": "JP",
	"TRY": "TR",
	"KZT": "KZ",
	"IDR": "ID",
	"VND": "VN",
	"THB": "TH",
	"AED": "AE",
	"SGD": "SG",
}

// countryFlag builds a flag emoji from a two-letter country code using
// regional indicator symbols.
func countryFlag(country string) string {
	flag := make([]rune, 0, len(country))
	for _, c := range country {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		flag = append(flag, 127397+c)
	}
	return string(flag)
}

// CurrencyFlag returns the flag emoji for a currency code, or an empty
// string when no country mapping exists.
func CurrencyFlag(code string) string {
	country, ok := currencyToCountry[code]
	if !ok {
		return ""
	}
	return countryFlag(country)
}
