package service

// Convert computes display values for each target currency relative to the
// base. The base row equals the amount itself; every other row is
// rates[base]/rates[target]*amount. Targets absent from the rate set are
// skipped, so the result may be partial. An absent base yields an empty
// result. Pure function, safe for concurrent use.
func Convert(rates map[string]float64, base string, amount float64, targets []string) map[string]float64 {
	values := make(map[string]float64, len(targets))

	baseRate, ok := rates[base]
	if !ok {
		return values
	}

	for _, target := range targets {
		if target == base {
			values[target] = amount
			continue
		}
		rate, ok := rates[target]
		if !ok {
			continue
		}
		values[target] = (baseRate / rate) * amount
	}

	return values
}
