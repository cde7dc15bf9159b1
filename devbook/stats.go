package devbook

// RateStats summarizes the Rate field across a set of records. Mean,
// Min and Max are nil when no record carries a rate, which serializes
// as JSON null.
type RateStats struct {
	Mean  *float64 `json:"mean"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Count int      `json:"item_number"`
	Total float64  `json:"total"`
}

// SummarizeRates computes rate statistics over records. Records without
// a Rate field are skipped; a rate of exactly 0 counts.
func SummarizeRates(records []*Record) RateStats {
	var rates []float64
	for _, r := range records {
		if rate, ok := r.Rate(); ok {
			rates = append(rates, rate)
		}
	}
	stats := RateStats{Count: len(rates)}
	if len(rates) == 0 {
		return stats
	}

	minVal, maxVal, sum := rates[0], rates[0], 0.0
	for _, v := range rates {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
		sum += v
	}
	mean := sum / float64(len(rates))
	stats.Mean = &mean
	stats.Min = &minVal
	stats.Max = &maxVal
	stats.Total = sum
	return stats
}
