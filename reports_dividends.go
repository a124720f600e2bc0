package hsa

// YearDividends is the dividend income of a calendar year.
type YearDividends struct {
	Year   int
	Amount Money
	Count  int
}

// DividendsByYear sums dividends over consecutive runs of the same year.
//
// txs is expected in chronological order; it is not sorted, so a year that
// appears in two separate runs yields two entries.
func DividendsByYear(txs []Transaction) []YearDividends {
	var years []YearDividends
	var current *YearDividends
	for _, tx := range txs {
		if tx.Category != Dividend {
			continue
		}
		if current == nil || current.Year != tx.Date.Year() {
			years = append(years, YearDividends{Year: tx.Date.Year(), Amount: USD(0)})
			current = &years[len(years)-1]
		}
		current.Amount = current.Amount.Add(tx.Amount)
		current.Count++
	}
	return years
}

// TotalDividends returns the sum of all dividends in years.
func TotalDividends(years []YearDividends) (total Money, count int) {
	total = USD(0)
	for _, y := range years {
		total = total.Add(y.Amount)
		count += y.Count
	}
	return total, count
}

func (y YearDividends) MarshalJSON() ([]byte, error) {
	var w orderedJSON
	w.Field("year", y.Year)
	w.Field("amount", y.Amount)
	w.Field("count", y.Count)
	return w.MarshalJSON()
}
