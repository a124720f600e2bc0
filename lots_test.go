package hsa

import (
	"slices"
	"testing"
)

// prices returns the price of each lot, in order.
func prices(l lots) []float64 {
	var p []float64
	for _, tx := range l {
		p = append(p, tx.Price.Decimal().InexactFloat64())
	}
	return p
}

func TestSelectLots_Order(t *testing.T) {
	txs := []Transaction{
		buy("2022-01-03", "VFIAX", 10, 10),     // long term gain
		buy("2022-02-01", "VFIAX", 2, 30),      // long term loss
		buy("2022-06-01", "VFIAX", 10, 15),     // long term gain
		buy("2023-03-01", "VFIAX", 4, 25),      // short term loss
		dividend("2023-12-15", "VFIAX", 1, 18), // short term gain
		dividend("2024-03-20", "VFIAX", 1, 12), // short term gain
		buy("2024-06-03", "VFIAX", 5, 5),       // same day as the sale
		sell("2024-06-03", "VFIAX", 3, 20),     // the sale
		buy("2024-07-01", "VFIAX", 5, 1),       // after the sale
	}

	tests := []struct {
		name string
		got  lots
		want []float64
	}{
		{"losses", lossLots(txs, 7), []float64{30, 25}},
		{"gains", gainLots(txs, 7), []float64{15, 10, 18, 12}},
		{"all", selectLots(txs, 7), []float64{30, 25, 15, 10, 18, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prices(tt.got); !slices.Equal(got, tt.want) {
				t.Errorf("prices = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectLots_SalePriceIsAGain(t *testing.T) {
	txs := []Transaction{
		buy("2024-01-02", "FXAIX", 1, 20),
		sell("2024-02-01", "FXAIX", 1, 20),
	}
	if got := lossLots(txs, 1); len(got) != 0 {
		t.Errorf("lossLots() = %v, want none", prices(got))
	}
	if got := prices(gainLots(txs, 1)); !slices.Equal(got, []float64{20}) {
		t.Errorf("gainLots() = %v, want [20]", got)
	}
}

func TestSelectLots_SkipsDepletedLots(t *testing.T) {
	txs := []Transaction{
		buy("2024-01-02", "FXAIX", 1, 20),
		buy("2024-01-03", "FXAIX", 1, 21),
		sell("2024-02-01", "FXAIX", 1, 25),
	}
	txs[1].Shares = Q(0)
	if got := prices(selectLots(txs, 2)); !slices.Equal(got, []float64{20}) {
		t.Errorf("selectLots() = %v, want [20]", got)
	}
}

func TestSortByPrice_Stable(t *testing.T) {
	txs := []Transaction{
		buy("2024-01-01", "A", 1, 10),
		buy("2024-01-02", "A", 2, 12),
		buy("2024-01-03", "A", 3, 10),
		buy("2024-01-04", "A", 4, 12),
	}
	l := lots{&txs[0], &txs[1], &txs[2], &txs[3]}

	l.sortByPrice(Descending)
	var shares []string
	for _, tx := range l {
		shares = append(shares, tx.Shares.String())
	}
	if want := []string{"2", "4", "1", "3"}; !slices.Equal(shares, want) {
		t.Errorf("Descending order = %v, want %v", shares, want)
	}

	l.sortByPrice(Ascending)
	shares = shares[:0]
	for _, tx := range l {
		shares = append(shares, tx.Shares.String())
	}
	if want := []string{"1", "3", "2", "4"}; !slices.Equal(shares, want) {
		t.Errorf("Ascending order = %v, want %v", shares, want)
	}
}
