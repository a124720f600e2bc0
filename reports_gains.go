package hsa

import "fmt"

// FundGains holds the realized gains of every sale of one fund.
type FundGains struct {
	Fund      string
	Sales     []SaleGains
	CostBasis Money
	LongTerm  Money
	ShortTerm Money
}

// Total returns the total realized gain of the fund.
func (f FundGains) Total() Money { return f.LongTerm.Add(f.ShortTerm) }

// GainsReport contains the realized capital gains of a set of funds.
type GainsReport struct {
	Funds     []FundGains // In lexicographic fund order.
	CostBasis Money
	LongTerm  Money
	ShortTerm Money
}

// Total returns the total realized gain.
func (r GainsReport) Total() Money { return r.LongTerm.Add(r.ShortTerm) }

// Fund returns the gains of the named fund, or nil.
func (r *GainsReport) Fund(name string) *FundGains {
	for i := range r.Funds {
		if r.Funds[i].Fund == name {
			return &r.Funds[i]
		}
	}
	return nil
}

// MatchFund computes the realized gains of every sale in txs, the
// chronological transactions of a single fund.
//
// Sales are matched in order and each sale depletes the lots it consumes, so
// later sales only see what is left. txs itself is never modified.
func MatchFund(fund string, txs []Transaction) (*FundGains, error) {
	work := cloneAll(txs)
	zero := USD(0)
	fg := &FundGains{Fund: fund, CostBasis: zero, LongTerm: zero, ShortTerm: zero}

	for i, sale := range work {
		if sale.Fund != fund {
			return nil, fmt.Errorf("transaction on %s belongs to %q, not %q", sale.Date, sale.Fund, fund)
		}
		if sale.Category != Sell {
			continue
		}

		gains, err := matchSale(sale, selectLots(work, i))
		if err != nil {
			return nil, fmt.Errorf("could not match %s sale on %s: %w", fund, sale.Date, err)
		}

		fg.CostBasis = fg.CostBasis.Add(gains.CostBasis)
		fg.LongTerm = fg.LongTerm.Add(gains.LongTerm)
		fg.ShortTerm = fg.ShortTerm.Add(gains.ShortTerm)
		gains.RunningCostBasis = fg.CostBasis
		gains.RunningLongTerm = fg.LongTerm
		gains.RunningShortTerm = fg.ShortTerm
		fg.Sales = append(fg.Sales, gains)
	}
	return fg, nil
}

// CapitalGains computes realized gains for every fund found in txs.
func CapitalGains(txs []Transaction) (*GainsReport, error) {
	zero := USD(0)
	report := &GainsReport{CostBasis: zero, LongTerm: zero, ShortTerm: zero}
	for fund, fundTxs := range SplitByFund(txs).All() {
		fg, err := MatchFund(fund, fundTxs)
		if err != nil {
			return nil, err
		}
		report.Funds = append(report.Funds, *fg)
		report.CostBasis = report.CostBasis.Add(fg.CostBasis)
		report.LongTerm = report.LongTerm.Add(fg.LongTerm)
		report.ShortTerm = report.ShortTerm.Add(fg.ShortTerm)
	}
	return report, nil
}

func (m LotMatch) MarshalJSON() ([]byte, error) {
	var w orderedJSON
	w.Field("date", m.Lot.Date)
	w.Field("category", m.Lot.Category)
	w.Field("price", m.Lot.Price)
	w.Field("shares", m.Shares)
	w.Field("cost", m.Cost)
	w.Field("proceeds", m.Proceeds)
	w.Field("gain", m.Gain())
	w.Field("term", m.Term)
	return w.MarshalJSON()
}

func (s SaleGains) MarshalJSON() ([]byte, error) {
	var w orderedJSON
	w.Field("sale", s.Sale)
	w.Field("lots", s.Matches)
	w.Field("costBasis", s.CostBasis)
	w.Field("longTerm", s.LongTerm)
	w.Field("shortTerm", s.ShortTerm)
	w.Field("runningCostBasis", s.RunningCostBasis)
	w.Field("runningLongTerm", s.RunningLongTerm)
	w.Field("runningShortTerm", s.RunningShortTerm)
	return w.MarshalJSON()
}

func (f FundGains) MarshalJSON() ([]byte, error) {
	var w orderedJSON
	w.Field("fund", f.Fund)
	w.Field("sales", f.Sales)
	w.Field("costBasis", f.CostBasis)
	w.Field("longTerm", f.LongTerm)
	w.Field("shortTerm", f.ShortTerm)
	w.Field("total", f.Total())
	return w.MarshalJSON()
}

func (r GainsReport) MarshalJSON() ([]byte, error) {
	var w orderedJSON
	w.Field("funds", r.Funds)
	w.Field("costBasis", r.CostBasis)
	w.Field("longTerm", r.LongTerm)
	w.Field("shortTerm", r.ShortTerm)
	w.Field("total", r.Total())
	return w.MarshalJSON()
}
