package hsa

import (
	"errors"
	"fmt"
)

// ErrLotMatchingInconsistency is matched by every LotMatchingInconsistencyError.
var ErrLotMatchingInconsistency = errors.New("lot matching inconsistency")

// LotMatchingInconsistencyError is returned when a sale cannot be fully
// explained by earlier lots: the ledger is incomplete or corrupted.
type LotMatchingInconsistencyError struct {
	Sale      Transaction
	Matched   Quantity // shares found in earlier lots
	Accounted Money    // cost basis plus gains of the matched shares
}

func (e *LotMatchingInconsistencyError) Error() string {
	return fmt.Sprintf("%s: sale of %s shares of %s on %s: matched %s shares, accounted for %s of %s",
		ErrLotMatchingInconsistency, e.Sale.Shares.Abs(), e.Sale.Fund, e.Sale.Date,
		e.Matched, e.Accounted, e.Sale.Amount.Abs())
}

// Is makes errors.Is(err, ErrLotMatchingInconsistency) true.
func (e *LotMatchingInconsistencyError) Is(target error) bool {
	return target == ErrLotMatchingInconsistency
}
