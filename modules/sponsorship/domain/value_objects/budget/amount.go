package budget

import (
	"github.com/Rhymond/go-money"

	"github.com/ghazalrb98/sep/pkg/serrors"
)

var ErrNegativeAmount = serrors.NewError("BUDGET_NEGATIVE_AMOUNT", "budget amount cannot be negative")

// Swedish krona display without decimals: "500 kr", "1 000 kr".
var formatter = money.NewFormatter(0, ",", " ", "kr", "1 $")

// Amount is an optional budget in whole kronor. The zero Amount means the
// budget is not set, which is distinct from a budget of zero kronor.
type Amount struct {
	value *money.Money
}

func None() Amount {
	return Amount{}
}

func NewAmount(kronor int64) (Amount, error) {
	if kronor < 0 {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: money.New(kronor, money.SEK)}, nil
}

// FromWire maps the stored numeric form back to an Amount. Zero marks an
// absent budget on the wire.
func FromWire(kronor int64) (Amount, error) {
	if kronor == 0 {
		return None(), nil
	}
	return NewAmount(kronor)
}

func (a Amount) IsSet() bool {
	return a.value != nil
}

func (a Amount) Value() int64 {
	if a.value == nil {
		return 0
	}
	return a.value.Amount()
}

// Wire returns the numeric form used by the events API, with zero standing
// in for an absent budget.
func (a Amount) Wire() int64 {
	return a.Value()
}

func (a Amount) Format() string {
	if a.value == nil {
		return ""
	}
	return formatter.Format(a.value.Amount())
}
