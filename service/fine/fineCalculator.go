// Package fine computes overdue fines. The calculator is a pure function of
// days overdue; the lending core never calls it from the borrow/return paths.
package fine

// DefaultDailyRate is the fine charged per overdue day.
const DefaultDailyRate = 1000.0

type Calculator struct {
	dailyRate float64
	maxFine   float64 // 0 means uncapped
}

// NewCalculator builds a calculator with the default daily rate and no cap.
func NewCalculator() Calculator {
	return Calculator{dailyRate: DefaultDailyRate}
}

// NewCalculatorWith builds a calculator with an explicit rate and cap.
// A cap of 0 disables capping.
func NewCalculatorWith(dailyRate, maxFine float64) Calculator {
	return Calculator{dailyRate: dailyRate, maxFine: maxFine}
}

// Fine is the amount owed for the given number of overdue days. Zero or
// negative days owe nothing.
func (c Calculator) Fine(daysOverdue int) float64 {
	if daysOverdue <= 0 {
		return 0
	}
	amount := float64(daysOverdue) * c.dailyRate
	if c.maxFine > 0 && amount > c.maxFine {
		return c.maxFine
	}
	return amount
}
