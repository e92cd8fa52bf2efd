package rebalance

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/rebalance/date"
	"gonum.org/v1/gonum/stat"
)

// riskFreeRate is the assumed annual risk-free rate, in percent, used for
// the Sharpe ratio.
const riskFreeRate = 3.0

// tradingDays is the annualization convention for volatility.
const tradingDays = 252

// Window selects how far back a performance report looks.
type Window int

const (
	WindowAll Window = iota
	Window1M
	Window3M
	Window1Y
)

func (w Window) String() string {
	switch w {
	case Window1M:
		return "1m"
	case Window3M:
		return "3m"
	case Window1Y:
		return "1y"
	default:
		return "all"
	}
}

// Start returns the first date included in the window ending at 'asOf'.
// ok is false for WindowAll, which has no lower bound.
func (w Window) Start(asOf date.Date) (start date.Date, ok bool) {
	switch w {
	case Window1M:
		return asOf.AddMonths(-1), true
	case Window3M:
		return asOf.AddMonths(-3), true
	case Window1Y:
		return asOf.AddYears(-1), true
	default:
		return date.Date{}, false
	}
}

// ParseWindow parses a window name such as "1m", "3m", "1y" or "all".
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1m", "m":
		return Window1M, nil
	case "3m", "q":
		return Window3M, nil
	case "1y", "y":
		return Window1Y, nil
	case "all", "":
		return WindowAll, nil
	default:
		return WindowAll, fmt.Errorf("unknown window %q (want 1m, 3m, 1y or all)", s)
	}
}

// Metrics summarizes the historical performance of the portfolio over a
// window of its snapshot series.
type Metrics struct {
	TotalReturn      Money
	TotalReturnPct   Percent
	AnnualizedReturn Percent
	Volatility       Percent // annualized std-dev of snapshot-to-snapshot returns
	SharpeRatio      float64
	MaxDrawdown      Percent
}

// Analyze computes performance metrics over the snapshots of the series
// falling inside the window ending at 'asOf'.
//
// Performance metrics are advisory display data: Analyze never fails. Every
// degenerate case (empty or single-snapshot series, zero starting value,
// zero elapsed time, zero volatility) resolves to a zero metric instead of
// an error or a NaN.
func Analyze(series *Series, w Window, asOf date.Date) Metrics {
	snapshots := series.Since(date.Date{})
	if start, ok := w.Start(asOf); ok {
		snapshots = series.Since(start)
	}
	if len(snapshots) == 0 {
		return Metrics{}
	}

	first, last := snapshots[0], snapshots[len(snapshots)-1]
	firstValue := first.Totals().TotalValue.AsFloat()
	lastValue := last.Totals().TotalValue.AsFloat()

	m := Metrics{TotalReturn: last.Totals().TotalValue.Sub(first.Totals().TotalValue)}
	if firstValue > 0 {
		m.TotalReturnPct = Percent(100 * m.TotalReturn.AsFloat() / firstValue)
	}

	// Compound annualization over calendar years of 365.25 days.
	years := float64(first.On().DaysUntil(last.On())) / 365.25
	if years > 0 && firstValue > 0 {
		m.AnnualizedReturn = Percent(100 * (math.Pow(lastValue/firstValue, 1/years) - 1))
	}

	m.Volatility = volatility(snapshots)
	if m.Volatility > 0 {
		m.SharpeRatio = (float64(m.AnnualizedReturn) - riskFreeRate) / float64(m.Volatility)
	}
	m.MaxDrawdown = maxDrawdown(snapshots)
	return m
}

// volatility is the population standard deviation of consecutive-snapshot
// returns, annualized by the trading-day convention and expressed in percent.
func volatility(snapshots []Snapshot) Percent {
	returns := make([]float64, 0, len(snapshots))
	for i := 1; i < len(snapshots); i++ {
		prev := snapshots[i-1].Totals().TotalValue.AsFloat()
		curr := snapshots[i].Totals().TotalValue.AsFloat()
		if prev > 0 {
			returns = append(returns, (curr-prev)/prev)
		}
	}
	if len(returns) == 0 {
		return 0
	}
	return Percent(stat.PopStdDev(returns, nil) * math.Sqrt(tradingDays) * 100)
}

// maxDrawdown tracks the running peak of the total value and returns the
// largest percentage decline from a peak observed across the series.
func maxDrawdown(snapshots []Snapshot) Percent {
	var worst Percent
	peak := snapshots[0].Totals().TotalValue.AsFloat()
	for _, snap := range snapshots {
		value := snap.Totals().TotalValue.AsFloat()
		if value > peak {
			peak = value
		} else if peak > 0 {
			if dd := Percent(100 * (peak - value) / peak); dd > worst {
				worst = dd
			}
		}
	}
	return worst
}
