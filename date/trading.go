package date

import "time"

// LastWeekday returns d itself when it falls on a weekday, otherwise the
// friday before it. It is the default cutoff for a momentum evaluation, since
// week-end days have no close.
func LastWeekday(d Date) Date {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.Add(-1)
	}
	return d
}

// NextBuyDay returns the conventional monthly buy day for the month of d: the
// 15th, pushed to the next weekday when it falls on a week-end.
func NextBuyDay(d Date) Date {
	buy := New(d.Year(), d.Month(), 15)
	for buy.Weekday() == time.Saturday || buy.Weekday() == time.Sunday {
		buy = buy.Add(1)
	}
	return buy
}
