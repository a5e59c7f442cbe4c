package domain

import "time"

// DateOnly обнуляет время, сохраняя календарную дату и location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween число календарных дней от from до to (отрицательное, если to раньше)
// Считается по UTC-полуночи, поэтому переход на летнее время не влияет на результат
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	u := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(u.Sub(f).Hours() / 24)
}
