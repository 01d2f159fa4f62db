package utils

import "time"

// StartOfDay trunca o instante para a meia-noite no mesmo fuso
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysAgo retorna o início do dia que está n dias antes de t
func DaysAgo(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, -n)
}
