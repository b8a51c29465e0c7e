// Package calendar сопоставляет встречи с выбранным днём календаря.
package calendar

import (
	"github.com/magabrotheeeer/agency-dashboard/internal/lib/day"
	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

// OnDate возвращает встречи, приходящиеся на день date, в исходном порядке.
// Время суток не учитывается. Если день не выбран (nil), результат пустой:
// так вызывающий отличает «день не выбран» от «в этот день встреч нет».
func OnDate(appts []models.Appointment, date *day.Date) []models.Appointment {
	res := make([]models.Appointment, 0)
	if date == nil {
		return res
	}

	for _, a := range appts {
		if date.Contains(a.At) {
			res = append(res, a)
		}
	}
	return res
}

// BookedDays возвращает различные дни, на которые назначена хотя бы одна встреча,
// в порядке первого появления. Используется для подсветки занятых дней.
func BookedDays(appts []models.Appointment) []day.Date {
	seen := make(map[day.Date]struct{}, len(appts))
	res := make([]day.Date, 0, len(appts))
	for _, a := range appts {
		d := day.Of(a.At)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		res = append(res, d)
	}
	return res
}
