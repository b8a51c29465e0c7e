// Package day описывает календарный день без времени суток.
// Сравнение дней идёт по полям год/месяц/день, а не по отформатированным строкам,
// поэтому результат не зависит от локали и формата вывода.
package day

import (
	"errors"
	"fmt"
	"time"
)

// Layout — формат дня в запросах, фикстурах и JSON.
const Layout = "2006-01-02"

// ErrMalformed возвращается, когда строку нельзя разобрать как день.
var ErrMalformed = errors.New("malformed date")

// Date — календарный день. Нулевое значение означает «день не задан».
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Of возвращает день, на который приходится t в его собственной локации.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// New собирает день из компонентов, нормализуя переполнение (31 апреля → 1 мая).
func New(year int, month time.Month, dd int) Date {
	return Of(time.Date(year, month, dd, 0, 0, 0, 0, time.UTC))
}

// Parse разбирает строку вида 2006-01-02.
func Parse(s string) (Date, error) {
	const op = "day.Parse"

	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%s: %q: %w", op, s, ErrMalformed)
	}
	return Of(t), nil
}

// IsZero сообщает, что день не задан.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Equal сравнивает только год, месяц и день.
func (d Date) Equal(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Contains сообщает, попадает ли момент t на этот день.
func (d Date) Contains(t time.Time) bool {
	return d.Equal(Of(t))
}

// Time возвращает полночь дня в указанной локации.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays сдвигает день на n календарных дней.
func (d Date) AddDays(n int) Date {
	return Of(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
