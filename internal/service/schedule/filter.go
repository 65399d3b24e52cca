package schedule

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// DateFilter значение фильтра по дате
type DateFilter string

const (
	DateAll       DateFilter = "all"
	DateToday     DateFilter = "today"
	DateTomorrow  DateFilter = "tomorrow"
	DateThisWeek  DateFilter = "thisWeek"
	DateThisMonth DateFilter = "thisMonth"
	DateCustom    DateFilter = "custom"
)

// StatusAll значение фильтра статуса без ограничения
const StatusAll = "all"

// Criteria параметры фильтрации расписания
type Criteria struct {
	Date DateFilter
	// Status nil означает "все статусы"
	Status *domain.Status
	// From и To границы периода для DateCustom (YYYY-MM-DD), включительно
	From string
	To   string

	Now      time.Time
	Location *time.Location
}

// ParseDateFilter разбирает значение фильтра по дате без учета регистра.
// Неизвестное значение означает отсутствие ограничения.
func ParseDateFilter(raw string) DateFilter {
	v := strings.TrimSpace(raw)
	for _, known := range []DateFilter{DateToday, DateTomorrow, DateThisWeek, DateThisMonth, DateCustom} {
		if strings.EqualFold(v, string(known)) {
			return known
		}
	}
	return DateAll
}

// ParseStatusFilter разбирает фильтр статуса: пустое значение и "all" снимают ограничение
func ParseStatusFilter(raw string) (*domain.Status, error) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, StatusAll) {
		return nil, nil
	}
	status, err := domain.ParseStatus(v)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Filter возвращает записи, проходящие оба фильтра, в исходном порядке.
// При отсутствии ограничений возвращается входной срез без копирования.
func Filter(bookings []domain.EnrichedBooking, c Criteria) []domain.EnrichedBooking {
	match, restricted := datePredicate(c)
	if !restricted && c.Status == nil {
		return bookings
	}

	result := make([]domain.EnrichedBooking, 0, len(bookings))
	for _, b := range bookings {
		if c.Status != nil && b.Booking.Status != *c.Status {
			continue
		}
		if restricted && !match(b.Booking.StartTime) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// datePredicate строит проверку времени начала записи; restricted=false если ограничения нет
func datePredicate(c Criteria) (func(time.Time) bool, bool) {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	now := c.Now.In(loc)
	today := startOfDay(now)

	switch c.Date {
	case DateToday:
		return within(today, today.AddDate(0, 0, 1), loc), true
	case DateTomorrow:
		tomorrow := today.AddDate(0, 0, 1)
		return within(tomorrow, tomorrow.AddDate(0, 0, 1), loc), true
	case DateThisWeek:
		// неделя с понедельника по воскресенье
		offset := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		return within(monday, monday.AddDate(0, 0, 7), loc), true
	case DateThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		return within(first, first.AddDate(0, 1, 0), loc), true
	case DateCustom:
		return customRange(c.From, c.To, loc)
	default:
		return nil, false
	}
}

func customRange(from, to string, loc *time.Location) (func(time.Time) bool, bool) {
	start, hasStart := parseDay(from, loc)
	end, hasEnd := parseDay(to, loc)
	if !hasStart && !hasEnd {
		return nil, false
	}

	return func(t time.Time) bool {
		local := t.In(loc)
		if hasStart && local.Before(start) {
			return false
		}
		// верхняя граница: 23:59:59 последнего дня включительно
		if hasEnd && local.After(end.AddDate(0, 0, 1).Add(-time.Second)) {
			return false
		}
		return true
	}, true
}

// within проверяет принадлежность полуинтервалу [from, to)
func within(from, to time.Time, loc *time.Location) func(time.Time) bool {
	return func(t time.Time) bool {
		local := t.In(loc)
		return !local.Before(from) && local.Before(to)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseDay(raw string, loc *time.Location) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(domain.DateFormat, v, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
