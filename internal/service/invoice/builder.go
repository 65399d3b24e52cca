package invoice

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Build считает итог по выбранным услугам для салона и времени начала.
// Идентификаторы, которых нет в каталоге, в итог не входят и попадают в MissingServiceIDs.
// Отсутствующие цена и длительность считаются нулем; CompletionTime не задается без времени начала и без найденных услуг.
func Build(serviceIDs []string, catalog []domain.Service, startTime *time.Time) domain.Invoice {
	index := make(map[string]int, len(catalog))
	for i := range catalog {
		index[strconv.FormatInt(catalog[i].ID, 10)] = i
	}

	inv := domain.Invoice{
		Services:          make([]domain.Service, 0, len(serviceIDs)),
		MissingServiceIDs: make([]string, 0),
	}

	for _, raw := range serviceIDs {
		id := strings.TrimSpace(raw)
		i, ok := index[id]
		if !ok {
			inv.MissingServiceIDs = append(inv.MissingServiceIDs, id)
			continue
		}

		svc := catalog[i]
		inv.Services = append(inv.Services, svc)
		inv.TotalPrice += svc.PriceValue()
		inv.TotalDurationMinutes += svc.DurationValue()
	}

	if startTime != nil && !startTime.IsZero() && len(inv.Services) > 0 {
		completion := startTime.Add(time.Duration(inv.TotalDurationMinutes) * time.Minute)
		inv.CompletionTime = &completion
	}

	return inv
}
