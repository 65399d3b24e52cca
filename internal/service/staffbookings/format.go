package staffbookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const serviceNameSeparator = ", "

// formatDuration форматирует длительность как "1h 30m", "45m" или "2h"
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Minute) / time.Minute)
	hours, minutes := total/60, total%60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// joinServiceNames склеивает названия успешно полученных услуг
func joinServiceNames(lookups []domain.ServiceLookup) string {
	names := make([]string, 0, len(lookups))
	for _, l := range lookups {
		if l.Outcome != domain.LookupResolved || l.Service == nil {
			continue
		}
		if name := l.Service.DisplayName(); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, serviceNameSeparator)
}
