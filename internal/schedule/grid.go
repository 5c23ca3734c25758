package schedule

import (
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// GenerateSlots разбивает рабочий день [startHour, endHour) на слоты
// фиксированной ширины. Чистая детерминированная функция.
//
// Недопустимая гранулярность молча заменяется дефолтной (15 минут),
// а не отклоняется. Если endHour <= startHour, возвращается пустой список.
// Слоты полуоткрытые [start, start+granularity), без разрывов и пересечений.
func GenerateSlots(startHour, endHour, granularityMinutes int) []domain.TimeSlot {
	if !domain.IsValidGranularity(granularityMinutes) {
		granularityMinutes = domain.DefaultGranularityMinutes
	}

	if endHour <= startHour || startHour < 0 || endHour > 24 {
		return []domain.TimeSlot{}
	}

	startMinutes := startHour * 60
	endMinutes := endHour * 60

	slots := make([]domain.TimeSlot, 0, (endMinutes-startMinutes)/granularityMinutes)

	for cur := startMinutes; cur+granularityMinutes <= endMinutes; cur += granularityMinutes {
		slots = append(slots, domain.TimeSlot{
			Start:           minutesToTime(cur),
			End:             minutesToTime(cur + granularityMinutes),
			DurationMinutes: granularityMinutes,
		})
	}

	return slots
}

func minutesToTime(total int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}
