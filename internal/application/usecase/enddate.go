package usecase

import (
	"time"

	"github.com/matimeline/eventmanager-api/internal/domain"
	"github.com/matimeline/eventmanager-api/internal/domain/model"
)

// calculateEndDate deriva la fecha de fin de un evento. Para eventos de tipo
// "duration" con valor, suma la duración a la fecha de inicio según la unidad;
// para el resto la fecha de fin es la de inicio.
func calculateEndDate(eventType string, durationValue *int, durationUnit string, startDate time.Time) (*time.Time, error) {
	if eventType == model.EventTypeDuration && durationValue != nil {
		var end time.Time
		switch durationUnit {
		case "days":
			end = startDate.AddDate(0, 0, *durationValue)
		case "weeks":
			end = startDate.AddDate(0, 0, 7**durationValue)
		case "months":
			end = startDate.AddDate(0, *durationValue, 0)
		case "years":
			end = startDate.AddDate(*durationValue, 0, 0)
		default:
			return nil, domain.ErrInvalidInput
		}
		return &end, nil
	}
	end := startDate
	return &end, nil
}
