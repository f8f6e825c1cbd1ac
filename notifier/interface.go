package notifier

import (
	"github.com/aweist/leaguecal/models"
)

type Notifier interface {
	SendNotification(team string, entry models.ScheduleEntry) error
	GetType() string
}
