package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"pet-daycare-calendar/internal/domain/calendar"
	"pet-daycare-calendar/internal/platform/logger"
)

// ReminderJob barre la agenda y loguea un digest de eventos de salud
// vencidos y próximos. Es el gancho para notificaciones futuras; por ahora
// el digest en el log es el entregable.
type ReminderJob struct {
	svc        *calendar.Service
	log        logger.Logger
	windowDays int

	cron *cron.Cron
}

func NewReminderJob(svc *calendar.Service, log logger.Logger, windowDays int) *ReminderJob {
	if windowDays <= 0 {
		windowDays = calendar.DefaultUpcomingWindowDays
	}
	return &ReminderJob{
		svc:        svc,
		log:        log.With(map[string]any{"job": "reminders"}),
		windowDays: windowDays,
	}
}

// Start agenda el barrido con el spec cron dado y arranca el scheduler.
func (j *ReminderJob) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, j.Run); err != nil {
		return err
	}
	c.Start()
	j.cron = c
	return nil
}

// Stop frena el scheduler y espera a que termine el run en curso.
func (j *ReminderJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}

// Run ejecuta un barrido. Mira desde 30 días atrás (para juntar vencidos
// recientes) hasta el fin de la ventana de próximos.
func (j *ReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, j.windowDays)

	events, err := j.svc.GetEvents(ctx, from, to)
	if err != nil {
		j.log.Error("reminder sweep failed", map[string]any{"error": err.Error()})
		return
	}

	var overdue, upcoming int
	for _, e := range events {
		switch e.Status {
		case calendar.StatusOverdue:
			overdue++
			j.log.Warn("health event overdue", map[string]any{
				"event_id": calendar.FormatEventID(e.ID),
				"title":    e.Title,
				"pet_id":   e.PetID,
				"date":     e.Start.Format("2006-01-02"),
			})
		case calendar.StatusUpcoming:
			upcoming++
		}
	}

	j.log.Info("reminder sweep done", map[string]any{
		"events":   len(events),
		"overdue":  overdue,
		"upcoming": upcoming,
	})
}
