package helper

import (
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/model"
	"catering_manager/utils"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var resyncScheduler gocron.Scheduler
var reminderScheduler *cron.Cron

// StartBookedDatesResyncScheduler rebuilds the booked-dates projection once a
// day. The projection is already maintained on the acceptance write path;
// the nightly rebuild just guarantees drift never survives a day.
func StartBookedDatesResyncScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	resyncScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			if err := RebuildBookedDates(database.DB); err != nil {
				log.Printf("booked-dates resync failed: %v", err)
				return
			}
			log.Println("booked-dates projection resynced")
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("booked-dates resync scheduler started (00:05 daily)")
}

func StopBookedDatesResyncScheduler() {
	if resyncScheduler != nil {
		_ = resyncScheduler.Shutdown()
	}
}

// StartPaymentReminderScheduler nags customers holding accepted but unpaid
// reservations, hourly.
func StartPaymentReminderScheduler() {
	reminderScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reminderScheduler.AddFunc("0 * * * *", sendPaymentReminders)
	if err != nil {
		log.Printf("failed to start payment reminder scheduler: %v", err)
		return
	}

	reminderScheduler.Start()
	log.Println("payment reminder scheduler started (hourly)")
}

func StopPaymentReminderScheduler() {
	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}
}

func sendPaymentReminders() {
	db := database.DB

	var due []model.Reservation
	if err := db.Preload("Customer").
		Where("status = ? AND payment_required = true AND is_paid = false AND event_date >= ?",
			constants.RESERVATION_ACCEPTED, time.Now().Format("2006-01-02")).
		Find(&due).Error; err != nil {
		log.Printf("payment reminder query failed: %v", err)
		return
	}

	for _, r := range due {
		if r.Customer == nil {
			continue
		}
		utils.SendPaymentReminderEmail(r.Customer.Email, utils.PaymentRequiredData{
			ContactName:   r.ContactName,
			ReservationNo: r.ReservationNo,
			EventDate:     r.EventDate.String(),
			TimeSlot:      r.TimeSlot,
			TotalAmount:   r.TotalAmount,
			DetailLink:    fmt.Sprintf("%s/reservations/%d", os.Getenv("APP_URL"), r.ReservationNo),
		})
	}

	if len(due) > 0 {
		log.Printf("sent %d payment reminders", len(due))
	}
}
