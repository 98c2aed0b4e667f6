package lib

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var scheduler gocron.Scheduler

func NewScheduler(s gocron.Scheduler) {
	scheduler = s
}

func GetScheduler() (gocron.Scheduler, error) {
	if scheduler != nil {
		return scheduler, nil
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Error initializing Scheduler: %s\n", err.Error())
		return nil, err
	}
	sched.Start()
	scheduler = sched
	return sched, nil
}

// CreateCountdownJob registers a job invoking handler once per second, used
// for the booking reservation countdown.
func CreateCountdownJob(handler func()) (gocron.Job, error) {
	sched, err := GetScheduler()
	if err != nil {
		return nil, err
	}
	j, err := sched.NewJob(
		gocron.DurationJob(time.Second),
		gocron.NewTask(handler),
	)
	if err != nil {
		return nil, err
	}
	log.Printf("New Job: %s\n", j.ID().String())
	return j, nil
}

func RemoveJob(j gocron.Job) {
	if scheduler == nil || j == nil {
		return
	}
	if err := scheduler.RemoveJob(j.ID()); err != nil {
		log.Printf("Error removing job [%s]: %s\n", j.ID().String(), err.Error())
	}
}
