package cron

import (
	"log"
	"strconv"
	"time"

	"coursehub/config"
	controllers "coursehub/controllers/course"
	"coursehub/database"
	courseModels "coursehub/models/course"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the background maintenance jobs
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// Start registers and starts all jobs
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(config.AppConfig.ReconcileCron, reconcileProgress)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Scheduler started.")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped.")
}

func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileProgress walks active enrollments and rewrites any cached
// progress_pct that drifted from the live computation. Drift happens when a
// grading-path refresh failed or when lessons were added to a course after
// grading.
func reconcileProgress() {
	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("status = ? AND is_deleted = ?", courseModels.EnrollActive, false).Find(&enrollments).Error; err != nil {
		logScheduler("Error fetching active enrollments: " + err.Error())
		return
	}

	fixed := 0
	for _, enrollment := range enrollments {
		pct := controllers.ComputeCourseProgress(db, enrollment.UserID, enrollment.CourseID)
		if pct != enrollment.ProgressPct {
			controllers.RefreshEnrollmentProgress(db, enrollment.UserID, enrollment.CourseID)
			fixed++
		}
	}

	if fixed > 0 {
		logScheduler("Reconciled progress: " + strconv.Itoa(fixed) + " enrollments updated")
	}
}
