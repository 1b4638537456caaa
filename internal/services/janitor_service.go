package services

import (
	"Bagged/internal/config"
	"errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
	"time"
)

// Janitor hard-deletes cuboids and bags whose soft delete is older than the
// configured retention.
type Janitor struct {
	cuboidService CuboidService
	bagService    BagService
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
	now           func() time.Time
}

func NewJanitorService(
	cuboidService CuboidService,
	bagService BagService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		cuboidService: cuboidService,
		bagService:    bagService,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
		now:           time.Now,
	}
}

func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryStart() {
		return errors.New("cleaning is in progress")
	}

	go func() {
		defer j.finish()
		j.startClean(true)
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() error {
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.tryStart() {
			return
		}
		defer j.finish()
		j.startClean(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to schedule cleaning job")
		return err
	}
	j.cron.Start()
	j.logService.Log.WithFields(logrus.Fields{
		"job":  "clean",
		"cron": cronSchedule,
	}).Debug("cleaning job scheduled")
	return nil
}

func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) tryStart() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

// startClean purges cuboids before bags so no purged bag is still referenced.
func (j *Janitor) startClean(forced bool) int {
	cutoff := j.now().Add(-j.configuration.Server.CleanConfig.Retention)
	logFields := logrus.Fields{
		"job":    "clean",
		"status": "start",
		"cutoff": cutoff.Format(time.RFC3339),
	}
	if forced {
		logFields["status"] = "forced"
	}
	j.logService.Log.WithFields(logFields).Debug("getting deleted cuboids and bags")

	var deletedCount int
	cuboids, err := j.cuboidService.FindDeleted(cutoff)
	if err != nil {
		j.logError(err, "Failed to find deleted cuboids")
	}
	for i := range cuboids {
		if err := j.cuboidService.HardDelete(&cuboids[i]); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"error":  err.Error(),
				"cuboid": cuboids[i].ID,
			}).Error("Failed to purge cuboid")
			continue
		}
		deletedCount++
	}

	bags, err := j.bagService.FindDeleted(cutoff)
	if err != nil {
		j.logError(err, "Failed to find deleted bags")
	}
	for i := range bags {
		if err := j.bagService.HardDelete(&bags[i]); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "clean",
				"status": "error",
				"error":  err.Error(),
				"bag":    bags[i].ID,
			}).Error("Failed to purge bag")
			continue
		}
		deletedCount++
	}

	if deletedCount > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  deletedCount,
		}).Info("cleaning job finished")
	}
	return deletedCount
}

func (j *Janitor) logError(err error, message string) {
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "error",
		"error":  err.Error(),
	}).Error(message)
}
