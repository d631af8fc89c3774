package cron

import (
	"context"
	"os"
	"sync"

	cronv3 "github.com/robfig/cron/v3"

	cron_config "github.com/customeros/socialstack/internal/cron/config"
	"github.com/customeros/socialstack/internal/logger"
	"github.com/customeros/socialstack/internal/metrics"
	"github.com/customeros/socialstack/internal/repository"
	"github.com/customeros/socialstack/internal/tracing"
)

const (
	// GroupStore is the group for jobs reading the entity store
	GroupStore = "store"
)

// LOCK MANAGEMENT
var jobLocks = struct {
	sync.Mutex
	locks map[string]*sync.Mutex
}{
	locks: map[string]*sync.Mutex{
		GroupStore: new(sync.Mutex),
	},
}

type StatsProvider interface {
	Stats() repository.Stats
}

type CronManager struct {
	cfg    *cron_config.Config
	log    logger.Logger
	cron   *cronv3.Cron
	jobIDs map[string]cronv3.EntryID
	store  StatsProvider
}

func NewCronManager(cfg *cron_config.Config, log logger.Logger, store StatsProvider) *CronManager {
	return &CronManager{
		cfg:    cfg,
		log:    log,
		jobIDs: make(map[string]cronv3.EntryID),
		store:  store,
	}
}

// Stop gracefully stops the cron manager
func (cm *CronManager) Stop() {
	if cm.cron != nil {
		cm.log.Info("Stopping cron manager")
		ctx := cm.cron.Stop()
		// Wait for jobs to finish
		<-ctx.Done()
	}
}

// registerJobs adds all cron jobs to the scheduler. An empty schedule disables a job.
func (cm *CronManager) registerJobs(c *cronv3.Cron) error {
	if cm.cfg.CronScheduleHeartbeat != "" {
		podName := os.Getenv("POD_NAME")
		if podName == "" {
			podName = "local"
		}
		id, err := c.AddFunc(cm.cfg.CronScheduleHeartbeat, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			cm.log.Infof("Cron heartbeat from pod: %s", podName)
		})
		if err != nil {
			return err
		}
		cm.jobIDs["heartbeat"] = id
		cm.log.Infof("Registered heartbeat job with schedule: %s", cm.cfg.CronScheduleHeartbeat)
	}

	if cm.cfg.CronScheduleStoreStats != "" {
		id, err := c.AddFunc(cm.cfg.CronScheduleStoreStats, func() {
			defer tracing.RecoverAndLogToJaeger(cm.log)
			jobLocks.locks[GroupStore].Lock()
			defer jobLocks.locks[GroupStore].Unlock()
			cm.recordStoreStats()
		})
		if err != nil {
			return err
		}
		cm.jobIDs["store_stats"] = id
		cm.log.Infof("Registered store stats job with schedule: %s", cm.cfg.CronScheduleStoreStats)
	}

	return nil
}

// StartCron initializes and starts the cron scheduler
func (cm *CronManager) StartCron() error {
	cm.log.Info("Starting cron manager")
	// Create a new cron with seconds field enabled and panic recovery
	cronOptions := []cronv3.Option{
		cronv3.WithSeconds(),
		cronv3.WithChain(
			cronv3.SkipIfStillRunning(cronv3.DefaultLogger), // Skip if still running
			cronv3.Recover(cronv3.DefaultLogger),            // Default recovery as backup
		),
	}
	c := cronv3.New(cronOptions...)
	if err := cm.registerJobs(c); err != nil {
		return err
	}
	c.Start()
	cm.cron = c
	return nil
}

func (cm *CronManager) recordStoreStats() {
	span, _ := tracing.StartTracerSpan(context.Background(), "CronManager.recordStoreStats")
	defer span.Finish()
	tracing.TagComponentCronJob(span)

	stats := cm.store.Stats()
	metrics.SetStoreEntities(stats.Users, stats.Profiles, stats.Posts)
	span.LogKV("users", stats.Users, "profiles", stats.Profiles, "posts", stats.Posts)

	cm.log.Infof("Store stats: users=%d profiles=%d posts=%d", stats.Users, stats.Profiles, stats.Posts)
}
