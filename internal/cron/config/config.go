package cron_config

type Config struct {
	// Heartbeat check, every minute
	CronScheduleHeartbeat string `env:"CRON_SCHEDULE_HEARTBEAT" envDefault:"0 * * * * *"`
	// Store statistics snapshot, every 30 seconds
	CronScheduleStoreStats string `env:"CRON_SCHEDULE_STORE_STATS" envDefault:"*/30 * * * * *"`
}
