package main

import (
	"StudyVault/config"
	"StudyVault/internal/bot"
	"StudyVault/internal/contextstore"
	"StudyVault/internal/repo"
	"StudyVault/internal/service"
	"StudyVault/internal/storage"
	"StudyVault/router"
	"StudyVault/utils"
	"context"
	"log"
)

// main initializes services, starts the bot, and serves the HTTP API.
func main() {
	config.InitConfig()
	repo.InitMongo()
	repo.InitRedis()
	utils.InitCacheManager()

	switch config.AppConfig.StorageBackend {
	case "gridfs":
		storage.InitGridFS(repo.Database)
	default:
		storage.InitMinio()
	}

	var contexts contextstore.Store
	if config.AppConfig.ContextStore == "redis" {
		contexts = contextstore.NewRedisStore(repo.Redis, config.AppConfig.ContextMaxAge)
	} else {
		contexts = contextstore.NewMemoryStore(config.AppConfig.ContextMaxAge)
	}

	var reminders service.ReminderScheduler
	if config.AppConfig.CalendarID != "" {
		scheduler, err := service.NewCalendarScheduler(context.Background())
		if err != nil {
			log.Printf("calendar disabled: %v", err)
		} else {
			reminders = scheduler
		}
	}

	coordinator := &service.Coordinator{
		Contexts:  contexts,
		Backend:   storage.Default,
		Records:   service.MongoRecordStore{},
		Reminders: reminders,
		Root:      config.AppConfig.RootFolder,
	}

	b, err := bot.New(coordinator)
	if err != nil {
		log.Fatalln("init bot fail:", err)
	}
	if err := b.Open(); err != nil {
		log.Fatalln("start bot fail:", err)
	}
	defer b.Close()

	router := router.InitRouter()
	router.Run(config.AppConfig.HTTPAddr)
}
