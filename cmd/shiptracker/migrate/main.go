package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shiptracker/internal/app/config"
	"shiptracker/internal/app/ds"
	"shiptracker/internal/app/dsn"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	// Порядок миграций: сначала users и ships, потом location_reports (FK)
	err = db.AutoMigrate(&ds.User{})
	if err != nil {
		logrus.Fatalf("error migrating users: %v", err)
	}
	err = db.AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}
	err = db.AutoMigrate(&ds.LocationReport{})
	if err != nil {
		logrus.Fatalf("error migrating location_reports: %v", err)
	}

	seedAdmin(db)

	logrus.Info("Database migration completed")
}

// seedAdmin создаёт учётную запись администратора, если её ещё нет.
// Логин и пароль берутся из ADMIN_LOGIN / ADMIN_PASSWORD.
func seedAdmin(db *gorm.DB) {
	login := os.Getenv("ADMIN_LOGIN")
	password := os.Getenv("ADMIN_PASSWORD")
	if login == "" || password == "" {
		logrus.Warn("ADMIN_LOGIN/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing ds.User
	err := db.Where("login = ?", login).First(&existing).Error
	if err == nil {
		logrus.Infof("admin user %q already exists", login)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Fatalf("error checking admin user: %v", err)
	}

	admin := ds.User{
		Login:    login,
		Password: password, // хэшируется хуком BeforeCreate
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		logrus.Fatalf("error creating admin user: %v", err)
	}
	logrus.Infof("admin user %q created", login)
}
