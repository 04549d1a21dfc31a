package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-allocator.com/task-allocator/internal/models"
)

func NewDatabase(dsn string) *gorm.DB {
	// TranslateError maps driver unique-constraint failures to
	// gorm.ErrDuplicatedKey, which the credential backend relies on.
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}, &model.User{}, &model.Credential{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
