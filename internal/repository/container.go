package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Application ApplicationRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Application: NewApplicationRepo(db),
		db:          db,
	}
}
