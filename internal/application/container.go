package application

import (
	"github.com/apptrackhq/apptrack-go/internal/repository"
)

type Services struct {
	Job *JobService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Job: NewJobService(repos),
	}
}
