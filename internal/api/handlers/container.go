package handlers

import (
	"github.com/apptrackhq/apptrack-go/internal/application"
)

type Handlers struct {
	Job *JobHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Job: NewJobHandler(svc.Job),
	}
}
