package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/apptrackhq/apptrack-go/internal/application"
	"github.com/apptrackhq/apptrack-go/internal/config"
	"github.com/apptrackhq/apptrack-go/internal/domain/jobapp"
	"github.com/apptrackhq/apptrack-go/pkg/response"
	"github.com/apptrackhq/apptrack-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

// JobHandler handles job application HTTP endpoints.
type JobHandler struct {
	svc *application.JobService
}

// NewJobHandler creates a new job application handler.
func NewJobHandler(svc *application.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// CreateJob handles POST /api/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var input jobapp.CreateJobApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.KindValidation, "invalid payload: "+err.Error()))
		return
	}

	ownerID, err := utils.OwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.KindValidation, "unauthorized"))
		return
	}

	app, err := h.svc.Create(ownerID, input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success("job application created", app))
}

// ListJobs handles GET /api/jobs with filter, pagination and sort params.
func (h *JobHandler) ListJobs(c *gin.Context) {
	ownerID, err := utils.OwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.KindValidation, "unauthorized"))
		return
	}

	page, err := utils.ParseQueryIntParam(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid query parameters",
			[]response.FieldError{{Field: "page", Message: "page must be an integer"}}))
		return
	}
	limit, err := utils.ParseQueryIntParam(c, "limit", jobapp.DefaultPageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid query parameters",
			[]response.FieldError{{Field: "limit", Message: "limit must be an integer"}}))
		return
	}

	filter := jobapp.ListFilter{
		Status:   jobapp.Status(c.Query("status")),
		Company:  c.Query("company"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		c.JSON(http.StatusBadRequest, response.ValidationFailed("invalid query parameters",
			[]response.FieldError{{Field: "status", Message: "unknown status value"}}))
		return
	}

	opts := jobapp.ListOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	result, err := h.svc.List(ownerID, filter, opts)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("success", response.ListData{
		Items:      result.Items,
		Pagination: response.NewPagination(result.Page, result.Limit, result.Total),
	}))
}

// GetJob handles GET /api/jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	ownerID, err := utils.OwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.KindValidation, "unauthorized"))
		return
	}

	app, err := h.svc.Get(ownerID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("success", app))
}

// UpdateJob handles PUT /api/jobs/:id (full or partial update).
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var input jobapp.UpdateJobApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.KindValidation, "invalid payload: "+err.Error()))
		return
	}

	ownerID, err := utils.OwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.KindValidation, "unauthorized"))
		return
	}

	app, err := h.svc.Update(ownerID, c.Param("id"), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("job application updated", app))
}

// DeleteJob handles DELETE /api/jobs/:id.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	ownerID, err := utils.OwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(response.KindValidation, "unauthorized"))
		return
	}

	id := c.Param("id")
	if err := h.svc.Delete(ownerID, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("job application deleted", gin.H{"id": id, "deleted": true}))
}

// writeError maps domain errors onto the uniform envelope.
func (h *JobHandler) writeError(c *gin.Context, err error) {
	var verr *jobapp.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]response.FieldError, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, response.FieldError{Field: f.Field, Message: f.Message})
		}
		c.JSON(http.StatusBadRequest, response.ValidationFailed("validation failed", fields))
	case errors.Is(err, jobapp.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(response.KindNotFound, jobapp.ErrNotFound.Error()))
	case errors.Is(err, jobapp.ErrDuplicate):
		c.JSON(http.StatusConflict, response.Error(response.KindConflict, jobapp.ErrDuplicate.Error()))
	default:
		log.Printf("internal error: %v", err)
		msg := "internal server error"
		if !config.IsProduction() {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, response.Error(response.KindInternal, msg))
	}
}
