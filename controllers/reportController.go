package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"civicsync-reporter/models"
	"civicsync-reporter/pagination"
	"civicsync-reporter/ranking"
	"civicsync-reporter/repository"
	"civicsync-reporter/storage"
	"civicsync-reporter/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const requestTimeout = 10 * time.Second

var registerValidators sync.Once

// ReportController serves report listing, paging, the map and submissions
type ReportController struct {
	store    repository.ReportStore
	images   storage.ImageStore
	pageSize int
}

func NewReportController(store repository.ReportStore, images storage.ImageStore, pageSize int) *ReportController {
	registerValidators.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := v.RegisterValidation("reporttype", func(fl validator.FieldLevel) bool {
				return models.ReportType(fl.Field().String()).Valid()
			}); err != nil {
				slog.Error("register reporttype validator", "error", err)
			}
		}
	})

	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &ReportController{store: store, images: images, pageSize: pageSize}
}

func (rc *ReportController) fetchSorted(c *gin.Context) ([]models.Report, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	reports, err := rc.store.FetchAll(ctx)
	if err != nil {
		slog.Error("fetch reports", "error", err)
		utils.InternalError(c, "Failed to retrieve reports")
		return nil, false
	}
	return ranking.ByPriority(reports), true
}

// ListReports returns every report ordered by priority
func (rc *ReportController) ListReports(c *gin.Context) {
	sorted, ok := rc.fetchSorted(c)
	if !ok {
		return
	}
	if sorted == nil {
		sorted = []models.Report{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": sorted})
}

// PaginatedReports returns one page of the priority-ordered reports
func (rc *ReportController) PaginatedReports(c *gin.Context) {
	pageNumber, err := pagination.ParsePage(c.DefaultQuery("page", "1"))
	if err != nil {
		var verr *pagination.ValidationError
		if errors.As(err, &verr) {
			utils.ValidationFailed(c, verr.Error())
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	sorted, ok := rc.fetchSorted(c)
	if !ok {
		return
	}

	page := pagination.Paginate(sorted, pageNumber, rc.pageSize)
	c.JSON(http.StatusOK, gin.H{
		"reports":       page.Items,
		"current_page":  page.CurrentPage,
		"total_pages":   page.TotalPages,
		"total_reports": page.TotalItems,
		"page_size":     page.PageSize,
		"has_next":      page.HasNext,
		"has_prev":      page.HasPrev,
	})
}

// ReportOptions lists the choices offered on the submission form
func (rc *ReportController) ReportOptions(c *gin.Context) {
	types := make([]gin.H, 0, len(models.ReportTypes()))
	for _, t := range models.ReportTypes() {
		types = append(types, gin.H{"value": t, "label": t.DisplayName()})
	}
	c.JSON(http.StatusOK, gin.H{
		"report_types": types,
		"priorities":   models.Priorities(),
	})
}

// MapView returns every report as a map marker
func (rc *ReportController) MapView(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	reports, err := rc.store.FetchAll(ctx)
	if err != nil {
		slog.Error("fetch reports for map", "error", err)
		utils.InternalError(c, "Failed to retrieve reports")
		return
	}
	c.JSON(http.StatusOK, models.NewMapView(reports))
}

type createReportInput struct {
	ReportType  models.ReportType `json:"report_type" form:"report_type" binding:"required,reporttype"`
	Description string            `json:"description" form:"description" binding:"required,max=200"`
	Latitude    *float64          `json:"latitude" form:"latitude" binding:"required,latitude"`
	Longitude   *float64          `json:"longitude" form:"longitude" binding:"required,longitude"`
	Priority    *int              `json:"priority" form:"priority" binding:"omitempty,min=1,max=10"`
}

// CreateReport accepts a JSON body or a multipart form with an optional image
func (rc *ReportController) CreateReport(c *gin.Context) {
	var input createReportInput
	if err := c.ShouldBind(&input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.ValidationFailed(c, verrs.Error())
			return
		}
		utils.BadRequest(c, "Invalid request format")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	image := models.FallbackImage
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		header, err := c.FormFile("image")
		switch {
		case errors.Is(err, http.ErrMissingFile):
			// keep the fallback image
		case err != nil:
			utils.BadRequest(c, "Invalid image upload")
			return
		default:
			ref, err := rc.images.Save(ctx, header)
			if err != nil {
				var verr *storage.ValidationError
				if errors.As(err, &verr) {
					utils.BadRequest(c, verr.Error())
					return
				}
				slog.Error("store report image", "error", err)
				utils.InternalError(c, "Failed to store image")
				return
			}
			image = ref
		}
	}

	priority := models.DefaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}

	report := models.Report{
		ReportType:     input.ReportType,
		Description:    input.Description,
		Latitude:       *input.Latitude,
		Longitude:      *input.Longitude,
		CreatedAt:      time.Now().UTC(),
		ImageReference: image,
		Priority:       priority,
	}

	if err := rc.store.Create(ctx, &report); err != nil {
		slog.Error("create report", "error", err)
		utils.InternalError(c, "Failed to create report")
		return
	}

	slog.Info("report created", "id", report.ID.Hex(), "type", report.ReportType, "user_id", c.GetString("user_id"))
	c.JSON(http.StatusCreated, report)
}
