package handlers

import (
	"net/http"
	"strconv"

	"resourcedir/internal/errs"
	"resourcedir/internal/models"
	"resourcedir/internal/services"
	"resourcedir/internal/utils"
	"resourcedir/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceHandler serves every resource kind through one generic set of
// handlers; route wiring binds each kind's paths to these closures.
type ResourceHandler struct {
	service services.ResourceService
	logger  *logger.Logger
}

func NewResourceHandler(service services.ResourceService, log *logger.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		logger:  log,
	}
}

// List handles the browse query: city/state filters, optional proximity
// search, pagination, and descending sort.
func (h *ResourceHandler) List(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := parseListFilters(c)

		result, err := h.service.List(c.Request.Context(), kind, filters)
		if err != nil {
			h.renderError(c, kind, err)
			return
		}

		utils.SuccessResponseWithMeta(c, "", result.Data, &utils.Meta{Pagination: result.Pagination})
	}
}

// Search handles keyword search, capped and sorted by rating.
func (h *ResourceHandler) Search(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("q")
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultSearchLimit)))

		resources, err := h.service.Search(c.Request.Context(), kind, keyword, limit)
		if err != nil {
			h.renderError(c, kind, err)
			return
		}

		utils.SuccessResponseWithMeta(c, "", resources, &utils.Meta{Count: len(resources)})
	}
}

func (h *ResourceHandler) GetByID(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.parseID(c, kind)
		if !ok {
			return
		}

		resource, err := h.service.Get(c.Request.Context(), kind, id)
		if err != nil {
			h.renderError(c, kind, err)
			return
		}

		utils.SuccessResponse(c, "", resource)
	}
}

func (h *ResourceHandler) Create(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var resource models.Resource
		if err := c.ShouldBindJSON(&resource); err != nil {
			utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
			return
		}

		created, err := h.service.Create(c.Request.Context(), kind, &resource)
		if err != nil {
			h.renderError(c, kind, err)
			return
		}

		utils.CreatedResponse(c, kind.DisplayName()+" created successfully", created)
	}
}

func (h *ResourceHandler) Update(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.parseID(c, kind)
		if !ok {
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
			return
		}

		updated, err := h.service.Update(c.Request.Context(), kind, id, fields)
		if err != nil {
			h.renderError(c, kind, err)
			return
		}

		utils.SuccessResponse(c, kind.DisplayName()+" updated successfully", updated)
	}
}

func (h *ResourceHandler) Delete(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.parseID(c, kind)
		if !ok {
			return
		}

		if err := h.service.Delete(c.Request.Context(), kind, id); err != nil {
			h.renderError(c, kind, err)
			return
		}

		utils.SuccessResponse(c, kind.DisplayName()+" deleted successfully", nil)
	}
}

func (h *ResourceHandler) parseID(c *gin.Context, kind models.Kind) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+kind.DisplayName()+" ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *ResourceHandler) renderError(c *gin.Context, kind models.Kind, err error) {
	if ve, ok := errs.AsValidation(err); ok {
		utils.ValidationErrorResponse(c, ve.Fields)
		return
	}
	if errs.IsNotFound(err) {
		utils.NotFoundResponse(c, kind.DisplayName())
		return
	}
	if errs.IsInvalidArgument(err) {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	h.logger.WithError(err).WithField("kind", kind.String()).Error("request failed")
	utils.ErrorResponse(c, http.StatusInternalServerError, "STORE_FAILURE", utils.ErrInternalServer)
}

func parseListFilters(c *gin.Context) *services.ListFilters {
	filters := &services.ListFilters{
		City:   c.Query("city"),
		State:  c.Query("state"),
		SortBy: c.DefaultQuery("sortBy", utils.DefaultSortField),
	}

	filters.RadiusKM, _ = strconv.ParseFloat(c.DefaultQuery("radius", "50"), 64)
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageSize)))
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))

	// A lone lat or lng is ignored; both must parse for the geo branch.
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			filters.Lat = &lat
			filters.Lng = &lng
		}
	}

	return filters
}
