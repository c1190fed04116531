package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/access"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/middleware"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/response"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/service"
)

// BrowseHandler serves the public content hierarchy. Departments, courses and
// classes are world-readable; section listings are filtered per caller.
type BrowseHandler struct {
	contentService *service.ContentService
	accessService  *service.AccessService
}

// NewBrowseHandler creates a new BrowseHandler.
func NewBrowseHandler(contentService *service.ContentService, accessService *service.AccessService) *BrowseHandler {
	return &BrowseHandler{
		contentService: contentService,
		accessService:  accessService,
	}
}

// ListDepartments godoc
// GET /api/v1/browse/departments
func (h *BrowseHandler) ListDepartments(c *gin.Context) {
	page, perPage := pageParams(c)

	departments, total, err := h.contentService.ListDepartments(c.Request.Context(), page, perPage)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"departments": departments}, buildPagination(page, perPage, total))
}

// ListCourses godoc
// GET /api/v1/browse/departments/:department_id/courses
func (h *BrowseHandler) ListCourses(c *gin.Context) {
	departmentID, err := uuid.Parse(c.Param("department_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	page, perPage := pageParams(c)

	courses, total, err := h.contentService.ListCourses(c.Request.Context(), departmentID, page, perPage)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"courses": courses}, buildPagination(page, perPage, total))
}

// ListClasses godoc
// GET /api/v1/browse/courses/:course_id/classes
func (h *BrowseHandler) ListClasses(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("course_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	page, perPage := pageParams(c)

	classes, total, err := h.contentService.ListClasses(c.Request.Context(), courseID, page, perPage)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"classes": classes}, buildPagination(page, perPage, total))
}

// ListSections godoc
// GET /api/v1/browse/classes/:class_id/sections
// Returns only the sections visible to the caller.
func (h *BrowseHandler) ListSections(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("class_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	perms, ok := h.callerPermissions(c)
	if !ok {
		return
	}

	sections, err := h.contentService.ListSections(c.Request.Context(), classID, perms)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// GetSection godoc
// GET /api/v1/browse/sections/:section_id
func (h *BrowseHandler) GetSection(c *gin.Context) {
	sectionID, err := uuid.Parse(c.Param("section_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	perms, ok := h.callerPermissions(c)
	if !ok {
		return
	}

	section, err := h.contentService.GetSection(c.Request.Context(), sectionID, perms)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"section": section})
}

// callerPermissions resolves the caller's permissions, writing the error
// response itself when resolution fails.
func (h *BrowseHandler) callerPermissions(c *gin.Context) (access.Permissions, bool) {
	perms, err := h.accessService.Resolve(c.Request.Context(), middleware.GetPrincipalID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// Token subject no longer exists in the store.
			response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		} else {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return access.Permissions{}, false
	}
	return perms, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

func buildPagination(page, perPage, total int) *response.Pagination {
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(perPage))),
	}
}
