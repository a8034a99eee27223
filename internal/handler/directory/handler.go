package directory

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/service/directory"
	"github.com/medicore/hospital-api/pkg/httputil"
)

type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListDepartments(c *gin.Context) {
	departments, err := h.service.ListDepartments(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// ListDoctors returns all doctors, or the department subset when a
// departmentId query parameter is present (the booking form's dependent
// selector).
func (h *Handler) ListDoctors(c *gin.Context) {
	deptParam := c.Query("departmentId")
	if deptParam == "" {
		doctors, err := h.service.ListDoctors(c.Request.Context())
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, doctors)
		return
	}

	departmentID, err := strconv.ParseInt(deptParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departmentId"})
		return
	}

	doctors, err := h.service.ListDoctorsByDepartment(c.Request.Context(), departmentID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor ID"})
		return
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *Handler) ListAmbulances(c *gin.Context) {
	ambulances, err := h.service.ListAmbulances(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ambulances)
}

func (h *Handler) ListBloodBank(c *gin.Context) {
	groups, err := h.service.ListBloodBank(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *Handler) CreateDepartment(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.service.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, "department created", department)
}

func (h *Handler) UpdateDepartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department ID"})
		return
	}

	var req model.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	department, err := h.service.UpdateDepartment(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, department)
}

func (h *Handler) DeleteDepartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department ID"})
		return
	}

	if err := h.service.DeleteDepartment(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.service.CreateDoctor(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, "doctor created", doctor)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor ID"})
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := h.service.UpdateDoctor(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, doctor)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid doctor ID"})
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) CreateAmbulance(c *gin.Context) {
	var req model.CreateAmbulanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ambulance, err := h.service.CreateAmbulance(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, "ambulance created", ambulance)
}

func (h *Handler) DeleteAmbulance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ambulance ID"})
		return
	}

	if err := h.service.DeleteAmbulance(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) UpdateBloodGroup(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blood group ID"})
		return
	}

	var req model.UpdateBloodGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Units == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "units is required"})
		return
	}

	if err := h.service.UpdateBloodGroupUnits(c.Request.Context(), id, *req.Units); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	r.GET("/departments", h.ListDepartments)
	r.GET("/doctors", h.ListDoctors)
	r.GET("/doctors/:id", h.GetDoctor)
	r.GET("/services", h.ListServices)
	r.GET("/ambulances", h.ListAmbulances)
	r.GET("/bloodbank", h.ListBloodBank)

	admin := r.Group("", auth.Authenticate(), auth.RequireRole(model.RoleAdmin))
	{
		admin.POST("/departments", h.CreateDepartment)
		admin.PUT("/departments/:id", h.UpdateDepartment)
		admin.DELETE("/departments/:id", h.DeleteDepartment)
		admin.POST("/doctors", h.CreateDoctor)
		admin.PUT("/doctors/:id", h.UpdateDoctor)
		admin.DELETE("/doctors/:id", h.DeleteDoctor)
		admin.POST("/ambulances", h.CreateAmbulance)
		admin.DELETE("/ambulances/:id", h.DeleteAmbulance)
		admin.PUT("/bloodbank/:id", h.UpdateBloodGroup)
	}
}
