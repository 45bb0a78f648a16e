package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tusharnayak1515/users-data-backend/internal/service"
)

// DataHandler wires the data record routes to the DataService.
type DataHandler struct {
	dataService *service.DataService
}

// NewDataHandler creates a DataHandler.
func NewDataHandler(dataService *service.DataService) *DataHandler {
	return &DataHandler{dataService: dataService}
}

// DataRequest is the body of the data create and edit routes.
type DataRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Domain string `json:"domain"`
}

func (r DataRequest) toInput() service.DataInput {
	return service.DataInput{Name: r.Name, Email: r.Email, Phone: r.Phone, Domain: r.Domain}
}

// recordID parses the :id path parameter. An id that cannot name a
// stored record is reported the same way as a missing record.
func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, service.ErrDataNotFound.Error())
		return 0, false
	}
	return uint(id), true
}

// List handles GET /api/data/. Returns at most the fixed page size; an
// empty page is a success, an unknown caller is a 404.
func (h *DataHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}

	allData, err := h.dataService.List(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"allData": allData})
}

// Create handles POST /api/data/add-data.
func (h *DataHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}

	var req DataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateData: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input format")
		return
	}

	profile, allData, err := h.dataService.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"profile": profile, "allData": allData})
}

// Edit handles PUT /api/data/edit-data/:id.
func (h *DataHandler) Edit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}
	dataID, ok := recordID(c)
	if !ok {
		return
	}

	var req DataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.EditData: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input format")
		return
	}

	allData, err := h.dataService.Edit(c.Request.Context(), userID, dataID, req.toInput())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"allData": allData})
}

// Delete handles DELETE /api/data/delete-data/:id.
func (h *DataHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Please authenticate using a valid token")
		return
	}
	dataID, ok := recordID(c)
	if !ok {
		return
	}

	profile, allData, err := h.dataService.Delete(c.Request.Context(), userID, dataID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, gin.H{"profile": profile, "allData": allData})
}
