package api

import (
	"bytes"
	"net/http"
	"time"

	"bookingdesk/internal/domain"
	"bookingdesk/internal/export"
	"bookingdesk/internal/service/dashboard"
	"bookingdesk/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service dashboard.DashboardUseCase
	metrics *metrics.Metrics
}

func NewDashboardHandler(service dashboard.DashboardUseCase, m *metrics.Metrics) *DashboardHandler {
	return &DashboardHandler{service: service, metrics: m}
}

func (h *DashboardHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.view)
	router.PUT("/filters", h.updateFilters)
	router.PUT("/filters/status", h.updateStatusFilters)
	router.DELETE("/filters", h.clearFilters)
	router.DELETE("/filters/:id", h.removeFilter)
	router.PUT("/sort", h.updateSort)
	router.PUT("/page", h.updatePage)
	router.GET("/export", h.export)
}

type roomResponse struct {
	RoomNumber int `json:"roomNumber"`
	Adults     int `json:"adults"`
	Children   int `json:"children"`
	Infants    int `json:"infants"`
}

type bookingResponse struct {
	ID                   string         `json:"id"`
	AgencyName           string         `json:"agencyName"`
	AgencyCategory       string         `json:"agencyCategory,omitempty"`
	HotelName            string         `json:"hotelName"`
	Status               string         `json:"status"`
	LastVoucherDate      string         `json:"lastVoucherDate"`
	LastCancellationDate string         `json:"lastCancellationDate"`
	HotelConfNos         []string       `json:"hotelConfNos"`
	ConfNo               string         `json:"confNo"`
	RefNos               []string       `json:"refNos"`
	LeadGuestName        string         `json:"leadGuestName"`
	BookedTimestamp      string         `json:"bookedTimestamp"`
	NumberOfGuests       int            `json:"numberOfGuests"`
	NumberOfRooms        int            `json:"numberOfRooms"`
	CheckInDate          string         `json:"checkInDate"`
	CheckOutDate         string         `json:"checkOutDate"`
	NumberOfNights       int            `json:"numberOfNights"`
	Rooms                []roomResponse `json:"rooms"`
}

type viewResponse struct {
	TotalCount     int                          `json:"totalCount"`
	Page           int                          `json:"page"`
	TotalPages     int                          `json:"totalPages"`
	ItemsPerPage   int                          `json:"itemsPerPage"`
	SortBy         string                       `json:"sortBy"`
	Bookings       []bookingResponse            `json:"bookings"`
	AppliedFilters []dashboard.AppliedFilter    `json:"appliedFilters"`
	HasFilters     bool                         `json:"hasFilters"`
	Notifications  dashboard.NotificationCounts `json:"notifications"`
}

func (h *DashboardHandler) view(c *gin.Context) {
	c.JSON(http.StatusOK, toViewResponse(h.service.View()))
}

func (h *DashboardHandler) updateFilters(c *gin.Context) {
	var req dashboard.FilterUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.service.UpdateFilters(req)
	c.JSON(http.StatusOK, toViewResponse(h.service.View()))
}

func (h *DashboardHandler) updateStatusFilters(c *gin.Context) {
	var req dashboard.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.service.UpdateStatusFilters(req)
	c.JSON(http.StatusOK, toViewResponse(h.service.View()))
}

type updateSortRequest struct {
	SortBy dashboard.SortOption `json:"sortBy" binding:"required"`
}

func (h *DashboardHandler) updateSort(c *gin.Context) {
	var req updateSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An unknown sort option is accepted; the comparator falls back to
	// input order for it.
	h.service.SetSort(req.SortBy)
	c.JSON(http.StatusOK, toViewResponse(h.service.View()))
}

type updatePageRequest struct {
	Page int `json:"page" binding:"required"`
}

func (h *DashboardHandler) updatePage(c *gin.Context) {
	var req updatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.service.SetPage(req.Page)
	c.JSON(http.StatusOK, toViewResponse(h.service.View()))
}

func (h *DashboardHandler) removeFilter(c *gin.Context) {
	// Removing an already-inactive constraint is a no-op, not an error;
	// a stale pill click still returns the current view.
	h.service.RemoveFilter(c.Param("id"))
	c.JSON(http.StatusOK, toViewResponse(h.service.View()))
}

func (h *DashboardHandler) clearFilters(c *gin.Context) {
	h.service.ClearFilters()
	c.JSON(http.StatusOK, toViewResponse(h.service.View()))
}

func (h *DashboardHandler) export(c *gin.Context) {
	bookings := h.service.FilteredBookings()

	var buf bytes.Buffer
	if err := export.WriteBookings(&buf, bookings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.metrics != nil {
		h.metrics.ExportsTotal.Inc()
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func toViewResponse(v dashboard.View) viewResponse {
	bookings := make([]bookingResponse, 0, len(v.Bookings))
	for _, b := range v.Bookings {
		bookings = append(bookings, toBookingResponse(b))
	}
	applied := v.AppliedFilters
	if applied == nil {
		applied = []dashboard.AppliedFilter{}
	}
	return viewResponse{
		TotalCount:     v.TotalCount,
		Page:           v.Page,
		TotalPages:     v.TotalPages,
		ItemsPerPage:   v.ItemsPerPage,
		SortBy:         string(v.SortBy),
		Bookings:       bookings,
		AppliedFilters: applied,
		HasFilters:     v.HasFilters,
		Notifications:  v.Notifications,
	}
}

func toBookingResponse(b domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:                   b.ID,
		AgencyName:           b.AgencyName,
		HotelName:            b.HotelName,
		Status:               string(b.Status),
		LastVoucherDate:      b.LastVoucherDate.Format("2006-01-02"),
		LastCancellationDate: b.LastCancellationDate.Format("2006-01-02"),
		HotelConfNos:         b.HotelConfNos(),
		ConfNo:               b.ConfNo,
		RefNos:               b.RefNos(),
		LeadGuestName:        b.LeadGuestName,
		BookedTimestamp:      b.BookedTimestamp.Format(time.RFC3339),
		NumberOfGuests:       b.NumberOfGuests,
		NumberOfRooms:        b.NumberOfRooms,
		CheckInDate:          b.CheckInDate.Format("2006-01-02"),
		CheckOutDate:         b.CheckOutDate.Format("2006-01-02"),
		NumberOfNights:       b.NumberOfNights,
	}
	if category, ok := dashboard.AgencyCategoryOf(b.AgencyName); ok {
		resp.AgencyCategory = string(category)
	}
	for _, room := range b.RoomOccupancies() {
		resp.Rooms = append(resp.Rooms, roomResponse{
			RoomNumber: room.RoomNumber,
			Adults:     room.Adults,
			Children:   room.Children,
			Infants:    room.Infants,
		})
	}
	return resp
}
