package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rideready-api/services"
	"rideready-api/utils"
)

type CalendarController struct {
	calendarService *services.CalendarService
}

func NewCalendarController(calendarService *services.CalendarService) *CalendarController {
	return &CalendarController{calendarService: calendarService}
}

// GetCalendar returns the merged event list for a month. Defaults to the
// current month when year or month are omitted.
func (cc *CalendarController) GetCalendar(c *gin.Context) {
	userID := c.GetString("user_id")

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2100 {
			utils.SendValidationError(c, "year must be a valid year")
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			utils.SendValidationError(c, "month must be between 1 and 12")
			return
		}
		month = parsed
	}

	calendar, err := cc.calendarService.GetMonthEvents(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar"})
		return
	}

	c.JSON(http.StatusOK, calendar)
}
