package list_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/barbernet/booking-service/internal/domain"
	"github.com/barbernet/booking-service/internal/service/appointments/models"
	"github.com/barbernet/booking-service/pkg/ptr"
)

// ParseQuery собирает фильтр записей из query параметров.
// Поддерживаются barberId, serviceId, startDate, endDate (YYYY-MM-DD),
// status и includeCancelled.
func ParseQuery(q url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{}

	if v := q.Get("barberId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.BarberID = ptr.Ptr(id)
	}

	if v := q.Get("serviceId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = ptr.Ptr(id)
	}

	if v := q.Get("startDate"); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = ptr.Ptr(d)
	}

	if v := q.Get("endDate"); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = ptr.Ptr(d)
	}

	if v := q.Get("status"); v != "" {
		req.Status = ptr.Ptr(v)
	}

	if v := q.Get("includeCancelled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
