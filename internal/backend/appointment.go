package backend

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// The backend has shipped three generations of the appointment payload and
// still serves all of them depending on the endpoint. Everything collapses
// to the canonical Appointment here, at decode time; view code never sees a
// raw record.

// RawAppointment accepts every shape the backend is known to emit.
type RawAppointment struct {
	ID any `json:"id"`

	// Shape 1: combined date+time, ISO-like or space separated.
	StartTime string `json:"start_time"`

	// Shape 2: split fields.
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`

	// Shape 3: legacy split fields.
	Date string `json:"date"`
	Time string `json:"time"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	Service        *NestedService `json:"service"`
	ServiceName    string         `json:"service_name"`
	ServiceNameAlt string         `json:"serviceName"`

	WorkerName    string `json:"worker_name"`
	WorkerNameAlt string `json:"workerName"`

	Status string `json:"status"`
}

type NestedService struct {
	Name string `json:"name"`
}

// Appointment is the single canonical record. Day is "2006-01-02" and Time
// is "15:04"; both are empty when the raw record carried no usable
// date-time, in which case the record matches no slot.
type Appointment struct {
	ID            string
	Day           string
	Time          string
	CustomerName  string
	CustomerPhone string
	ServiceName   string
	WorkerName    string
	Status        string
}

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Normalize maps one raw record onto the canonical shape.
func Normalize(raw RawAppointment) Appointment {
	day, hm := normalizeDateTime(raw)

	status := strings.ToLower(strings.TrimSpace(raw.Status))
	if status == "" {
		status = StatusConfirmed
	}

	return Appointment{
		ID:            normalizeID(raw.ID),
		Day:           day,
		Time:          hm,
		CustomerName:  strings.TrimSpace(raw.CustomerName),
		CustomerPhone: strings.TrimSpace(raw.CustomerPhone),
		ServiceName:   firstNonEmpty(nestedServiceName(raw.Service), raw.ServiceName, raw.ServiceNameAlt),
		WorkerName:    firstNonEmpty(raw.WorkerName, raw.WorkerNameAlt),
		Status:        status,
	}
}

// NormalizeAll converts and orders a backend payload. Records are sorted by
// (day, time, id) so the schedule's first-match lookup is deterministic.
func NormalizeAll(raws []RawAppointment) []Appointment {
	out := make([]Appointment, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func normalizeDateTime(raw RawAppointment) (day, hm string) {
	if raw.StartTime != "" {
		return splitCombined(raw.StartTime)
	}
	if raw.AppointmentDate != "" || raw.AppointmentTime != "" {
		return validatePair(raw.AppointmentDate, raw.AppointmentTime)
	}
	return validatePair(raw.Date, raw.Time)
}

func splitCombined(s string) (string, string) {
	s = strings.TrimSpace(s)

	for _, layout := range []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), t.Format("15:04")
		}
	}

	return "", ""
}

func validatePair(date, hm string) (string, string) {
	date = strings.TrimSpace(date)
	hm = strings.TrimSpace(hm)

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", ""
	}

	// Seconds may or may not be present; only HH:MM matters for slots.
	if len(hm) > 5 {
		hm = hm[:5]
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return "", ""
	}

	return d.Format("2006-01-02"), t.Format("15:04")
}

func normalizeID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}

func nestedServiceName(s *NestedService) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
