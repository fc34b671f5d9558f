package schedule

import (
	"time"

	"github.com/BruksfildServices01/booking-web/internal/backend"
	"github.com/BruksfildServices01/booking-web/internal/i18n"
)

// WeekView maps a flat list of normalized appointments onto a 7-day grid of
// half-hour slots. It is a pure view model: navigation mutates only
// WeekStart, and slot lookup never touches the network.

const (
	SlotStatusBooked    = "booked"
	SlotStatusAvailable = "available"

	gridOpenHour  = 8
	gridCloseHour = 23
)

type WeekView struct {
	Appointments []backend.Appointment
	Lang         string

	// WeekStart is always a Monday at midnight.
	WeekStart time.Time

	now time.Time
}

func NewWeekView(appointments []backend.Appointment, lang string, now time.Time) *WeekView {
	return &WeekView{
		Appointments: appointments,
		Lang:         i18n.Normalize(lang),
		WeekStart:    WeekStartOf(now),
		now:          now,
	}
}

// --------- Navigation ---------

func (v *WeekView) PrevWeek() {
	v.WeekStart = v.WeekStart.AddDate(0, 0, -7)
}

func (v *WeekView) NextWeek() {
	v.WeekStart = v.WeekStart.AddDate(0, 0, 7)
}

func (v *WeekView) Today() {
	v.WeekStart = WeekStartOf(v.now)
}

// --------- Grid ---------

type Day struct {
	Date    time.Time
	ISO     string
	Name    string
	Number  int
	IsToday bool
}

func (v *WeekView) Days() []Day {
	names := i18n.DayNames(v.Lang)
	today := v.now.Format("2006-01-02")

	days := make([]Day, 7)
	for i := 0; i < 7; i++ {
		d := v.WeekStart.AddDate(0, 0, i)
		iso := d.Format("2006-01-02")
		days[i] = Day{
			Date:    d,
			ISO:     iso,
			Name:    names[i],
			Number:  d.Day(),
			IsToday: iso == today,
		}
	}
	return days
}

// Slots returns the half-hour row labels, 08:00 through 22:30.
func Slots() []string {
	var out []string
	for h := gridOpenHour; h < gridCloseHour; h++ {
		out = append(out, clock(h, 0), clock(h, 30))
	}
	return out
}

func clock(h, m int) string {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC).Format("15:04")
}

// --------- Slot lookup ---------

type Slot struct {
	Day    string
	Time   string
	Status string

	// Projection fields, filled only when Status is booked. Unresolved
	// fields carry localized placeholders.
	CustomerName  string
	CustomerPhone string
	ServiceName   string
	WorkerName    string
	Appointment   string // appointment status: confirmed | pending | cancelled
}

// SlotStatus resolves one grid cell. The scan is a linear first match; the
// appointment list is ordered at normalization time, so the earliest record
// wins when the backend ever hands us a double-booked slot.
func (v *WeekView) SlotStatus(day time.Time, hm string) Slot {
	iso := day.Format("2006-01-02")

	for _, ap := range v.Appointments {
		if ap.Day != iso || ap.Time != hm {
			continue
		}

		return Slot{
			Day:           iso,
			Time:          hm,
			Status:        SlotStatusBooked,
			CustomerName:  orPlaceholder(ap.CustomerName, v.Lang, "schedule.unknown_customer"),
			CustomerPhone: orPlaceholder(ap.CustomerPhone, v.Lang, "schedule.unknown_phone"),
			ServiceName:   orPlaceholder(ap.ServiceName, v.Lang, "schedule.unknown_service"),
			WorkerName:    ap.WorkerName,
			Appointment:   ap.Status,
		}
	}

	return Slot{Day: iso, Time: hm, Status: SlotStatusAvailable}
}

func orPlaceholder(val, lang, id string) string {
	if val != "" {
		return val
	}
	return i18n.T(lang, id)
}

// StatusClass maps an appointment status to its cell style.
func StatusClass(status string) string {
	switch status {
	case backend.StatusConfirmed:
		return "slot-confirmed"
	case backend.StatusPending:
		return "slot-pending"
	case backend.StatusCancelled:
		return "slot-cancelled"
	default:
		return "slot-neutral"
	}
}

// Legend returns the translated status legend for the grid footer.
func (v *WeekView) Legend() map[string]string {
	return map[string]string{
		backend.StatusConfirmed: i18n.T(v.Lang, "schedule.legend.confirmed"),
		backend.StatusPending:   i18n.T(v.Lang, "schedule.legend.pending"),
		backend.StatusCancelled: i18n.T(v.Lang, "schedule.legend.cancelled"),
	}
}
