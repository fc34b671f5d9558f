package i18n

// Message catalog for the three supported locales. Lookup is literal, by
// message id; unknown locales and missing ids fall back to English.

const (
	DefaultLocale = "en"
)

var supported = map[string]bool{
	"az": true,
	"ru": true,
	"en": true,
}

// Normalize maps an arbitrary locale code onto a supported one.
func Normalize(lang string) string {
	if supported[lang] {
		return lang
	}
	return DefaultLocale
}

// T resolves a message id for the given locale.
func T(lang, id string) string {
	lang = Normalize(lang)
	if msg, ok := catalog[lang][id]; ok {
		return msg
	}
	if msg, ok := catalog[DefaultLocale][id]; ok {
		return msg
	}
	return id
}

// DayNames returns Monday-first short day names for the schedule header.
func DayNames(lang string) [7]string {
	return dayNames[Normalize(lang)]
}

var dayNames = map[string][7]string{
	"en": {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	"ru": {"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
	"az": {"B.e", "Ç.a", "Çər", "C.a", "Cüm", "Şən", "Baz"},
}

var catalog = map[string]map[string]string{
	"en": {
		"schedule.title":            "Weekly schedule",
		"schedule.today":            "Today",
		"schedule.prev_week":        "Previous week",
		"schedule.next_week":        "Next week",
		"schedule.available":        "Available",
		"schedule.booked":           "Booked",
		"schedule.legend.confirmed": "Confirmed",
		"schedule.legend.pending":   "Pending",
		"schedule.legend.cancelled": "Cancelled",
		"schedule.dialog.customer":  "Customer",
		"schedule.dialog.phone":     "Phone",
		"schedule.dialog.service":   "Service",
		"schedule.dialog.worker":    "Barber",
		"schedule.dialog.status":    "Status",
		"schedule.unknown_customer": "Walk-in customer",
		"schedule.unknown_phone":    "No phone",
		"schedule.unknown_service":  "Service",

		"booking.category":   "Category",
		"booking.business":   "Salon",
		"booking.worker":     "Barber",
		"booking.service":    "Service",
		"booking.date":       "Date",
		"booking.time":       "Time",
		"booking.submit":     "Book now",
		"booking.incomplete": "Please complete every step before booking.",
		"booking.failed":     "Booking failed, please try again.",
		"booking.confirmed":  "Your booking is confirmed.",

		"auth.login":             "Log in",
		"auth.logout":            "Log out",
		"auth.signup":            "Sign up",
		"auth.email_required":    "Email is required.",
		"auth.email_invalid":     "Enter a valid email address.",
		"auth.password_required": "Password is required.",
		"auth.password_mismatch": "Passwords do not match.",
		"auth.failed":            "Email or password is incorrect.",

		"payment.failed": "Payment could not be completed.",

		"error.generic": "Something went wrong, please try again.",
	},
	"ru": {
		"schedule.title":            "Недельное расписание",
		"schedule.today":            "Сегодня",
		"schedule.prev_week":        "Прошлая неделя",
		"schedule.next_week":        "Следующая неделя",
		"schedule.available":        "Свободно",
		"schedule.booked":           "Занято",
		"schedule.legend.confirmed": "Подтверждено",
		"schedule.legend.pending":   "Ожидает",
		"schedule.legend.cancelled": "Отменено",
		"schedule.dialog.customer":  "Клиент",
		"schedule.dialog.phone":     "Телефон",
		"schedule.dialog.service":   "Услуга",
		"schedule.dialog.worker":    "Мастер",
		"schedule.dialog.status":    "Статус",
		"schedule.unknown_customer": "Клиент без записи",
		"schedule.unknown_phone":    "Без телефона",
		"schedule.unknown_service":  "Услуга",

		"booking.category":   "Категория",
		"booking.business":   "Салон",
		"booking.worker":     "Мастер",
		"booking.service":    "Услуга",
		"booking.date":       "Дата",
		"booking.time":       "Время",
		"booking.submit":     "Записаться",
		"booking.incomplete": "Заполните все шаги перед записью.",
		"booking.failed":     "Не удалось создать запись, попробуйте ещё раз.",
		"booking.confirmed":  "Ваша запись подтверждена.",

		"auth.login":             "Войти",
		"auth.logout":            "Выйти",
		"auth.signup":            "Регистрация",
		"auth.email_required":    "Укажите email.",
		"auth.email_invalid":     "Введите корректный email.",
		"auth.password_required": "Укажите пароль.",
		"auth.password_mismatch": "Пароли не совпадают.",
		"auth.failed":            "Неверный email или пароль.",

		"payment.failed": "Платёж не прошёл.",

		"error.generic": "Что-то пошло не так, попробуйте ещё раз.",
	},
	"az": {
		"schedule.title":            "Həftəlik cədvəl",
		"schedule.today":            "Bu gün",
		"schedule.prev_week":        "Əvvəlki həftə",
		"schedule.next_week":        "Növbəti həftə",
		"schedule.available":        "Boşdur",
		"schedule.booked":           "Doludur",
		"schedule.legend.confirmed": "Təsdiqlənib",
		"schedule.legend.pending":   "Gözləyir",
		"schedule.legend.cancelled": "Ləğv edilib",
		"schedule.dialog.customer":  "Müştəri",
		"schedule.dialog.phone":     "Telefon",
		"schedule.dialog.service":   "Xidmət",
		"schedule.dialog.worker":    "Usta",
		"schedule.dialog.status":    "Status",
		"schedule.unknown_customer": "Adsız müştəri",
		"schedule.unknown_phone":    "Telefon yoxdur",
		"schedule.unknown_service":  "Xidmət",

		"booking.category":   "Kateqoriya",
		"booking.business":   "Salon",
		"booking.worker":     "Usta",
		"booking.service":    "Xidmət",
		"booking.date":       "Tarix",
		"booking.time":       "Saat",
		"booking.submit":     "Rezerv et",
		"booking.incomplete": "Rezerv etməzdən əvvəl bütün addımları tamamlayın.",
		"booking.failed":     "Rezerv alınmadı, yenidən cəhd edin.",
		"booking.confirmed":  "Rezerviniz təsdiqləndi.",

		"auth.login":             "Daxil ol",
		"auth.logout":            "Çıxış",
		"auth.signup":            "Qeydiyyat",
		"auth.email_required":    "Email tələb olunur.",
		"auth.email_invalid":     "Düzgün email daxil edin.",
		"auth.password_required": "Şifrə tələb olunur.",
		"auth.password_mismatch": "Şifrələr uyğun gəlmir.",
		"auth.failed":            "Email və ya şifrə yanlışdır.",

		"payment.failed": "Ödəniş tamamlanmadı.",

		"error.generic": "Xəta baş verdi, yenidən cəhd edin.",
	},
}
