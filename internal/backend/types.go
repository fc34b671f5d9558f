package backend

// --------- Catalog ---------

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Business struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	CategoryID uint   `json:"category_id"`
}

type Worker struct {
	ID         uint   `json:"id"`
	BusinessID uint   `json:"business_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

type Service struct {
	ID          uint    `json:"id"`
	WorkerID    uint    `json:"worker_id"`
	Name        string  `json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
}

// --------- Auth / profile ---------

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`

	// BusinessName is set only when registering the business side.
	BusinessName string `json:"business_name,omitempty"`
}

type Profile struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	BusinessID uint   `json:"business_id"`
}

type AuthResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"user"`
}

// --------- Booking ---------

type BookingRequest struct {
	BusinessID uint   `json:"business_id"`
	WorkerID   uint   `json:"worker_id"`
	ServiceID  uint   `json:"service_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

type Booking struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// --------- Working hours ---------

type WorkingHours struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

// --------- Payments ---------

type PaymentCompletion struct {
	BookingID uint    `json:"booking_id"`
	CardToken string  `json:"card_token"`
	Amount    float64 `json:"amount"`
}
