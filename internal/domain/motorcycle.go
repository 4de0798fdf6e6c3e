package domain

type MotorcycleStatus string

const (
	MotorcycleStatusAvailable   MotorcycleStatus = "available"
	MotorcycleStatusRented      MotorcycleStatus = "rented"
	MotorcycleStatusMaintenance MotorcycleStatus = "maintenance"
	MotorcycleStatusUnavailable MotorcycleStatus = "unavailable"
)

type Motorcycle struct {
	ID             string           `json:"id"`
	OwnerID        string           `json:"owner_id"`
	Owner          *Profile         `json:"owner,omitempty"` // Populated when fetching motorcycle details
	Brand          string           `json:"brand"`
	Model          string           `json:"model"`
	Year           int32            `json:"year"`
	Color          string           `json:"color"`
	LicensePlate   string           `json:"license_plate"`
	ChassisNumber  string           `json:"chassis_number"`
	Renavam        string           `json:"renavam"`
	DailyRateCents int64            `json:"daily_rate_cents"`
	Description    string           `json:"description"`
	Category       string           `json:"category"`
	City           string           `json:"city"`
	ImageURLs      []string         `json:"image_urls"`
	Status         MotorcycleStatus `json:"status"`
	CreatedOn      string           `json:"created_on"`
	UpdatedOn      string           `json:"updated_on"`
}

// MotorcycleFilters narrows catalog listings. Zero values mean "no filter".
type MotorcycleFilters struct {
	City          string
	Brand         string
	Category      string
	MinPriceCents int64
	MaxPriceCents int64
}
