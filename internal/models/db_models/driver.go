package db_models

type DriverStatus string

const (
	DriverAvailable DriverStatus = "Available"
	DriverBusy      DriverStatus = "Busy"
	DriverOffline   DriverStatus = "Offline"
)

type Vehicle struct {
	Type     string `json:"type"`
	Model    string `json:"model"`
	Plate    string `json:"plate"`
	Capacity int    `json:"capacity"`
	AC       bool   `json:"ac"`
	Image    string `json:"image,omitempty"`
}

type DriverRates struct {
	PerKm    float64 `json:"perKm"`
	BaseFare float64 `json:"baseFare"`
}

type DriverEarnings struct {
	Today      float64 `json:"today"`
	Total      float64 `json:"total"`
	Commission float64 `json:"commission"`
}

type Driver struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	Email    string         `json:"email,omitempty"`
	Status   DriverStatus   `json:"status"`
	Vehicle  Vehicle        `json:"vehicle"`
	Rates    DriverRates    `json:"rates"`
	Earnings DriverEarnings `json:"earnings"`
}
