package whatsapp_message_model

// Location is the payload for location messages.
type Location struct {
	Latitude  float64 `json:"latitude" validate:"required" example:"-23.55052"`
	Longitude float64 `json:"longitude" validate:"required" example:"-46.633309"`
	Name      string  `json:"name,omitempty" example:"Altaway HQ"`
	Address   string  `json:"address,omitempty" example:"Av. Paulista, 1000"`
}
