package booking

import "time"

type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	EquipmentID string    `json:"equipment_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      Status    `json:"status"`
	Purpose     string    `json:"purpose"`
	Notes       *string   `json:"notes"`
	AdminNotes  *string   `json:"admin_notes"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Detail is a booking joined with the display fields list and detail views
// need, so clients don't chase user/equipment ids.
type Detail struct {
	Booking

	UserName      string `json:"user_name,omitempty"`
	UserEmail     string `json:"user_email,omitempty"`
	UserRole      string `json:"user_role,omitempty"`
	EquipmentName string `json:"equipment_name"`
	Category      string `json:"category"`
	ImageURL      string `json:"image_url,omitempty"`
}
