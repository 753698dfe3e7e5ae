package admin

// Stats are the dashboard counters. Soft-deleted rows are not counted.
type Stats struct {
	Users          int `json:"users"`
	Services       int `json:"services"`
	Tours          int `json:"tours"`
	Bookings       int `json:"bookings"`
	Posts          int `json:"posts"`
	UnreadContacts int `json:"unreadContacts"`
}
