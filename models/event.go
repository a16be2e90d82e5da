package models

// Status is the lifecycle state of an event.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// EventType is an open-ended tag; the values below are the ones the site
// renders with dedicated badges, anything else is still accepted.
type EventType string

const (
	TypeWorkshop    EventType = "workshop"
	TypeSeminar     EventType = "seminar"
	TypeCompetition EventType = "competition"
	TypeConference  EventType = "conference"
	TypeNetworking  EventType = "networking"
)

type Event struct {
	ID          int       `json:"id" yaml:"id" bson:"id"`
	Title       string    `json:"title" yaml:"title" bson:"title"`
	Description string    `json:"description" yaml:"description" bson:"description"`
	Location    string    `json:"location" yaml:"location" bson:"location"`
	Date        Date      `json:"date" yaml:"date" bson:"date"`
	Time        string    `json:"time" yaml:"time" bson:"time"` // display only
	Status      Status    `json:"status" yaml:"status" bson:"status"`
	Type        EventType `json:"type" yaml:"type" bson:"type"`
	Year        int       `json:"year" yaml:"year" bson:"year"`

	// gallery fields, only set on some past events
	Images           []string `json:"images,omitempty" yaml:"images,omitempty" bson:"images,omitempty"`
	PostEventSummary string   `json:"postEventSummary,omitempty" yaml:"postEventSummary,omitempty" bson:"postEventSummary,omitempty"`
	AttendanceCount  *int     `json:"attendanceCount,omitempty" yaml:"attendanceCount,omitempty" bson:"attendanceCount,omitempty"`
	Highlights       []string `json:"highlights,omitempty" yaml:"highlights,omitempty" bson:"highlights,omitempty"`
}

// Attendance returns the attendance count, 0 when unknown.
func (e Event) Attendance() int {
	if e.AttendanceCount == nil {
		return 0
	}
	return *e.AttendanceCount
}

// HasImages reports whether the gallery viewer has anything to show.
// An empty slice means "no images", not an error.
func (e Event) HasImages() bool { return len(e.Images) > 0 }

// Testimonial is one item of the testimonials carousel.
type Testimonial struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Company string `json:"company" yaml:"company"`
	Image   string `json:"image" yaml:"image"`
	Quote   string `json:"quote" yaml:"quote"`
	Rating  int    `json:"rating" yaml:"rating"`
	Year    string `json:"year" yaml:"year"`
}

// Stars clamps Rating to the 0..5 range the star widget draws.
func (t Testimonial) Stars() int {
	switch {
	case t.Rating < 0:
		return 0
	case t.Rating > 5:
		return 5
	}
	return t.Rating
}
