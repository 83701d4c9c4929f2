package models

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	UserID     string `json:"userId"`
	CourseID   string `json:"courseId"`
	FireDate   string `json:"fireDate"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}
