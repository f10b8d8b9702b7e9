package domain

// NotificationMessage is the envelope published to the notification queue.
type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

// RegistrationCompletedData is the payload of the welcome mail sent after a
// successful final submission.
type RegistrationCompletedData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
