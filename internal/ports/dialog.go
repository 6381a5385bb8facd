package ports

// Dialog is the display surface hosting a form: an HTTP exchange or a
// terminal session. The form workflow reads and writes its own field slots
// and only reaches the surface to dismiss itself or raise an alert.
type Dialog interface {
	// Close dismisses the form.
	Close()

	// Alert shows a non-fatal error to the user. The form stays open.
	Alert(title, message string)
}
