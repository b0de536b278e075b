package facade

// Mode is the backend the facade currently serves calls from.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
)

func (m Mode) String() string { return string(m) }
