package game

import "time"

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Session   *Session
}

func newUpdateFrame(dt float64, session *Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Session:   session,
	}
}

// Elapsed returns DeltaTime as a duration.
func (f *UpdateFrame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
