package vendas

// scrollLock suppresses background scrolling while a modal dialog is open.
// Release is idempotent, so every exit path, including quitting the program
// with a dialog still up, lands on the unlocked state.
type scrollLock struct {
	held bool
}

func (l *scrollLock) Acquire() { l.held = true }
func (l *scrollLock) Release() { l.held = false }
func (l *scrollLock) Held() bool { return l.held }
