package dialogue

// Trigger starts a fixed dialogue and runs its own callbacks when it ends.
type Trigger struct {
	Dialogue Dialogue
	OnEnds   []func()

	manager *Manager
}

// NewTrigger binds d to manager.
func NewTrigger(manager *Manager, d Dialogue, onEnds ...func()) *Trigger {
	return &Trigger{Dialogue: d, OnEnds: onEnds, manager: manager}
}

// Start replaces the manager's end listeners with this trigger's callbacks
// and starts the dialogue.
func (t *Trigger) Start() {
	if t.manager == nil {
		return
	}
	t.manager.UnsubscribeEnds()
	for _, fn := range t.OnEnds {
		t.manager.SubscribeEnds(fn)
	}
	t.manager.StartDialogue(t.Dialogue)
}
