package cellmon

// HookSet holds the active hook for each lifecycle phase: at most one per
// phase, last registration wins. An empty slot means only the monitor's
// default colored print happens for that phase.
//
// HookSet is not safe for concurrent use. Like event delivery itself,
// registration is expected to happen on the host's execution goroutine;
// dispatch reads the slots without locking.
type HookSet struct {
	preRun   func(PreRunEvent)
	realtime func(OutputEvent)
	postRun  func(PostRunEvent)
}

// HookFuncs carries optional per-phase functions for [HookSet.Set]. Nil
// fields leave the corresponding slot untouched.
type HookFuncs struct {
	PreRun   PreRunFunc
	Realtime RealtimeFunc
	PostRun  PostRunFunc
}

// NewHookSet creates an empty HookSet.
func NewHookSet() *HookSet {
	return &HookSet{}
}

// Set updates the slots whose fields in funcs are non-nil and leaves the rest
// unchanged. Setting a slot that already holds a hook replaces it.
func (s *HookSet) Set(funcs HookFuncs) {
	if funcs.PreRun != nil {
		f := funcs.PreRun
		s.preRun = func(e PreRunEvent) { f(e.Source) }
	}
	if funcs.Realtime != nil {
		f := funcs.Realtime
		s.realtime = func(e OutputEvent) { f(e.Text) }
	}
	if funcs.PostRun != nil {
		s.postRun = funcs.PostRun
	}
}

// Register fills every slot that hook implements via the phase interfaces
// ([PreRunHook], [RealtimeHook], [PostRunHook]). It returns [ErrInvalidHook]
// when hook implements none of them, so a miswired hook surfaces at
// registration rather than silently never firing.
func (s *HookSet) Register(hook any) error {
	matched := false
	if h, ok := hook.(PreRunHook); ok {
		s.preRun = h.OnPreRun
		matched = true
	}
	if h, ok := hook.(RealtimeHook); ok {
		s.realtime = h.OnRealtime
		matched = true
	}
	if h, ok := hook.(PostRunHook); ok {
		s.postRun = h.OnPostRun
		matched = true
	}
	if !matched {
		return ErrInvalidHook
	}
	return nil
}

// Clear empties all three slots.
func (s *HookSet) Clear() {
	s.preRun = nil
	s.realtime = nil
	s.postRun = nil
}
