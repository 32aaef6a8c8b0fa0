package app

// Hooks is the customization point for activity behavior. Each hook fires
// exactly once per corresponding lifecycle transition, synchronously, after
// the state has been updated. Hooks may freely mutate the activity's view
// tree.
//
// Embed [BaseHooks] and override only the hooks an activity cares about:
//
//	type mainHooks struct {
//	    app.BaseHooks
//	    counter int
//	}
//
//	func (h *mainHooks) OnStart(a *app.Activity) {
//	    a.AddView("root", buildUI(h))
//	}
type Hooks interface {
	OnStart(a *Activity)
	OnResume(a *Activity)
	OnPause(a *Activity)
	OnStop(a *Activity)
	OnDestroy(a *Activity)
}

// BaseHooks provides no-op implementations of every hook.
type BaseHooks struct{}

func (BaseHooks) OnStart(*Activity)   {}
func (BaseHooks) OnResume(*Activity)  {}
func (BaseHooks) OnPause(*Activity)   {}
func (BaseHooks) OnStop(*Activity)    {}
func (BaseHooks) OnDestroy(*Activity) {}
