package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	PreFlush  HookType = "pre-flush"
	PostFlush HookType = "post-flush"
	PreFix    HookType = "pre-fix"
	PostFix   HookType = "post-fix"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hooks.
type HookContext struct {
	TargetPath   string
	WorkspaceDir string
	Vars         map[string]interface{}
}

// HookManager defines the interface for managing hooks.
type HookManager interface {
	// Execute runs the specified hook type with the given context
	Execute(hookType HookType, ctx HookContext) error

	// AddScript adds or replaces the script for a hook type
	AddScript(hookType HookType, script string)

	// RemoveScript removes the script for a hook type
	RemoveScript(hookType HookType)

	// HasScript checks if a script of the specified type exists
	HasScript(hookType HookType) bool
}
