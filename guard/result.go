package guard

// Status classifies the outcome of an enforcement or release attempt.
type Status int

const (
	StatusApplied Status = iota
	StatusRemoved
	StatusSkipped
	StatusFailed
)

// Stable codes for skip/failure reasons, used as metric labels.
const (
	CodeRoleMissing = "role_missing"
	CodeBot         = "bot"
	CodeOwner       = "owner"
	CodeSuperuser   = "superuser"
	CodeHierarchy   = "hierarchy"
	CodePlatform    = "platform"
)

// Result is the outcome of an Enforce or Release call. Reason is the
// operator-facing message; Code is stable and machine-friendly.
type Result struct {
	Status Status
	Code   string
	Reason string
}

// Operator-facing messages. Kept word-for-word stable; people grep logs
// for these.
const (
	MsgRoleNotFound = "Punish role not found."
	MsgBot          = "Actor is a bot; skipping."
	MsgOwner        = "Actor is the guild owner; skipping."
	MsgSuperuser    = "Actor is the superuser; skipping."
	MsgHierarchy    = "My top role is not above the punish role."
)

func applied() Result {
	return Result{Status: StatusApplied}
}

func removed() Result {
	return Result{Status: StatusRemoved}
}

func skipped(code, reason string) Result {
	return Result{Status: StatusSkipped, Code: code, Reason: reason}
}

func failed(reason string) Result {
	return Result{Status: StatusFailed, Code: CodePlatform, Reason: reason}
}
