package consts

const (
	ReconcileLockKey = "quota:reconcile:lock"
)
