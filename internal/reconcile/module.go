package reconcile

import "go.uber.org/fx"

// Module wires the optimistic update policy into the application graph.
var Module = fx.Options(
	fx.Provide(NewPolicy),
)
