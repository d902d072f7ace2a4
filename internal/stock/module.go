package stock

import "go.uber.org/fx"

// Module wires the in-memory stock ledger into the application graph.
var Module = fx.Options(
	fx.Provide(NewLedger),
)
