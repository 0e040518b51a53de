package registry

import "github.com/ethereum/go-ethereum/metrics"

var (
	execSuccessMeter = metrics.NewRegisteredMeter("registry/exec/success", nil)
	execFailedMeter  = metrics.NewRegisteredMeter("registry/exec/failed", nil)
)
