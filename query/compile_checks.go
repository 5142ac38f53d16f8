package query

import (
	gocmd "github.com/goliatone/go-command"

	"github.com/ib823/sapconnect-sub002/core"
)

var (
	_ gocmd.Querier[ListObjectsMessage, []core.ObjectDescriptor] = (*ListObjectsQuery)(nil)
	_ gocmd.Querier[InspectObjectMessage, core.ObjectInspection] = (*InspectObjectQuery)(nil)
	_ gocmd.Querier[ExecutionWavesMessage, [][]string]           = (*ExecutionWavesQuery)(nil)
	_ gocmd.Querier[LoadRunLedgerMessage, []core.RunLedgerEntry] = (*LoadRunLedgerQuery)(nil)
)
