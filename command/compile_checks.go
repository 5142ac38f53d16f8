package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[RunAllMessage]           = (*RunAllCommand)(nil)
	_ gocmd.Commander[RunObjectMessage]        = (*RunObjectCommand)(nil)
	_ gocmd.Commander[EnqueueRunMessage]       = (*EnqueueRunCommand)(nil)
	_ gocmd.Commander[ClearObjectCacheMessage] = (*ClearObjectCacheCommand)(nil)
)
