package main

import (
	"gridmeet/core/logger"
	"gridmeet/core/server"
)

// gridmeet lets a group mark their availability over a shared date range and
// see the aggregate overlap as a heatmap. Events are addressed by an opaque
// id carried in the share link.
func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
