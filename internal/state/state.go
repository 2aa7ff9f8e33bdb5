package state

import (
	"github.com/ecetuna/finfeed/internal/api"
	"github.com/ecetuna/finfeed/internal/config"
	"github.com/ecetuna/finfeed/internal/snapshot"
)

// State bundles what every handler needs, instead of module level globals.
type State struct {
	Config    config.Configuration
	Backend   api.Backend
	Snapshots *snapshot.Store
}
