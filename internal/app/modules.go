package app

import (
	"github.com/vk/flashkit/internal/registry"
	"github.com/vk/flashkit/modules/henryconst"
	"github.com/vk/flashkit/modules/ideal"
	"github.com/vk/flashkit/modules/nist"
)

// coreModules is the definitive list of all correlation modules that are
// compiled into the binary.
var coreModules = []registry.Module{
	&nist.Module{},
	&henryconst.Module{},
	&ideal.Module{},
}
