package modules

import (
	"github.com/everhub/taskmeta/modules/core"
	"github.com/everhub/taskmeta/modules/taxonomy"
	"github.com/everhub/taskmeta/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	taxonomy.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range append(BuiltInModules, externalModules...) {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
