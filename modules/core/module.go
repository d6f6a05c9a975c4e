package core

import (
	"embed"
	"io/fs"

	"github.com/everhub/taskmeta/modules/core/infrastructure/persistence"
	"github.com/everhub/taskmeta/modules/core/presentation/controllers"
	"github.com/everhub/taskmeta/modules/core/services"
	"github.com/everhub/taskmeta/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	schema, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), schema)

	app.RegisterServices(
		services.NewTenantService(persistence.NewTenantRepository(), app.EventPublisher()),
		services.NewOrganizationService(persistence.NewOrganizationRepository(), app.EventPublisher()),
		services.NewProjectService(persistence.NewProjectRepository(), app.EventPublisher()),
		services.NewTeamService(persistence.NewTeamRepository(), app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewCoreAPIController(app),
		controllers.NewHealthController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "core"
}
