package taxonomy

import (
	"embed"
	"io/fs"

	"github.com/everhub/taskmeta/modules/taxonomy/handlers"
	"github.com/everhub/taskmeta/modules/taxonomy/infrastructure/persistence"
	"github.com/everhub/taskmeta/modules/taxonomy/presentation/controllers"
	"github.com/everhub/taskmeta/modules/taxonomy/seed"
	"github.com/everhub/taskmeta/modules/taxonomy/services"
	"github.com/everhub/taskmeta/pkg/application"
	"github.com/everhub/taskmeta/pkg/assets"
	"github.com/everhub/taskmeta/pkg/configuration"
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

	repo := persistence.NewTaxonomyRepository()
	icons := assets.NewBaseURLResolver(configuration.Use().Assets.BaseURL)
	provisioning := services.NewProvisioningService(repo, app.EventPublisher())

	app.RegisterServices(
		services.NewTaxonomyService(repo, app.EventPublisher(), icons),
		provisioning,
	)

	app.RegisterControllers(
		controllers.NewTaskStatusController(app),
		controllers.NewTaskPriorityController(app),
		controllers.NewTaskSizeController(app),
		controllers.NewIssueTypeController(app),
		controllers.NewRelatedIssueTypeController(app),
	)

	handlers.RegisterProvisionHandler(app.DB(), provisioning, app.EventPublisher(), app.Logger())

	app.Seeder().Register(seed.SeedDefaultTaxonomies)

	return nil
}

func (m *Module) Name() string {
	return "taxonomy"
}
