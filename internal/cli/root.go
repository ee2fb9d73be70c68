// Package cli comandos de operación de menuctl (migraciones y planes).
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
)

// Migrator esquema de la base de datos.
type Migrator interface {
	Up(ctx context.Context) error
	Down(ctx context.Context, steps int) error
	Status(ctx context.Context) (int64, error)
}

// Plans operaciones sobre los planes de los negocios; lo implementa *usecase.EntitlementUseCase.
type Plans interface {
	Sweep(ctx context.Context) (int64, error)
	Grant(ctx context.Context, id string, days int) (*dto.TransitionResponse, error)
	Revoke(ctx context.Context, id string) (*dto.TransitionResponse, error)
}

// App dependencias de los comandos.
type App struct {
	Migrator Migrator
	Plans    Plans
}

// NewRootCmd crea el comando "menuctl" con todos sus subcomandos.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "Herramientas de operación de Bravo Menú",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(app),
		newPlansCmd(app),
	)
	return root
}
