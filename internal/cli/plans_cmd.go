package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
)

func newPlansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Planes FREE / PRO de los negocios",
	}
	cmd.AddCommand(newReconcileCmd(app), newGrantCmd(app), newRevokeCmd(app))
	return cmd
}

// newReconcileCmd degrada los PRO vencidos. Con --every queda corriendo hasta recibir una señal.
func newReconcileCmd(app *App) *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Degrada a FREE los planes PRO vencidos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			sweep := func() error {
				n, err := app.Plans.Sweep(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d negocio(s) degradado(s)\n", n)
				return nil
			}
			if err := sweep(); err != nil {
				return err
			}
			if every <= 0 {
				return nil
			}

			ticker := time.NewTicker(every)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := sweep(); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "reconciliación fallida: %v\n", err)
					}
				}
			}
		},
	}
	cmd.Flags().DurationVar(&every, "every", 0, "Repetir con este intervalo (ej. 1h); 0 = una sola vez")
	return cmd
}

func newGrantCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "grant <business-id>",
		Short: "Concede PRO hasta el final del día de hoy más N días",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days debe ser al menos 1")
			}
			out, err := app.Plans.Grant(cmd.Context(), args[0], days)
			if err != nil {
				return err
			}
			return printTransition(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "Días de PRO")
	return cmd
}

func newRevokeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <business-id>",
		Short: "Devuelve el negocio al plan FREE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Plans.Revoke(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printTransition(cmd.OutOrStdout(), out)
		},
	}
}

func printTransition(w io.Writer, t *dto.TransitionResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return err
	}
	if t.Error != "" {
		return fmt.Errorf("escritura revertida: %s", t.Error)
	}
	return nil
}
