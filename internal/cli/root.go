// Package cli implementa invctl: login, permisos y reportes desde la terminal.
// Cada invocación reconstruye la sesión desde el almacén persistido, como una recarga del panel.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-admin/internal/application/auth"
	"github.com/jhoicas/inventory-admin/internal/domain/repository"
	"github.com/jhoicas/inventory-admin/pkg/config"
	"github.com/jhoicas/inventory-admin/pkg/logger"
)

// StoreOpener abre el almacén de sesión configurado. close libera la conexión.
type StoreOpener func(ctx context.Context, cfg *config.Config, log *logger.Logger) (store repository.SessionStore, close func(), err error)

// Options dependencias inyectables de la CLI. Los campos nil usan los valores reales.
type Options struct {
	Config    *config.Config
	Logger    *logger.Logger
	OpenStore StoreOpener
	Out       io.Writer
}

// app estado compartido entre comandos durante una invocación.
type app struct {
	opts    Options
	cfg     *config.Config
	log     *logger.Logger
	session *auth.SessionService
	close   func()
}

// Run ejecuta invctl con los argumentos dados. El almacén de sesión se cierra
// al terminar, también cuando el comando falla.
func Run(ctx context.Context, opts Options, args []string) error {
	a := &app{opts: opts}
	defer a.teardown()

	root := newRootCommand(a)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// Execute corre la CLI con la configuración del entorno.
func Execute() {
	if err := Run(context.Background(), Options{}, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand arma el árbol de comandos sobre el estado de la invocación.
func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "invctl",
		Short:         "Administración de inventario desde la terminal",
		Long:          `invctl inicia sesión con las cuentas de demostración, consulta permisos y genera reportes del inventario.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}
	if a.opts.Out != nil {
		root.SetOut(a.opts.Out)
		root.SetErr(a.opts.Out)
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newCanCmd(a),
		newReportCmd(a),
		newExportCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	a.cfg = a.opts.Config
	if a.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		a.cfg = cfg
	}
	a.log = a.opts.Logger
	if a.log == nil {
		// la salida estándar es para el usuario; el log va a stderr
		a.log = logger.New(logger.Config{Env: a.cfg.App.Env, Level: a.cfg.App.LogLevel, Output: os.Stderr})
	}

	open := a.opts.OpenStore
	if open == nil {
		open = OpenSessionStore
	}
	store, closeFn, err := open(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}
	a.close = closeFn

	creds, err := auth.NewDemoCredentials()
	if err != nil {
		return err
	}
	a.session = auth.NewSessionService(creds, store, auth.SessionConfig{
		Key:        a.cfg.Session.Key,
		LoginDelay: a.cfg.Auth.LoginDelay,
	}, a.log)
	a.session.Restore(ctx)
	return nil
}

func (a *app) teardown() {
	if a.close != nil {
		a.close()
		a.close = nil
	}
}
