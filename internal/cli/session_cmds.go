package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-admin/internal/domain"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Inicia sesión y persiste el usuario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sesión iniciada como %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email de la cuenta")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cierra la sesión persistida",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Muestra el usuario de la sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user := a.session.CurrentUser()
			if user == nil {
				return domain.ErrUnauthorized
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(out, "rol: %s\n", user.Role)
			fmt.Fprintf(out, "permisos: %v\n", user.Permissions)
			return nil
		},
	}
}

func newCanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "can <capacidad>",
		Short: "Indica si el usuario de la sesión tiene la capacidad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.session.HasPermission(args[0]))
			return nil
		},
	}
}

// require exige sesión y la capacidad indicada.
func (a *app) require(capability string) error {
	if a.session.CurrentUser() == nil {
		return domain.ErrUnauthorized
	}
	if !a.session.HasPermission(capability) {
		return fmt.Errorf("%w: se requiere %s", domain.ErrForbidden, capability)
	}
	return nil
}
