package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Borra todo tu avance y vuelve al estado inicial",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("Esto borra racha, nivel, dominio y repasos. ¿Continuar? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Cancelado.")
				return nil
			}
		}

		st, opts, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		if err := opts.State.Reset(ctx); err != nil {
			return fmt.Errorf("reset state: %w", err)
		}
		if err := opts.Events.Clear(ctx); err != nil {
			return fmt.Errorf("clear events: %w", err)
		}

		fmt.Println("Listo. Empiezas de cero.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "No pedir confirmación")
}
