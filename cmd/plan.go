package cmd

import (
	"fmt"
	"time"

	"github.com/camposb/preu/internal/plan"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Imprime el plan de estudio de hoy",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, opts, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items := plan.Build(opts.Sched, opts.Tracker, time.Now())
		if len(items) == 0 {
			fmt.Println("Nada pendiente por ahora.")
			return nil
		}
		for _, item := range items {
			fmt.Printf("[%s] %s\n", item.Tag, item.Title)
			fmt.Printf("        %s\n", item.Subtitle)
		}
		return nil
	},
}
