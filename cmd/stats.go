package cmd

import (
	"fmt"
	"time"

	"github.com/camposb/preu/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Muestra un resumen de tu progreso",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, opts, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		data := opts.State.Data()
		avg := progress.AverageScore(data.Attempts)

		fmt.Printf("Racha:            %d día(s)\n", data.Streak)
		fmt.Printf("Nivel:            %d\n", data.Level)
		fmt.Printf("Meta semanal:     %d/%d sesiones\n", data.WeeklyGoals.Done, data.WeeklyGoals.Total)
		fmt.Printf("Sesiones:         %d\n", len(data.Attempts))
		fmt.Printf("Promedio:         %d%%\n", avg)
		fmt.Printf("Puntaje estimado: %s\n", progress.EstimateScoreText(opts.Tracker))
		fmt.Printf("Próximo paso:     %s\n", progress.NextStepText(opts.Sched, opts.Tracker, time.Now()))
		return nil
	},
}
