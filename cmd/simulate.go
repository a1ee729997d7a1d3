package cmd

import (
	"fmt"

	"github.com/camposb/preu/internal/vocational"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simula puntajes ponderados por carrera",
	RunE: func(cmd *cobra.Command, args []string) error {
		scores := map[string]int{}
		for _, section := range []string{"leng", "m1", "m2", "ciencias", "historia"} {
			v, _ := cmd.Flags().GetInt(section)
			scores[section] = vocational.ClampScore(v)
		}

		for i, r := range vocational.Rank(scores) {
			fmt.Printf("%d. %-20s %4d\n", i+1, r.Career.Name, r.Total)
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().Int("leng", 0, "Puntaje Comprensión Lectora (0-1000)")
	simulateCmd.Flags().Int("m1", 0, "Puntaje Matemática M1 (0-1000)")
	simulateCmd.Flags().Int("m2", 0, "Puntaje Matemática M2 (0-1000)")
	simulateCmd.Flags().Int("ciencias", 0, "Puntaje Ciencias (0-1000)")
	simulateCmd.Flags().Int("historia", 0, "Puntaje Historia (0-1000)")
}
