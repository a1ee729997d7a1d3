package cmd

import (
	"fmt"
	"strings"

	"github.com/camposb/preu/internal/catalog"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <texto>",
	Short: "Busca materias, temas y preguntas en el catálogo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		hits := catalog.Search(query)
		if len(hits) == 0 {
			fmt.Printf("Sin resultados para %q.\n", query)
			return nil
		}
		for _, h := range hits {
			fmt.Printf("[%s] %s — %s\n", h.Type, h.Title, h.Meta)
		}
		return nil
	},
}
