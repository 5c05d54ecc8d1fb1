package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
)

var exportFormat string

// export is the document written by `jot export`.
type export struct {
	Categories []string    `json:"categories" yaml:"categories"`
	Notes      []core.Note `json:"notes" yaml:"notes"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all notes and categories to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		doc := export{
			Categories: svc.Categories().List(),
			Notes:      svc.Notes().List(),
		}

		out := cmd.OutOrStdout()
		switch exportFormat {
		case "json":
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(doc)
		case "yaml", "yml":
			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)
			if err := encoder.Encode(doc); err != nil {
				return err
			}
			return encoder.Close()
		default:
			return fmt.Errorf("unsupported format %q (want json or yaml)", exportFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
}
