package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/datekit/internal/config"
	"github.com/username/datekit/pkg/dateutil"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// printList writes list in the selected output format. Text output is one
// "key<TAB>value" line per entry, in list order.
func printList[K comparable, V any](a *app, cmd *cobra.Command, list *dateutil.OrderedMap[K, V]) error {
	w := cmd.OutOrStdout()
	format := a.outputFormat()

	a.logger.Debug("Printing list",
		zap.String("command", cmd.Name()),
		zap.String("format", format),
		zap.Int("entries", list.Len()))

	switch format {
	case config.OutputJSON:
		if err := json.NewEncoder(w).Encode(list); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		var err error
		list.Each(func(k K, v V) {
			if err == nil {
				_, err = fmt.Fprintf(w, "%v\t%v\n", k, v)
			}
		})
		return err
	}
	return nil
}
