package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/coinsguard/coinsguard-api/internal/services"
)

var recentCmd = &cobra.Command{
	Use:       "recent <recovery|contact>",
	Short:     "Print the most recent stored forms as JSON",
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindAliases(),
	RunE:      runRecent,
}

var (
	recentLimit   int
	recentFilters []string
)

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 5, "maximum number of documents")
	recentCmd.Flags().StringArrayVarP(&recentFilters, "filter", "f", nil, "only documents with field=value (repeatable)")
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	kind, err := models.ParseFormKind(args[0])
	if err != nil {
		return err
	}

	filter, err := parseFilters(recentFilters)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(cmd.Context(), cfg.Database)
	defer store.Close(context.Background())

	docs, err := services.NewSubmissionService(store, nil).ListRecent(cmd.Context(), kind, filter, recentLimit)
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), models.RecentDocumentsResponse{Items: docs})
}

func kindAliases() []string {
	kinds := models.FormKinds()
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.Alias())
	}
	return out
}

// parseFilters turns field=value pairs into an equality filter
func parseFilters(pairs []string) (map[string]any, error) {
	filter := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected field=value", pair)
		}
		filter[key] = value
	}
	return filter, nil
}
