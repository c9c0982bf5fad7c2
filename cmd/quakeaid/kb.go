package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandevgo/quakeaid/internal/knowledge"
	"github.com/sandevgo/quakeaid/internal/service/ui"
	"github.com/sandevgo/quakeaid/pkg/log"
)

var kbCmd = &cobra.Command{
	Use:          "kb [id]",
	Short:        "Inspect the bundled survival knowledge base",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		store, err := knowledge.Load()
		if err != nil {
			log.FromCtx(ctx).Fatal().Err(err).Msg("failed to load knowledge base")
		}

		if len(args) == 0 {
			fmt.Println(ui.TitleStyle.Render("Knowledge Base"))
			for _, item := range store.Items() {
				fmt.Printf("  %s  %s\n", ui.UsageStyle.Render(item.ID), item.Title)
			}
			fmt.Println(ui.DescStyle.Render("\nRun 'quakeaid kb <id>' to read an entry."))
			return nil
		}

		item, ok := store.ItemByID(args[0])
		if !ok {
			return fmt.Errorf("unknown knowledge id: %s", args[0])
		}

		fmt.Println(ui.TitleStyle.Render(item.Title))
		fmt.Println(item.Content)
		fmt.Println(ui.DescStyle.Render(fmt.Sprintf("\ncategory: %s | priority: %d", item.Category, item.Priority)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kbCmd)
}
