// Package organize handles the directory organization command
package organize

import (
	"context"
	"os"

	"fjacquet/autokit/cmd/root"
	"fjacquet/autokit/internal/categorizer"
	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
	"fjacquet/autokit/internal/organizer"
	"fjacquet/autokit/internal/store"

	"github.com/spf13/cobra"
)

var (
	dryRun         bool
	categoriesFile string
	initCategories bool
)

// Cmd represents the organize command
var Cmd = &cobra.Command{
	Use:   "organize [directory]",
	Short: "Organize files in a directory into category folders",
	Long: `Organize scans a directory and moves every regular file into a
subfolder derived from its extension (Images, Documents, ...). Unknown
extensions go to the fallback folder. Re-running on an organized
directory is a no-op.`,
	Args: cobra.MaximumNArgs(1),
	Run:  organizeFunc,
}

func init() {
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned moves without touching the filesystem")
	Cmd.Flags().StringVar(&categoriesFile, "categories", "", "Category table YAML file (overrides configuration)")
	Cmd.Flags().BoolVar(&initCategories, "init-categories", false, "Write the default category table to the categories file and exit")
}

func organizeFunc(cmd *cobra.Command, args []string) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	log := logging.NewLogrusAdapterFromLogger(root.Log)

	file := categoriesFile
	if file == "" {
		file = root.Cfg.Organizer.CategoriesFile
	}

	if initCategories {
		if err := store.NewCategoryStore(file).SaveCategories(store.DefaultCategories()); err != nil {
			log.Fatalf("Error writing categories file: %v", err)
		}
		target := file
		if target == "" {
			target = "categories.yaml"
		}
		root.Log.Infof("Wrote default category table to %s", target)
		return
	}

	categories, err := store.NewCategoryStore(file).LoadCategories()
	if err != nil {
		log.Fatalf("Error loading category table: %v", err)
	}
	table := models.NewCategoryTable(categories)

	strategies := []categorizer.Strategy{
		categorizer.NewExtensionStrategy(table, log),
	}
	if root.Cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(root.Cfg)
		if err != nil {
			log.WithError(err).Warn("AI categorization unavailable, continuing without it")
		} else {
			defer func() {
				_ = client.Close()
			}()
			strategies = append(strategies, categorizer.NewAIStrategy(client, table, log))
		}
	}

	cat := categorizer.NewCategorizer(strategies, root.Cfg.Organizer.FallbackCategory, log)
	org := organizer.New(cat, log, organizer.WithDryRun(dryRun))

	report, err := org.Organize(context.Background(), dir)
	if err != nil {
		log.Fatalf("Error organizing directory: %v", err)
	}

	for _, result := range report.Results {
		switch result.Status {
		case models.StatusMoved:
			root.Log.Infof("Moved: %s -> %s/", result.File, result.Category)
		case models.StatusFailed:
			root.Log.Errorf("Failed: %s (%s)", result.File, result.Reason)
		default:
			root.Log.Debugf("Skipped: %s (%s)", result.File, result.Reason)
		}
	}
	root.Log.Infof("Organization complete! Moved %d files, skipped %d, failed %d.",
		report.Moved(), report.Skipped(), report.Failed())

	if report.Failed() > 0 {
		os.Exit(1)
	}
}
