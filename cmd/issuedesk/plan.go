package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"issuedesk/internal/article"
	"issuedesk/internal/classify"
	"issuedesk/internal/config"
	"issuedesk/internal/export"
	"issuedesk/internal/ingest"
	"issuedesk/internal/session"
)

var (
	planOut        string
	planRubrics    []string
	planStates     []string
	planTopics     []string
	planFrom       string
	planTo         string
	planNoClassify bool
)

func init() {
	planCmd.Flags().StringVarP(&planOut, "out", "o", "", "Output workbook path (default Editorial_Plan_<date>.xlsx)")
	planCmd.Flags().StringSliceVar(&planRubrics, "rubric", nil, "Keep only these rubrics")
	planCmd.Flags().StringSliceVar(&planStates, "state", nil, "Keep only these production states")
	planCmd.Flags().StringSliceVar(&planTopics, "topic", nil, "Keep only these topics (applied after classification)")
	planCmd.Flags().StringVar(&planFrom, "from", "", "Keep only online-first dates on or after this date (YYYY-MM-DD)")
	planCmd.Flags().StringVar(&planTo, "to", "", "Keep only online-first dates on or before this date (YYYY-MM-DD)")
	planCmd.Flags().BoolVar(&planNoClassify, "no-classify", false, "Skip AI classification; topics default immediately")
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan <manifest.xlsx>",
	Short: "Build an issue plan without the interactive session",
	Long: `Run the full pipeline headlessly: ingest the manifest, classify the
titles, apply the given filters, select everything that remains, and
export the issue plan.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

// PlanResult is the response for the plan command.
type PlanResult struct {
	Status   string          `json:"status"`
	Rows     int             `json:"rows"`
	Selected int             `json:"selected"`
	Output   string          `json:"output"`
	Summary  article.Summary `json:"summary"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := loadManifest(args[0])
	if err != nil {
		return err // loadManifest already exits on pipeline errors
	}
	gen := store.Generation()

	if planNoClassify {
		store.ResolvePending(gen)
	} else {
		key := config.APIKey()
		if key == "" {
			exitWithError(ExitConfigError, "no Gemini credential: set %s or gemini_api_key in %s (or pass --no-classify)",
				config.EnvAPIKey, config.Path())
		}

		client := newClassifier(key)
		topics, err := client.Categorize(context.Background(), article.SurgicalTopics, store.Titles())
		if err != nil {
			// Classification failure never fails the run; everything
			// pending falls back to the standing topic.
			fmt.Fprintf(os.Stderr, "warning: classification failed, topics defaulted: %v\n", err)
			store.ResolvePending(gen)
		} else {
			store.ApplyTopics(gen, topics)
		}
	}

	filters, err := buildFilters()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	visible := store.Visible(filters)
	ids := make([]string, len(visible))
	for i, a := range visible {
		ids[i] = a.ID
	}
	store.SelectAll(ids)

	out := planOut
	if out == "" {
		out = export.DefaultFilename(time.Now())
	}

	f, err := os.Create(out)
	if err != nil {
		exitWithError(ExitError, "creating %s: %v", out, err)
	}
	defer f.Close()

	if err := export.Write(f, store.Selected()); err != nil {
		exitWithError(ExitError, "writing plan: %v", err)
	}

	result := PlanResult{
		Status:   "ok",
		Rows:     store.Len(),
		Selected: len(visible),
		Output:   out,
		Summary:  store.Summary(),
	}

	if humanOutput {
		fmt.Printf("Issue plan written to %s\n\n%d rows ingested, %d selected, ~%d pages\n",
			out, result.Rows, result.Selected, result.Summary.EstimatedPages)
	} else {
		outputJSON(result)
	}
	return nil
}

// loadManifest runs read -> normalize -> validate -> derive and installs
// the collection in a fresh store, exiting with a specific message on any
// ingestion error.
func loadManifest(path string) (*session.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening manifest: %v", err)
	}
	defer f.Close()

	raw, err := ingest.ReadWorkbook(f)
	if err != nil {
		exitWithError(ExitDataError, "could not parse the manifest: %v", err)
	}

	articles, err := ingest.Load(raw)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	store := session.New()
	store.Replace(articles)
	return store, nil
}

// newClassifier builds the Gemini client from config.
func newClassifier(apiKey string) *classify.Client {
	cfg, _ := config.Load()

	var opts []classify.Option
	if cfg.Model != "" {
		opts = append(opts, classify.WithModel(cfg.Model))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, classify.WithBaseURL(cfg.Endpoint))
	}
	return classify.NewClient(apiKey, opts...)
}

// buildFilters assembles the filter spec from the plan flags.
func buildFilters() (article.Filters, error) {
	filters := article.Filters{
		Rubrics:          planRubrics,
		ProductionStates: planStates,
		Topics:           planTopics,
	}

	if planFrom != "" {
		t, err := time.Parse("2006-01-02", planFrom)
		if err != nil {
			return article.Filters{}, fmt.Errorf("invalid --from date %q (want YYYY-MM-DD)", planFrom)
		}
		filters.DateFrom = t
	}
	if planTo != "" {
		t, err := time.Parse("2006-01-02", planTo)
		if err != nil {
			return article.Filters{}, fmt.Errorf("invalid --to date %q (want YYYY-MM-DD)", planTo)
		}
		filters.DateTo = t
	}
	return filters, nil
}
