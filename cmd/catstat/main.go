package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"catstat/adapters/tabular"
	"catstat/app"
	"catstat/domain/dataset"
	"catstat/internal"
	"catstat/internal/config"
)

// Runs the association analysis over the bundled sample dataset, or over a
// csv/xlsx file:
//
//	catstat                        # Gender vs Purchase sample data
//	catstat data.csv               # first two columns of the file
//	catstat data.xlsx ColA ColB    # named column pair
func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	service := app.NewAnalysisService(cfg, logger)

	tbl, colA, colB, err := loadInput(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	outcome, err := service.Run(tbl, colA, colB)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	logger.Info("%s vs %s: chi-square=%.4f p=%.4e dof=%d cramers_v=%.4f (%s)",
		colA, colB,
		outcome.Result.ChiSquare, outcome.Result.PValue,
		outcome.Result.DegreesOfFreedom, outcome.Result.CramersV,
		outcome.Result.Strength())
}

func loadInput(args []string) (dataset.Table, string, string, error) {
	if len(args) == 0 {
		// Bundled sample: ten shoppers, gender vs purchase decision
		tbl := dataset.NewMemoryTable().
			AddColumn("Gender", []string{"Male", "Female", "Female", "Male", "Female", "Male", "Female", "Male", "Female", "Male"}).
			AddColumn("Purchase", []string{"Yes", "No", "Yes", "Yes", "No", "Yes", "No", "Yes", "No", "Yes"})
		return tbl, "Gender", "Purchase", nil
	}

	tbl, err := tabular.NewReader(args[0]).Read()
	if err != nil {
		return nil, "", "", err
	}

	if len(args) >= 3 {
		return tbl, args[1], args[2], nil
	}

	names := tbl.ColumnNames()
	if len(names) < 2 {
		return nil, "", "", fmt.Errorf("input file needs at least two columns, found %d", len(names))
	}
	return tbl, names[0], names[1], nil
}
