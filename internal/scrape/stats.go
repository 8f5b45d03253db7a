package scrape

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nkp-archive/nkp-scraper/pkg/analytics"
	"github.com/nkp-archive/nkp-scraper/pkg/db"
	"github.com/nkp-archive/nkp-scraper/pkg/mapreduce"
)

// StatsAction aggregates word frequencies over the stored subjects and
// holdings and prints the top keywords, a quick view of what a scraped
// corpus is about.
func StatsAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	query := "SELECT विषय, ठहर FROM cases"
	var args []any
	if c.IsSet("case-type") {
		caseType, _, err := resolveCaseType(c.String("case-type"))
		if err != nil {
			return err
		}
		query += " WHERE मुद्दाको_किसिम = ?"
		args = append(args, caseType)
	}

	rows, err := database.Query(query, args...)
	if err != nil {
		return fmt.Errorf("querying cases: %w", err)
	}
	defer rows.Close()

	a := &analytics.Analytics{}
	var intermediate []map[string]int
	caseCount := 0
	for rows.Next() {
		var subject, holdingJSON string
		if err := rows.Scan(&subject, &holdingJSON); err != nil {
			return fmt.Errorf("scanning case: %w", err)
		}
		caseCount++

		var holding []string
		if err := json.Unmarshal([]byte(holdingJSON), &holding); err != nil {
			logger.Warn("unparseable holding column", "error", err)
		}
		text := subject + " " + strings.Join(holding, " ")
		intermediate = append(intermediate, mapreduce.Map(text, a))
	}
	if err := rows.Err(); err != nil {
		return err
	}

	final := mapreduce.Reduce(intermediate)
	fmt.Printf("--- Top %d keywords across %d cases ---\n", c.Int("top"), caseCount)
	mapreduce.PrintTopKeywords(os.Stdout, final, c.Int("top"))
	return nil
}
