package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nkp-archive/nkp-scraper/internal/scrape"
)

func main() {
	app := &cli.App{
		Name:  "nkp-scraper",
		Usage: "scrape and extract Nepal Kanun Patrika case records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log per-link detail",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "scrape",
				Usage:  "scrape every case of one type and year",
				Action: scrape.ScrapeAction,
				Flags: append(commonScrapeFlags(),
					&cli.StringFlag{
						Name:     "case-type",
						Usage:    "case type name or its 1-based number (see list-case-types)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "year",
						Usage:    "Bikram Sambat year (Devanagari or ASCII digits)",
						Required: true,
					},
				),
			},
			{
				Name:   "test-link",
				Usage:  "scrape a single case link and print the extracted record",
				Action: scrape.TestLinkAction,
				Flags: append(commonScrapeFlags(),
					&cli.StringFlag{
						Name:     "url",
						Usage:    "case detail URL",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "case-type",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "year",
						Required: true,
					},
				),
			},
			{
				Name:   "test-saved",
				Usage:  "re-extract records from pages already saved on disk",
				Action: scrape.TestSavedAction,
				Flags: append(commonScrapeFlags(),
					&cli.StringFlag{
						Name:  "case-type",
						Usage: "restrict to one case type",
					},
					&cli.StringFlag{
						Name:  "year",
						Usage: "restrict to one year",
					},
				),
			},
			{
				Name:   "list-case-types",
				Usage:  "print the case type table the search form uses",
				Action: scrape.ListCaseTypesAction,
			},
			{
				Name:   "stats",
				Usage:  "print the top keywords across stored cases",
				Action: scrape.StatsAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "database path override"},
					&cli.StringFlag{Name: "case-type", Usage: "restrict to one case type"},
					&cli.IntFlag{Name: "top", Value: 25, Usage: "number of keywords to print"},
				},
			},
			{
				Name:   "list-failed",
				Usage:  "print links recorded as failed",
				Action: scrape.ListFailedAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "database path override"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func commonScrapeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "workers",
			Usage: "worker pool size override",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "database path override",
		},
		&cli.StringFlag{
			Name:  "html-dir",
			Usage: "saved HTML directory override",
		},
		&cli.BoolFlag{
			Name:  "force-fetch",
			Usage: "ignore saved pages and refetch",
		},
	}
}
