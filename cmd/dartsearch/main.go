package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	opendart "github.com/minh-dng/opendart-go"
)

func main() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("search failed")
		os.Exit(1)
	}
}

type searchFlags struct {
	corpCode       string
	beginDate      string
	endDate        string
	lastReportAt   string
	disclosureType []string
	detailType     []string
	corpClass      string
	sort           string
	sortOrder      string
	pageNo         int
	pageCount      int
	pageNoSet      bool
	pageCountSet   bool
	validate       bool
	debug          bool
}

func (f *searchFlags) request() (opendart.SearchRequest, error) {
	b := opendart.NewSearchRequestBuilder().
		SetCorpCode(f.corpCode).
		SetDateRange(f.beginDate, f.endDate).
		SetLastReportAt(f.lastReportAt).
		SetDisclosureType(f.disclosureType...).
		SetDisclosureDetailType(f.detailType...).
		SetCorpClass(f.corpClass).
		SetSort(f.sort, f.sortOrder)
	// Unset page flags fall back to the client defaults; explicit values, 0
	// included, are sent as given.
	if f.pageNoSet {
		b.SetPageNo(f.pageNo)
	}
	if f.pageCountSet {
		b.SetPageCount(f.pageCount)
	}
	req, err := b.Build()
	if err != nil && f.validate {
		return opendart.SearchRequest{}, err
	}
	return req, nil
}

// NewRootCmd builds the dartsearch command writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:          "dartsearch",
		Short:        "Search OpenDART filings",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05", NoColor: true})
			if f.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			opendart.SetLogger(log.Logger)
			if err := godotenv.Load(); err != nil {
				log.Debug().Err(err).Msg("no .env file, using environment variables")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f.pageNoSet = cmd.Flags().Changed("page-no")
			f.pageCountSet = cmd.Flags().Changed("page-count")
			req, err := f.request()
			if err != nil {
				return err
			}
			cfg, err := opendart.LoadConfig()
			if err != nil {
				return err
			}
			cfg.Debug = cfg.Debug || f.debug
			client, err := opendart.New(opendart.WithConfig(cfg))
			if err != nil {
				return err
			}
			res, err := client.SearchFilings(cmd.Context(), req)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.corpCode, "corp-code", "", "8-digit company code")
	fl.StringVar(&f.beginDate, "bgn-de", "", "start receipt date (YYYYMMDD)")
	fl.StringVar(&f.endDate, "end-de", "", "end receipt date (YYYYMMDD)")
	fl.StringVar(&f.lastReportAt, "last-reprt-at", "", "final reports only (Y or N)")
	fl.StringSliceVar(&f.disclosureType, "pblntf-ty", nil, "disclosure type, repeatable")
	fl.StringSliceVar(&f.detailType, "pblntf-detail-ty", nil, "detailed disclosure type, repeatable")
	fl.StringVar(&f.corpClass, "corp-cls", "", "corporation class (Y, K, N, E)")
	fl.StringVar(&f.sort, "sort", "", "sort key (date, crp, rpt)")
	fl.StringVar(&f.sortOrder, "sort-mth", "", "sort order (asc, desc)")
	fl.IntVar(&f.pageNo, "page-no", 0, "page number")
	fl.IntVar(&f.pageCount, "page-count", 0, "items per page (1-100)")
	fl.BoolVar(&f.validate, "validate", false, "reject invalid filters before calling the API")
	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "log requests and responses")

	return cmd
}
