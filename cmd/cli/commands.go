package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	dryRun     bool
	date       string
	outputFile string
)

func init() {
	planCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Plan without writing the schedule")
	planWeekCmd.Flags().StringVar(&date, "date", "", "Play date to plan (YYYY-MM-DD)")
	planWeekCmd.MarkFlagRequired("date")
	planCmd.AddCommand(planSeasonCmd, planWeekCmd)

	reservationsCmd.Flags().StringVar(&date, "date", "", "Only show this play date (YYYY-MM-DD)")
	ladderCmd.AddCommand(ladderSinglesCmd, ladderDoublesCmd)
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "court-planner.xlsx", "File to write the workbook to")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(reservationsCmd)
	rootCmd.AddCommand(ladderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan matches for the season or a single week",
}

var planSeasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Replace the whole schedule with a freshly planned season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/plan/season", url.Values{"dry_run": {fmt.Sprint(dryRun)}})
	},
}

var planWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Replace the matches of one play date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/plan/week", url.Values{"date": {date}, "dry_run": {fmt.Sprint(dryRun)}})
	},
}

var reservationsCmd = &cobra.Command{
	Use:   "reservations",
	Short: "List reservations, optionally for one date",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/reservations"
		if date != "" {
			endpoint += "?" + url.Values{"date": {date}}.Encode()
		}
		return performGetRequest(endpoint)
	},
}

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Show a competitive ladder",
}

var ladderSinglesCmd = &cobra.Command{
	Use:   "singles",
	Short: "Show the singles ladder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/ladder/singles")
	},
}

var ladderDoublesCmd = &cobra.Command{
	Use:   "doubles",
	Short: "Show the doubles ladder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/ladder/doubles")
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the season workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		return downloadFile("/export", outputFile)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func performPostRequest(endpoint string, query url.Values) error {
	url := host + endpoint + "?" + query.Encode()
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if adminToken != "" {
		req.Header.Set("Authorization", "Bearer "+adminToken)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))
	return nil
}

func downloadFile(endpoint, path string) error {
	url := host + endpoint
	fmt.Printf("Downloading %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return printResponse(resp)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	n, err := io.Copy(f, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %d bytes to %s\n", n, path)
	return nil
}
