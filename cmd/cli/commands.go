package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(updateGameCmd)
	rootCmd.AddCommand(addNewsCmd)
	rootCmd.AddCommand(uploadLogoCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the current synchronized snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/snapshot")
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Print the recent completed matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/recent-matches")
	},
}

var addPlayerCmd = &cobra.Command{
	Use:   "add-player <name> <position>",
	Short: "Add a player to the squad",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"name":%q,"position":%q}`, args[0], args[1])
		return performRequest("POST", "/players", "application/json", strings.NewReader(body))
	},
}

var updateGameCmd = &cobra.Command{
	Use:   "update-game <id> <json>",
	Short: "Apply a partial update to a game, e.g. '{\"status\":\"completed\",\"home_score\":2,\"away_score\":1}'",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("PATCH", "/games/"+args[0], "application/json", strings.NewReader(args[1]))
	},
}

var addNewsCmd = &cobra.Command{
	Use:   "add-news <json>",
	Short: "Publish a news article from a JSON body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/news", "application/json", strings.NewReader(args[0]))
	},
}

var uploadLogoCmd = &cobra.Command{
	Use:   "upload-logo <file>",
	Short: "Upload a new team logo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read logo file: %w", err)
		}

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("logo", filepath.Base(args[0]))
		if err != nil {
			return err
		}
		if _, err := part.Write(data); err != nil {
			return err
		}
		if err := writer.Close(); err != nil {
			return err
		}
		return performRequest("POST", "/logo", writer.FormDataContentType(), &buf)
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
	return performRequest("GET", endpoint, "", nil)
}

func performRequest(method, endpoint, contentType string, body io.Reader) error {
	url := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, url)

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
