package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	request "brokerage_crm/internal/adapter/http/dto/request"
	response "brokerage_crm/internal/adapter/http/dto/response"
	"brokerage_crm/internal/app"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest quote outcomes from a JSON file",
	Long:  "Ingest one quote outcome (a JSON object) or several (a JSON array) through the ingestion gateway. Use --file - to read stdin.",
	Args:  cobra.NoArgs,
	RunE:  runIngest,
}

var ingestFile string

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to the JSON payload, or - for stdin (required)")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	payloads, err := readIngestPayloads(ingestFile)
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		out := make([]response.IngestResponse, 0, len(payloads))
		for i, p := range payloads {
			res, err := a.Ingestion.Ingest(ctx, p.ToInput())
			if err != nil {
				return fmt.Errorf("payload %d: %w", i, err)
			}
			out = append(out, response.FromIngestResult(res))
		}
		return printJSON(out)
	})
}

func readIngestPayloads(path string) ([]request.IngestQuoteRequest, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return parseIngestPayloads(raw)
}

func parseIngestPayloads(raw []byte) ([]request.IngestQuoteRequest, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	if raw[0] == '[' {
		var many []request.IngestQuoteRequest
		if err := json.Unmarshal(raw, &many); err != nil {
			return nil, fmt.Errorf("invalid payload: %w", err)
		}
		return many, nil
	}
	var one request.IngestQuoteRequest
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("invalid payload: %w", err)
	}
	return []request.IngestQuoteRequest{one}, nil
}
