package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"discsub/internal/hashes"
	"discsub/internal/identification"
	"discsub/internal/logging"
	"discsub/internal/report"
	"discsub/internal/services"
	sub "discsub/internal/submission"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var datPath string
	var outputDir string
	var skipWrite bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Identify a dumped disc and write its submission files",
		Long: `Resolve matches every track hash of a dumped disc against the catalog,
copies the canonical metadata of the first fully matching disc into the
record, and writes !submissionInfo.txt and its JSON companion.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			rec, err := loadRecord(inputPath)
			if err != nil {
				return err
			}
			if strings.TrimSpace(datPath) != "" {
				data, err := os.ReadFile(datPath)
				if err != nil {
					return fmt.Errorf("read dat: %w", err)
				}
				rec.TracksAndWriteOffsets.ClrMameProData = strings.TrimSpace(string(data))
			}

			client, err := ctx.catalog()
			if err != nil {
				return err
			}
			searcher, closeSearcher, err := ctx.searcher(client)
			if err != nil {
				return err
			}
			defer closeSearcher()

			resolver := identification.NewResolver(searcher, client, client, identification.Options{
				Username:           cfg.Redump.Username,
				Password:           cfg.Redump.Password,
				PullAllInformation: cfg.Submission.PullAllInformation,
			}, logger)

			result, resolveErr := resolver.Resolve(cmd.Context(), rec, trackCount(rec))
			if resolveErr != nil {
				return fmt.Errorf("resolve (%s): %w", result.Outcome, resolveErr)
			}

			identification.Finalize(rec, cfg.Submission.NormalizeTitles)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run: %s\n", result.RunID)
			fmt.Fprintf(out, "Outcome: %s\n", result.Outcome)
			if result.Message != "" {
				fmt.Fprintf(out, "%s\n", result.Message)
			}
			if result.MatchedID != 0 {
				fmt.Fprintf(out, "Matched: %s\n", client.DiscURL(result.MatchedID))
			}
			if skipWrite {
				return nil
			}

			writer := report.NewWriterFromConfig(cfg, logger)
			if dir := strings.TrimSpace(outputDir); dir != "" {
				writer = report.NewWriter(dir, cfg.Submission.IncludeArtifacts,
					report.Options{RedumpCompatibility: cfg.Submission.RedumpCompatibility}, logger)
			}
			paths, err := writer.Write(rec)
			if err != nil {
				logging.ErrorWithContext(logger, "submission write failed", "submission_write_failed",
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check output directory permissions"),
					logging.String(logging.FieldImpact, "no submission files were produced"),
				)
				return err
			}
			fmt.Fprintf(out, "Wrote %s\n", paths.Text)
			fmt.Fprintf(out, "Wrote %s\n", paths.JSON)
			if paths.Protection != "" {
				fmt.Fprintf(out, "Wrote %s\n", paths.Protection)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Submission record JSON produced by the dumping frontend")
	cmd.Flags().StringVar(&datPath, "dat", "", "DAT file whose rom lines replace the record's track hashes")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for submission files (defaults to submission.output_dir)")
	cmd.Flags().BoolVar(&skipWrite, "dry-run", false, "Resolve and print the summary without writing files")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func loadRecord(path string) (*sub.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	defer file.Close()

	rec := sub.New()
	if err := json.NewDecoder(file).Decode(rec); err != nil {
		return nil, services.Wrap(services.ErrParse, "cli", "load record", path, err)
	}
	if rec.SchemaVersion > sub.SchemaVersion {
		return nil, services.Wrap(services.ErrValidation, "cli", "load record",
			fmt.Sprintf("record schema %d is newer than supported %d", rec.SchemaVersion, sub.SchemaVersion), nil)
	}
	return rec, nil
}

// trackCount is the number of rom lines in the record's DAT. A record with
// only an image checksum is a single track.
func trackCount(rec *sub.Record) int {
	if lines := hashes.Lines(rec.TracksAndWriteOffsets.ClrMameProData); len(lines) > 0 {
		return len(lines)
	}
	return 1
}
