package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/feregion-service/internal/domain"
	"github.com/couchcryptid/feregion-service/internal/feregion"
	"github.com/couchcryptid/feregion-service/internal/pipeline"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify newline-delimited bulletin JSON offline",
	Long: "Reads one raw earthquake record per line from file (or stdin) and writes the\n" +
		"classified events as JSON lines, exactly as the Kafka pipeline would publish them.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		idx, err := loadIndex()
		if err != nil {
			return err
		}
		transformer := pipeline.NewTransformer(feregion.NewClassifier(idx, logger), logger, nil)

		written, skipped, err := classifyLines(cmd.Context(), transformer, in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logger.Info("classify complete", "written", written, "skipped", skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func classifyLines(ctx context.Context, t pipeline.Transformer, r io.Reader, w io.Writer) (written, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		out, err := t.Transform(ctx, domain.RawEvent{Value: append([]byte(nil), data...), Offset: int64(line)})
		if err != nil {
			logger.Warn("skipping record", "line", line, "error", err)
			skipped++
			continue
		}
		if _, err := fmt.Fprintln(w, string(out.Value)); err != nil {
			return written, skipped, err
		}
		written++
	}
	if err := scanner.Err(); err != nil {
		return written, skipped, fmt.Errorf("read line %d: %w", line+1, err)
	}
	return written, skipped, nil
}
