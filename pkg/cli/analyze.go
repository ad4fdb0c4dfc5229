package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ikshantshukla123/Codediff.ai/pkg/cli/config"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/model"
	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/infra"
	"github.com/ikshantshukla123/Codediff.ai/pkg/usecase"
	"github.com/ikshantshukla123/Codediff.ai/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

var errVulnerable = goerr.New("pull request diff is vulnerable")

func analyzeCommand() *cli.Command {
	var (
		diffFile       string
		owner          string
		repoName       string
		prNumber       int64
		format         string
		failVulnerable bool

		oracle   config.Oracle
		pipeline config.Pipeline
	)

	analyzeFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "diff-file",
			Aliases:     []string{"d"},
			Usage:       "Path to a unified diff. '-' reads from stdin",
			Value:       "-",
			Destination: &diffFile,
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner. Detected from the origin remote if empty",
			Destination: &owner,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name. Detected from the origin remote if empty",
			Destination: &repoName,
		},
		&cli.Int64Flag{
			Name:        "pr",
			Usage:       "Pull request number, used only to label the result",
			Destination: &prNumber,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Output format [markdown|json]",
			Value:       formatMarkdown,
			Destination: &format,
		},
		&cli.BoolFlag{
			Name:        "fail-on-vulnerable",
			Usage:       "Exit with an error if the diff is VULNERABLE",
			Destination: &failVulnerable,
		},
	}

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Analyze a local diff and print the report. Nothing is stored or posted",
		Flags: slice.Flatten(
			analyzeFlags,
			oracle.Flags(),
			pipeline.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != formatMarkdown && format != formatJSON {
				return goerr.Wrap(types.ErrInvalidOption, "unsupported output format", goerr.V("format", format))
			}

			ctx = logging.With(ctx, logging.Default())

			diff, err := readDiff(c.Root().Reader, diffFile)
			if err != nil {
				return err
			}

			if owner == "" && repoName == "" {
				if o, r, err := DetectRepository("."); err != nil {
					logging.From(ctx).Debug("repository is not detected", "error", err)
				} else {
					owner, repoName = o, r
				}
			}

			logging.From(ctx).Info("starting analyze",
				slog.String("DiffFile", diffFile),
				slog.String("Owner", owner),
				slog.String("Repo", repoName),
				slog.Int64("PR", prNumber),
				slog.Any("Oracle", &oracle),
				slog.Any("Pipeline", &pipeline),
			)

			var infraOptions []infra.Option
			if bugOracle, err := oracle.NewOracle(ctx); err != nil {
				return err
			} else if bugOracle != nil {
				infraOptions = append(infraOptions, infra.WithBugOracle(bugOracle))
			}

			uc := usecase.New(infra.New(infraOptions...), pipeline.Options()...)
			analysis, err := uc.AnalyzeDiff(ctx, &model.AnalyzeDiffInput{
				Owner:    owner,
				Repo:     repoName,
				PRNumber: int(prNumber),
				Diff:     diff,
			})
			if err != nil {
				return err
			}

			if err := writeAnalysis(c.Root().Writer, format, analysis); err != nil {
				return err
			}

			if failVulnerable && analysis.Status == types.AnalysisStatusVulnerable {
				return goerr.Wrap(errVulnerable, "analysis result",
					goerr.V("riskScore", analysis.RiskScore),
					goerr.V("issues", analysis.IssuesFound),
				)
			}
			return nil
		},
	}
}

func readDiff(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read diff from stdin")
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", goerr.Wrap(err, "failed to read diff file", goerr.V("path", path))
	}
	return string(raw), nil
}

func writeAnalysis(w io.Writer, format string, analysis *model.Analysis) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			return goerr.Wrap(err, "failed to encode analysis")
		}
	default:
		if _, err := io.WriteString(w, usecase.RenderLocalReport(analysis)); err != nil {
			return goerr.Wrap(err, "failed to write report")
		}
	}
	return nil
}
