package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/sitebrief/internal/crawler"
	"github.com/jmylchreest/sitebrief/internal/logger"
	"github.com/jmylchreest/sitebrief/internal/output"
	"github.com/jmylchreest/sitebrief/internal/pipeline"
	"github.com/jmylchreest/sitebrief/internal/scraper"
	"github.com/jmylchreest/sitebrief/internal/tokens"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Crawl a website, summarize it, and preview the token cost",
	Long: `Crawl same-host pages from a start URL, reduce the extracted text
to a short summary, and report the summary plus its token count.

An unreachable site is not an error: the result is a null summary and a
token count of zero, and the token-counting endpoint is never called.

Examples:
  # Defaults: depth 1, 5000 chars, 3 pages, 5 sentences
  sitebrief preview -u "https://example.com"

  # Static fetch for sites that don't need JavaScript
  sitebrief preview -u "https://example.com" --fetch-mode static

  # YAML output to a file
  sitebrief preview -u "https://example.com" --format yaml -o preview.yaml`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	flags := previewCmd.Flags()

	// Crawl settings
	flags.StringP("url", "u", "", "start URL to crawl (required)")
	flags.Int("max-depth", 1, "max link depth (0=start page only)")
	flags.Int("max-chars", 5000, "character budget for accumulated page text")
	flags.Int("max-pages", 3, "max pages to fetch")
	flags.Int("sentences", 5, "summary sentence count")

	// Fetch settings
	flags.String("fetch-mode", "dynamic", "fetch mode: auto, static, dynamic")
	flags.Duration("timeout", 30*time.Second, "per-page fetch timeout")
	flags.Duration("settle", 2*time.Second, "wait after page load for client-side rendering")

	// Provider settings
	flags.StringP("provider", "p", "", "token-count provider: anthropic, openai (auto-detects from env vars)")
	flags.StringP("model", "m", "", "model name (provider-specific)")
	flags.StringP("api-key", "k", "", "API key (or use env var)")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, yaml")

	_ = previewCmd.MarkFlagRequired("url")

	_ = viper.BindPFlag("provider", flags.Lookup("provider"))
	_ = viper.BindPFlag("model", flags.Lookup("model"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	startURL, _ := cmd.Flags().GetString("url")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	maxChars, _ := cmd.Flags().GetInt("max-chars")
	maxPages, _ := cmd.Flags().GetInt("max-pages")
	sentences, _ := cmd.Flags().GetInt("sentences")

	opts := pipeline.Options{
		StartURL:      startURL,
		MaxDepth:      maxDepth,
		MaxChars:      maxChars,
		MaxPages:      maxPages,
		SentenceCount: sentences,
	}

	// Fetcher: one session for the whole crawl, always released.
	fetchMode, _ := cmd.Flags().GetString("fetch-mode")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	settle, _ := cmd.Flags().GetDuration("settle")

	fetcher, err := scraper.NewFetcher(scraper.FetchMode(fetchMode), scraper.FetcherConfig{
		Timeout: timeout,
		Settle:  settle,
	})
	if err != nil {
		logError("%v", err)
		return err
	}
	defer func() {
		if cerr := fetcher.Close(); cerr != nil {
			logger.Warn("fetcher close failed", "error", cerr)
		}
	}()

	// Token counter
	provider := viper.GetString("provider")
	apiKey := viper.GetString("api_key")
	if provider == "" {
		detected, detectedKey := tokens.DetectProvider()
		provider = detected
		if apiKey == "" {
			apiKey = detectedKey
		}
		logger.Debug("auto-detected provider", "provider", provider)
	}

	model := viper.GetString("model")
	if model == "" {
		model = tokens.GetDefaultModel(provider)
	}

	counter, err := tokens.NewCounter(provider, tokens.Config{
		APIKey: apiKey,
		Model:  model,
	})
	if err != nil {
		logError("%v", err)
		return err
	}

	crawl := crawler.New(fetcher, crawler.Config{
		MaxDepth: maxDepth,
		MaxChars: maxChars,
		MaxPages: maxPages,
	})

	p, err := pipeline.New(crawl, counter, opts)
	if err != nil {
		logError("%v", err)
		return err
	}

	logInfo("crawling %s (fetch=%s, provider=%s, model=%s)", startURL, fetcher.Type(), provider, model)

	preview, err := p.Run(ctx)
	if err != nil {
		logError("%v", err)
		return err
	}

	if preview.Summary == nil {
		logInfo("no text found; nothing to summarize")
	} else {
		logInfo("summary %s, estimated %s tokens",
			humanize.Bytes(uint64(len(*preview.Summary))),
			humanize.Comma(int64(preview.TokenCount)))
	}

	// Write the result
	out := os.Stdout
	if outputFile, _ := cmd.Flags().GetString("output"); outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			logError("failed to create output file: %v", err)
			return err
		}
		defer f.Close()
		out = f
	}

	format, _ := cmd.Flags().GetString("format")
	writer, err := output.NewWriter(out, output.Format(format))
	if err != nil {
		logError("%v", err)
		return err
	}

	return writer.Write(preview)
}
