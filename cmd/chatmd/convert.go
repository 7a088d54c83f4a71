package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/assets"
	"github.com/alnah/go-chatmd/internal/config"
	"github.com/alnah/go-chatmd/internal/fileutil"
	"github.com/alnah/go-chatmd/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrReadCSS     = errors.New("failed to read CSS file")
	ErrReadInput   = errors.New("failed to read message")
	ErrWriteOutput = errors.New("failed to write output file")
)

// stdinArg selects standard input as the message source.
const stdinArg = "-"

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	mode      chatmd.Mode
	css       string
	title     string
	highlight bool
	page      *chatmd.PageSettings
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfig(configName)
	if err != nil {
		return err
	}

	// CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := chatmd.ParseMode(cfg.Output.Mode)
	if err != nil {
		return err
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}
	if err := checkStyle(cfg, opts); err != nil {
		return err
	}

	css, err := readCSS(flags.page.css)
	if err != nil {
		return err
	}

	params := &conversionParams{
		mode:      mode,
		css:       css,
		title:     cfg.Page.Title,
		highlight: cfg.Page.Highlight,
		page:      buildPageSettings(cfg),
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if inputPath == stdinArg {
		pool := env.NewPool(1, opts...)
		defer func() { _ = pool.Close() }()
		return convertStdin(ctx, pool, flags.output.path, params, flags.common.quiet, env)
	}

	outputDir := flags.output.path
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir, mode.Extension(), flags.output.exclude)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no message files found in %s", ErrNoInput, inputPath)
	}

	poolSize := min(chatmd.ResolvePoolSize(cfg.Workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Mode: %s, pool size: %d, files: %d\n", mode, poolSize, len(files))
	}
	pool := env.NewPool(poolSize, opts...)
	defer func() { _ = pool.Close() }()

	results := convertBatch(ctx, pool, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed: %w", failedCount, firstError(results))
	}

	return nil
}

// loadConfig loads the named config, or returns defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output.mode != "" {
		cfg.Output.Mode = flags.output.mode
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	if flags.page.title != "" {
		cfg.Page.Title = flags.page.title
	}
	if flags.page.style != "" {
		cfg.Page.Style = flags.page.style
		// An explicit --style beats a config-file noStyle.
		cfg.Page.NoStyle = false
	}
	if flags.page.noStyle {
		cfg.Page.NoStyle = true
	}
	if flags.page.highlight {
		cfg.Page.Highlight = true
	}
	if flags.page.highlightStyle != "" {
		cfg.Page.HighlightStyle = flags.page.highlightStyle
	}

	if flags.pdf.size != "" {
		cfg.PDF.Size = flags.pdf.size
	}
	if flags.pdf.margin > 0 {
		cfg.PDF.Margin = flags.pdf.margin
	}
	if flags.pdf.timeout != "" {
		cfg.PDF.Timeout = flags.pdf.timeout
	}

	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// converterOptions translates config into converter options.
func converterOptions(cfg *config.Config) ([]chatmd.Option, error) {
	var opts []chatmd.Option

	if cfg.Page.NoStyle {
		opts = append(opts, chatmd.WithNoStyle())
	} else if cfg.Page.Style != "" {
		opts = append(opts, chatmd.WithStyle(cfg.Page.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, chatmd.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Page.HighlightStyle != "" {
		opts = append(opts, chatmd.WithHighlightStyle(cfg.Page.HighlightStyle))
	}

	timeout, err := cfg.PDF.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, chatmd.WithTimeout(timeout))
	}

	return opts, nil
}

// checkStyle builds a throwaway converter so a bad style or asset path is
// reported once, before any file is read. No browser is started.
func checkStyle(cfg *config.Config, opts []chatmd.Option) error {
	conv, err := chatmd.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, chatmd.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(availableStyles(cfg.Assets.BasePath)))
		}
		return err
	}
	return conv.Close()
}

// availableStyles lists style names for hints. Errors yield an empty list.
func availableStyles(assetPath string) []string {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil
	}
	names, err := resolver.ListStyles()
	if err != nil {
		return nil
	}
	return names
}

// readCSS reads an extra CSS file. An empty path yields no CSS.
func readCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided CSS path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// buildPageSettings returns PDF page settings with defaults filled in.
func buildPageSettings(cfg *config.Config) *chatmd.PageSettings {
	page := chatmd.DefaultPageSettings()
	if cfg.PDF.Size != "" {
		page.Size = cfg.PDF.Size
	}
	if cfg.PDF.Margin > 0 {
		page.Margin = cfg.PDF.Margin
	}
	return page
}

// resolveInputPath picks the positional argument, then input.defaultDir.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected one input, got %d", ErrInvalidArgs, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: pass a file, a directory or - for stdin", ErrNoInput)
}

// convertStdin converts a single message read from stdin. The result goes to
// outputPath when given, else to stdout.
func convertStdin(ctx context.Context, pool Pool, outputPath string, params *conversionParams, quiet bool, env *Environment) error {
	raw, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	content, err := decodeMessage(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	conv, err := pool.Acquire()
	if err != nil {
		return err
	}
	defer pool.Release(conv)

	res, err := conv.Convert(ctx, chatmd.Input{
		Message:   content,
		Mode:      params.mode,
		Title:     params.title,
		CSS:       params.css,
		Highlight: params.highlight,
		Page:      params.page,
	})
	if err != nil {
		return err
	}

	out := res.Bytes(params.mode)
	if outputPath == "" {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = filepath.Join(outputPath, "message"+params.mode.Extension())
	}
	if err := fileutil.WriteFileAtomic(outputPath, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// firstError returns the first failure in results, in input order.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
