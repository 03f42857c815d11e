// Command goident translates short phrases into identifier-style English
// tokens using an AI oracle.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ZaguanLabs/goident"
	"github.com/ZaguanLabs/goident/cache"
	"github.com/ZaguanLabs/goident/contextfile"
	"github.com/ZaguanLabs/goident/oracle"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = goident.Version
	commit    = goident.GitCommit
	buildDate = goident.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("goident", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	formatName := fs.String("format", "kebab-case", "Output format (kebab-case, snake_case, camelCase, PascalCase, lowercase, UPPERCASE)")
	formatShort := fs.String("f", "", "Output format (short for --format)")
	maxLength := fs.Int("max-length", goident.DefaultMaxLength, "Maximum identifier length")
	contextStr := fs.String("context", "", "Background context for the oracle (e.g., 'FCT test documentation')")
	contextFile := fs.String("context-file", "", "Load context from a file")
	contextDir := fs.String("context-dir", ".", "Directory searched for project context files (empty to disable)")
	cacheDir := fs.String("cache-dir", ".ai-translator-cache", "Translation cache directory")
	noCache := fs.Bool("no-cache", false, "Disable the persistent cache")
	redisURL := fs.String("redis", "", "Use a Redis cache at this URL instead of the file cache")
	oracleCmd := fs.String("oracle-cmd", "", "Invoke this command as the oracle instead of OpenAI (prompt appended as last arg)")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	timeout := fs.Int("timeout", 120, "Oracle invocation timeout in seconds")
	retries := fs.Int("retries", 3, "Oracle retry attempts (0 to disable)")
	rpm := fs.Int("rpm", 0, "Oracle rate limit in requests per minute (0 to disable)")
	jsonOutput := fs.Bool("json", false, "Output results as JSON")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", goident.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -f alias for --format
	if *formatShort != "" {
		*formatName = *formatShort
	}

	format, ok := goident.ParseFormat(*formatName)
	if !ok {
		return fmt.Errorf("unknown format %q", *formatName)
	}

	phrases := fs.Args()
	if len(phrases) == 0 {
		fs.Usage()
		return fmt.Errorf("at least one phrase is required")
	}

	// Assemble the context bundle
	bundle := contextfile.Load(contextfile.Options{
		Literal: *contextStr,
		File:    *contextFile,
		Dir:     *contextDir,
	})

	// Create oracle
	o, err := buildOracle(*oracleCmd, *apiKey, *model)
	if err != nil {
		return err
	}

	if *retries > 0 {
		cfg := goident.DefaultRetryConfig()
		cfg.MaxRetries = *retries
		o = goident.NewRetryableOracle(o, cfg)
	}

	if *rpm > 0 {
		o = goident.NewRateLimitedOracle(o, goident.RateLimitConfig{RequestsPerMinute: *rpm})
	}

	// Build options
	opts := []goident.TranslatorOption{
		goident.WithMaxLength(*maxLength),
		goident.WithTimeout(time.Duration(*timeout) * time.Second),
	}

	if bundle != "" {
		opts = append(opts, goident.WithContext(bundle))
	}

	if !*noCache {
		store, err := buildStore(*redisURL, *cacheDir)
		if err != nil {
			return err
		}
		opts = append(opts, goident.WithStore(store))
	}

	if !*quiet {
		opts = append(opts, goident.WithDiagnostics(stderr))
	}

	// Translate
	translator := goident.NewTranslator(format, o, opts...)

	start := time.Now()
	results := translator.BatchTranslate(context.Background(), phrases)
	elapsed := time.Since(start)

	// Output
	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	seen := make(map[string]bool)
	failed := 0
	for _, p := range phrases {
		if seen[p] {
			continue
		}
		seen[p] = true
		fmt.Fprintf(stdout, "%s → %s\n", p, results[p])
		if results[p] == goident.FailureSentinel {
			failed++
		}
	}

	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v (%d phrases", elapsed.Round(time.Millisecond), len(seen))
		if failed > 0 {
			fmt.Fprintf(stderr, ", %d failed", failed)
		}
		fmt.Fprintln(stderr, ")")
	}

	return nil
}

// buildOracle selects the oracle backend: an external command when
// configured, OpenAI otherwise.
func buildOracle(oracleCmd, apiKey, model string) (goident.Oracle, error) {
	if oracleCmd != "" {
		parts := strings.Fields(oracleCmd)
		return oracle.NewCommandOracle(parts[0], parts[1:]...), nil
	}

	key := apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
	}

	return oracle.NewOpenAIOracle(oracle.OpenAIConfig{
		APIKey: key,
		Model:  model,
	}), nil
}

// buildStore selects the cache backend: Redis when a URL is given, the
// file store otherwise.
func buildStore(redisURL, cacheDir string) (goident.Store, error) {
	if redisURL != "" {
		store, err := cache.NewRedisCache(cache.RedisConfig{URL: redisURL})
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		return store, nil
	}
	return cache.NewFileStore(cacheDir), nil
}
