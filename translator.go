package goident

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Oracle is the external translation capability: one prompt in, one raw
// text response out. Implementations live in the oracle subpackage.
type Oracle interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Store is the persisted translation cache. Implementations live in the
// cache subpackage.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	SetBatch(entries map[string]string) error
}

// Translator is the batch translation engine. It partitions inputs into
// cache hits and misses, covers all misses with a single oracle invocation,
// and persists newly translated entries in one batched write.
type Translator struct {
	format      OutputFormat
	oracle      Oracle
	store       Store
	context     string
	contextHash string
	maxLength   int
	timeout     time.Duration
	diag        io.Writer
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithStore sets the translation store.
func WithStore(store Store) TranslatorOption {
	return func(t *Translator) {
		t.store = store
	}
}

// WithContext sets the context bundle folded into prompts and cache keys.
func WithContext(ctx string) TranslatorOption {
	return func(t *Translator) {
		t.context = ctx
	}
}

// WithMaxLength sets the maximum formatted identifier length.
func WithMaxLength(n int) TranslatorOption {
	return func(t *Translator) {
		t.maxLength = n
	}
}

// WithTimeout bounds each oracle invocation. Zero disables the bound.
func WithTimeout(d time.Duration) TranslatorOption {
	return func(t *Translator) {
		t.timeout = d
	}
}

// WithDiagnostics sets the writer receiving failure diagnostics. Failures
// are reported here rather than returned: the engine's worst-case outcome
// for any phrase is the failure sentinel.
func WithDiagnostics(w io.Writer) TranslatorOption {
	return func(t *Translator) {
		t.diag = w
	}
}

// NewTranslator creates a Translator producing identifiers in the given
// output format via the given oracle.
func NewTranslator(format OutputFormat, oracle Oracle, opts ...TranslatorOption) *Translator {
	t := &Translator{
		format:    format,
		oracle:    oracle,
		maxLength: DefaultMaxLength,
		timeout:   DefaultTimeout,
		diag:      io.Discard,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.contextHash = ContextHash(t.context)
	return t
}

// Translate translates a single phrase, returning FailureSentinel when the
// oracle could not produce a usable translation.
func (t *Translator) Translate(ctx context.Context, phrase string) string {
	results := t.BatchTranslate(ctx, []string{phrase})
	if v, ok := results[phrase]; ok {
		return v
	}
	return FailureSentinel
}

// BatchTranslate translates phrases, using the store where possible. The
// returned mapping has one entry per unique phrase; duplicates collapse to
// one lookup. At most one oracle invocation is made per call, and only when
// at least one phrase is uncached. Oracle failure resolves every uncached
// phrase to FailureSentinel without touching the store.
func (t *Translator) BatchTranslate(ctx context.Context, phrases []string) map[string]string {
	results := make(map[string]string)
	if len(phrases) == 0 {
		return results
	}

	// Partition into cache hits and misses, deduplicating while preserving
	// first-seen order.
	seen := make(map[string]bool)
	var misses []string
	for _, p := range phrases {
		if seen[p] {
			continue
		}
		seen[p] = true

		if t.store != nil {
			if cached, ok := t.store.Get(CacheKey(t.format, t.contextHash, p)); ok {
				results[p] = cached
				continue
			}
		}
		misses = append(misses, p)
	}

	if len(misses) == 0 {
		return results
	}

	if t.oracle == nil {
		fmt.Fprintln(t.diag, "[goident] no oracle configured")
		return fillSentinels(results, misses)
	}

	fmt.Fprintf(t.diag, "[goident] translating %d phrases via oracle\n", len(misses))

	prompt := BuildPrompt(misses, t.format, t.maxLength, t.context)

	ictx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ictx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	raw, err := t.oracle.Invoke(ictx, prompt)
	if err != nil {
		fmt.Fprintf(t.diag, "[goident] oracle invocation failed: %v\n", err)
		return fillSentinels(results, misses)
	}

	translations, err := ParseTranslations(raw)
	if err != nil {
		fmt.Fprintf(t.diag, "[goident] %v\n", err)
		return fillSentinels(results, misses)
	}

	// Format, length-check, and collect the newly translated subset for a
	// single batched store write. A phrase the oracle silently dropped
	// resolves to the sentinel and is not cached.
	fresh := make(map[string]string, len(misses))
	for _, p := range misses {
		rawTranslation, ok := translations[p]
		if !ok {
			results[p] = FailureSentinel
			continue
		}

		formatted := Format(t.format, rawTranslation)
		if runes := []rune(formatted); len(runes) > t.maxLength+LengthSlack {
			formatted = string(runes[:t.maxLength])
		}

		results[p] = formatted
		fresh[CacheKey(t.format, t.contextHash, p)] = formatted
	}

	if t.store != nil && len(fresh) > 0 {
		if err := t.store.SetBatch(fresh); err != nil {
			fmt.Fprintf(t.diag, "[goident] cache write failed: %v\n", err)
		}
	}

	return results
}

// fillSentinels resolves every pending phrase to the failure sentinel.
func fillSentinels(results map[string]string, pending []string) map[string]string {
	for _, p := range pending {
		results[p] = FailureSentinel
	}
	return results
}

// OutputFormat returns the translator's output format.
func (t *Translator) OutputFormat() OutputFormat {
	return t.format
}

// Context returns the context bundle.
func (t *Translator) Context() string {
	return t.context
}

// MaxLength returns the maximum formatted identifier length.
func (t *Translator) MaxLength() int {
	return t.maxLength
}
