package goident

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// stubOracle is a simple oracle for testing
type stubOracle struct {
	response   string
	err        error
	delay      time.Duration
	callCount  int
	lastPrompt string
}

func (o *stubOracle) Invoke(ctx context.Context, prompt string) (string, error) {
	o.callCount++
	o.lastPrompt = prompt

	if o.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(o.delay):
		}
	}

	if o.err != nil {
		return "", o.err
	}
	return o.response, nil
}

// stubStore is a simple in-memory store for testing
type stubStore struct {
	data       map[string]string
	setCalls   int
	batchCalls int
}

func newStubStore() *stubStore {
	return &stubStore{data: make(map[string]string)}
}

func (s *stubStore) Get(key string) (string, bool) {
	val, ok := s.data[key]
	return val, ok
}

func (s *stubStore) Set(key string, value string) error {
	s.setCalls++
	s.data[key] = value
	return nil
}

func (s *stubStore) SetBatch(entries map[string]string) error {
	s.batchCalls++
	for key, value := range entries {
		s.data[key] = value
	}
	return nil
}

func TestBatchTranslate_Basic(t *testing.T) {
	oracle := &stubOracle{response: `{"電源板": "Power Board", "顯示板": "Display Board"}`}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	results := translator.BatchTranslate(context.Background(), []string{"電源板", "顯示板"})

	if results["電源板"] != "power-board" {
		t.Errorf(`results["電源板"] = %q, want "power-board"`, results["電源板"])
	}
	if results["顯示板"] != "display-board" {
		t.Errorf(`results["顯示板"] = %q, want "display-board"`, results["顯示板"])
	}
	if oracle.callCount != 1 {
		t.Errorf("oracle should be called once, was called %d times", oracle.callCount)
	}
}

func TestBatchTranslate_EmptyInput(t *testing.T) {
	oracle := &stubOracle{response: `{}`}
	translator := NewTranslator(KebabCase, oracle)

	results := translator.BatchTranslate(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("expected empty result, got %v", results)
	}
	if oracle.callCount != 0 {
		t.Error("empty input should not invoke the oracle")
	}
}

func TestBatchTranslate_CacheShortCircuit(t *testing.T) {
	oracle := &stubOracle{response: `{"電源板": "Power Board"}`}
	store := newStubStore()
	store.data[CacheKey(KebabCase, "none", "電源板")] = "power-board"

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	results := translator.BatchTranslate(context.Background(), []string{"電源板"})

	if oracle.callCount != 0 {
		t.Errorf("fully cached batch should not invoke the oracle, got %d calls", oracle.callCount)
	}
	if results["電源板"] != "power-board" {
		t.Errorf("expected cached value, got %q", results["電源板"])
	}
}

func TestBatchTranslate_PartialCacheHit(t *testing.T) {
	oracle := &stubOracle{response: `{"顯示板": "Display Board"}`}
	store := newStubStore()
	store.data[CacheKey(KebabCase, "none", "電源板")] = "power-board"

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	results := translator.BatchTranslate(context.Background(), []string{"電源板", "顯示板"})

	if oracle.callCount != 1 {
		t.Errorf("expected one oracle call, got %d", oracle.callCount)
	}
	// The cached phrase must not appear in the prompt
	if strings.Contains(oracle.lastPrompt, "電源板") {
		t.Error("cached phrase should not be sent to the oracle")
	}
	if !strings.Contains(oracle.lastPrompt, "顯示板") {
		t.Error("uncached phrase should be sent to the oracle")
	}
	if results["電源板"] != "power-board" || results["顯示板"] != "display-board" {
		t.Errorf("unexpected results: %v", results)
	}
}

func TestBatchTranslate_DuplicatesCollapse(t *testing.T) {
	oracle := &stubOracle{response: `{"電源板": "Power Board"}`}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	results := translator.BatchTranslate(context.Background(), []string{"電源板", "電源板"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result entry, got %d", len(results))
	}
	if oracle.callCount != 1 {
		t.Errorf("expected one oracle call, got %d", oracle.callCount)
	}
	// Prompt should enumerate the phrase exactly once
	if strings.Count(oracle.lastPrompt, "電源板") != 1 {
		t.Error("duplicate phrases should collapse to one prompt entry")
	}
}

func TestBatchTranslate_OracleError(t *testing.T) {
	oracle := &stubOracle{err: &OracleError{Message: "non-zero exit"}}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	results := translator.BatchTranslate(context.Background(), []string{"電源板"})

	if results["電源板"] != FailureSentinel {
		t.Errorf("expected failure sentinel, got %q", results["電源板"])
	}
	if len(store.data) != 0 {
		t.Error("failures must not be cached")
	}
}

func TestBatchTranslate_Timeout(t *testing.T) {
	oracle := &stubOracle{response: `{"X": "x"}`, delay: time.Second}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle,
		WithStore(store),
		WithTimeout(10*time.Millisecond),
	)

	results := translator.BatchTranslate(context.Background(), []string{"X"})

	if results["X"] != FailureSentinel {
		t.Errorf("expected failure sentinel on timeout, got %q", results["X"])
	}
	if len(store.data) != 0 {
		t.Error("timeout must not touch the cache")
	}
}

func TestBatchTranslate_MalformedResponse(t *testing.T) {
	oracle := &stubOracle{response: "I'm sorry, I can't translate these phrases."}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	results := translator.BatchTranslate(context.Background(), []string{"電源板", "顯示板"})

	for phrase, result := range results {
		if result != FailureSentinel {
			t.Errorf("expected sentinel for %q, got %q", phrase, result)
		}
	}
	if len(store.data) != 0 {
		t.Error("malformed response must not touch the cache")
	}
}

func TestBatchTranslate_DroppedEntry(t *testing.T) {
	// Oracle answers for one phrase only
	oracle := &stubOracle{response: `{"電源板": "Power Board"}`}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	results := translator.BatchTranslate(context.Background(), []string{"電源板", "顯示板"})

	if results["電源板"] != "power-board" {
		t.Errorf("answered phrase should be translated, got %q", results["電源板"])
	}
	if results["顯示板"] != FailureSentinel {
		t.Errorf("dropped phrase should resolve to the sentinel, got %q", results["顯示板"])
	}
	// Only the answered phrase is cached
	if _, ok := store.data[CacheKey(KebabCase, "none", "電源板")]; !ok {
		t.Error("answered phrase should be cached")
	}
	if _, ok := store.data[CacheKey(KebabCase, "none", "顯示板")]; ok {
		t.Error("dropped phrase must not be cached")
	}
}

func TestBatchTranslate_SingleBatchedWrite(t *testing.T) {
	oracle := &stubOracle{response: `{"電源板": "Power Board", "顯示板": "Display Board"}`}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	translator.BatchTranslate(context.Background(), []string{"電源板", "顯示板"})

	if store.batchCalls != 1 {
		t.Errorf("expected 1 batched write, got %d", store.batchCalls)
	}
	if store.setCalls != 0 {
		t.Errorf("expected no per-entry writes, got %d", store.setCalls)
	}
}

func TestBatchTranslate_Idempotent(t *testing.T) {
	oracle := &stubOracle{response: `{"電源板": "Power Board"}`}
	store := newStubStore()

	translator := NewTranslator(KebabCase, oracle, WithStore(store))

	first := translator.BatchTranslate(context.Background(), []string{"電源板"})
	second := translator.BatchTranslate(context.Background(), []string{"電源板"})

	if oracle.callCount != 1 {
		t.Errorf("warm cache repeat should not invoke the oracle, got %d calls", oracle.callCount)
	}
	if first["電源板"] != second["電源板"] {
		t.Errorf("repeat call should return identical output: %q vs %q", first["電源板"], second["電源板"])
	}
}

func TestBatchTranslate_ContextInCacheKey(t *testing.T) {
	store := newStubStore()

	oracleA := &stubOracle{response: `{"電源板": "Power Board"}`}
	translatorA := NewTranslator(KebabCase, oracleA, WithStore(store), WithContext("ctxA"))
	translatorA.BatchTranslate(context.Background(), []string{"電源板"})

	// Same phrase under a different context misses the cache
	oracleB := &stubOracle{response: `{"電源板": "Power Supply Board"}`}
	translatorB := NewTranslator(KebabCase, oracleB, WithStore(store), WithContext("ctxB"))
	results := translatorB.BatchTranslate(context.Background(), []string{"電源板"})

	if oracleB.callCount != 1 {
		t.Error("distinct context should bypass cached entry")
	}
	if results["電源板"] != "power-supply-board" {
		t.Errorf("unexpected translation: %q", results["電源板"])
	}
}

func TestBatchTranslate_Truncation(t *testing.T) {
	longRaw := "extremely long translated phrase that keeps going well past the limit"
	oracle := &stubOracle{response: `{"X": "` + longRaw + `"}`}

	translator := NewTranslator(KebabCase, oracle, WithMaxLength(10))

	results := translator.BatchTranslate(context.Background(), []string{"X"})

	if len(results["X"]) != 10 {
		t.Errorf("expected truncation to 10 characters, got %d: %q", len(results["X"]), results["X"])
	}
}

func TestBatchTranslate_WithinSlackNotTruncated(t *testing.T) {
	// 13 characters formatted: over max 10, but within the 10-char slack
	oracle := &stubOracle{response: `{"X": "power board x"}`}

	translator := NewTranslator(KebabCase, oracle, WithMaxLength(10))

	results := translator.BatchTranslate(context.Background(), []string{"X"})

	if results["X"] != "power-board-x" {
		t.Errorf("near-miss length should pass untruncated, got %q", results["X"])
	}
}

func TestBatchTranslate_NoStore(t *testing.T) {
	oracle := &stubOracle{response: `{"電源板": "Power Board"}`}
	translator := NewTranslator(SnakeCase, oracle)

	results := translator.BatchTranslate(context.Background(), []string{"電源板"})

	if results["電源板"] != "power_board" {
		t.Errorf("expected translation without a store, got %q", results["電源板"])
	}
}

func TestBatchTranslate_Diagnostics(t *testing.T) {
	var diag bytes.Buffer
	oracle := &stubOracle{err: errors.New("boom")}

	translator := NewTranslator(KebabCase, oracle, WithDiagnostics(&diag))
	translator.BatchTranslate(context.Background(), []string{"X"})

	if !strings.Contains(diag.String(), "oracle invocation failed") {
		t.Errorf("expected failure diagnostic, got %q", diag.String())
	}
}

func TestTranslate_Single(t *testing.T) {
	oracle := &stubOracle{response: `{"測試流程": "test procedure"}`}
	translator := NewTranslator(CamelCase, oracle)

	result := translator.Translate(context.Background(), "測試流程")

	if result != "testProcedure" {
		t.Errorf("Translate() = %q, want %q", result, "testProcedure")
	}
}

func TestTranslate_Failure(t *testing.T) {
	oracle := &stubOracle{response: "no json"}
	translator := NewTranslator(CamelCase, oracle)

	result := translator.Translate(context.Background(), "測試流程")

	if result != FailureSentinel {
		t.Errorf("Translate() = %q, want the failure sentinel", result)
	}
}

func TestNewTranslator_Defaults(t *testing.T) {
	translator := NewTranslator(KebabCase, &stubOracle{})

	if translator.OutputFormat() != KebabCase {
		t.Errorf("unexpected format: %q", translator.OutputFormat())
	}
	if translator.MaxLength() != DefaultMaxLength {
		t.Errorf("unexpected max length: %d", translator.MaxLength())
	}
	if translator.Context() != "" {
		t.Errorf("unexpected context: %q", translator.Context())
	}
}
