package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raushankrgupta/product-reconciler/models"
)

func TestEmitWritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	e, err := NewEmitter(dir)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	payload := []ProductSummary{{
		ID:    "B07X9Q9ZZZ",
		Name:  "Titan Neo Analog Watch",
		Price: 1299,
		URL:   "https://www.amazon.in/dp/B07X9Q9ZZZ?k=titan&sr=1",
	}}

	path, err := e.Emit("amazon_api_products.json", payload)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if path != filepath.Join(dir, "amazon_api_products.json") {
		t.Errorf("unexpected artifact path %q", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	var got []ProductSummary
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(got) != 1 || got[0].ID != "B07X9Q9ZZZ" {
		t.Errorf("artifact round-trip mismatch: %+v", got)
	}

	// URLs must not come out as &-escaped JSON.
	if want := `"https://www.amazon.in/dp/B07X9Q9ZZZ?k=titan&sr=1"`; !strings.Contains(string(raw), want) {
		t.Errorf("artifact does not contain unescaped url, got:\n%s", raw)
	}
}

func TestEmitOverwrites(t *testing.T) {
	dir := t.TempDir()
	e, err := NewEmitter(dir)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	if _, err := e.Emit("run_summary.json", map[string]string{"run": "first"}); err != nil {
		t.Fatalf("first Emit: %v", err)
	}
	path, err := e.Emit("run_summary.json", map[string]string{"run": "second"})
	if err != nil {
		t.Fatalf("second Emit: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got["run"] != "second" {
		t.Errorf("artifact was not overwritten: %v", got)
	}
}

func TestNewEmitterCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")
	if _, err := NewEmitter(dir); err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("artifact dir was not created: %v", err)
	}
}

func TestSummarizeFallsBackToImagesList(t *testing.T) {
	col := models.Collection{
		Records: []models.Record{{
			Identifier: "WATGZMFKHHZDEYFP",
			Title:      "Titan Karishma Analog Watch",
			Price:      1835,
			URL:        "https://www.flipkart.com/p/itm123",
			Images:     []string{"https://rukminim2.flixcart.com/image/watch.jpg"},
		}},
	}

	out := Summarize(col)
	if len(out) != 1 {
		t.Fatalf("Summarize returned %d entries, want 1", len(out))
	}
	if out[0].Image != "https://rukminim2.flixcart.com/image/watch.jpg" {
		t.Errorf("image fallback not applied: %q", out[0].Image)
	}
}

func TestRunSummaryFailed(t *testing.T) {
	s := &RunSummary{Outcomes: []*models.Outcome{
		{Status: models.StatusPassed},
		{Status: models.StatusSkipped},
	}}
	if s.Failed() {
		t.Error("passed+skipped run reported as failed")
	}

	s.Outcomes = append(s.Outcomes, &models.Outcome{Status: models.StatusErrored})
	if !s.Failed() {
		t.Error("errored run not reported as failed")
	}
}
