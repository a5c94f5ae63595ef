package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadDocument_PlainText(t *testing.T) {
	path := writeTemp(t, "doc.txt", "直升机坠毁南海。")

	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Name != "doc.txt" {
		t.Errorf("expected base name doc.txt, got %s", doc.Name)
	}
	if doc.Text != "直升机坠毁南海。" {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}

func TestReadDocument_HTMLStripped(t *testing.T) {
	path := writeTemp(t, "doc.html", `<html><body><script>var x;</script><p>直升机坠毁南海。</p></body></html>`)

	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(doc.Text, "直升机坠毁南海。") {
		t.Errorf("visible text missing: %q", doc.Text)
	}
	if strings.Contains(doc.Text, "var x") {
		t.Errorf("script content leaked: %q", doc.Text)
	}
}

func TestReadDocument_HTMLExtensionCaseInsensitive(t *testing.T) {
	path := writeTemp(t, "doc.HTM", `<p>尼米兹号是航空母舰。</p>`)

	doc, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(doc.Text, "<p>") {
		t.Errorf("HTML markup survived: %q", doc.Text)
	}
}

func TestReadDocument_Missing(t *testing.T) {
	if _, err := ReadDocument(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
