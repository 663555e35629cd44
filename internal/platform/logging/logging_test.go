package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Configure(&buf, "debug", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = Configure(nil, "info", "text") })

	log.WithField("op", "test").Debug("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "hello" || entry["op"] != "test" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestConfigureRejectsUnknownValues(t *testing.T) {
	if err := Configure(nil, "loud", "text"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := Configure(nil, "info", "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
