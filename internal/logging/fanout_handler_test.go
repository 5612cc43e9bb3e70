package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestTeeHandlerCollapsesNilAndSingleHandlers(t *testing.T) {
	if _, ok := TeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatalf("expected NoopHandler when every handler is nil")
	}

	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := TeeHandler(nil, inner, nil); h != inner {
		t.Fatalf("expected the single non-nil handler to be returned unwrapped, got %T", h)
	}
}

func TestTeeHandlerRoutesByLevel(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	infoHandler := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	debugHandler := slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})

	h := TeeHandler(infoHandler, debugHandler)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected tee to be enabled for debug when one handler accepts it")
	}

	logger := slog.New(h)
	logger.Debug("debug only")
	if infoBuf.Len() != 0 {
		t.Fatalf("info handler should not receive debug records, got %q", infoBuf.String())
	}
	if debugBuf.Len() == 0 {
		t.Fatal("debug handler should receive debug records")
	}

	logger.Info("both", slog.String("attr", "value"))
	for name, buf := range map[string]*bytes.Buffer{"info": &infoBuf, "debug": &debugBuf} {
		if !bytes.Contains(buf.Bytes(), []byte(`"attr"`)) {
			t.Fatalf("expected attr in %s output: %q", name, buf.String())
		}
	}
}

func TestTeeHandlerPropagatesAttrsAndGroups(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h := TeeHandler(slog.NewJSONHandler(&buf1, nil), slog.NewJSONHandler(&buf2, nil))

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("key", "value")}).WithGroup("grp"))
	logger.Info("test", slog.String("field", "value"))

	for _, buf := range []*bytes.Buffer{&buf1, &buf2} {
		if !bytes.Contains(buf.Bytes(), []byte(`"key"`)) {
			t.Fatalf("expected key attribute: %q", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte(`"grp"`)) {
			t.Fatalf("expected group: %q", buf.String())
		}
	}
}
