package main

import (
	"testing"
	"time"

	"github.com/atomicstack/gridpop/internal/app"
	"github.com/atomicstack/gridpop/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesSettings(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataPath:     "cells.db",
			StoreKind:    "sqlite",
			TickRate:     4,
			FrameRate:    30,
			FlushTimeout: 3 * time.Second,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Level:    "debug",
			Trace:    true,
		},
		Source: "/etc/gridpop.yaml",
	}

	payload := startupTracePayload(cfg)

	settings, ok := payload["settings"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected settings map in payload")
	}
	if settings["file"] != "cells.db" {
		t.Fatalf("expected file %q, got %v", "cells.db", settings["file"])
	}
	if settings["store"] != "sqlite" {
		t.Fatalf("expected sqlite store, got %v", settings["store"])
	}
	if settings["frameRate"] != 30.0 {
		t.Fatalf("expected frame rate 30, got %v", settings["frameRate"])
	}
	if settings["flushTimeout"] != "3s" {
		t.Fatalf("expected flush timeout 3s, got %v", settings["flushTimeout"])
	}
	if settings["trace"] != true {
		t.Fatalf("expected trace true, got %v", settings["trace"])
	}
	if settings["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", settings["logFile"])
	}
	if payload["configFile"] != "/etc/gridpop.yaml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
