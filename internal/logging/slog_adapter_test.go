// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSlogHandlerForwardsToZerolog(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	slogger := NewSlogLogger()
	slogger.Info("supervisor event", "service", "http-server")

	out := buf.String()
	if !strings.Contains(out, `"service":"http-server"`) {
		t.Errorf("attribute missing: %s", out)
	}
	if !strings.Contains(out, "supervisor event") {
		t.Errorf("message missing: %s", out)
	}
}

func TestSlogHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	slogger := NewSlogLogger().WithGroup("suture")
	slogger.Warn("restart", "count", int64(3))

	if !strings.Contains(buf.String(), `"suture.count":3`) {
		t.Errorf("group prefix missing: %s", buf.String())
	}
}
