package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func newTestContext() *app.AppContext {
	return &app.AppContext{
		StatusMap:   make(map[string]string),
		PriorityMap: make(map[string]string),
	}
}

func TestLoadAppConfig(t *testing.T) {
	dir := chdirTemp(t)
	cfg := `{
		"bootstrap_token": "file-token",
		"statuses": [{"title": "Đã xong", "slug": "done", "type": "completed"}],
		"priorities": [{"title": "Khẩn cấp", "slug": "urgent", "level": "high"}]
	}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOTSTRAP_TOKEN", "")

	appContext := newTestContext()
	loadAppConfig(appContext)

	if appContext.StatusMap["đã xong"] != app.StatusCompleted || appContext.StatusMap["done"] != app.StatusCompleted {
		t.Errorf("status labels not loaded: %v", appContext.StatusMap)
	}
	if appContext.PriorityMap["khẩn cấp"] != app.PriorityHigh {
		t.Errorf("priority labels not loaded: %v", appContext.PriorityMap)
	}
	if appContext.BootstrapToken != "file-token" {
		t.Errorf("config token not applied, got %q", appContext.BootstrapToken)
	}
}

func TestLoadAppConfigEnvTokenWins(t *testing.T) {
	dir := chdirTemp(t)
	cfg := `{"bootstrap_token": "file-token"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOTSTRAP_TOKEN", "env-token")

	appContext := newTestContext()
	loadAppConfig(appContext)

	if appContext.BootstrapToken != "env-token" {
		t.Errorf("env token must take precedence, got %q", appContext.BootstrapToken)
	}
}

func TestLoadAppConfigMalformedFile(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOTSTRAP_TOKEN", "env-token")

	appContext := newTestContext()
	loadAppConfig(appContext)

	// Битый конфиг не должен ронять процесс и затирать окружение
	if len(appContext.StatusMap) != 0 {
		t.Errorf("malformed config must not populate maps: %v", appContext.StatusMap)
	}
	if appContext.BootstrapToken != "env-token" {
		t.Errorf("env token must survive a malformed config, got %q", appContext.BootstrapToken)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BOOTSTRAP_TOKEN", "")

	appContext := newTestContext()
	loadAppConfig(appContext)

	if len(appContext.StatusMap) != 0 || appContext.BootstrapToken != "" {
		t.Errorf("missing config must leave context untouched: %+v", appContext)
	}
}
