package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/app"
	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/bootstrap"
	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/config"
	appCore "github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/core"
	"github.com/NguyenChiHuynh2003/kba-admin-dash-44178/internal/importer"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using process environment")
	}

	pbApp := pocketbase.New()
	appContext := &app.AppContext{
		StatusMap:   make(map[string]string),
		PriorityMap: make(map[string]string),
	}

	if err := bootstrap.Register(pbApp, appContext); err != nil {
		log.Fatalf("[FATAL] Failed to register bootstrap module: %v", err)
	}
	if err := importer.Register(pbApp, appContext); err != nil {
		log.Fatalf("[FATAL] Failed to register importer module: %v", err)
	}

	pbApp.OnServe().BindFunc(func(e *core.ServeEvent) error {
		log.Println("[INFO] Server is starting, initializing collections...")

		if err := appCore.EnsureCoreCollections(e.App); err != nil {
			log.Printf("[ERROR] Bootstrap collections failed: %v", err)
		}
		loadAppConfig(appContext)

		log.Println("[INFO] Server is ready to serve requests")
		return e.Next()
	})

	if err := pbApp.Start(); err != nil {
		log.Fatal(err)
	}
}

func findConfigFile() (string, error) {
	paths := []string{"config.json", "../config.json", "../../config.json"}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			log.Printf("[INFO] Using config file: %s", p)
			return p, nil
		}
	}
	return "", os.ErrNotExist
}

// loadAppConfig заполняет словари меток и bootstrap-токен.
// Переменная окружения BOOTSTRAP_TOKEN имеет приоритет над config.json.
func loadAppConfig(appContext *app.AppContext) {
	appContext.BootstrapToken = os.Getenv("BOOTSTRAP_TOKEN")

	configPath, err := findConfigFile()
	if err != nil {
		log.Println("[WARN] Config file not found, using built-in label maps only")
		return
	}

	configFile, err := os.Open(configPath)
	if err != nil {
		log.Printf("[ERROR] Failed to open config file: %v", err)
		return
	}
	defer configFile.Close()

	var appConfig config.AppConfig
	if err := json.NewDecoder(configFile).Decode(&appConfig); err != nil {
		log.Printf("[ERROR] Failed to parse config file: %v", err)
		return
	}

	for _, s := range appConfig.Statuses {
		appContext.StatusMap[strings.ToLower(strings.TrimSpace(s.Slug))] = s.Type
		appContext.StatusMap[strings.ToLower(strings.TrimSpace(s.Title))] = s.Type
	}
	for _, p := range appConfig.Priorities {
		appContext.PriorityMap[strings.ToLower(strings.TrimSpace(p.Slug))] = p.Level
		appContext.PriorityMap[strings.ToLower(strings.TrimSpace(p.Title))] = p.Level
	}

	if appContext.BootstrapToken == "" && appConfig.BootstrapToken != "" {
		appContext.BootstrapToken = appConfig.BootstrapToken
	}
}
