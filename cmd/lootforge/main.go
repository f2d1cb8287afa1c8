// File path: cmd/lootforge/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Artzzx/lootforge/internal/api"
	"github.com/Artzzx/lootforge/internal/common"
	"github.com/Artzzx/lootforge/internal/compiler"
	"github.com/Artzzx/lootforge/internal/export"
	"github.com/Artzzx/lootforge/internal/kb"
	"github.com/Artzzx/lootforge/internal/sqlite"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("lootforge: .env file not loaded", "error", err)
	} else {
		logger.Info("lootforge: environment loaded from .env")
	}

	serve := flag.Bool("serve", false, "run the HTTP API instead of a one-shot compile")
	addr := flag.String("addr", ":8080", "listen address")
	kbPath := flag.String("kb", envDefault("LOOTFORGE_KB", "data/knowledge_base.json"), "path to the knowledge base JSON")
	recPath := flag.String("recs", envDefault("LOOTFORGE_RECS", "data/recommendations.json"), "path to the recommendations JSON")
	dbPath := flag.String("db", strings.TrimSpace(os.Getenv("SQLITE_PATH")), "path to the SQLite catalog (empty disables persistence)")

	mastery := flag.String("mastery", "", "character mastery, e.g. necromancer")
	damage := flag.String("damage", "", "comma-separated damage types")
	progress := flag.String("progress", "campaign", "progress stage: campaign, monolith, empowered_monolith, high_corruption, pinnacle")
	archetype := flag.String("archetype", "", "playstyle archetype: melee, spell, dot, minion, ranged")
	strictness := flag.String("strictness", "", "strictness tier id (empty derives it from progress)")
	resCapped := flag.Bool("res-capped", false, "resistances are capped, skip threshold rules")
	showCrossClass := flag.Bool("show-cross-class", false, "show high-value items for other classes")
	crossClassThreshold := flag.Int("cross-class-threshold", 0, "minimum affix weight for cross-class items (0 uses the default)")
	out := flag.String("out", "", "output path for the compiled filter XML (empty writes to stdout)")

	flag.Parse()

	kbStore := kb.NewStore(*kbPath, *recPath)
	comp := compiler.New(kbStore, nil)

	if *serve {
		runServer(comp, kbStore, *addr, *dbPath)
		return
	}
	runCompile(comp, compiler.UserInput{
		Mastery:             *mastery,
		DamageTypes:         splitList(*damage),
		Progress:            *progress,
		Archetype:           *archetype,
		Strictness:          *strictness,
		ResistancesCapped:   *resCapped,
		ShowCrossClass:      *showCrossClass,
		CrossClassThreshold: *crossClassThreshold,
	}, *out)
}

func runServer(comp *compiler.Compiler, kbStore *kb.Store, addr, dbPath string) {
	logger := common.Logger()

	var catalog *sqlite.Store
	if strings.TrimSpace(dbPath) != "" {
		store, err := sqlite.Open(dbPath)
		if err != nil {
			logger.Error("lootforge: catalog open failed", "path", dbPath, "error", err)
			fmt.Println("catalog error:", err)
			os.Exit(1)
		}
		defer store.Close()
		catalog = store
	} else {
		logger.Warn("lootforge: no catalog path configured, history endpoints disabled")
	}

	srv, err := api.NewServer(comp, kbStore, catalog)
	if err != nil {
		logger.Error("lootforge: server init failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("lootforge: listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		logger.Error("lootforge: server stopped", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}
}

func runCompile(comp *compiler.Compiler, input compiler.UserInput, outPath string) {
	logger := common.Logger()

	result, err := comp.Compile(input)
	if err != nil {
		logger.Error("lootforge: compile failed", "error", err)
		fmt.Fprintln(os.Stderr, "compile error:", err)
		os.Exit(1)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}

	doc := export.Build(result.FilterName, result.Description, result.Rules)
	payload, err := export.Marshal(doc)
	if err != nil {
		logger.Error("lootforge: export failed", "error", err)
		fmt.Fprintln(os.Stderr, "export error:", err)
		os.Exit(1)
	}

	if strings.TrimSpace(outPath) == "" {
		_, _ = os.Stdout.Write(payload)
		return
	}
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		logger.Error("lootforge: write output failed", "path", outPath, "error", err)
		fmt.Fprintln(os.Stderr, "write error:", err)
		os.Exit(1)
	}
	logger.Info("lootforge: filter written", "path", outPath, "rules", result.RulesGenerated)
}

func envDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
