package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gymnasion-dev/gymnasion/internal/adapters/catalog"
	httpadapter "github.com/gymnasion-dev/gymnasion/internal/adapters/http"
	"github.com/gymnasion-dev/gymnasion/internal/adapters/muse"
	firestorestore "github.com/gymnasion-dev/gymnasion/internal/adapters/storage/firestore"
	memstore "github.com/gymnasion-dev/gymnasion/internal/adapters/storage/memory"
	sqlitestore "github.com/gymnasion-dev/gymnasion/internal/adapters/storage/sqlite"
	"github.com/gymnasion-dev/gymnasion/internal/app/trainer"
	"github.com/gymnasion-dev/gymnasion/internal/config"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/observability"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	observability.SetLevel(cfg.LogLevel)

	// Catalog: embedded defaults, or a YAML file override.
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogPath != "" {
		log.Printf("[CATALOG] Loading catalog from %s", cfg.CatalogPath)
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		log.Println("[CATALOG] Using embedded catalog")
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatalf("error loading catalog: %v", err)
	}

	// Muse: deterministic phrasing by default, Vertex by ENV. The
	// deterministic muse always stays around as the fallback.
	deterministic := muse.NewDeterministic(cat)

	var phrasing domain.Muse = deterministic
	if cfg.UseVertexMuse {
		log.Println("[MUSE] Using Vertex muse")
		phrasing, err = muse.NewVertex(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Vertex muse: %v", err)
		}
	} else {
		log.Println("[MUSE] Using deterministic muse")
	}

	// Storage: Firestore, SQLite or Memory
	var store domain.SessionStore

	switch cfg.StorageBackend {
	case "firestore":
		if cfg.GCPProjectID == "" {
			log.Fatal("GYM_GCP_PROJECT is required for Firestore storage backend")
		}
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		store, err = firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}

	case "sqlite":
		log.Printf("[STORE] Using SQLite storage (path=%s)", cfg.SQLitePath)
		store, err = sqlitestore.NewStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("error initializing SQLite store: %v", err)
		}

	default:
		log.Println("[STORE] Using in-memory storage")
		store = memstore.NewSessionStore()
	}

	tuning := trainer.Tuning{
		BanishThreshold:  cfg.BanishThreshold,
		RepetitionWindow: cfg.RepetitionWindow,
		CohesionGap:      cfg.CohesionGap,
		SignaturePrefix:  cfg.SignaturePrefix,
	}

	svc := trainer.NewService(store, cat, cat, phrasing, deterministic, tuning)

	handler := httpadapter.NewServer(svc)

	port := ":" + cfg.Port
	log.Println("Gymnasion API listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
