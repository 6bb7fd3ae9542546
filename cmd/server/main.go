package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"

	emailPkg "nexus/internal/adapters/email"
	web "nexus/internal/adapters/http"
	"nexus/internal/adapters/remote"
	"nexus/internal/adapters/storage"
	eventStore "nexus/internal/adapters/storage/event"
	faqStore "nexus/internal/adapters/storage/faq"
	galleryStore "nexus/internal/adapters/storage/gallery"
	inquiryStore "nexus/internal/adapters/storage/inquiry"
	memberStore "nexus/internal/adapters/storage/member"
	messageStore "nexus/internal/adapters/storage/message"
	segmentStore "nexus/internal/adapters/storage/segment"
	slideStore "nexus/internal/adapters/storage/slide"
	"nexus/internal/application/orchestrators"
	"nexus/internal/application/theme"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Content stores: the remote API when NEXUS_API_BASE is set, a local
	// SQLite database otherwise. The local mode is self-contained so a
	// fresh checkout runs with zero setup.
	var stores web.Stores
	var inquiries orchestrators.InquiryStore

	db := openDB()
	defer db.Close()
	timedDB := storage.NewTimedDB(db)

	// Contact inquiries are always stored locally; the content API has no
	// inquiry endpoint.
	inquiries = inquiryStore.NewSQLiteStore(timedDB)

	if apiBase := os.Getenv("NEXUS_API_BASE"); apiBase != "" {
		client := remote.NewClient(apiBase, remote.DefaultTimeout)
		stores = web.Stores{
			Segments: remote.Segments(client),
			Messages: remote.Messages(client),
			Slides:   remote.Slides(client),
			FAQs:     remote.FAQs(client),
			Gallery:  remote.Gallery(client),
			Members:  remote.Members(client),
			Events:   remote.Events(client),
		}
		log.Printf("Content API configured (%s)", apiBase)
	} else {
		stores = web.Stores{
			Segments: segmentStore.NewSQLiteStore(timedDB),
			Messages: messageStore.NewSQLiteStore(timedDB),
			Slides:   slideStore.NewSQLiteStore(timedDB),
			FAQs:     faqStore.NewSQLiteStore(timedDB),
			Gallery:  galleryStore.NewSQLiteStore(timedDB),
			Members:  memberStore.NewSQLiteStore(timedDB),
			Events:   eventStore.NewSQLiteStore(timedDB),
		}

		// Demo content for development only
		if os.Getenv("NEXUS_ENV") != "production" {
			seedDeps := orchestrators.SeedDemoDeps{
				Segments: stores.Segments,
				Messages: stores.Messages,
				Slides:   stores.Slides,
				FAQs:     stores.FAQs,
				Gallery:  stores.Gallery,
				Members:  stores.Members,
				Events:   stores.Events,
			}
			if err := orchestrators.ExecuteSeedDemo(context.Background(), seedDeps); err != nil {
				log.Fatalf("failed to seed demo content: %v", err)
			}
			log.Println("Demo content loaded (dev mode)")
		}
	}

	// Configure email sender for contact-form notifications
	var sender emailPkg.Sender
	emailFrom := envOrDefault("NEXUS_RESEND_FROM", "Nexus Society <noreply@nexus.example.edu>")
	if resendKey := os.Getenv("NEXUS_RESEND_KEY"); resendKey != "" {
		sender = emailPkg.NewResendSender(resendKey, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if os.Getenv("NEXUS_ENV") == "production" {
			log.Println("WARNING: NEXUS_RESEND_KEY is not set — contact notifications are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set NEXUS_RESEND_KEY for real delivery)")
		}
	}

	mux, err := web.NewMux(web.Deps{
		Stores:    stores,
		Inquiries: inquiries,
		Sender:    sender,
		NotifyTo:  os.Getenv("NEXUS_CONTACT_TO"),
		Theme:     theme.NewProvider(envOrDefault("NEXUS_DEFAULT_THEME", theme.Light)),
		Now:       time.Now,
	})
	if err != nil {
		log.Fatalf("failed to build handler: %v", err)
	}

	addr := envOrDefault("NEXUS_ADDR", ":8080")
	log.Printf("Nexus %s starting on %s (env=%s)", version, addr, envOrDefault("NEXUS_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openDB opens the local SQLite database with WAL mode and initializes the
// schema.
func openDB() *sql.DB {
	dbPath := envOrDefault("NEXUS_DB_PATH", "nexus.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	return db
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
