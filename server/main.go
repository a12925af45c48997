package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hand-ledger/server/store"
)

//
// ===== bootstrap =====
//

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()

	var migrate bool
	for _, a := range os.Args[1:] {
		if a == "--migrate" {
			migrate = true
		}
	}

	port := getenv("PORT", "8080")
	dsn := getenv("DATABASE_URL", "")

	var db *store.DB
	if dsn != "" {
		p, err := store.Open(dsn)
		if err != nil {
			log.Fatal(err)
		}
		db = p
		defer db.Close(context.Background())

		if migrate || asBool(os.Getenv("AUTO_MIGRATE")) {
			if err := store.Migrate(context.Background(), db); err != nil {
				log.Fatal(err)
			}
			log.Println("migrated")
			if migrate {
				return
			}
		}
	} else {
		if migrate {
			log.Fatal("--migrate needs DATABASE_URL")
		}
		log.Println("DATABASE_URL not set; computing without recording")
	}

	timeout := time.Duration(atoiDef(os.Getenv("HTTP_TIMEOUT_SECONDS"), 15)) * time.Second
	r := Router(db)
	srv := &http.Server{Addr: ":" + port, Handler: r, ReadTimeout: timeout, WriteTimeout: timeout}
	log.Printf("listening on http://localhost:%s (Ctrl+C to stop)", port)
	log.Fatal(srv.ListenAndServe())
}
