package main

import (
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/refilllocal/directory/pkg/configuration"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	conf := configuration.Use()
	defer conf.Unload()

	db, err := goose.OpenDBWithDriver("pgx", conf.Database.ConnectionString())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("failed to close database: %v", err)
		}
	}()

	switch command {
	case "up":
		err = goose.Up(db, conf.MigrationsDir)
	case "down":
		err = goose.Down(db, conf.MigrationsDir)
	case "status":
		err = goose.Status(db, conf.MigrationsDir)
	case "redo":
		err = goose.Redo(db, conf.MigrationsDir)
	default:
		log.Fatalf("unknown command %q, expected up, down, status or redo", command)
	}
	if err != nil {
		log.Fatalf("migration %s failed: %v", command, err)
	}
}
