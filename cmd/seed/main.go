// Command seed populates the database with demo data for local development.
package main

import (
	"flag"
	"log"

	"healthhub/internal/config"
	"healthhub/internal/database"
	"healthhub/internal/seed"
)

func main() {
	numMentors := flag.Int("mentors", 8, "Number of mentor accounts to create")
	numMembers := flag.Int("members", 25, "Number of member accounts to create")
	numPrograms := flag.Int("programs", 4, "Number of programs to create")
	shouldClean := flag.Bool("clean", true, "Clear existing data before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (fast local runs only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumMentors:  *numMentors,
		NumMembers:  *numMembers,
		NumPrograms: *numPrograms,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}
	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. Admin login: %s / %s", seed.AdminEmail, seed.DefaultPassword)
}
