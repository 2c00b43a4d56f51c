// Command seed runs the database seeder for Ask-Away.
package main

import (
	"flag"
	"log"

	"github.com/daksh1821/Ask-Away/internal/config"
	"github.com/daksh1821/Ask-Away/internal/database"
	"github.com/daksh1821/Ask-Away/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numQuestions := flag.Int("questions", 200, "Number of questions to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding")
	flag.Parse()

	log.Printf("Target: %d users, %d questions, clean=%v", *numUsers, *numQuestions, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		NumQuestions: *numQuestions,
		ShouldClean:  *shouldClean,
		SkipBcrypt:   *skipBcrypt,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Test users have the password: password123")
}
