// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"github.com/Shameekh-Naveed/Blog-Posts/internal/config"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/database"
	"github.com/Shameekh-Naveed/Blog-Posts/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numUsers := flag.Int("users", seed.DefaultOptions.NumUsers, "Number of users to create")
	numPosts := flag.Int("posts", seed.DefaultOptions.NumPosts, "Number of posts to create")
	numComments := flag.Int("comments", seed.DefaultOptions.NumComments, "Number of comments to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumComments: *numComments,
		ShouldClean: *shouldClean,
	}
	log.Printf("Seeding: %d users, %d posts, %d comments, clean=%v",
		opts.NumUsers, opts.NumPosts, opts.NumComments, opts.ShouldClean)

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Done")
}
