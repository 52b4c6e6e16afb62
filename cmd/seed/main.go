// Command seed populates a development database with fake users, posts, and
// portfolio sections.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/models"
	"folio/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

var sectionNames = []string{"bio", "skills", "experience", "education", "contact"}

func main() {
	users := flag.Int("users", 20, "number of users to create")
	postsPer := flag.Int("posts", 5, "max posts per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	sectionRepo := repository.NewSectionRepository(db)

	// One shared hash keeps seeding fast; every seeded account logs in with
	// "password".
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	created := 0
	for i := 0; i < *users; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 99)),
			Email:    gofakeit.Email(),
			Password: string(hash),
			Gender:   gofakeit.Gender(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Printf("skipping user %s: %v", user.Username, err)
			continue
		}
		created++

		for p := 0; p < rand.Intn(*postsPer+1); p++ {
			post := &models.Post{
				UserID:    user.ID,
				Content:   gofakeit.Sentence(12),
				Media:     models.MediaURLs{},
				CreatedAt: time.Now().Add(-time.Duration(rand.Intn(720)) * time.Hour),
			}
			if err := postRepo.Create(ctx, post); err != nil {
				log.Printf("skipping post for %s: %v", user.Username, err)
			}
		}

		for _, name := range sectionNames[:rand.Intn(len(sectionNames))+1] {
			section := &models.Section{
				UserID:  user.ID,
				Name:    name,
				Content: gofakeit.Paragraph(1, 3, 12, " "),
			}
			if err := sectionRepo.Save(ctx, section); err != nil {
				log.Printf("skipping section %s for %s: %v", name, user.Username, err)
			}
		}
	}

	log.Printf("Seeded %d users", created)
}
