package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var groupTitles = []string{
	"Travel Notes",
	"Kitchen Stories",
	"City Life",
	"Book Club",
	"Night Photography",
	"Small Victories",
}

// Seed populates the database with test data.
func Seed(db *gorm.DB, numUsers, numPosts int) error {
	log.Println("Starting database seeding...")

	if err := ClearAll(db); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ Created %d users", len(users))

	groups := make([]*models.Group, 0, len(groupTitles))
	for _, title := range groupTitles {
		group, err := f.CreateGroup(title)
		if err != nil {
			return fmt.Errorf("failed to create groups: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("✓ Created %d groups", len(groups))

	posts, err := createPosts(f, users, groups, numPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ Created %d posts", len(posts))

	commentCount, err := createComments(f, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ Created %d comments", commentCount)

	followCount, err := createFollows(f, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("✓ Created %d follows", followCount)

	log.Println("Database seeding completed successfully!")
	return nil
}

// ClearAll removes all rows in dependency order.
func ClearAll(db *gorm.DB) error {
	log.Println("Clearing existing data...")

	for _, table := range []string{"comments", "follows", "posts", "groups", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createPosts(f *Factory, users []*models.User, groups []*models.Group, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := f.BuildPost(users[f.r.Intn(len(users))].ID)

		// Roughly two out of three posts land in a group.
		if f.r.Intn(3) != 0 {
			groupID := groups[f.r.Intn(len(groups))].ID
			post.GroupID = &groupID
		}

		if err := f.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(f *Factory, users []*models.User, posts []*models.Post) (int, error) {
	count := 0
	for _, post := range posts {
		for i := 0; i < f.r.Intn(4); i++ {
			if _, err := f.CreateComment(post.ID, users[f.r.Intn(len(users))].ID); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

func createFollows(f *Factory, users []*models.User) (int, error) {
	count := 0
	for _, user := range users {
		for i := 0; i < f.r.Intn(4); i++ {
			author := users[f.r.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			follow := models.Follow{UserID: user.ID, AuthorID: author.ID}
			res := f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
			if res.Error != nil {
				return count, res.Error
			}
			count += int(res.RowsAffected)
		}
	}
	return count, nil
}
