package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

var seq atomic.Int64

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixNano()%1_000_000, seq.Add(1))
}

// SeedAccount inserts an account with the given role and status.
// The password hash is a placeholder and does not verify.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, role domain.AccountRole, status domain.AccountStatus) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	acc := domain.Account{
		Name:         "Seed " + suffix,
		Email:        "seed-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplace",
		Role:         role,
		Status:       status,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO accounts (name, email, password_hash, role, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		acc.Name, acc.Email, acc.PasswordHash, string(acc.Role), string(acc.Status),
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return acc
}

// SeedCategory inserts a category with a unique name.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{Name: "Ordem " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, c.Name,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedInsect inserts an insect, optionally linked to a category.
func SeedInsect(t *testing.T, pool *pgxpool.Pool, categoryID *int64) domain.Insect {
	t.Helper()

	in := domain.Insect{CommonName: "Besouro " + uniqueSuffix(), CategoryID: categoryID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO insects (common_name, category_id) VALUES ($1, $2) RETURNING id`,
		in.CommonName, categoryID,
	).Scan(&in.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedInsect: %v", err)
	}

	return in
}

// SeedAttachment inserts an image row for an insect without touching storage.
func SeedAttachment(t *testing.T, pool *pgxpool.Pool, insectID int64) domain.Attachment {
	t.Helper()

	a := domain.Attachment{InsectID: insectID, Locator: "/uploads/seed-" + uniqueSuffix() + ".jpg"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO insect_images (insect_id, locator) VALUES ($1, $2) RETURNING id, created_at`,
		insectID, a.Locator,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAttachment: %v", err)
	}

	return a
}
