package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"campusbook/internal/auth"
	"campusbook/internal/equipment"
	"campusbook/internal/user"
	"campusbook/pkg/config"
	"campusbook/pkg/db"
)

// Dev seeding tool: creates (or promotes) an admin account and loads a small
// starter equipment catalog so the API is usable right after migrations.
func main() {
	var (
		adminEmail    = flag.String("admin-email", "", "admin account email (required)")
		adminName     = flag.String("admin-name", "Campus Admin", "admin account display name")
		adminPassword = flag.String("admin-password", "", "admin account password (required when creating)")
		skipCatalog   = flag.Bool("skip-catalog", false, "skip seeding the starter equipment catalog")
	)
	flag.Parse()

	if *adminEmail == "" {
		fmt.Fprintln(os.Stderr, "missing -admin-email")
		os.Exit(2)
	}

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.MigrationsPath != "" {
		if err := db.Migrate(cfg.MigrationsPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
			os.Exit(1)
		}
	}

	users := user.NewRepository(pool)
	if existing, err := users.FindByEmail(ctx, *adminEmail); err == nil {
		if err := users.SetRole(ctx, existing.ID, user.RoleAdmin); err != nil {
			fmt.Fprintf(os.Stderr, "promote admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("promoted %s to admin\n", *adminEmail)
	} else {
		if *adminPassword == "" {
			fmt.Fprintln(os.Stderr, "missing -admin-password (required to create the admin account)")
			os.Exit(2)
		}
		hash, err := auth.HashPassword(*adminPassword)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
			os.Exit(1)
		}
		if _, err := users.Create(ctx, *adminName, *adminEmail, user.RoleAdmin, hash); err != nil {
			fmt.Fprintf(os.Stderr, "create admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("created admin %s\n", *adminEmail)
	}

	if *skipCatalog {
		return
	}

	catalog := []struct {
		name, category, description string
		quantity                    int
	}{
		{"Canon EOS R5", "Cameras", "Full-frame mirrorless camera body", 2},
		{"Rode NTG5", "Audio", "Shotgun microphone with windshield", 4},
		{"Manfrotto 055", "Support", "Aluminium tripod with fluid head", 6},
		{"Epson EB-2250U", "Projection", "WUXGA classroom projector", 3},
		{"MacBook Pro 16", "Computing", "Editing laptop with DaVinci Resolve", 5},
	}

	equipmentRepo := equipment.NewRepository(pool)
	seeded := 0
	for _, item := range catalog {
		desc := item.description
		if _, err := equipmentRepo.Create(ctx, item.name, item.category, &desc, item.quantity, nil); err != nil {
			fmt.Fprintf(os.Stderr, "seed %s: %v\n", item.name, err)
			continue
		}
		seeded++
	}
	fmt.Printf("seeded %d equipment items\n", seeded)
}
