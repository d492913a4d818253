// Command createadmin provisions an operator account.
//
//	createadmin -id admin -password secret -fname Amin -lname Golden -phone 0912...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Amin-Golden/GymWeb/internal/admin"
	"github.com/Amin-Golden/GymWeb/internal/api"
	"github.com/Amin-Golden/GymWeb/internal/config"
	"github.com/Amin-Golden/GymWeb/internal/db"
	"github.com/Amin-Golden/GymWeb/internal/logger"
)

func main() {
	var (
		adminID  = flag.String("id", "", "login identifier (required)")
		password = flag.String("password", "", "password (required)")
		fname    = flag.String("fname", "", "first name (required)")
		lname    = flag.String("lname", "", "last name (required)")
		phone    = flag.String("phone", "", "phone number (required)")
		dob      = flag.String("dob", "", "date of birth, YYYY-MM-DD")
		male     = flag.Bool("male", true, "whether the admin is male")
		email    = flag.String("email", "", "email address")
	)
	flag.Parse()

	logger.Init()

	req, err := buildRequest(*adminID, *password, *fname, *lname, *phone, *dob, *male, *email)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := admin.NewService(admin.NewRepository(database), cfg.JWTSecret)
	created, err := svc.Create(ctx, *req)
	if errors.Is(err, admin.ErrAdminIDExists) {
		logger.Fatalf("Admin %q already exists", req.AdminID)
	}
	if err != nil {
		logger.Fatalf("Failed to create admin: %v", err)
	}

	logger.Info("Admin created", "id", created.ID.String(), "adminID", created.AdminID)
}

func buildRequest(adminID, password, fname, lname, phone, dob string, male bool, email string) (*admin.NewAdmin, error) {
	if adminID == "" || password == "" || fname == "" || lname == "" || phone == "" {
		return nil, errors.New("-id, -password, -fname, -lname and -phone are required")
	}

	req := &admin.NewAdmin{
		AdminID:     adminID,
		Password:    password,
		FName:       fname,
		LName:       lname,
		PhoneNumber: phone,
		IsMale:      male,
	}
	if dob != "" {
		t, err := api.ParseTime(dob)
		if err != nil {
			return nil, fmt.Errorf("invalid -dob: %w", err)
		}
		req.DOB = &t
	}
	if email != "" {
		req.Email = &email
	}
	return req, nil
}
