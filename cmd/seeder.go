package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/employee-management/internal/auth"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the initial admin account",
	Long:  `Seed the database with the admin account the dashboard is bootstrapped with. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		adminUsername := "admin"
		adminDigest := auth.HashPassword("admin123")

		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE username = ?", adminUsername).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists; nothing to do")
			return
		}

		if err := db.Exec(
			"INSERT INTO users (username, password_hash, role, created_at) VALUES (?, ?, ?, now())",
			adminUsername, adminDigest, auth.RoleAdmin,
		).Error; err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}

		fmt.Println("Seeded admin user:", adminUsername)
	},
}
