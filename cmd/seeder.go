package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adminrec/personnel-management/internal"
	"github.com/adminrec/personnel-management/internal/auth"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
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
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		if clearData {
			for _, table := range []string{"requests", "attendances", "position_history", "accounts", "employees", "positions", "sectors"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedSector(db, "Sistemas")
		seedSector(db, "Administracion")

		seedPosition(db, "Desarrollador", "Sistemas", 1500, 6)
		seedPosition(db, "Administrativo", "Administracion", 1200, 8)

		seedEmployee(db, "Garcia", "Laura", 30111222, "lgarcia@adminrec.com", "Desarrollador", true)
		seedEmployee(db, "Perez", "Martin", 28999888, "mperez@adminrec.com", "Desarrollador", false)
		seedEmployee(db, "Suarez", "Ana", 27555444, "asuarez@adminrec.com", "Administrativo", false)

		seedAccount(db, cfg.Security.Argon2, 30111222, "cambiame123", "SUPERVISOR")
		seedAccount(db, cfg.Security.Argon2, 27555444, "cambiame123", "ADMIN")

		fmt.Println("Seeding complete")
	},
}

func seedSector(db *gorm.DB, name string) {
	var exists int
	row := db.Raw("SELECT 1 FROM sectors WHERE name = ? AND deleted_at IS NULL", name).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("sector already exists:", name)
		return
	}
	if err := db.Exec("INSERT INTO sectors (name, created_at, updated_at) VALUES (?, now(), now())", name).Error; err != nil {
		log.Fatalf("failed to insert sector %s: %v", name, err)
	}
	fmt.Println("Seeded sector:", name)
}

func seedPosition(db *gorm.DB, name, sectorName string, hourlyRate float64, minDailyHours int) {
	var exists int
	row := db.Raw("SELECT 1 FROM positions WHERE name = ? AND deleted_at IS NULL", name).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("position already exists:", name)
		return
	}
	err := db.Exec(`INSERT INTO positions (name, sector_id, hourly_rate, min_daily_hours, created_at, updated_at)
		VALUES (?, (SELECT id FROM sectors WHERE name = ? AND deleted_at IS NULL), ?, ?, now(), now())`,
		name, sectorName, hourlyRate, minDailyHours).Error
	if err != nil {
		log.Fatalf("failed to insert position %s: %v", name, err)
	}
	fmt.Println("Seeded position:", name)
}

func seedEmployee(db *gorm.DB, lastName, firstName string, dni int, email, positionName string, supervisor bool) {
	var exists int
	row := db.Raw("SELECT 1 FROM employees WHERE dni = ?", dni).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("employee already exists:", dni)
		return
	}
	err := db.Exec(`INSERT INTO employees (last_name, first_name, dni, email, is_sector_supervisor, position_id, hire_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, (SELECT id FROM positions WHERE name = ? AND deleted_at IS NULL), now(), now(), now())`,
		lastName, firstName, dni, email, supervisor, positionName).Error
	if err != nil {
		log.Fatalf("failed to insert employee %d: %v", dni, err)
	}
	err = db.Exec(`INSERT INTO position_history (employee_id, position_id, started_on)
		SELECT id, position_id, now() FROM employees WHERE dni = ?`, dni).Error
	if err != nil {
		log.Fatalf("failed to insert history for employee %d: %v", dni, err)
	}
	fmt.Println("Seeded employee:", dni)
}

func seedAccount(db *gorm.DB, argon internal.Argon2Config, dni int, password, role string) {
	var exists int
	row := db.Raw(`SELECT 1 FROM accounts a JOIN employees e ON e.id = a.employee_id
		WHERE e.dni = ? AND a.deleted_at IS NULL`, dni).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("account already exists for dni:", dni)
		return
	}

	hash, err := auth.HashPassword(password, argon)
	if err != nil {
		log.Fatalf("failed to hash password for dni %d: %v", dni, err)
	}

	err = db.Exec(`INSERT INTO accounts (employee_id, password_hash, role, created_at, updated_at)
		SELECT id, ?, ?, now(), now() FROM employees WHERE dni = ?`, hash, role, dni).Error
	if err != nil {
		log.Fatalf("failed to insert account for dni %d: %v", dni, err)
	}
	fmt.Println("Seeded account for dni:", dni)
}
