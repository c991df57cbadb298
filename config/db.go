package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-manager/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveDSN(cfg *Config) (string, error) {
	if raw := strings.TrimSpace(cfg.DatabaseURL); raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
	return dsn, nil
}

// SeedDatabase inserts reference data when the tables are empty: the room
// type catalogue and a default manager account.
func SeedDatabase() {
	var managerCount int64
	DB.Model(&models.Manager{}).Count(&managerCount)
	if managerCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default manager password: %v", err)
		} else {
			manager := models.Manager{
				Username: "admin",
				Password: string(hash),
				FullName: "Hotel Manager",
			}
			if err := DB.Create(&manager).Error; err != nil {
				log.Printf("warning: failed to create default manager: %v", err)
			} else {
				log.Println("Default manager seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Single", BasePrice: 100, MaxOccupancy: 1, Description: "Single room with one bed"},
			{TypeName: "Double", BasePrice: 150, MaxOccupancy: 2, Description: "Double room with two beds"},
			{TypeName: "Suite", BasePrice: 300, MaxOccupancy: 4, Description: "Suite with living area"},
			{TypeName: "Family", BasePrice: 250, MaxOccupancy: 5, Description: "Family room for larger groups"},
		}
		if err := DB.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("RoomTypes seeded")
		}
	}
}

func ConnectDatabase(cfg *Config) error {
	dsn, err := resolveDSN(cfg)
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Manager{},
		&models.Floor{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Transaction{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
