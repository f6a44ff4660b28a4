package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"

	"vendorflow/internal/models"
)

type Config struct {
	URL      string
	Host     string
	Port     string
	Username string
	Password string
	DbName   string
	SslMode  string
}

func (c Config) dsn() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.DbName, c.SslMode)
}

func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.DB().Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Designer{},
		&models.DesignerVendor{},
		&models.Vendor{},
		&models.VendorActiveOrder{},
		&models.VendorOrder{},
		&models.VendorOrderVariant{},
		&models.VendorOrderVariantDemand{},
		&models.Variant{},
		&models.OrderProduct{},
		&models.OrderProductRef{},
	).Error
	return errors.Wrap(err, "auto migrate")
}

func notFound(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return models.ErrRecordNotFound
	}
	return err
}

func ensureID(id *string) {
	if *id == "" {
		*id = models.NewObjectID()
	}
}
