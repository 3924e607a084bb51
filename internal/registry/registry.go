package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vanshika/bankreviews/internal/domain"
)

//go:embed banks.yaml
var defaultDocument []byte

// ErrEmptyRegistry indicates a registry without any bank.
var ErrEmptyRegistry = errors.New("bank registry is empty")

var packageIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z0-9_]+)+$`)

type document struct {
	Banks []entry `yaml:"banks" validate:"unique=Name,dive"`
}

type entry struct {
	Name          string  `yaml:"name" validate:"required"`
	AppStoreID    *int64  `yaml:"app_store_id" validate:"omitempty,gt=0"`
	PlayPackageID *string `yaml:"play_package_id" validate:"omitempty,packageid"`
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("packageid", func(fl validator.FieldLevel) bool {
		return packageIDPattern.MatchString(fl.Field().String())
	})
}

// Default returns the compiled-in bank registry.
func Default() ([]domain.Bank, error) {
	return Parse(defaultDocument)
}

// Load reads a registry document from disk.
func Load(path string) ([]domain.Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a registry document, preserving bank order.
func Parse(data []byte) ([]domain.Bank, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	if len(doc.Banks) == 0 {
		return nil, ErrEmptyRegistry
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("validate registry: %w", err)
	}

	banks := make([]domain.Bank, len(doc.Banks))
	for i, e := range doc.Banks {
		banks[i] = domain.Bank{
			Name:          e.Name,
			AppStoreID:    e.AppStoreID,
			PlayPackageID: e.PlayPackageID,
		}
	}
	return banks, nil
}

// Lookup finds a bank by display name.
func Lookup(banks []domain.Bank, name string) (domain.Bank, bool) {
	for _, b := range banks {
		if b.Name == name {
			return b, true
		}
	}
	return domain.Bank{}, false
}
