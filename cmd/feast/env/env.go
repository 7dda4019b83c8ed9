package env

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPaymentMethod is used when neither a flag nor a feastenv file gives one.
const DefaultPaymentMethod = "CASH"

// FeastEnv holds per-directory defaults for ordering, loaded from a "feastenv"
// yaml file found near the working directory.
type FeastEnv struct {
	// DeliveryAddress is used by `order place` when --address is omitted.
	DeliveryAddress string `yaml:"deliveryAddress"`

	// PaymentMethod is used by `order place` when --payment is omitted.
	PaymentMethod string `yaml:"paymentMethod"`

	// SpecialInstructions is appended to every placed order unless overridden.
	SpecialInstructions string `yaml:"specialInstructions"`
}

func New() *FeastEnv {
	return new(FeastEnv)
}

// Payment returns the configured payment method, or the platform default.
func (e *FeastEnv) Payment() string {
	if e.PaymentMethod == "" {
		return DefaultPaymentMethod
	}
	return e.PaymentMethod
}

// LoadFeastEnv reads a feastenv file. A missing file yields an empty env;
// a file that exists but cannot be read is an error.
func LoadFeastEnv(filepath string) (*FeastEnv, error) {
	env := FeastEnv{}

	content, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return &env, nil
		}
		return nil, err
	}

	err = yaml.Unmarshal(content, &env)
	if err != nil {
		return nil, err
	}

	return &env, nil
}
