// Package config builds the settings of one tool run from flags, environment,
// an optional .env file and an optional yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	bValidator "github.com/braav-io/setup/base/validator"
)

var (
	ErrMissingConfig = errors.New("missing config")
	ErrInvalidConfig = errors.New("invalid config")
)

const (
	KeySuiNetwork         = "SUI_NETWORK"
	KeyMnemonic           = "MNEMONIC"
	KeyPackageId          = "PACKAGE_ID"
	KeySupplyCapId        = "SUPPLY_CAP_ID"
	KeyCreatorCapId       = "CREATOR_CAP_ID"
	KeyLineageId          = "LINEAGE_ID"
	KeyCounterId          = "COUNTER_ID"
	KeyPublisherId        = "PUBLISHER_ID"
	KeyNftObjectId        = "NFT_OBJECT_ID"
	KeyRecipientAddress   = "RECIPIENT_ADDRESS"
	KeyRecipientAddresses = "RECIPIENT_ADDRESSES"
	KeyAdminCap           = "ADMIN_CAP"
	KeyVettingTableId     = "VETTING_TABLE_ID"
	KeyWalletSecret       = "WALLET_SECRET"
	KeyNewSupplyLimit     = "NEW_SUPPLY_LIMIT"
	KeyQuantity           = "QUANTITY"
	KeyGasBudget          = "GAS_BUDGET"
	KeyDisplayGasBudget   = "DISPLAY_GAS_BUDGET"
	KeyPollAttempts       = "POLL_ATTEMPTS"
	KeyPollInterval       = "POLL_INTERVAL"
	KeyRpcTimeout         = "RPC_TIMEOUT"
	KeyDatadogHost        = "DATADOG_HOST"
	KeyLogLevel           = "LOG_LEVEL"
)

var defaults = map[string]interface{}{
	KeyWalletSecret:     "default_secret",
	KeyNewSupplyLimit:   "500000",
	KeyQuantity:         "2",
	KeyGasBudget:        "10000000",
	KeyDisplayGasBudget: "60000000",
	KeyPollAttempts:     "10",
	KeyPollInterval:     "2s",
	KeyRpcTimeout:       "30s",
	KeyLogLevel:         "info",
}

// flag name -> config key, bound when the tool registered the flag
var flagKeys = map[string]string{
	"network":          KeySuiNetwork,
	"gas-budget":       KeyGasBudget,
	"log-level":        KeyLogLevel,
	"recipient":        KeyRecipientAddress,
	"recipients":       KeyRecipientAddresses,
	"quantity":         KeyQuantity,
	"new-supply-limit": KeyNewSupplyLimit,
	"nft":              KeyNftObjectId,
	"lineage":          KeyLineageId,
	"publisher":        KeyPublisherId,
	"vetting-table":    KeyVettingTableId,
}

// Config is read once at start-up and handed to the use cases.
type Config struct {
	SuiNetwork         string        `name:"SUI_NETWORK" validate:"required,url"`
	Mnemonic           string        `name:"MNEMONIC" validate:"required"`
	PackageId          string        `name:"PACKAGE_ID" validate:"required,suiaddr"`
	SupplyCapId        string        `name:"SUPPLY_CAP_ID" validate:"required,suiaddr"`
	CreatorCapId       string        `name:"CREATOR_CAP_ID" validate:"required,suiaddr"`
	LineageId          string        `name:"LINEAGE_ID" validate:"required,suiaddr"`
	CounterId          string        `name:"COUNTER_ID" validate:"required,suiaddr"`
	PublisherId        string        `name:"PUBLISHER_ID" validate:"required,suiaddr"`
	NftObjectId        string        `name:"NFT_OBJECT_ID" validate:"required,suiaddr"`
	RecipientAddress   string        `name:"RECIPIENT_ADDRESS" validate:"required,suiaddr"`
	RecipientAddresses []string      `name:"RECIPIENT_ADDRESSES" validate:"required,min=1,suiaddrs"`
	AdminCap           string        `name:"ADMIN_CAP" validate:"required,suiaddr"`
	VettingTableId     string        `name:"VETTING_TABLE_ID" validate:"required,suiaddr"`
	WalletSecret       string        `name:"WALLET_SECRET"`
	NewSupplyLimit     uint64        `name:"NEW_SUPPLY_LIMIT" validate:"gt=0"`
	Quantity           int           `name:"QUANTITY" validate:"gt=0"`
	GasBudget          uint64        `name:"GAS_BUDGET" validate:"gt=0"`
	DisplayGasBudget   uint64        `name:"DISPLAY_GAS_BUDGET" validate:"gt=0"`
	PollAttempts       int           `name:"POLL_ATTEMPTS" validate:"gt=0"`
	PollInterval       time.Duration `name:"POLL_INTERVAL"`
	RpcTimeout         time.Duration `name:"RPC_TIMEOUT" validate:"gt=0"`
	DatadogHost        string        `name:"DATADOG_HOST"`
	LogLevel           string        `name:"LOG_LEVEL"`

	// field name -> raw value that could not be parsed
	malformed map[string]string
	validate  *validator.Validate
}

// FieldError names the configuration key that failed validation.
type FieldError struct {
	Key    string
	Reason string
	err    error
}

func (e *FieldError) Error() string {
	return e.Reason
}

func (e *FieldError) Unwrap() error {
	return e.err
}

func missing(key string) *FieldError {
	return &FieldError{Key: key, Reason: fmt.Sprintf("%s not set", key), err: ErrMissingConfig}
}

func malformed(key, value string) *FieldError {
	return &FieldError{Key: key, Reason: fmt.Sprintf("Invalid %s: %s", key, value), err: ErrInvalidConfig}
}

func notPositive(key string) *FieldError {
	return &FieldError{Key: key, Reason: fmt.Sprintf("%s must be positive", key), err: ErrInvalidConfig}
}

// RegisterFlags adds the flags every tool understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "optional yaml file with configuration keys")
	fs.String("env-file", ".env", "dotenv file loaded before reading the environment")
	fs.String("network", "", "Sui fullnode JSON-RPC url (SUI_NETWORK)")
	fs.Uint64("gas-budget", 0, "gas budget in MIST (GAS_BUDGET)")
	fs.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
}

// Load reads every source and returns the populated Config. Nothing is required
// at this point; tools call Require with the fields they depend on.
func Load(fs *pflag.FlagSet) (*Config, error) {
	envFile := ".env"
	if fs != nil {
		if f := fs.Lookup("env-file"); f != nil {
			envFile = f.Value.String()
		}
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, xerrors.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range allKeys() {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, xerrors.Errorf("failed to read config file %s: %w", f.Value.String(), err)
			}
		}
	}
	return fromViper(v)
}

func allKeys() []string {
	return []string{
		KeySuiNetwork, KeyMnemonic, KeyPackageId, KeySupplyCapId, KeyCreatorCapId,
		KeyLineageId, KeyCounterId, KeyPublisherId, KeyNftObjectId, KeyRecipientAddress,
		KeyRecipientAddresses, KeyAdminCap, KeyVettingTableId, KeyWalletSecret,
		KeyNewSupplyLimit, KeyQuantity, KeyGasBudget, KeyDisplayGasBudget, KeyPollAttempts,
		KeyPollInterval, KeyRpcTimeout, KeyDatadogHost, KeyLogLevel,
	}
}

func fromViper(v *viper.Viper) (*Config, error) {
	validate, err := bValidator.New()
	if err != nil {
		return nil, err
	}
	c := &Config{
		SuiNetwork:         strings.TrimSpace(v.GetString(KeySuiNetwork)),
		Mnemonic:           strings.TrimSpace(v.GetString(KeyMnemonic)),
		PackageId:          strings.TrimSpace(v.GetString(KeyPackageId)),
		SupplyCapId:        strings.TrimSpace(v.GetString(KeySupplyCapId)),
		CreatorCapId:       strings.TrimSpace(v.GetString(KeyCreatorCapId)),
		LineageId:          strings.TrimSpace(v.GetString(KeyLineageId)),
		CounterId:          strings.TrimSpace(v.GetString(KeyCounterId)),
		PublisherId:        strings.TrimSpace(v.GetString(KeyPublisherId)),
		NftObjectId:        strings.TrimSpace(v.GetString(KeyNftObjectId)),
		RecipientAddress:   strings.TrimSpace(v.GetString(KeyRecipientAddress)),
		RecipientAddresses: SplitList(v.GetString(KeyRecipientAddresses)),
		AdminCap:           strings.TrimSpace(v.GetString(KeyAdminCap)),
		VettingTableId:     strings.TrimSpace(v.GetString(KeyVettingTableId)),
		WalletSecret:       v.GetString(KeyWalletSecret),
		DatadogHost:        v.GetString(KeyDatadogHost),
		LogLevel:           v.GetString(KeyLogLevel),
		malformed:          map[string]string{},
		validate:           validate,
	}
	if c.WalletSecret == "" {
		c.WalletSecret = defaults[KeyWalletSecret].(string)
	}
	c.NewSupplyLimit = c.parseUint("NewSupplyLimit", v.GetString(KeyNewSupplyLimit))
	c.Quantity = c.parseInt("Quantity", v.GetString(KeyQuantity))
	c.GasBudget = c.parseUint("GasBudget", v.GetString(KeyGasBudget))
	c.DisplayGasBudget = c.parseUint("DisplayGasBudget", v.GetString(KeyDisplayGasBudget))
	c.PollAttempts = c.parseInt("PollAttempts", v.GetString(KeyPollAttempts))
	c.PollInterval = c.parseDuration("PollInterval", v.GetString(KeyPollInterval))
	c.RpcTimeout = c.parseDuration("RpcTimeout", v.GetString(KeyRpcTimeout))
	return c, nil
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) parseUint(field, raw string) uint64 {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		// negative values parse as signed and fail the gt=0 check instead
		if _, signedErr := strconv.ParseInt(raw, 10, 64); signedErr != nil {
			c.malformed[field] = raw
		}
		return 0
	}
	return n
}

// parseInt keeps negative values so that gt=0 reports them, anything out of int range is malformed.
func (c *Config) parseInt(field, raw string) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 0)
	if err != nil {
		c.malformed[field] = raw
		return 0
	}
	return int(n)
}

// parseDuration accepts Go durations ("2s") and bare integers as milliseconds.
func (c *Config) parseDuration(field, raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		c.malformed[field] = raw
		return 0
	}
	return d
}

// Require validates the named fields (Go field names) in order and returns the
// first failure as a *FieldError.
func (c *Config) Require(fields ...string) error {
	for _, field := range fields {
		if raw, ok := c.malformed[field]; ok {
			return malformed(c.keyOf(field), raw)
		}
		err := c.validate.StructPartial(c, field)
		if err == nil {
			continue
		}
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) || len(errs) == 0 {
			return err
		}
		return c.translate(errs[0])
	}
	return nil
}

func (c *Config) keyOf(field string) string {
	if f, ok := reflect.TypeOf(*c).FieldByName(field); ok {
		if key := f.Tag.Get("name"); key != "" {
			return key
		}
	}
	return field
}

func (c *Config) translate(fe validator.FieldError) error {
	key := fe.Field()
	switch fe.Tag() {
	case "required", "min":
		return missing(key)
	case "gt":
		return notPositive(key)
	default:
		return malformed(key, fmt.Sprintf("%v", fe.Value()))
	}
}
