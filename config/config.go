package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type storage struct {
	Path         string `mapstructure:"path"`
	ProductsSlot string `mapstructure:"products_slot"`
	CartSlot     string `mapstructure:"cart_slot"`
}

type catalog struct {
	ForceReseed bool `mapstructure:"force_reseed"`
}

type cart struct {
	TaxRate float64 `mapstructure:"tax_rate"`
}

type eventsTLS struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

type events struct {
	Enabled            bool      `mapstructure:"enabled"`
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topic              string    `mapstructure:"topic"`
	TLS                eventsTLS `mapstructure:"tls"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Storage        storage    `mapstructure:"storage"`
	Catalog        catalog    `mapstructure:"catalog"`
	Cart           cart       `mapstructure:"cart"`
	Events         events     `mapstructure:"events"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Storage:
	Path=%q
	ProductsSlot=%q
	CartSlot=%q

	Catalog:
	ForceReseed=%v

	Cart:
	TaxRate=%v

	Events:
	Enabled=%v
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Storage.Path,
		c.Storage.ProductsSlot,
		c.Storage.CartSlot,
		c.Catalog.ForceReseed,
		c.Cart.TaxRate,
		c.Events.Enabled,
		c.Events.SeedBrokers,
		c.Events.SchemaRegistryURLs,
		c.Events.Topic,
	)
}
