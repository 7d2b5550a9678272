package config

import (
	"time"

	"github.com/caarlos0/env/v8"
	log "github.com/sirupsen/logrus"
)

/*
*
Endpoint urls and client behavior can be overridden from the environment,
same variable names the hosted deployment uses. Everything has a working
default, so an empty environment gives a production client.
*/
type Config struct {
	AuthURL       string `env:"APPLE_AUTH_URL" envDefault:"https://auth.itunes.apple.com/auth/v1/native/fast"`
	StorefrontURL string `env:"APPLE_STOREFRONT_URL" envDefault:"https://itunes.apple.com/WebObjects/MZStore.woa/wa/storeFront"`
	BuyURL        string `env:"APPLE_BUY_URL" envDefault:"https://p25-buy.itunes.apple.com/WebObjects/MZFinance.woa/wa/buyProduct"`
	DownloadURL   string `env:"APPLE_DOWNLOAD_URL" envDefault:"https://p25-buy.itunes.apple.com/WebObjects/MZFinance.woa/wa/volumeStoreDownloadProduct"`
	HistoryURL    string `env:"APPLE_HISTORY_URL" envDefault:"https://p25-buy.itunes.apple.com/WebObjects/MZFinance.woa/wa/purchaseHistory"`

	// Storefront pins the region code and skips the probe request when set,
	// for example "143465-19,32".
	Storefront string `env:"STORE_FRONT"`

	Timeout time.Duration `env:"APPLE_HTTP_TIMEOUT" envDefault:"30s"`
}

func Load() *Config {
	cfg := &Config{}
	if e := env.Parse(cfg); e != nil {
		log.Errorf("parse environment config fail %s, using defaults", e.Error())
		return Default()
	}
	return cfg
}

func Default() *Config {
	return &Config{
		AuthURL:       "https://auth.itunes.apple.com/auth/v1/native/fast",
		StorefrontURL: "https://itunes.apple.com/WebObjects/MZStore.woa/wa/storeFront",
		BuyURL:        "https://p25-buy.itunes.apple.com/WebObjects/MZFinance.woa/wa/buyProduct",
		DownloadURL:   "https://p25-buy.itunes.apple.com/WebObjects/MZFinance.woa/wa/volumeStoreDownloadProduct",
		HistoryURL:    "https://p25-buy.itunes.apple.com/WebObjects/MZFinance.woa/wa/purchaseHistory",
		Timeout:       time.Second * 30,
	}
}
