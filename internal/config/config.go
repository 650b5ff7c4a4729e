package config

import (
	"flag"
	"time"
)

type Config struct {
	Address       string
	StoreFile     string
	StoreInterval time.Duration // 0 - disable save data
	Restore       bool
}

func NewConfig() *Config {
	a := flag.String("ADDRESS", "127.0.0.1:3200", "gRPC listen address")
	f := flag.String("STORE_FILE", "db/qrstash.data", "store file")
	i := flag.Duration("STORE_INTERVAL", time.Second*5, "store interval")
	r := flag.Bool("RESTORE", false, "restore payloads from disk on startup")
	flag.Parse()

	return &Config{
		Address:       *a,
		StoreFile:     *f,
		StoreInterval: *i,
		Restore:       *r,
	}
}
