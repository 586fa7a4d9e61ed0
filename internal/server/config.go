package server

import (
	"time"
)

type TLSConfig struct {
	CertFile       string        `yaml:"certFile"`
	KeyFile        string        `yaml:"keyFile"`
	ReloadInterval time.Duration `yaml:"reloadInterval"`
}

type Config struct {
	Port              int           `yaml:"port"`
	RateBuckets       int           `yaml:"rateBuckets"`
	RatePeriod        time.Duration `yaml:"ratePeriod"`
	RateMaxConcurrent int           `yaml:"rateMaxConcurrent"`
	AdminKey          string        `yaml:"adminKey"`
	ShutdownTimeout   time.Duration `yaml:"shutdownTimeout"`
	TLS               *TLSConfig    `yaml:"tls"`
}
