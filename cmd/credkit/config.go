package main

import "time"

const (
	storeMemory   = "memory"
	storeMongo    = "mongo"
	storePostgres = "postgres"
	storeRedis    = "redis"
)

type appConfig struct {
	Env              string        `env:"APP_ENV" envDefault:"development"`
	Name             string        `env:"APP_NAME" envDefault:"credkit"`
	UserStore        string        `env:"USER_STORE" envDefault:"memory"` // memory, mongo, postgres or redis
	ReadinessTimeout time.Duration `env:"HTTP_READINESS_TIMEOUT" envDefault:"3s"`
	MaxBodySize      int64         `env:"HTTP_MAX_BODY_SIZE" envDefault:"1048576"`
}
