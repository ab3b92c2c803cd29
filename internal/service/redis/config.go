package redis

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}
