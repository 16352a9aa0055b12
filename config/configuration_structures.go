package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
	// ProfileTTL : сколько живёт закэшированный публичный профиль
	ProfileTTL string `yaml:"profile_ttl" env:"REDIS_PROFILE_TTL"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket" env:"S3_BUCKET"`
	Region   string `yaml:"region" env:"S3_REGION"`
	Endpoint string `yaml:"endpoint" env:"S3_ENDPOINT"`
	// PublicURL : базовый адрес, по которому объекты доступны клиентам (CDN или MinIO)
	PublicURL string `yaml:"public_url" env:"S3_PUBLIC_URL"`
	Local     bool   `yaml:"local" env:"S3_LOCAL"`
}

// JWTConfig : ключи подписи и время жизни токенов.
// Access и refresh подписываются разными ключами
type JWTConfig struct {
	AccessTokenSecret  string `yaml:"access_token_secret" env:"ACCESS_TOKEN_SECRET"`
	AccessTokenTTL     string `yaml:"access_token_ttl" env:"ACCESS_TOKEN_EXPIRY"`
	RefreshTokenSecret string `yaml:"refresh_token_secret" env:"REFRESH_TOKEN_SECRET"`
	RefreshTokenTTL    string `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_EXPIRY"`
	Issuer             string `yaml:"issuer" env:"JWT_ISSUER"`
}

type AuthConfig struct {
	// UnifyLoginErrors : если true, "пользователь не найден" и "неверный пароль" отдаются клиенту одинаково (401)
	UnifyLoginErrors bool   `yaml:"unify_login_errors" env:"AUTH_UNIFY_LOGIN_ERRORS"`
	BcryptCost       int    `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST"`
	RequestTimeout   string `yaml:"request_timeout" env:"AUTH_REQUEST_TIMEOUT"`
}

type CookieConfig struct {
	Secure   bool   `yaml:"secure" env:"COOKIE_SECURE"`
	Domain   string `yaml:"domain" env:"COOKIE_DOMAIN"`
	Path     string `yaml:"path" env:"COOKIE_PATH"`
	SameSite string `yaml:"same_site" env:"COOKIE_SAME_SITE"`
}
