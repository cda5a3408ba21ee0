package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Gateway     GatewayConfig  `mapstructure:"gateway"`
	Media       MediaConfig    `mapstructure:"media"`
	Meal        MealConfig     `mapstructure:"meal"`
	Admin       AdminConfig    `mapstructure:"admin"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
}

// RedisConfig contains cache connection settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig contains token issuing settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwtSecret"`
	TokenTTL  time.Duration `mapstructure:"tokenTTL"` // hours
}

// GatewayConfig contains payment gateway settings
type GatewayConfig struct {
	StoreID         string `mapstructure:"storeId"`
	StorePassword   string `mapstructure:"storePassword"`
	Sandbox         bool   `mapstructure:"sandbox"`
	CallbackBaseURL string `mapstructure:"callbackBaseUrl"`
	FrontendURL     string `mapstructure:"frontendUrl"`
}

// MediaConfig contains payment proof upload settings
type MediaConfig struct {
	APIKey         string `mapstructure:"apiKey"`
	UploadURL      string `mapstructure:"uploadUrl"`
	MaxUploadBytes int64  `mapstructure:"maxUploadBytes"`
}

// MealConfig contains the business constants of the token system
type MealConfig struct {
	UnitPrice       int64 `mapstructure:"unitPrice"`       // Tk per meal
	StartingBalance int64 `mapstructure:"startingBalance"` // Tk granted on registration
	MinTopUp        int64 `mapstructure:"minTopUp"`        // smallest gateway top-up, Tk
}

// AdminConfig seeds the initial admin account on first boot
type AdminConfig struct {
	Email     string `mapstructure:"email"`
	Password  string `mapstructure:"password"`
	Name      string `mapstructure:"name"`
	StudentID string `mapstructure:"studentId"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}
