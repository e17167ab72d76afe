package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis configuration for the guardian directory cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// SMS gateway configuration
	SMS *GatewayConfig `json:"sms" yaml:"sms"`

	// Email gateway configuration
	Email *GatewayConfig `json:"email" yaml:"email"`

	// PubSub configuration for safety event publishing and sample ingestion
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Safety holds the detection thresholds of the monitoring engine
	Safety *SafetyConfig `json:"safety" yaml:"safety"`

	// Notification sizes the guardian notification pool
	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the redis connection used for caching guardian lookups
type RedisConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	CacheTTL time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// GatewayConfig defines an HTTP messaging gateway (SMS or email)
type GatewayConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Sender  string        `json:"sender" yaml:"sender"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, anything else disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID for safety events (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push subscription OIDC tokens; empty skips verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// SafetyConfig defines the thresholds used by geofence, dwell and wandering evaluation
type SafetyConfig struct {
	SampleWindow              time.Duration `json:"sampleWindow" yaml:"sampleWindow"`
	BoundaryThresholdMeters   float64       `json:"boundaryThresholdMeters" yaml:"boundaryThresholdMeters"`
	WarningCooldown           time.Duration `json:"warningCooldown" yaml:"warningCooldown"`
	MaxGeofenceRadiusMeters   float64       `json:"maxGeofenceRadiusMeters" yaml:"maxGeofenceRadiusMeters"`
	DwellWindow               time.Duration `json:"dwellWindow" yaml:"dwellWindow"`
	DwellMinSamples           int           `json:"dwellMinSamples" yaml:"dwellMinSamples"`
	DwellClusterMeters        float64       `json:"dwellClusterMeters" yaml:"dwellClusterMeters"`
	DwellProximityMeters      float64       `json:"dwellProximityMeters" yaml:"dwellProximityMeters"`
	WanderingMinSamples       int           `json:"wanderingMinSamples" yaml:"wanderingMinSamples"`
	WanderingDeviationMeters  float64       `json:"wanderingDeviationMeters" yaml:"wanderingDeviationMeters"`
	WanderingEscalateAfter    time.Duration `json:"wanderingEscalateAfter" yaml:"wanderingEscalateAfter"`
	WanderingAutoResolveAfter time.Duration `json:"wanderingAutoResolveAfter" yaml:"wanderingAutoResolveAfter"`
	CircularMovementEnabled   bool          `json:"circularMovementEnabled" yaml:"circularMovementEnabled"`
	LockStripes               int           `json:"lockStripes" yaml:"lockStripes"`
	// TimeZone is the IANA zone geofence active windows are written in
	TimeZone                  string        `json:"timeZone" yaml:"timeZone"`
}

// Location returns the zone active windows are evaluated in. An empty zone means UTC.
func (s *SafetyConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown time zone %q", s.TimeZone)
	}

	return loc, nil
}

// NotificationConfig defines the notification worker pool and channel timeouts
type NotificationConfig struct {
	Workers        int           `json:"workers" yaml:"workers"`
	QueueSize      int           `json:"queueSize" yaml:"queueSize"`
	ChannelTimeout time.Duration `json:"channelTimeout" yaml:"channelTimeout"`
	MaxConcurrency int           `json:"maxConcurrency" yaml:"maxConcurrency"`
}

// DefaultSafetyConfig returns the engine thresholds used when the config file omits them
func DefaultSafetyConfig() *SafetyConfig {
	return &SafetyConfig{
		SampleWindow:             60 * time.Minute,
		BoundaryThresholdMeters:  50,
		WarningCooldown:          5 * time.Minute,
		MaxGeofenceRadiusMeters:  10000,
		DwellWindow:              30 * time.Minute,
		DwellMinSamples:          5,
		DwellClusterMeters:       50,
		DwellProximityMeters:     100,
		WanderingMinSamples:      5,
		WanderingDeviationMeters: 500,
		WanderingEscalateAfter:   30 * time.Minute,
		LockStripes:              256,
		TimeZone:                 "UTC",
	}
}

// DefaultNotificationConfig returns the notification pool sizing used when the config file omits it
func DefaultNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		Workers:        8,
		QueueSize:      1024,
		ChannelTimeout: 3 * time.Second,
		MaxConcurrency: 16,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	if _, err := cfg.Safety.Location(); err != nil {
		return nil, errors.Wrap(err, "invalid safety config")
	}

	return cfg, nil
}

// applyDefaults fills zero-valued safety and notification settings
func (c *Config) applyDefaults() {
	if c.Safety == nil {
		c.Safety = DefaultSafetyConfig()
	} else {
		c.Safety.fill(DefaultSafetyConfig())
	}

	if c.Notification == nil {
		c.Notification = DefaultNotificationConfig()
	} else {
		c.Notification.fill(DefaultNotificationConfig())
	}

	if c.Redis != nil && c.Redis.CacheTTL <= 0 {
		c.Redis.CacheTTL = 5 * time.Minute
	}
}

func (s *SafetyConfig) fill(d *SafetyConfig) {
	setDefault(&s.SampleWindow, d.SampleWindow)
	setDefault(&s.BoundaryThresholdMeters, d.BoundaryThresholdMeters)
	setDefault(&s.WarningCooldown, d.WarningCooldown)
	setDefault(&s.MaxGeofenceRadiusMeters, d.MaxGeofenceRadiusMeters)
	setDefault(&s.DwellWindow, d.DwellWindow)
	setDefault(&s.DwellMinSamples, d.DwellMinSamples)
	setDefault(&s.DwellClusterMeters, d.DwellClusterMeters)
	setDefault(&s.DwellProximityMeters, d.DwellProximityMeters)
	setDefault(&s.WanderingMinSamples, d.WanderingMinSamples)
	setDefault(&s.WanderingDeviationMeters, d.WanderingDeviationMeters)
	setDefault(&s.WanderingEscalateAfter, d.WanderingEscalateAfter)
	setDefault(&s.LockStripes, d.LockStripes)
	if s.TimeZone == "" {
		s.TimeZone = d.TimeZone
	}
}

func (n *NotificationConfig) fill(d *NotificationConfig) {
	setDefault(&n.Workers, d.Workers)
	setDefault(&n.QueueSize, d.QueueSize)
	setDefault(&n.ChannelTimeout, d.ChannelTimeout)
	setDefault(&n.MaxConcurrency, d.MaxConcurrency)
}

func setDefault[T int | float64 | time.Duration](field *T, fallback T) {
	if *field <= 0 {
		*field = fallback
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
