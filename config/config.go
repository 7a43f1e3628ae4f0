package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
	defaultSessionTTL         = 12 * time.Hour
	defaultMaxActiveSessions  = 10000
	defaultNotificationTopic  = "club-updates"
	defaultWorkerPort         = 8081
)

// Provider names accepted by the store and identity sections
const (
	StoreProviderFirestore   = "firestore"
	StoreProviderMemory      = "memory"
	IdentityProviderFirebase = "firebase"
	IdentityProviderMemory   = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// Store selects the document store backing all collections
	Store *StoreConfig `json:"store" yaml:"store"`

	// Identity selects the sign-in provider
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Bootstrap lists uids promoted to admin at startup
	Bootstrap *BootstrapConfig `json:"bootstrap" yaml:"bootstrap"`

	// Firebase configuration shared by Firestore, Auth and Cloud Messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for event registration QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for content event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Notification configuration for the push worker
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	KnowledgeBase *KnowledgeBaseConfig `json:"knowledgeBase" yaml:"knowledgeBase"`

	Live *LiveConfig `json:"live" yaml:"live"`

	// Worker configuration for the Pub/Sub push endpoint
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// SessionConfig defines how long an idle client session is kept
type SessionConfig struct {
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	// MaxActive caps the number of live sessions held in memory
	MaxActive     int `json:"maxActive" yaml:"maxActive"`
	OpenPerMinute int `json:"openPerMinute" yaml:"openPerMinute"`
	OpenBurst     int `json:"openBurst" yaml:"openBurst"`
}

// StoreConfig defines the document store provider
type StoreConfig struct {
	// Provider type: "firestore" or "memory"
	Provider string `json:"provider" yaml:"provider"`
}

// IdentityConfig defines the identity provider
type IdentityConfig struct {
	// Provider type: "firebase" or "memory"
	Provider string `json:"provider" yaml:"provider"`

	// Users seeds the memory provider
	Users []IdentityUser `json:"users" yaml:"users"`
}

// IdentityUser is a development account for the memory identity provider.
// Password is hashed at startup when PasswordHash is empty.
type IdentityUser struct {
	UID          string `json:"uid" yaml:"uid"`
	Email        string `json:"email" yaml:"email"`
	DisplayName  string `json:"displayName" yaml:"displayName"`
	Password     string `json:"password" yaml:"password"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost         int `json:"bcryptCost" yaml:"bcryptCost"`
	LoginRatePerMinute int `json:"loginRatePerMinute" yaml:"loginRatePerMinute"`
	LoginBurst         int `json:"loginBurst" yaml:"loginBurst"`
}

type BootstrapConfig struct {
	AdminUIDs []string `json:"adminUids" yaml:"adminUids"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// APIKey is the web API key used for password sign-in
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// NotificationConfig defines which content events become push notifications
type NotificationConfig struct {
	Topic string   `json:"topic" yaml:"topic"`
	Kinds []string `json:"kinds" yaml:"kinds"`
}

type KnowledgeBaseConfig struct {
	// Path overrides the embedded knowledge base
	Path string `json:"path" yaml:"path"`
}

// LiveConfig tunes live collection subscriptions
type LiveConfig struct {
	SubscribeTimeout time.Duration `json:"subscribeTimeout" yaml:"subscribeTimeout"`
	Heartbeat        time.Duration `json:"heartbeat" yaml:"heartbeat"`
}

// WorkerConfig defines the push worker endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// Audience enables OIDC verification of push requests when set
	Audience string `json:"audience" yaml:"audience"`
	// ServiceAccountEmail restricts accepted push tokens
	ServiceAccountEmail string `json:"serviceAccountEmail" yaml:"serviceAccountEmail"`
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
			// Example: FIREBASE_APIKEY -> firebase.apiKey (not firebase.apikey)
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

	applyDefaults(cfg)

	return cfg, nil
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

func applyDefaults(cfg *Config) {
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.SweepInterval <= 0 {
		cfg.Session.SweepInterval = time.Minute
	}
	if cfg.Session.MaxActive <= 0 {
		cfg.Session.MaxActive = defaultMaxActiveSessions
	}
	if cfg.Session.OpenPerMinute <= 0 {
		cfg.Session.OpenPerMinute = 30
	}
	if cfg.Session.OpenBurst <= 0 {
		cfg.Session.OpenBurst = 10
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{Provider: StoreProviderMemory}
	}
	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{Provider: IdentityProviderMemory}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 12
	}
	if cfg.Auth.LoginRatePerMinute == 0 {
		cfg.Auth.LoginRatePerMinute = 10
	}
	if cfg.Auth.LoginBurst == 0 {
		cfg.Auth.LoginBurst = 5
	}

	if cfg.Live == nil {
		cfg.Live = &LiveConfig{}
	}
	if cfg.Live.SubscribeTimeout <= 0 {
		cfg.Live.SubscribeTimeout = 10 * time.Second
	}
	if cfg.Live.Heartbeat <= 0 {
		cfg.Live.Heartbeat = 25 * time.Second
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{Topic: defaultNotificationTopic, Kinds: []string{"event"}}
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}
