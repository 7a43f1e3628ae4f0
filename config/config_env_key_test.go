package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"apiKey":          "",
			"credentialsPath": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"live": map[string]any{
			"subscribeTimeout": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_APIKEY", want: "firebase.apiKey"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "LIVE_SUBSCRIBE_TIMEOUT", want: "live.subscribe.timeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, StoreProviderMemory, cfg.Store.Provider)
	assert.Equal(t, IdentityProviderMemory, cfg.Identity.Provider)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.Live.SubscribeTimeout)

	custom := &Config{Store: &StoreConfig{Provider: StoreProviderFirestore}, Auth: &AuthConfig{BcryptCost: 4}}
	applyDefaults(custom)

	assert.Equal(t, StoreProviderFirestore, custom.Store.Provider)
	assert.Equal(t, 4, custom.Auth.BcryptCost)
	assert.Equal(t, 5, custom.Auth.LoginBurst)
}
