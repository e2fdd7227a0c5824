package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"mercadoPago": map[string]any{
			"accessToken": "",
			"backUrlBase": "",
		},
		"checkout": map[string]any{
			"personalPrice": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MERCADOPAGO_ACCESSTOKEN", want: "mercadoPago.accessToken"},
		{envKey: "MERCADOPAGO_BACKURLBASE", want: "mercadoPago.backUrlBase"},
		{envKey: "CHECKOUT_PERSONALPRICE", want: "checkout.personalPrice"},
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
