package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		agents  []Agent
		wantErr bool
	}{
		{
			name:    "default catalog is valid",
			agents:  DefaultAgents(),
			wantErr: false,
		},
		{
			name: "duplicate id rejected",
			agents: []Agent{
				{ID: "a", Name: "A", Provider: ProviderOpenAI, Model: "m", Tier: TierFree},
				{ID: "a", Name: "A2", Provider: ProviderAnthropic, Model: "m2", Tier: TierFree},
			},
			wantErr: true,
		},
		{
			name: "unsupported provider rejected",
			agents: []Agent{
				{ID: "a", Name: "A", Provider: ProviderType("bedrock"), Model: "m", Tier: TierFree},
			},
			wantErr: true,
		},
		{
			name: "missing model rejected",
			agents: []Agent{
				{ID: "a", Name: "A", Provider: ProviderOpenAI, Tier: TierFree},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.agents)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_LookupRoundTrip(t *testing.T) {
	reg := MustNewRegistry(DefaultAgents())

	// Every registered agent must survive lookup + JSON round-trip unchanged.
	for _, want := range DefaultAgents() {
		got, ok := reg.Lookup(want.ID)
		if !ok {
			t.Fatalf("Lookup(%q) not found", want.ID)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Lookup(%q) = %+v, want %+v", want.ID, got, want)
		}

		data, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("marshal %q: %v", want.ID, err)
		}
		var back Agent
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %q: %v", want.ID, err)
		}
		if !reflect.DeepEqual(back, want) {
			t.Errorf("JSON round-trip for %q = %+v, want %+v", want.ID, back, want)
		}
	}
}

func TestRegistry_LookupMissing(t *testing.T) {
	reg := MustNewRegistry(DefaultAgents())

	if _, ok := reg.Lookup("no-such-agent"); ok {
		t.Error("Lookup of unknown id returned ok")
	}
}

func TestRegistry_AllPreservesOrder(t *testing.T) {
	agents := DefaultAgents()
	reg := MustNewRegistry(agents)

	all := reg.All()
	if len(all) != len(agents) {
		t.Fatalf("All() returned %d agents, want %d", len(all), len(agents))
	}
	for i := range agents {
		if all[i].ID != agents[i].ID {
			t.Errorf("All()[%d].ID = %q, want %q (declaration order must be stable)", i, all[i].ID, agents[i].ID)
		}
	}

	// Mutating the copy must not affect the registry.
	all[0].ID = "mutated"
	again := reg.All()
	if again[0].ID == "mutated" {
		t.Error("All() exposes internal state")
	}
}

func TestRegistry_CountByProvider(t *testing.T) {
	reg := MustNewRegistry(DefaultAgents())

	total, enabled := reg.CountByProvider(ProviderTogether)
	if total != 4 {
		t.Errorf("together total = %d, want 4", total)
	}
	if enabled != 2 {
		t.Errorf("together enabled = %d, want 2", enabled)
	}
}

func TestCredentials_ForProvider(t *testing.T) {
	creds := Credentials{OpenAI: "sk-test", Together: "tk-test"}

	tests := []struct {
		provider ProviderType
		wantKey  string
		wantOK   bool
	}{
		{ProviderOpenAI, "sk-test", true},
		{ProviderTogether, "tk-test", true},
		{ProviderAnthropic, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			key, ok := creds.ForProvider(tt.provider)
			if key != tt.wantKey || ok != tt.wantOK {
				t.Errorf("ForProvider(%s) = (%q, %v), want (%q, %v)", tt.provider, key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}

	configured := creds.ConfiguredProviders()
	want := []ProviderType{ProviderOpenAI, ProviderTogether}
	if !reflect.DeepEqual(configured, want) {
		t.Errorf("ConfiguredProviders() = %v, want %v", configured, want)
	}
}
