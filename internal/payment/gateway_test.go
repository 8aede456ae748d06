package payment

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "sandbox keys di mode sandbox",
			cfg: Config{
				ServerKey: "SB-Mid-server-abc123",
				ClientKey: "SB-Mid-client-abc123",
			},
			wantErr: false,
		},
		{
			name: "production keys di mode production",
			cfg: Config{
				ServerKey:    "Mid-server-abc123",
				ClientKey:    "Mid-client-abc123",
				IsProduction: true,
			},
			wantErr: false,
		},
		{
			name:    "key kosong",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name: "server key masih placeholder",
			cfg: Config{
				ServerKey: "YOUR_SERVER_KEY_HERE",
				ClientKey: "SB-Mid-client-abc123",
			},
			wantErr: true,
		},
		{
			name: "client key format salah",
			cfg: Config{
				ServerKey: "SB-Mid-server-abc123",
				ClientKey: "client-abc123",
			},
			wantErr: true,
		},
		{
			name: "production key dipakai di mode sandbox",
			cfg: Config{
				ServerKey: "Mid-server-abc123",
				ClientKey: "SB-Mid-client-abc123",
			},
			wantErr: true,
		},
		{
			name: "sandbox key dipakai di mode production",
			cfg: Config{
				ServerKey:    "SB-Mid-server-abc123",
				ClientKey:    "Mid-client-abc123",
				IsProduction: true,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewGatewayInvalidConfigNotReady(t *testing.T) {
	g := NewGateway(Config{})
	if g.Ready() {
		t.Error("gateway tanpa konfigurasi harusnya tidak Ready")
	}

	if _, err := g.CreateSession(SessionParams{OrderRef: "#0001", GrossAmount: 10000}); err != ErrUnconfigured {
		t.Errorf("CreateSession saat unconfigured harus balas ErrUnconfigured, dapat %v", err)
	}
	if _, err := g.VerifyNotification("#0001"); err != ErrUnconfigured {
		t.Errorf("VerifyNotification saat unconfigured harus balas ErrUnconfigured, dapat %v", err)
	}
	if _, err := g.QueryStatus("#0001"); err != ErrUnconfigured {
		t.Errorf("QueryStatus saat unconfigured harus balas ErrUnconfigured, dapat %v", err)
	}
}

func TestNewGatewayValidConfigReady(t *testing.T) {
	g := NewGateway(Config{
		ServerKey: "SB-Mid-server-abc123",
		ClientKey: "SB-Mid-client-abc123",
	})
	if !g.Ready() {
		t.Error("gateway dengan sandbox keys valid harusnya Ready")
	}
	if g.ClientKey() != "SB-Mid-client-abc123" {
		t.Errorf("ClientKey() = %q", g.ClientKey())
	}
}
