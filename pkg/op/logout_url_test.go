package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLogoutURL(t *testing.T) {
	type args struct {
		origin   string
		basePath string
		target   string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
	}{
		{
			name: "app root marker",
			args: args{"https://server", "/", "~/logout"},
			want: "https://server/logout",
		},
		{
			name: "app root marker, empty base path",
			args: args{"https://server", "", "~/logout"},
			want: "https://server/logout",
		},
		{
			name: "leading slash is local",
			args: args{"https://server", "/", "/logout"},
			want: "https://server/logout",
		},
		{
			name: "base path without slashes",
			args: args{"https://server", "identity", "~/logout"},
			want: "https://server/identity/logout",
		},
		{
			name: "base path with slashes on both sides",
			args: args{"https://server/", "/identity/", "~//account/logout"},
			want: "https://server/identity/account/logout",
		},
		{
			name: "port kept",
			args: args{"http://localhost:9998", "/", "~/logout"},
			want: "http://localhost:9998/logout",
		},
		{
			name: "trailing slash of target kept",
			args: args{"https://server", "/app", "~/logout/"},
			want: "https://server/app/logout/",
		},
		{
			name: "query and fragment removed from local",
			args: args{"https://server", "/", "~/logout?foo=bar#frag"},
			want: "https://server/logout",
		},
		{
			name: "absolute url",
			args: args{"https://server", "/app", "https://login.example.com/logout?x=1#y"},
			want: "https://login.example.com/logout",
		},
		{
			name:    "protocol relative",
			args:    args{"https://server", "/", "//evil.example.com/logout"},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "backslash network path",
			args:    args{"https://server", "/", `/\evil.example.com`},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "bare relative",
			args:    args{"https://server", "/", "logout"},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "other scheme",
			args:    args{"https://server", "/", "javascript:alert(1)"},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "empty",
			args:    args{"https://server", "/", ""},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "parent segment",
			args:    args{"https://server", "/app", "~/../admin/logout"},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "encoded parent segment",
			args:    args{"https://server", "/app", "/%2E%2e/admin"},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "current segment",
			args:    args{"https://server", "/", "~/./logout"},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name:    "parent segment in base path",
			args:    args{"https://server", "/app/..", "~/logout"},
			wantErr: ErrInvalidLogoutURL,
		},
		{
			name: "dots inside a segment",
			args: args{"https://server", "/app", "~/logout..page/v1.2"},
			want: "https://server/app/logout..page/v1.2",
		},
		{
			name:    "origin not absolute",
			args:    args{"server", "/", "~/logout"},
			wantErr: ErrInvalidLogoutURL,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLogoutURL(tt.args.origin, tt.args.basePath, tt.args.target)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
