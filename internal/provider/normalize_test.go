package provider

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "scp-like ssh remote",
			raw:  "git@github.com:acme/widget.git",
			want: "https://github.com/acme/widget",
		},
		{
			name: "scp-like without .git",
			raw:  "git@gitlab.com:group/sub/project",
			want: "https://gitlab.com/group/sub/project",
		},
		{
			name: "ssh scheme with user",
			raw:  "ssh://git@github.com/acme/widget.git",
			want: "https://github.com/acme/widget",
		},
		{
			name: "ssh scheme with port",
			raw:  "ssh://git@bitbucket.example.com:7999/acme/widget.git",
			want: "https://bitbucket.example.com/acme/widget",
		},
		{
			name: "https remote with .git",
			raw:  "https://github.com/acme/widget.git",
			want: "https://github.com/acme/widget",
		},
		{
			name: "https remote with trailing slash",
			raw:  "https://github.com/acme/widget/",
			want: "https://github.com/acme/widget",
		},
		{
			name: "https remote with userinfo",
			raw:  "https://user@github.com/acme/widget.git",
			want: "https://github.com/acme/widget",
		},
		{
			name: "http remote keeps scheme",
			raw:  "http://git.example.com/acme/widget.git",
			want: "http://git.example.com/acme/widget",
		},
		{
			name: "surrounding whitespace",
			raw:  "  git@github.com:acme/widget.git\n",
			want: "https://github.com/acme/widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://github.com/acme/widget", "github.com"},
		{"https://gitlab.com/group/sub/project", "gitlab.com"},
		{"http://git.example.com/acme/widget", "git.example.com"},
		{"https://github.com", "github.com"},
	}

	for _, tt := range tests {
		if got := Host(tt.base); got != tt.want {
			t.Errorf("Host(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
