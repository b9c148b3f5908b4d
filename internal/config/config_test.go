package config

import "testing"

func TestEditor(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{
			name: "EDITOR set",
			env:  "nano",
			want: "nano",
		},
		{
			name: "EDITOR empty falls back to default",
			env:  "",
			want: "vi",
		},
		{
			name: "EDITOR with flags is kept as-is",
			env:  "code --wait",
			want: "code --wait",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)
			if got := Editor(); got != tt.want {
				t.Errorf("Editor() = %q, want %q", got, tt.want)
			}
		})
	}
}
