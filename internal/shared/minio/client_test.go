package objstore

import "testing"

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name     string
		photoURL string
		bucket   string
		want     string
	}{
		{
			name:     "path-style with bucket prefix",
			photoURL: "http://localhost:9000/committee-photos/2024/chair.jpg",
			bucket:   "committee-photos",
			want:     "2024/chair.jpg",
		},
		{
			name:     "virtual-host style without bucket in path",
			photoURL: "https://cdn.example.com/chair.jpg",
			bucket:   "committee-photos",
			want:     "chair.jpg",
		},
		{
			name:     "empty URL",
			photoURL: "",
			bucket:   "committee-photos",
			want:     "",
		},
		{
			name:     "bare host",
			photoURL: "https://cdn.example.com",
			bucket:   "committee-photos",
			want:     "",
		},
		{
			name:     "bucket name as key is kept",
			photoURL: "https://cdn.example.com/committee-photos",
			bucket:   "committee-photos",
			want:     "committee-photos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFromURL(tt.photoURL, tt.bucket); got != tt.want {
				t.Errorf("KeyFromURL(%q, %q) = %q, want %q", tt.photoURL, tt.bucket, got, tt.want)
			}
		})
	}
}
