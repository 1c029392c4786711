package cache

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		header map[string]string
		want   Class
	}{
		{
			name: "framework internal route",
			path: "/_next/static/chunks/main.js",
			want: ClassInternal,
		},
		{
			name: "internal prefix wins over extension",
			path: "/_next/image.png",
			want: ClassInternal,
		},
		{
			name: "png asset",
			path: "/logo.png",
			want: ClassStaticAsset,
		},
		{
			name: "woff2 font",
			path: "/fonts/cairo.woff2",
			want: ClassStaticAsset,
		},
		{
			name: "uppercase extension",
			path: "/images/HERO.JPG",
			want: ClassStaticAsset,
		},
		{
			name:   "navigation via fetch metadata",
			path:   "/services",
			header: map[string]string{"Sec-Fetch-Mode": "navigate"},
			want:   ClassNavigation,
		},
		{
			name:   "navigation via accept header",
			path:   "/ar/contact",
			header: map[string]string{"Accept": "text/html,application/xhtml+xml"},
			want:   ClassNavigation,
		},
		{
			name:   "subresource fetch is not a navigation",
			path:   "/api-data",
			header: map[string]string{"Sec-Fetch-Mode": "cors", "Accept": "text/html"},
			want:   ClassDefault,
		},
		{
			name: "everything else",
			path: "/messages/en.json",
			want: ClassDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequest(http.MethodGet, "http://shell.local"+tt.path, http.NoBody)
			require.NoError(t, err)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, Classify(req, "/_next/"))
		})
	}
}

func TestRequestKeyIncludesQuery(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodGet, "http://shell.local/search?q=ac+repair", http.NoBody)
	require.NoError(t, err)
	assert.Equal(t, "/search?q=ac+repair", RequestKey(req))

	req, err = http.NewRequest(http.MethodGet, "http://shell.local/plain", http.NoBody)
	require.NoError(t, err)
	assert.Equal(t, "/plain", RequestKey(req))
}
