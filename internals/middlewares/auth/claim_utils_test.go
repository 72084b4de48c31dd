package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc.def", want: "abc.def"},
		{name: "bare token", header: "abc.def", want: "abc.def"},
		{name: "quoted", header: `Bearer "abc.def"`, want: "abc.def"},
		{name: "missing", header: "", wantErr: true},
		{name: "garbage", header: "Token a b", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			var got string
			var gotErr error
			app.Get("/", func(c *fiber.Ctx) error {
				got, gotErr = extractBearerToken(c)
				return nil
			})

			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			_, err := app.Test(req)
			require.NoError(t, err)

			if tc.wantErr {
				assert.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tc.want, got)
		})
	}
}
