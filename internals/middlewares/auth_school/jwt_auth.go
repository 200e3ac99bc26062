// file: internals/middlewares/auth_school/jwt_auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi token HMAC dan menghydrate locals yang
// dipakai helperAuth: user_id, school_id, academic_year_id, roles,
// teacher_id. school_id & academic_year_id dilempar apa adanya ke
// layer scheduling sebagai nilai scoping opaque.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// === HYDRATE LOCALS YANG DIHARAPKAN HELPER ===

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		}

		// school_id (single session) → LocSchoolID
		if sid := strClaim(claims, "school_id"); sid != "" {
			c.Locals(helperAuth.LocSchoolID, sid)
		}

		// academic_year_id → LocAcademicYearID
		if yid := strClaim(claims, "academic_year_id"); yid != "" {
			c.Locals(helperAuth.LocAcademicYearID, yid)
		}

		// teacher_id → LocTeacherID
		if tid := strClaim(claims, "teacher_id"); tid != "" {
			c.Locals(helperAuth.LocTeacherID, tid)
		}

		// roles → LocRoles ([]string, robust untuk []any dari JSON)
		if v, ok := claims["roles"]; ok {
			c.Locals(helperAuth.LocRoles, readStringSlice(v))
		} else if r := strClaim(claims, "role"); r != "" {
			// token lama hanya membawa "role" tunggal
			c.Locals(helperAuth.LocRoles, []string{r})
		}

		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// util: ubah nilai interface{} → []string (robust untuk []string atau []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
