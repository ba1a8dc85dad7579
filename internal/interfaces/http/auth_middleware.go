package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cerveceria-api/internal/application/access"
	"github.com/tu-usuario/cerveceria-api/internal/application/auth"
	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/pkg/jwt"
)

// LocalSession key de la sesión en c.Locals.
const LocalSession = "session"

// AuthMiddleware valida el Bearer Token JWT, reconstruye la sesión desde los
// claims y la deja en c.Locals. Los roles del token se re-validan contra el
// enumerado cerrado: un rol desconocido invalida el token completo en vez de
// tratarse como no-coincidente.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if len(claims.Roles) == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin roles"})
		}
		roles, err := entity.ParseRoles(claims.Roles)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token con rol desconocido"})
		}
		session := auth.NewSession(&entity.Identity{
			RUT:          claims.RUT,
			EmployeeCode: claims.EmployeeCode,
			Name:         claims.Name,
			Roles:        roles,
		})
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
// Sin middleware o sin login devuelve la sesión anónima, que deniega todo.
func GetSession(c *fiber.Ctx) auth.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return auth.Anonymous()
	}
	s, ok := v.(auth.Session)
	if !ok {
		return auth.Anonymous()
	}
	return s
}

// GetRoles devuelve los roles de la sesión como strings (para respuestas).
func GetRoles(c *fiber.Ctx) []string {
	return GetSession(c).Roles().Strings()
}

// RequireRole devuelve un middleware que autoriza si la sesión tiene al menos
// uno de los roles indicados. Debe usarse DESPUÉS de AuthMiddleware. Un rol
// mal escrito en el código de rutas es un error de programación: panic en el
// arranque, no una denegación silenciosa en runtime.
func RequireRole(roles ...string) fiber.Handler {
	required, err := entity.ParseRoles(roles)
	if err != nil {
		panic("http: RequireRole: " + err.Error())
	}
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if !s.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !access.CanAccess(s, required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
		}
		return c.Next()
	}
}

// RequireResource devuelve un middleware que autoriza contra la política
// recurso → roles. Un recurso fuera de la política deniega para todos
// (fail-closed). Debe usarse DESPUÉS de AuthMiddleware.
func RequireResource(policy access.Policy, resource access.Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if !s.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !access.CanAccessResource(s, policy, resource) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
		}
		return c.Next()
	}
}
