package auth

import (
	"context"

	"github.com/tu-usuario/cerveceria-api/internal/application/dto"
	"github.com/tu-usuario/cerveceria-api/internal/domain"
	"github.com/tu-usuario/cerveceria-api/internal/domain/entity"
	"github.com/tu-usuario/cerveceria-api/internal/domain/repository"
	"github.com/tu-usuario/cerveceria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login contra el directorio de
// usuarios y emisión del token de sesión.
type AuthUseCase struct {
	directory repository.UserDirectory
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(directory repository.UserDirectory, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{directory: directory, jwtCfg: jwtCfg}
}

// Authenticate verifica RUT + secreto contra el directorio y devuelve la
// identidad poblada con su conjunto de roles.
//
// El esquema de credenciales vigente compara el secreto con el código de
// empleado de forma exacta (sensible a mayúsculas, sin hash); el upgrade del
// esquema es una decisión futura explícita. Ante RUT desconocido o secreto
// incorrecto devuelve el mismo ErrUnauthorized, sin señal distinguible. Sin
// bloqueo ni límite de reintentos: cada llamada es independiente.
func (uc *AuthUseCase) Authenticate(ctx context.Context, rut, secret string) (*entity.Identity, error) {
	if rut == "" || secret == "" {
		return nil, domain.ErrInvalidInput
	}
	entry, err := uc.directory.FindByRUT(ctx, rut)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.EmployeeCode != secret {
		return nil, domain.ErrUnauthorized
	}
	return &entity.Identity{
		RUT:          entry.RUT,
		EmployeeCode: entry.EmployeeCode,
		Name:         entry.Name,
		Roles:        entry.Roles,
	}, nil
}

// Login autentica y emite un token JWT con la identidad completa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := uc.Authenticate(ctx, in.RUT, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		identity.RUT, identity.EmployeeCode, identity.Name,
		identity.Roles.Strings(),
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(identity),
	}, nil
}

// ToUserResponse proyecta la identidad al DTO de salida.
func ToUserResponse(id *entity.Identity) *dto.UserResponse {
	if id == nil {
		return nil
	}
	return &dto.UserResponse{
		RUT:          id.RUT,
		EmployeeCode: id.EmployeeCode,
		Name:         id.Name,
		Roles:        id.Roles.Strings(),
	}
}
