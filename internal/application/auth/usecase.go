package auth

import (
	"github.com/asistec/taller-api/internal/application/dto"
	"github.com/asistec/taller-api/internal/domain"
	"github.com/asistec/taller-api/internal/domain/entity"
	"github.com/asistec/taller-api/internal/domain/repository"
	"github.com/asistec/taller-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de sesión: login, logout y usuario actual.
//
// El login es deliberadamente débil: se busca el primer usuario ACTIVO cuyo
// email coincida y se acepta cualquier contraseña no vacía. No es una
// frontera de seguridad.
type AuthUseCase struct {
	userRepo repository.UserRepository
	session  *Session
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, session *Session, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, session: session, jwtCfg: jwtCfg}
}

// Login busca el primer usuario activo con ese email, fija la sesión y genera
// el JWT. Email sin match o usuario inactivo → ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindActiveByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.session.Set(user)
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Logout limpia la sesión incondicionalmente.
func (uc *AuthUseCase) Logout() {
	uc.session.Clear()
}

// Current devuelve el usuario de la sesión, o nil si no hay sesión.
func (uc *AuthUseCase) Current() *dto.UserResponse {
	return ToUserResponse(uc.session.Current())
}

// ToUserResponse mapea la entidad User a su DTO público.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
