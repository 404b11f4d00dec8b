package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-marketplace/internal/application/dto"
	"github.com/jhoicas/wms-marketplace/internal/domain"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
	"github.com/jhoicas/wms-marketplace/pkg/jwt"
)

// UseCase autenticación con JWT. No hay registro público: los usuarios se
// crean vía seed o administración directa de la base.
type UseCase struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtIssuer string
	jwtExpMin int
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, jwtExpMin int) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
		jwtExpMin: jwtExpMin,
	}
}

// Login valida credenciales y emite un token de acceso. Credenciales malas y
// usuario inexistente devuelven el mismo error para no filtrar existencia.
func (uc *UseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Email, uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}, nil
}
