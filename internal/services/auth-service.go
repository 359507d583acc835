package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"soporte-ti/internal/dto"
	"soporte-ti/internal/entities"
	"soporte-ti/internal/repositories"
	"soporte-ti/pkg/constants"
	apperrors "soporte-ti/pkg/errors"
	"soporte-ti/pkg/service"
	"soporte-ti/pkg/utils"
)

type AuthServiceInterface interface {
	Registrar(ctx context.Context, payload dto.RegistroDTO) (*entities.Usuario, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokensDTO, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokensDTO, error)
	GetMe(ctx context.Context, userID string) (*entities.Usuario, error)
}

type AuthService struct {
	usuarioRepo repositories.UsuarioRepositoryInterface
	jwtService  service.JWTService
	logger      *zap.Logger
}

func NewAuthService(
	usuarioRepo repositories.UsuarioRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Registrar da de alta un usuario con rol "alumno". La elevación de rol es un
// paso administrativo posterior, nunca parte del registro.
func (s *AuthService) Registrar(ctx context.Context, payload dto.RegistroDTO) (*entities.Usuario, error) {
	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	usuario := &entities.Usuario{
		ID:             uuid.NewString(),
		NombreCompleto: strings.TrimSpace(payload.NombreCompleto),
		Email:          strings.ToLower(strings.TrimSpace(payload.Email)),
		PasswordHash:   hash,
		Rol:            constants.RolAlumno,
	}

	if err := s.usuarioRepo.CreateUsuario(ctx, usuario); err != nil {
		return nil, err
	}

	s.logger.Info("usuario registrado", zap.String("usuario_id", usuario.ID))
	return usuario, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokensDTO, error) {
	usuario, err := s.usuarioRepo.FindUsuarioByEmail(ctx, strings.ToLower(strings.TrimSpace(payload.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(usuario.PasswordHash, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Rol)
	if err != nil {
		return nil, err
	}

	return &dto.TokensDTO{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokensDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	// El rol se relee de la base: puede haber cambiado desde la emisión.
	usuario, err := s.usuarioRepo.FindUsuario(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, newRefreshToken, err := s.jwtService.GenerateTokens(usuario.ID, usuario.Rol)
	if err != nil {
		return nil, err
	}

	return &dto.TokensDTO{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (s *AuthService) GetMe(ctx context.Context, userID string) (*entities.Usuario, error) {
	return s.usuarioRepo.FindUsuario(ctx, userID)
}
