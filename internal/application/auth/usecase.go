package auth

import (
	"github.com/jhoicas/ims-api/internal/application/dto"
	"github.com/jhoicas/ims-api/internal/domain"
	"github.com/jhoicas/ims-api/internal/domain/authz"
	"github.com/jhoicas/ims-api/internal/domain/entity"
	"github.com/jhoicas/ims-api/internal/domain/repository"
	"github.com/jhoicas/ims-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite el token con el snapshot del
// principal. Usuario inexistente y contraseña incorrecta responden igual
// (credenciales inválidas), sin revelar cuál fue.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.SupplierID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: tok,
		User:  *toUserResponse(user),
	}, nil
}

// ChangePassword re-verifica la credencial actual antes de aceptar la nueva:
// verificar → escribir, o fallar sin escribir. En mismatch devuelve
// ErrInvalidCurrentPassword, distinto del fallo genérico (la UI lo muestra).
func (uc *AuthUseCase) ChangePassword(p authz.Principal, in dto.ChangePasswordRequest) error {
	d := authz.Decide(p, authz.Request{
		Action:       authz.ActionUpdate,
		Resource:     authz.ResourceOwnCredential,
		TargetUserID: p.UserID,
	})
	if !d.Allow {
		return d.Err
	}
	user, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCurrentPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		SupplierID:  u.SupplierID,
	}
}
