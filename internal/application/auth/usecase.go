package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bravo-menu-api/internal/application/dto"
	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
	"github.com/jhoicas/bravo-menu-api/internal/application/usecase"
	"github.com/jhoicas/bravo-menu-api/internal/domain"
	"github.com/jhoicas/bravo-menu-api/internal/domain/entity"
	"github.com/jhoicas/bravo-menu-api/internal/domain/location"
	"github.com/jhoicas/bravo-menu-api/internal/domain/repository"
	"github.com/jhoicas/bravo-menu-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro (onboarding), login, restauración y cierre de sesión.
type AuthUseCase struct {
	businessRepo repository.BusinessRepository
	tx           ports.TxRunner
	businesses   *usecase.BusinessUseCase
	sessions     SessionStore
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(businessRepo repository.BusinessRepository, tx ports.TxRunner, businesses *usecase.BusinessUseCase, sessions SessionStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{businessRepo: businessRepo, tx: tx, businesses: businesses, sessions: sessions, jwtCfg: jwtCfg}
}

// Register crea el negocio en plan FREE, visible, con la categoría "General", y abre sesión.
// Negocio y categoría se insertan en la misma transacción.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.SessionResponse, error) {
	phone := strings.TrimSpace(in.Phone)
	if !location.Valid(in.Province, in.Municipality) {
		return nil, fmt.Errorf("%w: municipio %q no pertenece a %q", domain.ErrInvalidInput, in.Municipality, in.Province)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}
	existing, err := uc.businessRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	typ := in.Type
	if typ == "" {
		typ = entity.TypeRestaurant
	}
	now := time.Now()
	b := &entity.Business{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Type:         typ,
		Province:     in.Province,
		Municipality: in.Municipality,
		Address:      in.Address,
		Phone:        phone,
		WhatsApp:     in.WhatsApp,
		PasswordHash: string(hash),
		Plan:         entity.PlanFree,
		IsVisible:    true,
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.Run(ctx, func(r ports.Repositories) error {
		if err := r.Businesses.Create(ctx, b); err != nil {
			return err
		}
		return r.Categories.Create(ctx, &entity.Category{
			ID:         uuid.New().String(),
			BusinessID: b.ID,
			Name:       entity.DefaultCategoryName,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.open(ctx, b)
}

// Login verifica teléfono y contraseña y abre una sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	b, err := uc.businessRepo.GetByPhone(ctx, strings.TrimSpace(in.Phone))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.open(ctx, b)
}

// Authenticate valida el token y devuelve la sesión vigente.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.BusinessID != claims.BusinessID {
		return nil, domain.ErrUnauthorized
	}
	return s, nil
}

// Restore recarga el negocio de la sesión. Si el negocio ya no existe la sesión se cierra y se
// devuelve ErrSessionEnded.
func (uc *AuthUseCase) Restore(ctx context.Context, s *Session) (*dto.SessionResponse, error) {
	b, err := uc.businesses.Me(ctx, s.BusinessID)
	if errors.Is(err, domain.ErrNotFound) {
		_ = uc.sessions.Delete(ctx, s.ID)
		return nil, domain.ErrSessionEnded
	}
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Business: *b}, nil
}

// Logout elimina la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, s *Session) error {
	return uc.sessions.Delete(ctx, s.ID)
}

func (uc *AuthUseCase) open(ctx context.Context, b *entity.Business) (*dto.SessionResponse, error) {
	s := &Session{ID: uuid.New().String(), BusinessID: b.ID, Role: b.Role, CreatedAt: time.Now()}
	if s.Role == "" {
		s.Role = entity.RoleUser
	}
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	if err := uc.sessions.Save(ctx, s, ttl); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, s.ID, s.BusinessID, string(s.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	me, err := uc.businesses.Me(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token, Business: *me}, nil
}
