package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-marketplace/internal/domain/entity"
	"github.com/jhoicas/wms-marketplace/internal/domain/repository"
	"github.com/jhoicas/wms-marketplace/pkg/logger"
)

// sources fuentes iniciales: proveedores y puntos de recogida.
var sources = []entity.Source{
	{Name: "Поставщик РФ", Description: "Основной российский поставщик"},
	{Name: "ПВЗ Казань", Description: "Пункт выдачи заказов Казань"},
	{Name: "ПВЗ Москва", Description: "Пункт выдачи заказов Москва"},
	{Name: "Прямой поставщик", Description: "Прямые поставки от производителя"},
}

// distributionCenters centros de distribución de los marketplaces WB y Ozon.
var distributionCenters = []entity.DistributionCenter{
	{Code: "WB-KAZAN", Name: "Казань WB", Marketplace: "WB"},
	{Code: "WB-MOSCOW", Name: "Москва WB", Marketplace: "WB"},
	{Code: "WB-STPETERSBURG", Name: "Санкт-Петербург WB", Marketplace: "WB"},
	{Code: "WB-KRASNODAR", Name: "Краснодар WB", Marketplace: "WB"},
	{Code: "OZON-KAZAN", Name: "Казань Ozon", Marketplace: "Ozon"},
	{Code: "OZON-MOSCOW", Name: "Москва Ozon", Marketplace: "Ozon"},
	{Code: "OZON-STPETERSBURG", Name: "Санкт-Петербург Ozon", Marketplace: "Ozon"},
	{Code: "OZON-KRASNODAR", Name: "Краснодар Ozon", Marketplace: "Ozon"},
	{Code: "OZON-NOVOSIBIRSK", Name: "Новосибирск Ozon", Marketplace: "Ozon"},
}

// Seeder inserta los datos iniciales cuando las tablas están vacías.
// Idempotente: cada grupo se siembra solo si su tabla no tiene filas.
type Seeder struct {
	userRepo   repository.UserRepository
	sourceRepo repository.SourceRepository
	dcRepo     repository.DistributionCenterRepository
	log        *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(
	userRepo repository.UserRepository,
	sourceRepo repository.SourceRepository,
	dcRepo repository.DistributionCenterRepository,
	log *logger.Logger,
) *Seeder {
	return &Seeder{userRepo: userRepo, sourceRepo: sourceRepo, dcRepo: dcRepo, log: log}
}

// Run siembra usuario admin, fuentes y centros de distribución.
func (s *Seeder) Run(ctx context.Context, adminEmail, adminPassword string) error {
	if err := s.seedAdmin(ctx, adminEmail, adminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.seedSources(ctx); err != nil {
		return fmt.Errorf("seed fuentes: %w", err)
	}
	if err := s.seedDistributionCenters(ctx); err != nil {
		return fmt.Errorf("seed centros de distribución: %w", err)
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, email, password string) error {
	exists, err := s.userRepo.Any(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("Usuario admin creado")
	return nil
}

func (s *Seeder) seedSources(ctx context.Context) error {
	exists, err := s.sourceRepo.Any(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	now := time.Now()
	for _, src := range sources {
		src.ID = uuid.New().String()
		src.CreatedAt = now
		src.UpdatedAt = now
		if err := s.sourceRepo.Create(ctx, &src); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(sources)).Msg("Fuentes iniciales creadas")
	return nil
}

func (s *Seeder) seedDistributionCenters(ctx context.Context) error {
	exists, err := s.dcRepo.Any(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	now := time.Now()
	for _, dc := range distributionCenters {
		dc.ID = uuid.New().String()
		dc.CreatedAt = now
		dc.UpdatedAt = now
		if err := s.dcRepo.Create(ctx, &dc); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(distributionCenters)).Msg("Centros de distribución iniciales creados")
	return nil
}
