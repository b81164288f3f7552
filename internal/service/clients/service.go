package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FieldService/internal/domain"
	nationalIDCache "github.com/m04kA/SMC-FieldService/internal/infra/cache/nationalid"
	clientRepo "github.com/m04kA/SMC-FieldService/internal/infra/storage/client"
	"github.com/m04kA/SMC-FieldService/internal/integrations/reniec"
	"github.com/m04kA/SMC-FieldService/internal/service/clients/models"
	"github.com/m04kA/SMC-FieldService/pkg/ptr"
)

const routerPhoneUnknown = "No especificado"

// Service реестр клиентов
type Service struct {
	clientRepo  ClientRepository
	txManager   TransactionManager
	lookup      NationalIDLookup
	cache       NationalIDCache
	router      RouterClient
	newPassword func() string
	logger      Logger
}

// NewService создает новый экземпляр сервиса клиентов
// lookup, cache и router могут быть nil, если интеграции не настроены
func NewService(
	clientRepo ClientRepository,
	txManager TransactionManager,
	lookup NationalIDLookup,
	cache NationalIDCache,
	router RouterClient,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:  clientRepo,
		txManager:   txManager,
		lookup:      lookup,
		cache:       cache,
		router:      router,
		newPassword: NewProvisioningPassword,
		logger:      logger,
	}
}

// NewProvisioningPassword генерирует пароль PPPoE из 8 шестнадцатеричных символов в верхнем регистре
func NewProvisioningPassword() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:domain.ProvisioningPasswordLength])
}

// FindOrCreate возвращает клиента по DNI, создавая его при отсутствии
// Существующий клиент возвращается без изменений
// Вызывается как внутри транзакции usecase, так и самостоятельно
func (s *Service) FindOrCreate(ctx context.Context, input models.ClientInput) (*domain.Client, error) {
	input.NationalID = strings.TrimSpace(input.NationalID)
	input.Name = strings.TrimSpace(input.Name)

	if input.NationalID == "" {
		return nil, domain.NewFieldError("dni_cliente", "national id is required")
	}
	if input.Name == "" {
		return nil, domain.NewFieldError("nombre_cliente", "client name is required")
	}

	var result *domain.Client

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.clientRepo.GetByNationalID(txCtx, input.NationalID)
		if err == nil {
			s.logger.Info("FindOrCreate: client dni=%s already exists id=%d", input.NationalID, existing.ID)
			result = existing
			return nil
		}
		if !errors.Is(err, clientRepo.ErrClientNotFound) {
			return fmt.Errorf("%w: FindOrCreate - get by national id: %v", ErrInternal, err)
		}

		if err := s.clientRepo.LockCodeSequence(txCtx); err != nil {
			return fmt.Errorf("%w: FindOrCreate - lock code sequence: %v", ErrInternal, err)
		}

		last, hasLast, err := s.clientRepo.GetLastCodeNumber(txCtx, domain.ClientCodePrefix)
		if err != nil {
			return fmt.Errorf("%w: FindOrCreate - get last code: %v", ErrInternal, err)
		}

		client := &domain.Client{
			Name:                 input.Name,
			NationalID:           input.NationalID,
			Phone:                input.Phone,
			Address:              input.Address,
			Plan:                 input.Plan,
			Code:                 ptr.Ptr(domain.NextClientCode(last, hasLast, input.Name)),
			ProvisioningPassword: ptr.Ptr(s.newPassword()),
			PaymentState:         domain.PaymentActive,
		}

		created, err := s.clientRepo.Create(txCtx, client)
		if err != nil {
			if errors.Is(err, clientRepo.ErrDuplicateNationalID) || errors.Is(err, clientRepo.ErrDuplicateCode) {
				return fmt.Errorf("%w: dni=%s: %v", ErrDuplicateClient, input.NationalID, err)
			}
			return fmt.Errorf("%w: FindOrCreate - create client: %v", ErrInternal, err)
		}

		s.logger.Info("FindOrCreate: created client id=%d code=%s", created.ID, ptr.Value(created.Code))
		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateClient) {
			s.logger.Warn("FindOrCreate: %v", err)
		} else {
			s.logger.Error("FindOrCreate: %v", err)
		}
		return nil, err
	}

	return result, nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return client, nil
}

// Search ищет клиентов по имени, DNI, телефону или коду
func (s *Service) Search(ctx context.Context, query string) ([]*models.ClientResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewFieldError("q", "search query is required")
	}

	clients, err := s.clientRepo.Search(ctx, query, domain.MaxSearchResults)
	if err != nil {
		s.logger.Error("Search: repository error for q=%q: %v", query, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientList(clients), nil
}

// LookupNationalID ищет ФИО по DNI через RENIEC, используя кэш, если он настроен
func (s *Service) LookupNationalID(ctx context.Context, nationalID string) (*models.PersonResponse, error) {
	nationalID = strings.TrimSpace(nationalID)
	if !isDigits(nationalID) {
		return nil, domain.NewFieldError("dni", "national id must contain digits only")
	}

	if s.cache != nil {
		person, err := s.cache.Get(ctx, nationalID)
		switch {
		case err == nil:
			return &models.PersonResponse{NationalID: person.NationalID, Name: person.Name, Cached: true}, nil
		case !errors.Is(err, nationalIDCache.ErrCacheMiss):
			s.logger.Warn("LookupNationalID: cache unavailable: %v", err)
		}
	}

	if s.lookup == nil {
		return nil, ErrLookupUnavailable
	}

	person, err := s.lookup.Lookup(ctx, nationalID)
	if err != nil {
		if errors.Is(err, reniec.ErrPersonNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("LookupNationalID: registry error for dni=%s: %v", nationalID, err)
		return nil, fmt.Errorf("%w: %v", ErrLookupUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, person); err != nil {
			s.logger.Warn("LookupNationalID: failed to cache dni=%s: %v", nationalID, err)
		}
	}

	return &models.PersonResponse{NationalID: person.NationalID, Name: person.Name}, nil
}

// SearchRouterUsers получает PPPoE-пользователей роутера, имя которых содержит query
// Пустой query возвращает всех
func (s *Service) SearchRouterUsers(ctx context.Context, query string) ([]models.RouterUserResponse, error) {
	if s.router == nil {
		return nil, ErrRouterUnavailable
	}

	secrets, err := s.router.ListSecrets(ctx)
	if err != nil {
		s.logger.Error("SearchRouterUsers: router error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRouterUnavailable, err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	users := make([]models.RouterUserResponse, 0, len(secrets))
	for _, secret := range secrets {
		if query != "" && !strings.Contains(strings.ToLower(secret.Name), query) {
			continue
		}
		phone := secret.Comment
		if phone == "" {
			phone = routerPhoneUnknown
		}
		users = append(users, models.RouterUserResponse{
			Username: secret.Name,
			Service:  secret.Service,
			Phone:    phone,
			Disabled: secret.IsDisabled(),
		})
	}

	return users, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
