package service

import (
	"context"
	"sync"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

// Function-field stubs shared by the service tests. Unset fields panic,
// which is the desired behavior: a test must declare every call it expects.

type stubUserRepo struct {
	createFn            func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn       func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn          func(ctx context.Context, id string) (*domain.User, error)
	listProfessionalsFn func(ctx context.Context, filter ports.ProfessionalFilter) ([]*domain.User, error)
	setOnlineFn         func(ctx context.Context, userID string, online bool) error
	setActiveFn         func(ctx context.Context, userID string, active bool) error
	countFn             func(ctx context.Context) (int64, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) ListProfessionals(ctx context.Context, filter ports.ProfessionalFilter) ([]*domain.User, error) {
	return s.listProfessionalsFn(ctx, filter)
}

func (s *stubUserRepo) SetOnline(ctx context.Context, userID string, online bool) error {
	return s.setOnlineFn(ctx, userID, online)
}

func (s *stubUserRepo) SetActive(ctx context.Context, userID string, active bool) error {
	return s.setActiveFn(ctx, userID, active)
}

func (s *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

type stubRatingRepo struct {
	upsertFn        func(ctx context.Context, r *domain.Rating) (*domain.Rating, error)
	listByTargetFn  func(ctx context.Context, target domain.RatingTarget, targetID string) ([]*domain.Rating, error)
	listByTargetsFn func(ctx context.Context, target domain.RatingTarget, targetIDs []string) (map[string][]*domain.Rating, error)
}

func (s *stubRatingRepo) Upsert(ctx context.Context, r *domain.Rating) (*domain.Rating, error) {
	return s.upsertFn(ctx, r)
}

func (s *stubRatingRepo) ListByTarget(ctx context.Context, target domain.RatingTarget, targetID string) ([]*domain.Rating, error) {
	return s.listByTargetFn(ctx, target, targetID)
}

func (s *stubRatingRepo) ListByTargets(ctx context.Context, target domain.RatingTarget, targetIDs []string) (map[string][]*domain.Rating, error) {
	return s.listByTargetsFn(ctx, target, targetIDs)
}

type stubEstablishmentRepo struct {
	createFn   func(ctx context.Context, e *domain.Establishment) (*domain.Establishment, error)
	findByIDFn func(ctx context.Context, id string) (*domain.Establishment, error)
	updateFn   func(ctx context.Context, e *domain.Establishment) error
	listFn     func(ctx context.Context, filter ports.EstablishmentFilter) ([]*domain.Establishment, error)
	countFn    func(ctx context.Context) (int64, error)
}

func (s *stubEstablishmentRepo) Create(ctx context.Context, e *domain.Establishment) (*domain.Establishment, error) {
	return s.createFn(ctx, e)
}

func (s *stubEstablishmentRepo) FindByID(ctx context.Context, id string) (*domain.Establishment, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubEstablishmentRepo) Update(ctx context.Context, e *domain.Establishment) error {
	return s.updateFn(ctx, e)
}

func (s *stubEstablishmentRepo) List(ctx context.Context, filter ports.EstablishmentFilter) ([]*domain.Establishment, error) {
	return s.listFn(ctx, filter)
}

func (s *stubEstablishmentRepo) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

type stubCatalogRepo struct {
	listCategoriesFn  func(ctx context.Context, categoryType domain.CategoryType) ([]*domain.Category, error)
	findCategoryFn    func(ctx context.Context, id string) (*domain.Category, error)
	createCategoryFn  func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	updateCategoryFn  func(ctx context.Context, c *domain.Category) error
	listActivePlansFn func(ctx context.Context) ([]*domain.Plan, error)
	findPlanFn        func(ctx context.Context, id string) (*domain.Plan, error)
	createPlanFn      func(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	updatePlanFn      func(ctx context.Context, p *domain.Plan) error
}

func (s *stubCatalogRepo) ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]*domain.Category, error) {
	return s.listCategoriesFn(ctx, categoryType)
}

func (s *stubCatalogRepo) FindCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.findCategoryFn(ctx, id)
}

func (s *stubCatalogRepo) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	return s.createCategoryFn(ctx, c)
}

func (s *stubCatalogRepo) UpdateCategory(ctx context.Context, c *domain.Category) error {
	return s.updateCategoryFn(ctx, c)
}

func (s *stubCatalogRepo) ListActivePlans(ctx context.Context) ([]*domain.Plan, error) {
	return s.listActivePlansFn(ctx)
}

func (s *stubCatalogRepo) FindPlan(ctx context.Context, id string) (*domain.Plan, error) {
	return s.findPlanFn(ctx, id)
}

func (s *stubCatalogRepo) CreatePlan(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	return s.createPlanFn(ctx, p)
}

func (s *stubCatalogRepo) UpdatePlan(ctx context.Context, p *domain.Plan) error {
	return s.updatePlanFn(ctx, p)
}

type stubRequestRepo struct {
	createFn   func(ctx context.Context, r *domain.ServiceRequest) (*domain.ServiceRequest, error)
	findByIDFn func(ctx context.Context, id string) (*domain.ServiceRequest, error)
	listFn     func(ctx context.Context, filter ports.RequestFilter) ([]*domain.ServiceRequest, error)
	updateFn   func(ctx context.Context, r *domain.ServiceRequest) error
}

func (s *stubRequestRepo) Create(ctx context.Context, r *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	return s.createFn(ctx, r)
}

func (s *stubRequestRepo) FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubRequestRepo) List(ctx context.Context, filter ports.RequestFilter) ([]*domain.ServiceRequest, error) {
	return s.listFn(ctx, filter)
}

func (s *stubRequestRepo) Update(ctx context.Context, r *domain.ServiceRequest) error {
	return s.updateFn(ctx, r)
}

type stubFavoriteRepo struct {
	upsertFn     func(ctx context.Context, userID, professionalID string) (*domain.Favorite, error)
	deleteFn     func(ctx context.Context, userID, professionalID string) error
	listByUserFn func(ctx context.Context, userID string) ([]*domain.Favorite, error)
}

func (s *stubFavoriteRepo) Upsert(ctx context.Context, userID, professionalID string) (*domain.Favorite, error) {
	return s.upsertFn(ctx, userID, professionalID)
}

func (s *stubFavoriteRepo) Delete(ctx context.Context, userID, professionalID string) error {
	return s.deleteFn(ctx, userID, professionalID)
}

func (s *stubFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	return s.listByUserFn(ctx, userID)
}

type stubMessageRepo struct {
	createConversationFn func(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error)
	findConversationFn   func(ctx context.Context, id string) (*domain.Conversation, error)
	listConversationsFn  func(ctx context.Context, userID string) ([]*domain.Conversation, error)
	insertMessageFn      func(ctx context.Context, m *domain.Message) (*domain.Message, error)
	listMessagesFn       func(ctx context.Context, conversationID string) ([]*domain.Message, error)
}

func (s *stubMessageRepo) CreateConversation(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error) {
	return s.createConversationFn(ctx, c)
}

func (s *stubMessageRepo) FindConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	return s.findConversationFn(ctx, id)
}

func (s *stubMessageRepo) ListConversations(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	return s.listConversationsFn(ctx, userID)
}

func (s *stubMessageRepo) InsertMessage(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	return s.insertMessageFn(ctx, m)
}

func (s *stubMessageRepo) ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	return s.listMessagesFn(ctx, conversationID)
}

type stubViewRepo struct {
	insertFn       func(ctx context.Context, v *domain.ProfileView) error
	listByViewerFn func(ctx context.Context, viewerID string, limit int) ([]*domain.ProfileView, error)
}

func (s *stubViewRepo) Insert(ctx context.Context, v *domain.ProfileView) error {
	return s.insertFn(ctx, v)
}

func (s *stubViewRepo) ListByViewer(ctx context.Context, viewerID string, limit int) ([]*domain.ProfileView, error) {
	return s.listByViewerFn(ctx, viewerID, limit)
}

// recordingEmitter captures every emitted event for assertions.
type recordingEmitter struct {
	mu     sync.Mutex
	events []domain.RealtimeEvent
	err    error
}

func (e *recordingEmitter) Emit(event domain.RealtimeEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return e.err
}

func (e *recordingEmitter) emitted() []domain.RealtimeEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]domain.RealtimeEvent(nil), e.events...)
}

// recordingViewService captures Record calls.
type recordingViewService struct {
	mu    sync.Mutex
	views [][2]string
}

func (v *recordingViewService) Record(viewerID, profileID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.views = append(v.views, [2]string{viewerID, profileID})
}

func (v *recordingViewService) ListRecent(context.Context, string) ([]*domain.ProfileView, error) {
	return nil, nil
}

func (v *recordingViewService) recorded() [][2]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([][2]string(nil), v.views...)
}
