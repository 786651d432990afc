package services

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/account/queries/current_principal"
	"github.com/light-bringer/estate-service/internal/app/account/queries/get_agent"
	"github.com/light-bringer/estate-service/internal/app/account/queries/list_agents"
	"github.com/light-bringer/estate-service/internal/app/account/queries/me"
	accountrepo "github.com/light-bringer/estate-service/internal/app/account/repo"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/change_password"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/login"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/rate_agent"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/register"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/update_agent_profile"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/update_profile"
	"github.com/light-bringer/estate-service/internal/app/account/usecases/verify_agent"
	"github.com/light-bringer/estate-service/internal/app/admin/queries/list_events"
	"github.com/light-bringer/estate-service/internal/app/admin/queries/site_stats"
	adminrepo "github.com/light-bringer/estate-service/internal/app/admin/repo"
	"github.com/light-bringer/estate-service/internal/app/contact/queries/contact_stats"
	"github.com/light-bringer/estate-service/internal/app/contact/queries/list_contacts"
	contactrepo "github.com/light-bringer/estate-service/internal/app/contact/repo"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/add_note"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/delete_contact"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/open_contact"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/submit_contact"
	"github.com/light-bringer/estate-service/internal/app/contact/usecases/triage_contact"
	"github.com/light-bringer/estate-service/internal/app/property/queries/agent_dashboard"
	"github.com/light-bringer/estate-service/internal/app/property/queries/agent_properties"
	"github.com/light-bringer/estate-service/internal/app/property/queries/featured_properties"
	"github.com/light-bringer/estate-service/internal/app/property/queries/get_property"
	"github.com/light-bringer/estate-service/internal/app/property/queries/list_inquiries"
	"github.com/light-bringer/estate-service/internal/app/property/queries/list_properties"
	"github.com/light-bringer/estate-service/internal/app/property/queries/price_history"
	propertyrepo "github.com/light-bringer/estate-service/internal/app/property/repo"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/add_images"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/change_status"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/create_property"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/delete_media"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/delete_property"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/remove_image"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/set_primary_image"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/submit_inquiry"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/track_engagement"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/update_property"
	"github.com/light-bringer/estate-service/internal/app/property/usecases/upload_media"
	"github.com/light-bringer/estate-service/internal/config"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/cache"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/pkg/committer"
	"github.com/light-bringer/estate-service/internal/pkg/media"
	"github.com/light-bringer/estate-service/internal/pkg/outbox"
	grpcadmin "github.com/light-bringer/estate-service/internal/transport/grpc/admin"
	httptransport "github.com/light-bringer/estate-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Tokens        *auth.TokenManager
	Principals    auth.Lookup

	HTTPHandlers  httptransport.Handlers
	Authenticator *httptransport.Authenticator
	AdminHandler  *grpcadmin.Handler

	redis *cache.Redis
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}
	opts := &ServiceOptions{SpannerClient: spannerClient}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	outboxRepo := outbox.NewWriter()
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, clk)
	opts.Tokens = tokens

	var searchCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		r, err := cache.NewRedis(ctx, cache.RedisConfig{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			opts.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		opts.redis = r
		searchCache = r
	} else {
		log.Printf("Redis not configured, search cache disabled")
	}

	store := media.Disabled()
	if cfg.MediaEnabled() {
		s3Store, err := media.NewS3Store(ctx, cfg.Media)
		if err != nil {
			opts.Close()
			return nil, fmt.Errorf("failed to create media store: %w", err)
		}
		store = s3Store
	} else {
		log.Printf("Media bucket not configured, uploads disabled")
	}
	uploader := media.NewUploader(store, cfg.Upload.Folder)
	limits := media.Limits{MaxFiles: cfg.Upload.MaxFiles, MaxBytes: cfg.Upload.MaxBytes}

	// 3. Create repositories and read models
	userRepo := accountrepo.NewUserRepo(spannerClient)
	accountReadModel := accountrepo.NewReadModel(spannerClient)
	propertyRepo := propertyrepo.NewPropertyRepo(spannerClient, comm)
	inquiryRepo := propertyrepo.NewInquiryRepo(spannerClient)
	priceHistoryRepo := propertyrepo.NewPriceHistoryRepo(spannerClient)
	propertyReadModel := propertyrepo.NewReadModel(spannerClient)
	dashboardReadModel := propertyrepo.NewDashboardReadModel(spannerClient)
	contactRepo := contactrepo.NewContactRepo(spannerClient)
	contactReadModel := contactrepo.NewReadModel(spannerClient)
	statsReadModel := adminrepo.NewStatsReadModel(spannerClient)
	eventsReadModel := adminrepo.NewEventsReadModel(spannerClient)

	// 4. Create queries shared between transports
	getProperty := get_property.NewQuery(propertyReadModel, propertyRepo)
	dashboard := agent_dashboard.NewQuery(dashboardReadModel)
	siteStats := site_stats.NewQuery(statsReadModel)

	// 5. Create HTTP handlers
	opts.Principals = current_principal.NewQuery(userRepo)
	opts.Authenticator = httptransport.NewAuthenticator(tokens, cfg.Auth.CookieName).WithLookup(opts.Principals)
	opts.HTTPHandlers = httptransport.Handlers{
		Auth: httptransport.NewAuthHandler(httptransport.AuthUseCases{
			Register:       register.NewInteractor(userRepo, outboxRepo, hasher, tokens, comm, clk),
			Login:          login.NewInteractor(userRepo, hasher, tokens),
			UpdateProfile:  update_profile.NewInteractor(userRepo, comm, clk),
			ChangePassword: change_password.NewInteractor(userRepo, hasher, comm, clk),
			Me:             me.NewQuery(accountReadModel),
		}, httptransport.CookieConfig{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure}),

		Properties: httptransport.NewPropertyHandler(httptransport.PropertyUseCases{
			Create:       create_property.NewInteractor(propertyRepo, outboxRepo, priceHistoryRepo, comm, clk),
			Update:       update_property.NewInteractor(propertyRepo, outboxRepo, priceHistoryRepo, comm, clk),
			ChangeStatus: change_status.NewInteractor(propertyRepo, outboxRepo, comm, clk),
			Delete:       delete_property.NewInteractor(propertyRepo, outboxRepo, store, comm, clk),
			AddImages:    add_images.NewInteractor(propertyRepo, outboxRepo, uploader, limits, comm, clk),
			RemoveImage:  remove_image.NewInteractor(propertyRepo, outboxRepo, store, comm, clk),
			SetPrimary:   set_primary_image.NewInteractor(propertyRepo, outboxRepo, comm, clk),
			Inquire:      submit_inquiry.NewInteractor(propertyRepo, inquiryRepo, outboxRepo, comm, clk),
			Track:        track_engagement.NewInteractor(propertyRepo),
			List:         list_properties.NewQuery(propertyReadModel, searchCache, cfg.Redis.TTL),
			Featured:     featured_properties.NewQuery(propertyReadModel),
			Get:          getProperty,
			Inquiries:    list_inquiries.NewQuery(propertyRepo, inquiryRepo),
			PriceHistory: price_history.NewQuery(propertyRepo, priceHistoryRepo),
		}, cfg.Upload.MaxBytes),

		Agents: httptransport.NewAgentHandler(httptransport.AgentUseCases{
			UpdateProfile: update_agent_profile.NewInteractor(userRepo, comm, clk),
			Rate:          rate_agent.NewInteractor(userRepo, outboxRepo, comm, clk),
			Verify:        verify_agent.NewInteractor(userRepo, outboxRepo, comm, clk),
			List:          list_agents.NewQuery(accountReadModel),
			Get:           get_agent.NewQuery(accountReadModel),
			Properties:    agent_properties.NewQuery(propertyReadModel),
			Dashboard:     dashboard,
		}),

		Contact: httptransport.NewContactHandler(httptransport.ContactUseCases{
			Submit: submit_contact.NewInteractor(contactRepo, outboxRepo, comm, clk),
			Open:   open_contact.NewInteractor(contactRepo, comm, clk),
			Triage: triage_contact.NewInteractor(contactRepo, outboxRepo, comm, clk),
			Note:   add_note.NewInteractor(contactRepo, comm, clk),
			Delete: delete_contact.NewInteractor(contactRepo, comm),
			List:   list_contacts.NewQuery(contactReadModel),
			Stats:  contact_stats.NewQuery(contactReadModel),
		}),

		Upload: httptransport.NewUploadHandler(
			upload_media.NewInteractor(uploader, limits),
			delete_media.NewInteractor(uploader),
			cfg.Upload.MaxBytes,
		),

		Admin: httptransport.NewAdminHandler(siteStats, list_events.NewQuery(eventsReadModel)),
	}

	// 6. Create gRPC handler
	opts.AdminHandler = grpcadmin.NewHandler(siteStats, dashboard)

	return opts, nil
}

// BodyLimit caps request bodies at a full upload batch plus form overhead.
func BodyLimit(cfg *config.Config) string {
	kib := int64(cfg.Upload.MaxFiles)*cfg.Upload.MaxBytes/1024 + 1024
	return fmt.Sprintf("%dK", kib)
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("failed to close redis: %v", err)
		}
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
