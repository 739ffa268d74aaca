package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	usersdomain "github.com/nexashop/storefront/internal/domains/users/domain"
	usersports "github.com/nexashop/storefront/internal/domains/users/ports"
)

const tracerName = "github.com/nexashop/storefront/internal/domains/users/adapters/observability/service"

// Service decorates the accounts service with tracing, logging, and metrics.
// Tokens and credentials never reach the logs or span attributes.
type Service struct {
	inner   usersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core accounts service.
func New(inner usersports.Service, opts ...Option) usersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Register(ctx context.Context, email, password, name string) (*usersdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UsersService.Register")
	defer span.End()

	user, err := s.inner.Register(ctx, email, password, name)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to register account")
	}
	s.metrics.recordRegistration(ctx)
	s.logInfo(ctx, "account registered", slog.String("user.id", user.ID))
	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*usersdomain.Session, *usersdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UsersService.Login")
	defer span.End()

	session, user, err := s.inner.Login(ctx, email, password)
	if err != nil {
		s.metrics.recordLogin(ctx, false)
		return nil, nil, s.handleError(ctx, span, err, "login rejected")
	}
	s.metrics.recordLogin(ctx, true)
	s.logInfo(ctx, "login succeeded", slog.String("user.id", user.ID))
	return session, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "UsersService.Logout")
	defer span.End()

	if err := s.inner.Logout(ctx, token); err != nil {
		return s.handleError(ctx, span, err, "failed to log out")
	}
	return nil
}

func (s *Service) CurrentUser(ctx context.Context, token string) (*usersdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UsersService.CurrentUser")
	defer span.End()

	user, err := s.inner.CurrentUser(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

func (s *Service) IsAdmin(ctx context.Context, token string) bool {
	ctx, span := s.tracer.Start(ctx, "UsersService.IsAdmin")
	defer span.End()

	admin := s.inner.IsAdmin(ctx, token)
	span.SetAttributes(attribute.Bool("user.admin", admin))
	return admin
}

func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "UsersService.RequestPasswordReset")
	defer span.End()

	token, err := s.inner.RequestPasswordReset(ctx, email)
	if err != nil {
		return "", s.handleError(ctx, span, err, "failed to issue password reset")
	}
	s.logInfo(ctx, "password reset requested")
	return token, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	ctx, span := s.tracer.Start(ctx, "UsersService.ResetPassword")
	defer span.End()

	if err := s.inner.ResetPassword(ctx, token, newPassword); err != nil {
		return s.handleError(ctx, span, err, "failed to reset password")
	}
	s.logInfo(ctx, "password reset completed")
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("error", err.Error()))
	}
	return err
}

type serviceMetrics struct {
	registrations metric.Int64Counter
	logins        metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registrations, _ := m.Int64Counter("users.service.registrations", metric.WithDescription("Number of accounts registered"))
	logins, _ := m.Int64Counter("users.service.logins", metric.WithDescription("Number of login attempts"))
	return serviceMetrics{registrations: registrations, logins: logins}
}

func (m serviceMetrics) recordRegistration(ctx context.Context) {
	if m.registrations != nil {
		m.registrations.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordLogin(ctx context.Context, success bool) {
	if m.logins != nil {
		m.logins.Add(ctx, 1, metric.WithAttributes(attribute.Bool("login.success", success)))
	}
}

var _ usersports.Service = (*Service)(nil)
