package config

import (
	"TinyTotsGolang/database/postgres"
	appointmentHandler "TinyTotsGolang/internal/api/appointment/handler"
	appointmentRepository "TinyTotsGolang/internal/api/appointment/repository"
	appointmentService "TinyTotsGolang/internal/api/appointment/service"
	assistantHandler "TinyTotsGolang/internal/api/assistant/handler"
	assistantService "TinyTotsGolang/internal/api/assistant/service"
	attendanceHandler "TinyTotsGolang/internal/api/attendance/handler"
	attendanceRepository "TinyTotsGolang/internal/api/attendance/repository"
	attendanceService "TinyTotsGolang/internal/api/attendance/service"
	"TinyTotsGolang/internal/middleware"
	"TinyTotsGolang/pkg/audio"
	"TinyTotsGolang/pkg/playback"
	"TinyTotsGolang/pkg/redis"
	"TinyTotsGolang/pkg/s3"
	"TinyTotsGolang/pkg/translate"
	"TinyTotsGolang/pkg/utils"
	"TinyTotsGolang/pkg/whatsapp"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	translator     translate.ItfTranslate
	transcriber    audio.ITranscription
	tts            audio.ITTS
	playbackClient playback.IPlayback
	whatsappClient whatsapp.IWhatsappSender
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithTranslator() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before translator")
		}
		s.translator = translate.New(s.log, s.redisServer)
		return nil
	}
}

func WithTranscriber() ServerOption {
	return func(s *Server) error {
		s.transcriber = audio.NewTranscriptionService(os.Getenv("OPENAI_API_KEY"))
		return nil
	}
}

func WithTTS() ServerOption {
	return func(s *Server) error {
		s.tts = audio.NewTTSService(os.Getenv("ELEVENLABS_API_KEY"), os.Getenv("ELEVENLABS_VOICE_ID"))
		return nil
	}
}

func WithPlaybackClient(playbackClient playback.IPlayback) ServerOption {
	return func(s *Server) error {
		s.playbackClient = playbackClient
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Appointment Domain
	appointmentRepo := appointmentRepository.New(s.db, s.log)
	appointmentServices := appointmentService.New(s.log, appointmentRepo, s.utils, s.whatsappClient)
	appointmentHandlers := appointmentHandler.New(s.log, s.validator, s.middleware, appointmentServices)

	// Attendance Domain
	attendanceRepo := attendanceRepository.New(s.db, s.log)
	attendanceServices := attendanceService.New(s.log, attendanceRepo, s.utils)
	attendanceHandlers := attendanceHandler.New(s.log, s.validator, s.middleware, attendanceServices)

	// Assistant Pipeline
	executor := assistantService.NewDomainExecutor(appointmentServices, attendanceServices)
	assistantServices := assistantService.New(
		s.log, s.translator, executor, s.transcriber, s.tts,
		s.s3Client, s.playbackClient, s.utils,
	)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, appointmentHandlers, attendanceHandlers, assistantHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		if s.playbackClient != nil {
			s.playbackClient.Close()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
