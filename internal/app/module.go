package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/dreamdecode/backend/internal/app/api/server"
	"github.com/dreamdecode/backend/internal/app/service/dream"
	"github.com/dreamdecode/backend/internal/app/service/notify"
	"github.com/dreamdecode/backend/internal/platform/db"
	"github.com/dreamdecode/backend/internal/platform/openai"
	"github.com/dreamdecode/backend/internal/platform/pdfgen"
	"github.com/dreamdecode/backend/internal/platform/sendgridmail"
	"github.com/dreamdecode/backend/internal/platform/stripepay"
	"github.com/dreamdecode/backend/pkg/config"
	"github.com/dreamdecode/backend/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	fx.Provide(
		openai.NewInterpreter,
		stripepay.NewGateway,
		pdfgen.NewRenderer,
		sendgridmail.NewMailer,
	),
	// The queue's lifecycle hook registers before the server's so shutdown
	// drains HTTP first and the queue still accepts late dispatches.
	notify.Module,
	dream.Module,
	server.Module,
)
